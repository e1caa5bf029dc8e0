package recipe

import (
	"context"
	"errors"
	"strconv"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest) (*entities.Recipe, error)
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, req domain.UpdateRecipeRequest) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id uint) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		storage          storage.FileStorage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fileStorage storage.FileStorage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		storage:          fileStorage,
	}
}

func (s *recipeService) SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest) (*entities.Recipe, error) {
	filename, err := s.storage.SaveFile(ctx, req.Thumbnail, storage.RoleThumbnail)
	if err != nil {
		return nil, err
	}

	rec := &entities.Recipe{
		Title:     req.Title,
		Body:      req.Body,
		Thumbnail: filename,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, rec); err != nil {
		// The file and the row are separate resources with no shared
		// transaction; remove the stored file so a failed insert does not
		// leave an orphan behind.
		if cleanupErr := s.storage.DeleteFile(ctx, filename, storage.RoleThumbnail); cleanupErr != nil {
			log.Errorf("removing thumbnail %s after failed insert: %v", filename, cleanupErr)
		}
		return nil, err
	}
	return rec, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipes(ctx)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, req domain.UpdateRecipeRequest) (*entities.Recipe, error) {
	id, err := strconv.ParseUint(req.ID, 10, 64)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		rec.Title = req.Title
	}
	if req.Body != "" {
		rec.Body = req.Body
	}

	oldThumbnail := ""
	if req.Thumbnail != nil {
		filename, err := s.storage.SaveFile(ctx, req.Thumbnail, storage.RoleThumbnail)
		if err != nil {
			return nil, err
		}
		oldThumbnail = rec.Thumbnail
		rec.Thumbnail = filename
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, rec); err != nil {
		if req.Thumbnail != nil {
			if cleanupErr := s.storage.DeleteFile(ctx, rec.Thumbnail, storage.RoleThumbnail); cleanupErr != nil {
				log.Errorf("removing thumbnail %s after failed update: %v", rec.Thumbnail, cleanupErr)
			}
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	// Failing to remove the superseded thumbnail never fails the edit; the
	// orphaned file is logged and left on disk.
	if oldThumbnail != "" {
		if err := s.storage.DeleteFile(ctx, oldThumbnail, storage.RoleThumbnail); err != nil {
			log.Errorf("removing replaced thumbnail %s: %v", oldThumbnail, err)
		}
	}
	return rec, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.storage.DeleteFile(ctx, rec.Thumbnail, storage.RoleThumbnail)
}
