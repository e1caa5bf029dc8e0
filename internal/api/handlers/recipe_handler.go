package handlers

import (
	"errors"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		SubmitRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
	}
}

func (h *recipeHandler) SubmitRecipe(c *fiber.Ctx) error {
	req := new(domain.SubmitRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("thumbnail"); err == nil {
		req.Thumbnail = file
	}

	// Validation runs before anything is written to storage, so a rejected
	// request never leaves a stray upload behind.
	if fields := utils.CheckRequest(req, req.Thumbnail); fields != nil {
		return presenters.ValidationErrorResponse(c, fields)
	}

	res, err := h.recipeService.SubmitRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": domain.MessageSuccessSubmitRecipe,
		"recipe":  res,
	})
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, recipes)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("thumbnail"); err == nil {
		req.Thumbnail = file
	}

	if fields := utils.CheckRequest(req, req.Thumbnail); fields != nil {
		return presenters.ValidationErrorResponse(c, fields)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": domain.MessageSuccessUpdateRecipe,
		"recipe":  res,
	})
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	req := new(domain.DeleteRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if fields := utils.CheckRequest(req, nil); fields != nil {
		return presenters.ValidationErrorResponse(c, fields)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": domain.MessageSuccessDeleteRecipe,
		"id":      req.ID,
	})
}
