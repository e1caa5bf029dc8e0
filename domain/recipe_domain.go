package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessSubmitRecipe = "Recipe submitted successfully"
	MessageSuccessUpdateRecipe = "Recipe updated successfully"
	MessageSuccessDeleteRecipe = "Recipe deleted successfully"

	MessageFailedSubmitRecipe = "failed to submit recipe"
	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageRecipeNotFound     = "recipe not found"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	SubmitRecipeRequest struct {
		Title     string                `form:"title" validate:"required"`
		Body      string                `form:"recipe" validate:"required"`
		Thumbnail *multipart.FileHeader `form:"-" json:"thumbnail" validate:"required"`
	}

	UpdateRecipeRequest struct {
		ID        string                `form:"id" validate:"required,number"`
		Title     string                `form:"title" validate:"required_without=Body"`
		Body      string                `form:"recipe" validate:"required_without=Title"`
		Thumbnail *multipart.FileHeader `form:"-" json:"thumbnail" validate:"omitempty"`
	}

	DeleteRecipeRequest struct {
		ID uint `json:"id" validate:"required"`
	}
)
