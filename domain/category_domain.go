package domain

import "errors"

var ErrCategoryNameEmpty = errors.New("category name cannot be empty")

var (
	MessageSuccessCreateCategory = "category added"
	MessageSuccessUpdateCategory = "category updated"
	MessageSuccessDeleteCategory = "category deleted"

	MessageFailedGetCategories   = "failed to fetch categories"
	MessageFailedCreateCategory  = "failed to add category"
	MessageFailedUpdateCategory  = "failed to update category"
	MessageFailedDeleteCategory  = "failed to delete category"
	MessageCategoryEmptyName     = "category name cannot be empty"
	MessageCategoryHasRecipes    = "category was not deleted because recipes still use it"
)

type (
	Category struct {
		ID           int64  `json:"id"`
		CategoryName string `json:"categoryName"`
	}

	CategoryRequest struct {
		CategoryName string `json:"categoryName" form:"categoryName" validate:"required"`
	}
)
