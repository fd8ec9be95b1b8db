package categories

import (
	"context"
	"net/http"
	"strings"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/backend"
)

type (
	CategoryService interface {
		List(ctx context.Context) ([]domain.Category, error)
		Create(ctx context.Context, token, name string) error
		Update(ctx context.Context, token string, categoryID int64, name string) error
		Delete(ctx context.Context, token string, categoryID int64) error
	}

	categoryService struct {
		backendClient backend.Client
	}
)

func NewCategoryService(backendClient backend.Client) CategoryService {
	return &categoryService{backendClient: backendClient}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.backendClient.Categories(ctx)
}

func (s *categoryService) Create(ctx context.Context, token, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrCategoryNameEmpty
	}
	return s.backendClient.CreateCategory(ctx, token, name)
}

func (s *categoryService) Update(ctx context.Context, token string, categoryID int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrCategoryNameEmpty
	}
	return s.backendClient.UpdateCategory(ctx, token, categoryID, name)
}

func (s *categoryService) Delete(ctx context.Context, token string, categoryID int64) error {
	return s.backendClient.DeleteCategory(ctx, token, categoryID)
}

// IsInUse reports whether a delete failed because recipes still reference
// the category.
func IsInUse(err error) bool {
	return backend.IsStatus(err, http.StatusConflict)
}
