package backend

import (
	"context"
	"fmt"

	"Masterchef-Web/domain"
)

func (c *client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.getJSON(ctx, "/categories/public", "", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *client) CreateCategory(ctx context.Context, token, name string) error {
	in := domain.CategoryRequest{CategoryName: name}
	return c.postJSON(ctx, "/categories", token, in, nil)
}

func (c *client) UpdateCategory(ctx context.Context, token string, categoryID int64, name string) error {
	in := domain.CategoryRequest{CategoryName: name}
	return c.postJSON(ctx, fmt.Sprintf("/categories/update/%d", categoryID), token, in, nil)
}

// DeleteCategory is rejected by the backend while recipes still reference
// the category; the conflict surfaces as an *APIError.
func (c *client) DeleteCategory(ctx context.Context, token string, categoryID int64) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", categoryID), token)
}
