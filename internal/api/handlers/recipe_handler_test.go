package handlers

import (
	"context"
	"net/http/httptest"
	"net/url"
	"testing"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/categories"
	"Masterchef-Web/pkg/recipes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecipeService struct {
	recipes.RecipeService
	lastParams recipes.SearchParams
}

func (f *fakeRecipeService) Search(_ context.Context, params recipes.SearchParams) (*domain.RecipePage, recipes.ListState, error) {
	f.lastParams = params
	return &domain.RecipePage{}, recipes.BuildListState(params.Page, 0), nil
}

type listingCategoryService struct {
	categories.CategoryService
}

func (listingCategoryService) List(context.Context) ([]domain.Category, error) {
	return nil, nil
}

func TestListTrimsSearchTerm(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "padded term", query: "  soup  ", want: "soup"},
		{name: "whitespace only becomes no filter", query: "   ", want: ""},
		{name: "plain term untouched", query: "soup", want: "soup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipeService := &fakeRecipeService{}
			handler := NewRecipeHandler(recipeService, listingCategoryService{}, &fakePresenter{}, nil, zap.NewNop())

			app := fiber.New()
			app.Get("/recipes", handler.List)

			target := "/recipes?q=" + url.QueryEscape(tt.query)
			resp, err := app.Test(httptest.NewRequest("GET", target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.want, recipeService.lastParams.Term)
		})
	}
}
