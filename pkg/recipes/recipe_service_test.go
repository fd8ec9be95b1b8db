package recipes

import (
	"context"
	"testing"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	backend.Client
	frontpage []domain.Recipe
	page      *domain.RecipePage
	lastQuery backend.ListQuery
}

func (f *fakeBackend) FrontpageRecipes(context.Context) ([]domain.Recipe, error) {
	return f.frontpage, nil
}

func (f *fakeBackend) SearchRecipes(_ context.Context, query backend.ListQuery) (*domain.RecipePage, error) {
	f.lastQuery = query
	return f.page, nil
}

func TestBuildListState(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		totalPages   int
		prevDisabled bool
		nextDisabled bool
		prevPage     int
		nextPage     int
	}{
		{
			name: "first of several", page: 0, totalPages: 3,
			prevDisabled: true, nextDisabled: false, prevPage: 0, nextPage: 1,
		},
		{
			name: "middle page", page: 1, totalPages: 3,
			prevDisabled: false, nextDisabled: false, prevPage: 0, nextPage: 2,
		},
		{
			name: "last page", page: 2, totalPages: 3,
			prevDisabled: false, nextDisabled: true, prevPage: 1, nextPage: 2,
		},
		{
			name: "single page", page: 0, totalPages: 1,
			prevDisabled: true, nextDisabled: true, prevPage: 0, nextPage: 0,
		},
		{
			name: "no results", page: 0, totalPages: 0,
			prevDisabled: true, nextDisabled: true, prevPage: 0, nextPage: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := BuildListState(tt.page, tt.totalPages)
			assert.Equal(t, tt.prevDisabled, state.PrevDisabled)
			assert.Equal(t, tt.nextDisabled, state.NextDisabled)
			assert.Equal(t, tt.prevPage, state.PrevPage)
			assert.Equal(t, tt.nextPage, state.NextPage)
		})
	}
}

func TestFrontpageKeepsNewest(t *testing.T) {
	client := &fakeBackend{frontpage: []domain.Recipe{
		{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5},
	}}
	service := NewRecipeService(client)

	recipes, err := service.Frontpage(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, FrontpageCount)
	assert.Equal(t, int64(3), recipes[0].ID)
	assert.Equal(t, int64(5), recipes[2].ID)
}

func TestSearchClampsNegativePage(t *testing.T) {
	client := &fakeBackend{page: &domain.RecipePage{TotalPages: 2}}
	service := NewRecipeService(client)

	_, state, err := service.Search(context.Background(), SearchParams{Page: -4})
	require.NoError(t, err)
	assert.Equal(t, 0, client.lastQuery.Page)
	assert.Equal(t, PageSize, client.lastQuery.Size)
	assert.Equal(t, 0, state.Page)
}
