package components

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
	components []domain.Component
	updated    []domain.ComponentEdit
}

func (f *fakeBackend) Components(context.Context, int64) ([]domain.Component, error) {
	return f.components, nil
}

func (f *fakeBackend) UpdateComponents(_ context.Context, _ string, _ int64, edits []domain.ComponentEdit) error {
	f.updated = edits
	return nil
}

func TestEditsReshapesComponents(t *testing.T) {
	client := &fakeBackend{components: []domain.Component{
		{
			ID:            4,
			ComponentName: "Sauce",
			Ingredients:   "tomato, basil,oil",
			Instruction:   "Simmer for an hour",
			ImagePath:     "/files/sauce.jpg",
		},
	}}
	service := NewComponentService(client)

	edits, err := service.Edits(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, edits, 1)

	assert.Equal(t, int64(4), edits[0].ID)
	assert.Equal(t, "Sauce", edits[0].Name)
	assert.Equal(t, []string{"tomato", "basil", "oil"}, edits[0].Ingredients)
	assert.Equal(t, "Simmer for an hour", edits[0].Instructions)
	assert.Equal(t, "/files/sauce.jpg", edits[0].ImagePath)
	assert.False(t, edits[0].DeleteImage)
}

func TestUpdateAllValidatesBeforeSubmitting(t *testing.T) {
	client := &fakeBackend{}
	service := NewComponentService(client)

	edits := []domain.ComponentEdit{
		{Name: "Sauce", Ingredients: []string{"tomato"}, Instructions: "Simmer for an hour"},
		{Name: "", Ingredients: []string{"flour"}, Instructions: "Knead the dough well"},
	}

	err := service.UpdateAll(context.Background(), "tok", 7, edits)
	assert.ErrorIs(t, err, domain.ErrComponentFieldsIncomplete)
	assert.Nil(t, client.updated)
}

func TestUpdateAllSubmitsValidEdits(t *testing.T) {
	client := &fakeBackend{}
	service := NewComponentService(client)

	edits := []domain.ComponentEdit{
		{Name: "Sauce", Ingredients: []string{"tomato"}, Instructions: "Simmer for an hour", DeleteImage: true},
	}

	require.NoError(t, service.UpdateAll(context.Background(), "tok", 7, edits))
	require.Len(t, client.updated, 1)
	assert.True(t, client.updated[0].DeleteImage)
}
