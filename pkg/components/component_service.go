package components

import (
	"context"

	"Masterchef-Web/domain"
	"Masterchef-Web/pkg/backend"
)

type (
	ComponentService interface {
		List(ctx context.Context, recipeID int64) ([]domain.Component, error)
		Edits(ctx context.Context, recipeID int64) ([]domain.ComponentEdit, error)
		SaveAll(ctx context.Context, token string, recipeID int64, drafts []domain.ComponentDraft) error
		UpdateAll(ctx context.Context, token string, recipeID int64, edits []domain.ComponentEdit) error
		Delete(ctx context.Context, token string, componentID int64) error
	}

	componentService struct {
		backendClient backend.Client
	}
)

func NewComponentService(backendClient backend.Client) ComponentService {
	return &componentService{backendClient: backendClient}
}

func (s *componentService) List(ctx context.Context, recipeID int64) ([]domain.Component, error) {
	return s.backendClient.Components(ctx, recipeID)
}

// Edits fetches the current components and reshapes them into editable
// copies with per-entry ingredient lists.
func (s *componentService) Edits(ctx context.Context, recipeID int64) ([]domain.ComponentEdit, error) {
	components, err := s.backendClient.Components(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	edits := make([]domain.ComponentEdit, 0, len(components))
	for _, comp := range components {
		edits = append(edits, domain.ComponentEdit{
			ID:           comp.ID,
			Name:         comp.ComponentName,
			Ingredients:  domain.IngredientList(comp.Ingredients),
			Instructions: comp.Instruction,
			ImagePath:    comp.ImagePath,
		})
	}
	return edits, nil
}

// SaveAll serializes the whole accumulated working list into one multipart
// submission.
func (s *componentService) SaveAll(ctx context.Context, token string, recipeID int64, drafts []domain.ComponentDraft) error {
	return s.backendClient.CreateComponents(ctx, token, recipeID, drafts)
}

// UpdateAll validates every edited component before submitting; staged
// image deletions ride along as flags.
func (s *componentService) UpdateAll(ctx context.Context, token string, recipeID int64, edits []domain.ComponentEdit) error {
	for _, edit := range edits {
		if err := edit.Validate(); err != nil {
			return err
		}
	}
	return s.backendClient.UpdateComponents(ctx, token, recipeID, edits)
}

// Delete removes a single component immediately, unlike staged image
// removal.
func (s *componentService) Delete(ctx context.Context, token string, componentID int64) error {
	return s.backendClient.DeleteComponent(ctx, token, componentID)
}
