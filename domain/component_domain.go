package domain

import (
	"errors"
	"strings"
)

var (
	MessageSuccessSaveComponents   = "components added successfully"
	MessageSuccessUpdateComponents = "components updated successfully"
	MessageSuccessDeleteComponent  = "component removed successfully"

	MessageFailedGetComponents    = "failed to fetch components"
	MessageFailedSaveComponents   = "failed to save components"
	MessageFailedUpdateComponents = "failed to update components"
	MessageFailedDeleteComponent  = "failed to delete component"
	MessageLastComponent          = "a recipe must keep at least one component"
	MessageLastIngredient         = "a component must keep at least one ingredient"

	ErrComponentNameTooShort     = errors.New("component name must be at least 3 characters")
	ErrNoIngredients             = errors.New("at least one non-empty ingredient is required")
	ErrInstructionsTooShort      = errors.New("instructions must be at least 10 characters")
	ErrComponentFieldsIncomplete = errors.New("fill in all required component fields")
)

type (
	// Component mirrors the backend component representation. Ingredients
	// arrive as a single comma-joined string.
	Component struct {
		ID            int64  `json:"id"`
		ComponentName string `json:"componentName"`
		ImagePath     string `json:"imagePath,omitempty"`
		Ingredients   string `json:"ingredients"`
		Instruction   string `json:"instruction"`
	}

	// ComponentDraft is a not-yet-submitted component accumulated in the
	// creation wizard's working list.
	ComponentDraft struct {
		Name         string   `json:"name"`
		Ingredients  []string `json:"ingredients"`
		Instructions string   `json:"instructions"`
		ImageName    string   `json:"imageName,omitempty"`
		Image        []byte   `json:"image,omitempty"`
	}

	// ComponentEdit is the editable copy used by the update flow. Image
	// removal is staged through DeleteImage and only takes effect on the
	// next full submission.
	ComponentEdit struct {
		ID           int64    `json:"id"`
		Name         string   `json:"name"`
		Ingredients  []string `json:"ingredients"`
		Instructions string   `json:"instructions"`
		ImagePath    string   `json:"imagePath,omitempty"`
		ImageName    string   `json:"imageName,omitempty"`
		Image        []byte   `json:"image,omitempty"`
		DeleteImage  bool     `json:"deleteImage"`
	}
)

// Validate enforces the draft rules: name of 3+ characters, at least one
// non-empty ingredient and instructions of 10+ characters.
func (d ComponentDraft) Validate() error {
	if len(strings.TrimSpace(d.Name)) < 3 {
		return ErrComponentNameTooShort
	}
	if !hasIngredient(d.Ingredients) {
		return ErrNoIngredients
	}
	if len(strings.TrimSpace(d.Instructions)) < 10 {
		return ErrInstructionsTooShort
	}
	return nil
}

// Validate applies the same field rules to an edited component.
func (e ComponentEdit) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrComponentFieldsIncomplete
	}
	if !hasIngredient(e.Ingredients) {
		return ErrNoIngredients
	}
	if len(strings.TrimSpace(e.Instructions)) < 10 {
		return ErrInstructionsTooShort
	}
	return nil
}

func hasIngredient(list []string) bool {
	for _, in := range list {
		if strings.TrimSpace(in) != "" {
			return true
		}
	}
	return false
}

// IngredientList splits the backend's comma-joined ingredient string into
// the editable per-entry form.
func IngredientList(joined string) []string {
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
