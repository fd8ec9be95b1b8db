package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   ComponentDraft
		wantErr error
	}{
		{
			name: "valid draft",
			draft: ComponentDraft{
				Name:         "Sauce",
				Ingredients:  []string{"tomato"},
				Instructions: "Simmer gently",
			},
		},
		{
			name: "name too short",
			draft: ComponentDraft{
				Name:         "ab",
				Ingredients:  []string{"tomato"},
				Instructions: "Simmer gently",
			},
			wantErr: ErrComponentNameTooShort,
		},
		{
			name: "name only whitespace padding",
			draft: ComponentDraft{
				Name:         "  ab  ",
				Ingredients:  []string{"tomato"},
				Instructions: "Simmer gently",
			},
			wantErr: ErrComponentNameTooShort,
		},
		{
			name: "no ingredients",
			draft: ComponentDraft{
				Name:         "Sauce",
				Instructions: "Simmer gently",
			},
			wantErr: ErrNoIngredients,
		},
		{
			name: "only blank ingredients",
			draft: ComponentDraft{
				Name:         "Sauce",
				Ingredients:  []string{"", "   "},
				Instructions: "Simmer gently",
			},
			wantErr: ErrNoIngredients,
		},
		{
			name: "instructions nine characters",
			draft: ComponentDraft{
				Name:         "Sauce",
				Ingredients:  []string{"tomato"},
				Instructions: "only nine",
			},
			wantErr: ErrInstructionsTooShort,
		},
		{
			name: "instructions exactly ten characters",
			draft: ComponentDraft{
				Name:         "Sauce",
				Ingredients:  []string{"tomato"},
				Instructions: "exactly 10",
			},
		},
		{
			name: "instructions padded below ten",
			draft: ComponentDraft{
				Name:         "Sauce",
				Ingredients:  []string{"tomato"},
				Instructions: "  too short   ",
			},
			wantErr: ErrInstructionsTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComponentEditValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    ComponentEdit
		wantErr error
	}{
		{
			name: "valid edit",
			edit: ComponentEdit{
				Name:         "Sauce",
				Ingredients:  []string{"tomato"},
				Instructions: "Simmer gently",
			},
		},
		{
			name: "empty name",
			edit: ComponentEdit{
				Ingredients:  []string{"tomato"},
				Instructions: "Simmer gently",
			},
			wantErr: ErrComponentFieldsIncomplete,
		},
		{
			name: "no ingredients",
			edit: ComponentEdit{
				Name:         "Sauce",
				Instructions: "Simmer gently",
			},
			wantErr: ErrNoIngredients,
		},
		{
			name: "instructions too short",
			edit: ComponentEdit{
				Name:         "Sauce",
				Ingredients:  []string{"tomato"},
				Instructions: "stir",
			},
			wantErr: ErrInstructionsTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edit.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIngredientList(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		want   []string
	}{
		{name: "plain", joined: "tomato,basil", want: []string{"tomato", "basil"}},
		{name: "spaced", joined: "tomato, basil , oil", want: []string{"tomato", "basil", "oil"}},
		{name: "empty entries dropped", joined: "tomato,,basil,", want: []string{"tomato", "basil"}},
		{name: "empty string", joined: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IngredientList(tt.joined))
		})
	}
}
