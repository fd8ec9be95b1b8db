package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"Masterchef-Web/domain"
)

// Components fetches the public component list for a recipe. The backend
// answers with an array, or a bare object when the recipe has exactly one
// component; both shapes are normalized to a slice.
func (c *client) Components(ctx context.Context, recipeID int64) ([]domain.Component, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/components/public/%d", recipeID), "", nil, "")
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var components []domain.Component
	if err := json.Unmarshal(raw, &components); err == nil {
		return components, nil
	}
	var single domain.Component
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []domain.Component{single}, nil
}

func (c *client) CreateComponents(ctx context.Context, token string, recipeID int64, drafts []domain.ComponentDraft) error {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for i, draft := range drafts {
		if err := writeComponentFields(w, i, draft.Name, draft.Instructions, draft.Ingredients); err != nil {
			return err
		}
		if len(draft.Image) > 0 {
			if err := writeComponentImage(w, i, draft.ImageName, draft.Image); err != nil {
				return err
			}
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/components/%d", recipeID), token, buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *client) UpdateComponents(ctx context.Context, token string, recipeID int64, comps []domain.ComponentEdit) error {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for i, comp := range comps {
		if err := writeComponentFields(w, i, comp.Name, comp.Instructions, comp.Ingredients); err != nil {
			return err
		}
		switch {
		case len(comp.Image) > 0:
			if err := writeComponentImage(w, i, comp.ImageName, comp.Image); err != nil {
				return err
			}
		case comp.DeleteImage:
			if err := w.WriteField(componentKey(i, "imageKey"), "true"); err != nil {
				return err
			}
		}
		if comp.DeleteImage {
			if err := w.WriteField(componentKey(i, "deleteImage"), "true"); err != nil {
				return err
			}
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/components/update/%d", recipeID), token, buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *client) DeleteComponent(ctx context.Context, token string, componentID int64) error {
	return c.delete(ctx, fmt.Sprintf("/components/delete/%d", componentID), token)
}

func componentKey(index int, field string) string {
	return fmt.Sprintf("components[%d][%s]", index, field)
}

func writeComponentFields(w *multipart.Writer, index int, name, instructions string, ingredients []string) error {
	if err := w.WriteField(componentKey(index, "name"), name); err != nil {
		return err
	}
	if err := w.WriteField(componentKey(index, "instructions"), instructions); err != nil {
		return err
	}
	for j, ingredient := range ingredients {
		key := fmt.Sprintf("components[%d][ingredients][%d]", index, j)
		if err := w.WriteField(key, ingredient); err != nil {
			return err
		}
	}
	return nil
}

func writeComponentImage(w *multipart.Writer, index int, name string, content []byte) error {
	part, err := w.CreateFormFile(componentKey(index, "image"), name)
	if err != nil {
		return err
	}
	if _, err := part.Write(content); err != nil {
		return err
	}
	return w.WriteField(componentKey(index, "imageKey"), name)
}
