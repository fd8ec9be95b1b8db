package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"Masterchef-Web/domain"
)

func (c *client) FrontpageRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.getJSON(ctx, "/recipes/public/frontpage", "", &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *client) SearchRecipes(ctx context.Context, query ListQuery) (*domain.RecipePage, error) {
	var page domain.RecipePage
	if err := c.getJSON(ctx, "/recipes/public?"+query.encode(), "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *client) Recipe(ctx context.Context, recipeID int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := c.getJSON(ctx, fmt.Sprintf("/recipes/public/%d", recipeID), "", &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe submits the multipart recipe form. The backend answers with
// the new recipe's id as the response body.
func (c *client) CreateRecipe(ctx context.Context, token string, upload RecipeUpload) (int64, error) {
	body, contentType, err := encodeRecipeForm(upload, false)
	if err != nil {
		return 0, err
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/recipes", token, body, contentType)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decodeError(resp)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return 0, err
	}
	return parseRecipeID(string(raw))
}

func (c *client) UpdateRecipe(ctx context.Context, token string, recipeID int64, upload RecipeUpload) error {
	body, contentType, err := encodeRecipeForm(upload, true)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/recipes/update/%d", recipeID), token, body, contentType)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *client) DeleteRecipe(ctx context.Context, token string, recipeID int64) error {
	return c.delete(ctx, fmt.Sprintf("/recipes/delete/%d", recipeID), token)
}

func (c *client) RecipesForUser(ctx context.Context, token string) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.getJSON(ctx, "/recipes/user", token, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *client) RecipesForUserID(ctx context.Context, token string, userID int64) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := c.getJSON(ctx, fmt.Sprintf("/recipes/user/%d", userID), token, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// encodeRecipeForm writes the recipe fields the way the backend expects
// them: a required image part on create, an empty video part when no video
// was chosen, and a deleteVideo flag only on update.
func encodeRecipeForm(upload RecipeUpload, update bool) (io.Reader, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := w.WriteField("name", upload.Name); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("preparationTime", upload.PreparationTime); err != nil {
		return nil, "", err
	}
	if upload.CategoryID > 0 {
		if err := w.WriteField("category", strconv.FormatInt(upload.CategoryID, 10)); err != nil {
			return nil, "", err
		}
	}

	if upload.Image != nil {
		part, err := w.CreateFormFile("image", upload.Image.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(upload.Image.Content); err != nil {
			return nil, "", err
		}
	}

	switch {
	case upload.Video != nil:
		part, err := w.CreateFormFile("video", upload.Video.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(upload.Video.Content); err != nil {
			return nil, "", err
		}
	case !update:
		// create always carries a video part, empty when none was chosen
		if _, err := w.CreateFormFile("video", "blob"); err != nil {
			return nil, "", err
		}
	}

	if update && upload.DeleteVideo {
		if err := w.WriteField("deleteVideo", "true"); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func parseRecipeID(raw string) (int64, error) {
	trimmed := strings.Trim(strings.TrimSpace(raw), `"`)
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected create recipe response %q: %w", raw, err)
	}
	return id, nil
}
