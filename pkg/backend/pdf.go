package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"Masterchef-Web/domain"
)

func (c *client) RecipePDF(ctx context.Context, recipeID int64) ([]byte, error) {
	return c.fetchPDF(ctx, fmt.Sprintf("/pdf/public/%d", recipeID), "")
}

func (c *client) UserPDF(ctx context.Context, token string, userID int64) ([]byte, error) {
	return c.fetchPDF(ctx, fmt.Sprintf("/pdf/user/%d", userID), token)
}

func (c *client) UsersPDF(ctx context.Context, token string) ([]byte, error) {
	return c.fetchPDF(ctx, "/pdf/users", token)
}

// fetchPDF issues a single binary fetch and verifies the declared content
// type before treating the body as a PDF. No retries.
func (c *client) fetchPDF(ctx context.Context, path, token string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil, "")
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/pdf") {
		return nil, domain.ErrNotPDF
	}
	return io.ReadAll(resp.Body)
}
