package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"Masterchef-Web/domain"

	"go.uber.org/zap"
)

// Config holds the connection settings for the external Masterchef backend.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:8080/api",
		Timeout: 30 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// APIError carries a non-2xx backend response. Message holds the backend's
// "message" field when the body contained one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 for transport
// failures and non-backend errors.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err is a backend error with the given status.
func IsStatus(err error, code int) bool {
	return StatusOf(err) == code
}

// MessageOf returns the backend's message field for err, "" when absent.
func MessageOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

type (
	// Client is the typed adapter for every backend endpoint the app
	// consumes. A bearer token is attached whenever one is supplied.
	Client interface {
		SignIn(ctx context.Context, email, password string) (string, error)
		SignUp(ctx context.Context, req domain.SignUpRequest) error
		CurrentUser(ctx context.Context, token string) (*domain.User, error)
		ChangePassword(ctx context.Context, token string, userID int64, req domain.ChangePasswordRequest) error
		UpdateUser(ctx context.Context, token string, userID int64, req domain.UpdateUserRequest) (string, error)
		AdminUsers(ctx context.Context, token string) ([]domain.User, error)
		AdminUser(ctx context.Context, token string, userID int64) (*domain.User, error)
		SuspendUser(ctx context.Context, token string, userID int64) error
		DeleteUser(ctx context.Context, token string, userID int64) error

		FrontpageRecipes(ctx context.Context) ([]domain.Recipe, error)
		SearchRecipes(ctx context.Context, query ListQuery) (*domain.RecipePage, error)
		Recipe(ctx context.Context, recipeID int64) (*domain.Recipe, error)
		CreateRecipe(ctx context.Context, token string, upload RecipeUpload) (int64, error)
		UpdateRecipe(ctx context.Context, token string, recipeID int64, upload RecipeUpload) error
		DeleteRecipe(ctx context.Context, token string, recipeID int64) error
		RecipesForUser(ctx context.Context, token string) ([]domain.Recipe, error)
		RecipesForUserID(ctx context.Context, token string, userID int64) ([]domain.Recipe, error)

		Components(ctx context.Context, recipeID int64) ([]domain.Component, error)
		CreateComponents(ctx context.Context, token string, recipeID int64, drafts []domain.ComponentDraft) error
		UpdateComponents(ctx context.Context, token string, recipeID int64, comps []domain.ComponentEdit) error
		DeleteComponent(ctx context.Context, token string, componentID int64) error

		Categories(ctx context.Context) ([]domain.Category, error)
		CreateCategory(ctx context.Context, token, name string) error
		UpdateCategory(ctx context.Context, token string, categoryID int64, name string) error
		DeleteCategory(ctx context.Context, token string, categoryID int64) error

		RecipePDF(ctx context.Context, recipeID int64) ([]byte, error)
		UserPDF(ctx context.Context, token string, userID int64) ([]byte, error)
		UsersPDF(ctx context.Context, token string) ([]byte, error)
	}

	client struct {
		baseURL    string
		httpClient *http.Client
		log        *zap.Logger
	}
)

func NewClient(cfg *Config, log *zap.Logger) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}, nil
}

func (c *client) newRequest(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes a 2xx JSON body into out when out is
// non-nil. Non-2xx responses become *APIError.
func (c *client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("backend request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("backend request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(raw) > 0 {
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}

func (c *client) postJSON(ctx context.Context, path, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, token, bytes.NewReader(payload), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, token, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *client) delete(ctx context.Context, path, token string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, token, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
