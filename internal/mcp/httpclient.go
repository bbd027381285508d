package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CGAmico/Invictus-Fitness/internal/models"
	"github.com/google/uuid"
)

// HTTPClient implements DataSource by calling the Invictus REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale). The server
// resolves the caller from its tailnet identity, so ctx carries no actor.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("httpclient: %s: %w", path, models.ErrNotFound)
	case http.StatusForbidden:
		return nil, fmt.Errorf("httpclient: %s: %w", path, models.ErrForbidden)
	}
	return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
}

func (c *HTTPClient) ListPrograms(ctx context.Context) ([]models.ProgramSummary, error) {
	body, err := c.get(ctx, "/api/v1/programs", nil)
	if err != nil {
		return nil, err
	}

	var list []models.ProgramSummary
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("httpclient: decode programs: %w", err)
	}
	return list, nil
}

func (c *HTTPClient) GetProgram(ctx context.Context, id uuid.UUID) (*models.ProgramView, error) {
	body, err := c.get(ctx, "/api/v1/programs/"+id.String(), nil)
	if err != nil {
		return nil, err
	}

	var view models.ProgramView
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, fmt.Errorf("httpclient: decode program: %w", err)
	}
	return &view, nil
}

func (c *HTTPClient) ProgressExercises(ctx context.Context) ([]models.Exercise, error) {
	body, err := c.get(ctx, "/api/v1/progress/exercises", nil)
	if err != nil {
		return nil, err
	}

	var list []models.Exercise
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("httpclient: decode progress exercises: %w", err)
	}
	return list, nil
}

func (c *HTTPClient) Progress(ctx context.Context, exerciseID uuid.UUID) ([]models.ProgressPoint, error) {
	params := url.Values{}
	params.Set("exercise", exerciseID.String())

	body, err := c.get(ctx, "/api/v1/progress", params)
	if err != nil {
		return nil, err
	}

	var points []models.ProgressPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("httpclient: decode progress: %w", err)
	}
	return points, nil
}
