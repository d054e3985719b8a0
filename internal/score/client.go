package score

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Client liest Produktivitäts-Scores aus dem externen Tracker-Service.
type Client interface {
	Fetch(ctx context.Context, employeeID string) (float64, error)
}

type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type scoreResponse struct {
	Score       *float64 `json:"productivity_score"`
	LegacyScore *float64 `json:"productivityScore"`
}

func (c *HTTPClient) Fetch(ctx context.Context, employeeID string) (float64, error) {
	endpoint := c.baseURL + "/api/productivity-score/" + url.PathEscape(employeeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("score service responded %d", resp.StatusCode)
	}

	var body scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	switch {
	case body.Score != nil:
		return *body.Score, nil
	case body.LegacyScore != nil:
		return *body.LegacyScore, nil
	}
	return 0, fmt.Errorf("score response without productivity_score")
}
