package cricapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrStatus indica resposta HTTP fora de 2xx
	ErrStatus = errors.New("cricapi: unexpected http status")
	// ErrUnrecognized indica corpo sem status "success" ou sem lista de partidas
	ErrUnrecognized = errors.New("cricapi: unrecognized response shape")
)

// Client consulta a CricAPI para a lista de partidas de uma série
type Client struct {
	BaseURL  string
	APIKey   string
	SeriesID string
	HTTP     *http.Client
}

func New(baseURL, apiKey, seriesID string) *Client {
	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		APIKey:   apiKey,
		SeriesID: seriesID,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// SeriesMatches faz uma única chamada GET a /v1/series_info (sem retry).
// Retorna ErrUnrecognized quando o JSON não traz status "success" com matchList.
func (c *Client) SeriesMatches(ctx context.Context) ([]RawMatch, error) {
	q := url.Values{}
	q.Set("apikey", c.APIKey)
	q.Set("id", c.SeriesID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/series_info?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build series_info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("series_info: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrStatus, res.StatusCode)
	}

	var out SeriesInfoResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	if out.Status != "success" || out.Data == nil || out.Data.MatchList == nil {
		return nil, fmt.Errorf("%w: status=%q", ErrUnrecognized, out.Status)
	}
	return out.Data.MatchList, nil
}
