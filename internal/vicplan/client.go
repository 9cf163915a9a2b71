// Package vicplan is the client for the Victorian planning schemes API.
package vicplan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dgallion1/planscheme/internal/cache"
)

// DefaultBaseURL is the production planning API endpoint.
const DefaultBaseURL = "https://api.vicplanning.app/planning/v2"

// Client fetches scheme indexes and ordinance details, consulting the
// injected cache before the network.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
}

// NewClient builds a client against baseURL. A nil cache disables caching.
func NewClient(baseURL string, c cache.Cache, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		cache:   c,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Index fetches the scheme index listing every clause and sub-clause.
func (c *Client) Index(ctx context.Context) (*Index, error) {
	var idx Index
	if err := c.getJSON(ctx, c.baseURL+"/schemes/vpp", &idx); err != nil {
		return nil, fmt.Errorf("fetch index: %w", err)
	}
	return &idx, nil
}

// OrdinanceID resolves a (clause title, sub-clause title) pair to the opaque
// ordinance identifier via the index.
func (c *Client) OrdinanceID(ctx context.Context, clause, subClause string) (string, error) {
	idx, err := c.Index(ctx)
	if err != nil {
		return "", err
	}
	for _, cl := range idx.Clauses {
		if cl.Title != clause {
			continue
		}
		for _, sub := range cl.SubClauses {
			if sub.Title == subClause {
				return sub.OrdinanceID, nil
			}
		}
	}
	return "", fmt.Errorf("clause %q sub-clause %q not in index", clause, subClause)
}

// Ordinance fetches the detail record for one ordinance identifier.
func (c *Client) Ordinance(ctx context.Context, id string) (*Ordinance, error) {
	var ord Ordinance
	if err := c.getJSON(ctx, c.baseURL+"/schemes/vpp/ordinances/"+id, &ord); err != nil {
		return nil, fmt.Errorf("fetch ordinance %s: %w", id, err)
	}
	return &ord, nil
}

// Sections resolves a clause/sub-clause pair and returns the ordinance's
// sections in document order.
func (c *Client) Sections(ctx context.Context, clause, subClause string) ([]Section, error) {
	id, err := c.OrdinanceID(ctx, clause, subClause)
	if err != nil {
		return nil, err
	}
	ord, err := c.Ordinance(ctx, id)
	if err != nil {
		return nil, err
	}
	return ord.OrdinanceSections, nil
}

// getJSON fetches url into v, serving from cache when possible. Responses
// are cached by URL.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	if c.cache != nil {
		if body, ok := c.cache.Get(url); ok {
			return json.Unmarshal(body, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("get %s: status %d: %s", url, resp.StatusCode, string(respBody))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", url, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	if c.cache != nil {
		c.cache.Set(url, body)
	}
	return nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
