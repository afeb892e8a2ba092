package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"vaultsync/internal/domain"
)

// TokenSource supplies the bearer token for each request, so a token
// change after import/regenerate is picked up without rebuilding the client.
type TokenSource func() (domain.BearerToken, error)

// Client is the HTTP client for the remote API.
type Client struct {
	Base  string
	HTTP  *http.Client
	Token TokenSource
}

// NewClient returns a Client for the given base URL.
func NewClient(base string, httpClient *http.Client, token TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient, Token: token}
}

// FetchActivity returns up to limit activity events, most recent first.
// Failures wrap domain.ErrSnapshotFetch.
func (c *Client) FetchActivity(ctx context.Context, limit int) ([]domain.TimelineEvent, error) {
	u := c.Base + "/v1/activity"
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}
	var events []domain.TimelineEvent
	if err := c.getJSON(ctx, u, &events); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotFetch, err)
	}
	return events, nil
}

// PostRecords uploads locally produced records.
func (c *Client) PostRecords(ctx context.Context, events []domain.TimelineEvent) error {
	return c.post(ctx, c.Base+"/v1/records", events)
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if err := c.authorize(req); err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("api get %s: %s", url, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, url string, in any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if err := c.authorize(req); err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("api post %s: %s", url, resp.Status)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.Token == nil {
		return nil
	}
	token, err := c.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.String())
	return nil
}

// Compile-time assertions against the domain contracts.
var (
	_ domain.ActivityClient = (*Client)(nil)
	_ domain.RecordSink     = (*Client)(nil)
)
