package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// Client talks to a remote score endpoint. Submissions are form-encoded
// POSTs of name and score; the same URL answers GET with a JSON array of
// [name, score] rows, best first.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client for the endpoint at rawURL. A nil httpClient
// uses http.DefaultClient; timeouts come from the request context.
func NewClient(rawURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("leaderboard: unsupported url scheme %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: u.String(), http: httpClient}, nil
}

// Submit posts a score.
func (c *Client) Submit(ctx context.Context, name string, score int) error {
	form := url.Values{}
	form.Set("name", name)
	form.Set("score", strconv.Itoa(score))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("leaderboard: build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard: submit: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("leaderboard: submit: unexpected status %s", resp.Status)
	}
	return nil
}

// Top fetches the leaderboard and returns at most limit rows.
func (c *Client) Top(ctx context.Context, limit int) ([]core.ScoreEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: build fetch request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("leaderboard: fetch: unexpected status %s", resp.Status)
	}

	entries, err := DecodeRows(resp.Body)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// DecodeRows reads a JSON array of [name, score] rows. Scores may be
// numbers or numeric strings.
func DecodeRows(r io.Reader) ([]core.ScoreEntry, error) {
	var raw [][]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("leaderboard: decode rows: %w", err)
	}

	entries := make([]core.ScoreEntry, 0, len(raw))
	for i, row := range raw {
		if len(row) < 2 {
			return nil, fmt.Errorf("leaderboard: row %d: expected [name, score]", i)
		}
		var e core.ScoreEntry
		if err := json.Unmarshal(row[0], &e.Name); err != nil {
			return nil, fmt.Errorf("leaderboard: row %d name: %w", i, err)
		}
		score, err := decodeScore(row[1])
		if err != nil {
			return nil, fmt.Errorf("leaderboard: row %d score: %w", i, err)
		}
		e.Score = score
		entries = append(entries, e)
	}
	return entries, nil
}

func decodeScore(raw json.RawMessage) (int, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, err
			}
			return int(f), nil
		}
		return int(v), nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// EncodeRows writes entries in the [name, score] row format.
func EncodeRows(w io.Writer, entries []core.ScoreEntry) error {
	rows := make([][2]any, len(entries))
	for i, e := range entries {
		rows[i] = [2]any{e.Name, e.Score}
	}
	return json.NewEncoder(w).Encode(rows)
}
