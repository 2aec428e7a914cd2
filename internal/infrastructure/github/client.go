// Package github lists a user's public repositories through the GitHub
// REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"

	// The listing is a fixed window: five repositories, oldest first by
	// creation date.
	perPage  = "5"
	sortSpec = "created:asc"
)

var ErrNotFound = errors.New("github user not found")

type Repo struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

type Client interface {
	ListUserRepos(ctx context.Context, username string) ([]Repo, error)
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(baseURL, token string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) ListUserRepos(ctx context.Context, username string) ([]Repo, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil github client")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrNotFound
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("per_page", perPage)
	q.Set("sort", sortSpec)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devconnect-api")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.logger != nil {
			c.logger.Printf("[Github] list repos failed: user=%s status=%d body=%q", username, resp.StatusCode, strings.TrimSpace(string(rb)))
		}
		return nil, fmt.Errorf("github list repos: status=%d", resp.StatusCode)
	}

	var out []Repo
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Client = (*httpClient)(nil)
