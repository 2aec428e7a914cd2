package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"devconnect/internal/infrastructure/cache"
	"devconnect/internal/infrastructure/github"
)

// ErrNoGithubProfile is the uniform outcome for every listing failure:
// unknown user, network error, rate limiting.
var ErrNoGithubProfile = errors.New("no github profile")

const (
	githubCacheKeyPrefix = "github:repos:"
	githubCacheTTL       = 5 * time.Minute
)

type GithubUsecase interface {
	ListRepos(ctx context.Context, username string) ([]github.Repo, error)
}

type Github struct {
	client github.Client
	cache  *cache.Redis
	logger *log.Logger
}

func NewGithubUsecase(client github.Client, c *cache.Redis, logger *log.Logger) *Github {
	if logger == nil {
		logger = log.Default()
	}
	return &Github{client: client, cache: c, logger: logger}
}

func (g *Github) ListRepos(ctx context.Context, username string) ([]github.Repo, error) {
	username = strings.TrimSpace(username)
	if username == "" || g.client == nil {
		return nil, ErrNoGithubProfile
	}

	key := githubCacheKeyPrefix + strings.ToLower(username)

	var cached []github.Repo
	if ok, err := g.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	repos, err := g.client.ListUserRepos(ctx, username)
	if err != nil {
		if !errors.Is(err, github.ErrNotFound) {
			g.logger.Printf("[Github] list repos: user=%s err=%v", username, err)
		}
		return nil, ErrNoGithubProfile
	}

	_ = g.cache.SetJSON(ctx, key, repos, githubCacheTTL)
	return repos, nil
}

var _ GithubUsecase = (*Github)(nil)
