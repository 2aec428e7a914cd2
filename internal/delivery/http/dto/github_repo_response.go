package dto

import "devconnect/internal/infrastructure/github"

type GithubRepoResponse struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

func NewGithubRepoListResponse(repos []github.Repo) []GithubRepoResponse {
	out := make([]GithubRepoResponse, 0, len(repos))
	for _, r := range repos {
		out = append(out, GithubRepoResponse{
			Name:            r.Name,
			FullName:        r.FullName,
			HTMLURL:         r.HTMLURL,
			Description:     r.Description,
			StargazersCount: r.StargazersCount,
			WatchersCount:   r.WatchersCount,
			ForksCount:      r.ForksCount,
		})
	}
	return out
}
