package github

import (
	"context"
	"time"
)

// Raw API records, trimmed to the fields the aggregator reads.

type RepoRecord struct {
	Name        string   `json:"name"`
	FullName    string   `json:"full_name"`
	Description string   `json:"description"`
	Fork        bool     `json:"fork"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Language    string   `json:"language"`
	HTMLURL     string   `json:"html_url"`
	Topics      []string `json:"topics"`
}

type EventCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

type EventRecord struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
	} `json:"repo"`
	Payload struct {
		Commits []EventCommit `json:"commits"`
	} `json:"payload"`
}

// Derived summary shapes returned to the frontend.

type Repository struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stars       int      `json:"stars"`
	Forks       int      `json:"forks"`
	Language    string   `json:"language"`
	URL         string   `json:"url"`
	Topics      []string `json:"topics"`
}

type Commit struct {
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Repo    string    `json:"repo"`
	URL     string    `json:"url"`
}

type Stats struct {
	TotalRepos   int `json:"totalRepos"`
	TotalStars   int `json:"totalStars"`
	TotalCommits int `json:"totalCommits"`
}

// Summary is the fixed-shape aggregation result. Repos and Commits are
// always non-nil so the payload never carries nulls.
type Summary struct {
	Repos   []Repository `json:"repos"`
	Commits []Commit     `json:"commits"`
	Stats   Stats        `json:"stats"`
}

// ZeroSummary is the shape returned alongside an error indicator when the
// required repository fetch fails.
func ZeroSummary() Summary {
	return Summary{Repos: []Repository{}, Commits: []Commit{}}
}

// Fetcher is the port to the GitHub REST API. Both calls are bounded to 100
// records; pagination is intentionally not followed.
type Fetcher interface {
	UserRepos(ctx context.Context, username string) ([]RepoRecord, error)
	UserEvents(ctx context.Context, username string) ([]EventRecord, error)
}
