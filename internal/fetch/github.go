package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GitHubBaseURL is the default GitHub REST API endpoint.
const GitHubBaseURL = "https://api.github.com"

// Repo is the exported shape of one repository record. The JSON field names
// double as the CSV header.
type Repo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	URL         string `json:"url"`
	Updated     string `json:"updated"`
}

// CSVHeader implements CSVRecord.
func (Repo) CSVHeader() []string {
	return []string{"name", "description", "language", "stars", "forks", "url", "updated"}
}

// CSVRow implements CSVRecord.
func (r Repo) CSVRow() []string {
	return []string{r.Name, r.Description, r.Language,
		strconv.Itoa(r.Stars), strconv.Itoa(r.Forks), r.URL, r.Updated}
}

// githubRepo is the wire shape of the fields we read from the API.
type githubRepo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stargazers  int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	HTMLURL     string `json:"html_url"`
	UpdatedAt   string `json:"updated_at"`
}

// GitHubRepos fetches up to max public repositories for user, most recently
// updated first.
func GitHubRepos(ctx context.Context, c *Client, user string, max int) ([]Repo, error) {
	if max <= 0 {
		max = 10
	}
	params := url.Values{}
	params.Set("sort", "updated")
	params.Set("per_page", strconv.Itoa(max))

	var raw []githubRepo
	if err := c.Get(ctx, fmt.Sprintf("users/%s/repos", user), params, &raw); err != nil {
		return nil, err
	}

	repos := make([]Repo, 0, len(raw))
	for _, r := range raw {
		repo := Repo{
			Name:        r.Name,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stargazers,
			Forks:       r.Forks,
			URL:         r.HTMLURL,
			Updated:     r.UpdatedAt,
		}
		if repo.Description == "" {
			repo.Description = "No description"
		}
		if repo.Language == "" {
			repo.Language = "Unknown"
		}
		repos = append(repos, repo)
	}
	return repos, nil
}
