package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	reviewApproved         = "APPROVED"
	reviewChangesRequested = "CHANGES_REQUESTED"
	reviewRequired         = "REVIEW_REQUIRED"

	mergeableYes     = "MERGEABLE"
	mergeableNo      = "CONFLICTING"
	mergeableUnknown = "UNKNOWN"

	// maxConcurrentLookups bounds the parallel per-branch API calls
	maxConcurrentLookups = 8
)

// Client implements PRService on top of the GitHub REST API
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

var _ PRService = (*Client)(nil)

// NewClient creates an authenticated client for the repository behind
// remoteURL. A non-empty org replaces the owner parsed from the URL.
func NewClient(ctx context.Context, remoteURL, org string) (*Client, error) {
	token, err := getGitHubToken(ctx)
	if err != nil {
		return nil, err
	}

	repoInfo, err := ParseGitHubRemoteURL(remoteURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	client, err := createGitHubClient(ctx, repoInfo.Hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	owner := repoInfo.Owner
	if org != "" {
		owner = org
	}
	return NewClientFromGitHub(client, owner, repoInfo.Repo), nil
}

// NewClientFromGitHub wraps an existing go-github client
func NewClientFromGitHub(client *github.Client, owner, repo string) *Client {
	return &Client{gh: client, owner: owner, repo: repo}
}

// PrsForBranches looks up every branch in parallel
func (c *Client) PrsForBranches(ctx context.Context, branches []string) ([]Pr, error) {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		prs   []Pr
		errs  []error
		slots = make(chan struct{}, maxConcurrentLookups)
	)

	for _, branch := range branches {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			slots <- struct{}{}
			defer func() { <-slots }()

			pr, err := c.PrForBranch(ctx, name)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if pr != nil {
				prs = append(prs, *pr)
			}
		}(branch)
	}
	wg.Wait()

	if len(errs) > 0 && len(prs) == 0 {
		return nil, errs[0]
	}
	sort.Slice(prs, func(i, j int) bool { return prs[i].Branch < prs[j].Branch })
	return prs, nil
}

// PrForBranch returns the newest pull request whose head is branch
func (c *Client) PrForBranch(ctx context.Context, branch string) (*Pr, error) {
	prs, _, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branch),
		State: "all",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s: %w", branch, err)
	}
	if len(prs) == 0 {
		return nil, nil
	}

	// The list endpoint leaves out mergeability
	detail, _, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, prs[0].GetNumber())
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request #%d: %w", prs[0].GetNumber(), err)
	}

	pr := &Pr{
		Number:    detail.GetNumber(),
		Closed:    detail.GetState() == "closed",
		Merged:    detail.GetMerged(),
		Title:     detail.GetTitle(),
		Branch:    detail.GetHead().GetRef(),
		URL:       detail.GetHTMLURL(),
		Mergeable: mergeableState(detail),
	}
	if pr.Branch == "" {
		pr.Branch = branch
	}

	pr.ReviewDecision, err = c.reviewDecision(ctx, detail)
	if err != nil {
		return nil, err
	}

	if sha := detail.GetHead().GetSHA(); sha != "" {
		status, _, err := c.gh.Repositories.GetCombinedStatus(ctx, c.owner, c.repo, sha, nil)
		if err == nil {
			pr.CIStatus = status.GetState()
		}
	}
	return pr, nil
}

func mergeableState(pr *github.PullRequest) string {
	if pr.Mergeable == nil {
		return mergeableUnknown
	}
	if pr.GetMergeable() {
		return mergeableYes
	}
	return mergeableNo
}

// reviewDecision folds the latest review of every reviewer into one decision
func (c *Client) reviewDecision(ctx context.Context, pr *github.PullRequest) (string, error) {
	reviews, _, err := c.gh.PullRequests.ListReviews(ctx, c.owner, c.repo, pr.GetNumber(), &github.ListOptions{PerPage: 100})
	if err != nil {
		return "", fmt.Errorf("failed to list reviews for #%d: %w", pr.GetNumber(), err)
	}

	latest := map[string]string{}
	for _, review := range reviews {
		state := strings.ToUpper(review.GetState())
		if state != reviewApproved && state != reviewChangesRequested {
			continue
		}
		latest[review.GetUser().GetLogin()] = state
	}

	approved := false
	for _, state := range latest {
		if state == reviewChangesRequested {
			return reviewChangesRequested, nil
		}
		approved = true
	}
	if approved {
		return reviewApproved, nil
	}
	if len(pr.RequestedReviewers) > 0 || len(pr.RequestedTeams) > 0 {
		return reviewRequired, nil
	}
	return "", nil
}

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "github.com" {
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// getGitHubToken gets GitHub token from environment or gh CLI
func getGitHubToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	output, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// ParseGitHubRemoteURL parses a git remote URL and extracts hostname, owner, and repo
// Supports both github.com and GitHub Enterprise URLs
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - https://github.company.com/owner/repo.git
//   - git@github.company.com:owner/repo.git
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	var hostname, owner, repo string

	if strings.Contains(remoteURL, "@") {
		parts := strings.SplitN(remoteURL, "@", 2)
		hostAndPath := parts[1]

		var path string
		if strings.Contains(hostAndPath, ":") {
			// Format: git@hostname:owner/repo
			hostPathParts := strings.SplitN(hostAndPath, ":", 2)
			hostname = hostPathParts[0]
			path = hostPathParts[1]
		} else {
			// Format: git@hostname/owner/repo (less common)
			pathParts := strings.SplitN(hostAndPath, "/", 2)
			if len(pathParts) < 2 {
				return nil, fmt.Errorf("invalid SSH remote URL: missing path")
			}
			hostname = pathParts[0]
			path = pathParts[1]
		}

		pathParts := strings.Split(path, "/")
		if len(pathParts) < 2 {
			return nil, fmt.Errorf("invalid SSH remote URL: path must be owner/repo")
		}
		owner = pathParts[0]
		repo = pathParts[len(pathParts)-1]
	} else {
		remoteURL = strings.TrimPrefix(remoteURL, "https://")
		remoteURL = strings.TrimPrefix(remoteURL, "http://")

		parts := strings.Split(remoteURL, "/")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid HTTPS remote URL: must be protocol://hostname/owner/repo")
		}

		hostname = parts[0]
		owner = parts[len(parts)-2]
		repo = parts[len(parts)-1]
	}

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}
