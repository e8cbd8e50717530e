package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/dancanmurithi/portfolio/pkg/cache"
)

const (
	pushEvent            = "PushEvent"
	featuredRepoLimit    = 6
	recentCommitLimit    = 10
	noMessagePlaceholder = "No message"
	activityTTL          = 30 * time.Minute

	// commitDisplayFloor is a deliberate product choice: the stats card
	// always shows at least "100+" contributions, it is not a real count.
	commitDisplayFloor = 100
)

var ErrUsernameRequired = errors.New("github username is required")

// UseCase produces a bounded activity summary for one user. The repository
// fetch is required; the events fetch is best-effort.
type UseCase interface {
	Activity(ctx context.Context, username string) (Summary, error)
}

type service struct {
	fetcher Fetcher
	cache   cache.Store
	now     func() time.Time
}

func NewService(fetcher Fetcher, store cache.Store) UseCase {
	return &service{fetcher: fetcher, cache: store, now: time.Now}
}

func (s *service) Activity(ctx context.Context, username string) (Summary, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return ZeroSummary(), ErrUsernameRequired
	}

	key := "github:" + username
	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, key); ok {
			var cached Summary
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	// Step 1 is fatal to the whole operation.
	repos, err := s.fetcher.UserRepos(ctx, username)
	if err != nil {
		return ZeroSummary(), fmt.Errorf("fetch repositories: %w", err)
	}

	// Step 2 runs only after step 1 succeeded; its failure means "no events".
	events, err := s.fetcher.UserEvents(ctx, username)
	if err != nil {
		log.Printf("github: events fetch for %s failed: %v", username, err)
		events = nil
	}

	summary := derive(repos, events, s.now())

	if s.cache != nil {
		if b, err := json.Marshal(summary); err == nil {
			s.cache.Set(ctx, key, b, activityTTL)
		}
	}
	return summary, nil
}

func derive(repos []RepoRecord, events []EventRecord, now time.Time) Summary {
	summary := ZeroSummary()
	summary.Stats.TotalRepos = len(repos)
	for _, r := range repos {
		// Stars include forked repositories even though the featured list
		// excludes them; the asymmetry is deliberate.
		summary.Stats.TotalStars += r.Stars
	}

	featured := make([]RepoRecord, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			featured = append(featured, r)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].Stars > featured[j].Stars
	})
	if len(featured) > featuredRepoLimit {
		featured = featured[:featuredRepoLimit]
	}
	for _, r := range featured {
		desc := r.Description
		if desc == "" {
			desc = "No description available"
		}
		lang := r.Language
		if lang == "" {
			lang = "Unknown"
		}
		topics := r.Topics
		if topics == nil {
			topics = []string{}
		}
		summary.Repos = append(summary.Repos, Repository{
			Name:        r.Name,
			Description: desc,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Language:    lang,
			URL:         r.HTMLURL,
			Topics:      topics,
		})
	}

	// Take the first 10 push events in API order, then drop placeholder
	// messages. Dropped entries are not replaced by later candidates, so
	// the final list may hold fewer than 10.
	taken := 0
	for _, ev := range events {
		if ev.Type != pushEvent {
			continue
		}
		if taken == recentCommitLimit {
			break
		}
		taken++
		message := noMessagePlaceholder
		sha := ""
		if len(ev.Payload.Commits) > 0 {
			first := ev.Payload.Commits[0]
			sha = first.SHA
			if first.Message != "" {
				message = first.Message
			}
		}
		if message == noMessagePlaceholder {
			continue
		}
		summary.Commits = append(summary.Commits, Commit{
			Message: message,
			Date:    ev.CreatedAt,
			Repo:    ev.Repo.Name,
			URL:     fmt.Sprintf("https://github.com/%s/commit/%s", ev.Repo.Name, sha),
		})
	}

	year := now.Year()
	commitsThisYear := 0
	for _, ev := range events {
		if ev.Type == pushEvent && ev.CreatedAt.Year() == year {
			commitsThisYear += len(ev.Payload.Commits)
		}
	}
	if commitsThisYear < commitDisplayFloor {
		commitsThisYear = commitDisplayFloor
	}
	summary.Stats.TotalCommits = commitsThisYear

	return summary
}
