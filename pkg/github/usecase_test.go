package github

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancanmurithi/portfolio/pkg/cache"
)

type fakeFetcher struct {
	repos     []RepoRecord
	reposErr  error
	events    []EventRecord
	eventsErr error

	repoCalls  int
	eventCalls int
}

func (f *fakeFetcher) UserRepos(context.Context, string) ([]RepoRecord, error) {
	f.repoCalls++
	return f.repos, f.reposErr
}

func (f *fakeFetcher) UserEvents(context.Context, string) ([]EventRecord, error) {
	f.eventCalls++
	return f.events, f.eventsErr
}

func pushAt(repo string, created time.Time, commits ...EventCommit) EventRecord {
	ev := EventRecord{Type: pushEvent, CreatedAt: created}
	ev.Repo.Name = repo
	ev.Payload.Commits = commits
	return ev
}

// fixedService builds the aggregator with a pinned clock so year-scoped
// stats are deterministic.
func fixedService(f Fetcher, store cache.Store, now time.Time) UseCase {
	return &service{fetcher: f, cache: store, now: func() time.Time { return now }}
}

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestActivityUsernameRequired(t *testing.T) {
	f := &fakeFetcher{}
	svc := fixedService(f, nil, testNow)

	for _, username := range []string{"", "   "} {
		summary, err := svc.Activity(context.Background(), username)
		assert.ErrorIs(t, err, ErrUsernameRequired)
		assert.Equal(t, ZeroSummary(), summary)
	}
	assert.Zero(t, f.repoCalls, "validation must run before any fetch")
}

func TestActivityRepoFetchIsFatal(t *testing.T) {
	f := &fakeFetcher{reposErr: errors.New("rate limited")}
	svc := fixedService(f, nil, testNow)

	summary, err := svc.Activity(context.Background(), "octocat")
	require.Error(t, err)
	assert.Equal(t, ZeroSummary(), summary)
	assert.NotNil(t, summary.Repos)
	assert.NotNil(t, summary.Commits)
	assert.Zero(t, f.eventCalls, "events are fetched only after repos succeed")
}

func TestActivityEventsFetchIsBestEffort(t *testing.T) {
	f := &fakeFetcher{
		repos:     []RepoRecord{{Name: "a", Stars: 3}},
		eventsErr: errors.New("upstream hiccup"),
	}
	svc := fixedService(f, nil, testNow)

	summary, err := svc.Activity(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, summary.Commits)
	assert.Equal(t, 1, summary.Stats.TotalRepos)
	assert.Equal(t, commitDisplayFloor, summary.Stats.TotalCommits)
}

func TestActivityRepoAggregation(t *testing.T) {
	f := &fakeFetcher{repos: []RepoRecord{
		{Name: "a", Stars: 10, Fork: false},
		{Name: "b", Stars: 50, Fork: true},
		{Name: "c", Stars: 5, Fork: false},
	}}
	svc := fixedService(f, nil, testNow)

	summary, err := svc.Activity(context.Background(), "octocat")
	require.NoError(t, err)

	// Forks count toward the totals but never appear in the featured list.
	assert.Equal(t, 3, summary.Stats.TotalRepos)
	assert.Equal(t, 65, summary.Stats.TotalStars)

	require.Len(t, summary.Repos, 2)
	assert.Equal(t, "a", summary.Repos[0].Name)
	assert.Equal(t, "c", summary.Repos[1].Name)
}

func TestActivityFeaturedLimitAndDefaults(t *testing.T) {
	repos := make([]RepoRecord, 0, 8)
	for i := 0; i < 8; i++ {
		repos = append(repos, RepoRecord{Name: fmt.Sprintf("r%d", i), Stars: i})
	}
	f := &fakeFetcher{repos: repos}
	svc := fixedService(f, nil, testNow)

	summary, err := svc.Activity(context.Background(), "octocat")
	require.NoError(t, err)

	require.Len(t, summary.Repos, featuredRepoLimit)
	assert.Equal(t, "r7", summary.Repos[0].Name)
	for _, r := range summary.Repos {
		assert.Equal(t, "No description available", r.Description)
		assert.Equal(t, "Unknown", r.Language)
		assert.NotNil(t, r.Topics)
	}
}

func TestActivityRecentCommits(t *testing.T) {
	t.Run("placeholder messages are dropped without refill", func(t *testing.T) {
		events := make([]EventRecord, 0, 11)
		for i := 0; i < 11; i++ {
			msg := fmt.Sprintf("commit %d", i)
			if i == 3 {
				msg = "No message"
			}
			events = append(events, pushAt("me/repo", testNow, EventCommit{SHA: fmt.Sprintf("sha%d", i), Message: msg}))
		}
		f := &fakeFetcher{repos: []RepoRecord{{Name: "repo"}}, events: events}
		svc := fixedService(f, nil, testNow)

		summary, err := svc.Activity(context.Background(), "me")
		require.NoError(t, err)

		// Ten events are taken, one is dropped, the eleventh never enters.
		require.Len(t, summary.Commits, 9)
		for _, c := range summary.Commits {
			assert.NotEqual(t, "commit 10", c.Message)
			assert.NotEqual(t, "No message", c.Message)
		}
	})

	t.Run("only the first commit of each push is surfaced", func(t *testing.T) {
		ev := pushAt("me/repo", testNow,
			EventCommit{SHA: "first", Message: "head commit"},
			EventCommit{SHA: "second", Message: "older commit"},
		)
		f := &fakeFetcher{repos: []RepoRecord{{Name: "repo"}}, events: []EventRecord{ev}}
		svc := fixedService(f, nil, testNow)

		summary, err := svc.Activity(context.Background(), "me")
		require.NoError(t, err)

		require.Len(t, summary.Commits, 1)
		assert.Equal(t, "head commit", summary.Commits[0].Message)
		assert.Equal(t, "me/repo", summary.Commits[0].Repo)
		assert.Equal(t, "https://github.com/me/repo/commit/first", summary.Commits[0].URL)
	})

	t.Run("pushes with no commits are dropped", func(t *testing.T) {
		f := &fakeFetcher{
			repos:  []RepoRecord{{Name: "repo"}},
			events: []EventRecord{pushAt("me/repo", testNow)},
		}
		svc := fixedService(f, nil, testNow)

		summary, err := svc.Activity(context.Background(), "me")
		require.NoError(t, err)
		assert.Empty(t, summary.Commits)
	})
}

func TestActivityCommitCount(t *testing.T) {
	t.Run("small counts rest on the display floor", func(t *testing.T) {
		f := &fakeFetcher{
			repos:  []RepoRecord{{Name: "repo"}},
			events: []EventRecord{pushAt("me/repo", testNow, EventCommit{Message: "one"})},
		}
		svc := fixedService(f, nil, testNow)

		summary, err := svc.Activity(context.Background(), "me")
		require.NoError(t, err)
		assert.Equal(t, commitDisplayFloor, summary.Stats.TotalCommits)
	})

	t.Run("large counts pass through", func(t *testing.T) {
		events := make([]EventRecord, 0, 50)
		for i := 0; i < 50; i++ {
			commits := make([]EventCommit, 5)
			for j := range commits {
				commits[j] = EventCommit{Message: "work"}
			}
			events = append(events, pushAt("me/repo", testNow, commits...))
		}
		f := &fakeFetcher{repos: []RepoRecord{{Name: "repo"}}, events: events}
		svc := fixedService(f, nil, testNow)

		summary, err := svc.Activity(context.Background(), "me")
		require.NoError(t, err)
		assert.Equal(t, 250, summary.Stats.TotalCommits)
	})

	t.Run("pushes from earlier years are excluded", func(t *testing.T) {
		lastYear := testNow.AddDate(-1, 0, 0)
		events := []EventRecord{
			pushAt("me/repo", lastYear, EventCommit{Message: "old"}),
			pushAt("me/repo", testNow, EventCommit{Message: "new"}),
		}
		f := &fakeFetcher{repos: []RepoRecord{{Name: "repo"}}, events: events}
		svc := fixedService(f, nil, testNow)

		summary, err := svc.Activity(context.Background(), "me")
		require.NoError(t, err)
		// 1 commit this year, still floored; the old push only shows up in
		// the recent list, not the yearly stat.
		assert.Equal(t, commitDisplayFloor, summary.Stats.TotalCommits)
		assert.Len(t, summary.Commits, 2)
	})
}

func TestActivityCaching(t *testing.T) {
	f := &fakeFetcher{repos: []RepoRecord{{Name: "a", Stars: 1}}}
	svc := fixedService(f, cache.NewMemory(), testNow)

	first, err := svc.Activity(context.Background(), "octocat")
	require.NoError(t, err)
	second, err := svc.Activity(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.repoCalls, "second request must be served from cache")
}
