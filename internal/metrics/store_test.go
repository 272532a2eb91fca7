package metrics

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "metrics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHashIP(t *testing.T) {
	store := openTestStore(t)

	h1 := store.HashIP("192.168.1.100")
	h2 := store.HashIP("192.168.1.100")
	h3 := store.HashIP("10.0.0.1")

	// Consistent per IP, 16 hex chars, never the raw address.
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 16)
	assert.NotContains(t, h1, "192.168")
}

func TestHashIPSalted(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	// Different processes (different salts) must not produce linkable
	// hashes for the same IP.
	assert.NotEqual(t, a.HashIP("192.168.1.100"), b.HashIP("192.168.1.100"))
}

func TestTrackVisitorAndStats(t *testing.T) {
	store := openTestStore(t)

	store.TrackVisitor("192.168.1.100", "test-agent", "/")
	store.TrackVisitor("192.168.1.100", "test-agent", "/blog")
	store.TrackVisitor("10.0.0.1", "other-agent", "/")

	stats, err := store.GetStats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalVisitors)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 3, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	require.NotEmpty(t, stats.RecentVisitors)
	assert.Len(t, stats.RecentVisitors[0].HashedIP, 16)
}

func TestRecordPostView(t *testing.T) {
	store := openTestStore(t)

	store.RecordPostView("creating-serverless-lambda-go", "Creating a Serverless AWS Lambda Function in Go")
	store.RecordPostView("creating-serverless-lambda-go", "Creating a Serverless AWS Lambda Function in Go")
	store.RecordPostView("stateless-containerized-trivia-api-go", "Building a Stateless, Containerized Trivia API in Go")

	stats, err := store.GetStats()
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalPostViews)
	require.Len(t, stats.TopPosts, 2)
	assert.Equal(t, "creating-serverless-lambda-go", stats.TopPosts[0].Slug)
	assert.Equal(t, 2, stats.TopPosts[0].Views)
}

func TestAdminToken(t *testing.T) {
	store := openTestStore(t)

	assert.Len(t, store.AdminToken(), 64)
	assert.True(t, store.ValidAdminToken(store.AdminToken()))
	assert.False(t, store.ValidAdminToken("forged"))
	assert.False(t, store.ValidAdminToken(""))
}

func TestRecentVisitorsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.TrackVisitor("10.0.0.1", "agent", "/")
	}

	visitors, err := store.RecentVisitors(3)
	require.NoError(t, err)
	assert.Len(t, visitors, 3)
}
