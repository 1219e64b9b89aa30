package services

import (
	"errors"
	"testing"
	"time"
)

func TestComposeForYouOrdersByRecency(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	now := time.Now()
	old := env.createPostAt(t, author.ID, "old", now.Add(-48*time.Hour))
	mid := env.createPostAt(t, author.ID, "mid", now.Add(-24*time.Hour))
	fresh := env.createPostAt(t, author.ID, "fresh", now.Add(-time.Hour))

	feed, err := env.feed.Compose(nil, StrategyForYou, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	wantOrder := []uint{fresh.ID, mid.ID, old.ID}
	if len(feed.Posts) != len(wantOrder) {
		t.Fatalf("got %d posts, want %d", len(feed.Posts), len(wantOrder))
	}
	for i, want := range wantOrder {
		if feed.Posts[i].ID != want {
			t.Errorf("position %d: post %d, want %d", i, feed.Posts[i].ID, want)
		}
	}
}

func TestComposeForYouHonorsLimit(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	now := time.Now()
	for i := 0; i < 5; i++ {
		env.createPostAt(t, author.ID, "p", now.Add(-time.Duration(i)*time.Hour))
	}

	feed, err := env.feed.Compose(nil, StrategyForYou, 3)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(feed.Posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(feed.Posts))
	}
}

func TestComposeFollowingFiltersToFollowedAuthors(t *testing.T) {
	env := newTestEnv(t)
	viewer := env.createUser(t, "viewer")
	followed := env.createUser(t, "followed")
	stranger := env.createUser(t, "stranger")
	now := time.Now()
	wanted := env.createPostAt(t, followed.ID, "wanted", now.Add(-time.Hour))
	env.createPostAt(t, stranger.ID, "unwanted", now.Add(-time.Minute))

	if _, _, err := env.engagement.ToggleFollow(viewer.ID, followed.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	feed, err := env.feed.Compose(&viewer.ID, StrategyFollowing, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(feed.Posts) != 1 || feed.Posts[0].ID != wanted.ID {
		t.Fatalf("got posts %+v, want only the followed author's post", feed.Posts)
	}
	if feed.NoFollowsYet {
		t.Error("NoFollowsYet set despite a non-empty following set")
	}
}

func TestComposeFollowingEmptySignal(t *testing.T) {
	env := newTestEnv(t)
	viewer := env.createUser(t, "viewer")
	other := env.createUser(t, "other")
	env.createPostAt(t, other.ID, "post", time.Now())

	feed, err := env.feed.Compose(&viewer.ID, StrategyFollowing, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(feed.Posts) != 0 {
		t.Fatalf("got %d posts, want 0", len(feed.Posts))
	}
	if !feed.NoFollowsYet {
		t.Error("NoFollowsYet not signaled")
	}
}

func TestComposeFollowingRequiresViewer(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.feed.Compose(nil, StrategyFollowing, 0); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestComposeTrendingRanksByLikesThenRecency(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	now := time.Now()

	older := env.createPostAt(t, author.ID, "older", now.Add(-6*24*time.Hour))
	newer := env.createPostAt(t, author.ID, "newer", now.Add(-1*24*time.Hour))
	top := env.createPostAt(t, author.ID, "top", now.Add(-3*24*time.Hour))
	stale := env.createPostAt(t, author.ID, "stale", now.Add(-10*24*time.Hour))
	env.createPostAt(t, author.ID, "unliked", now.Add(-time.Hour))

	// Four likes each on the tied pair, five on the winner, many on the
	// post outside the window.
	for i := uint(101); i <= 104; i++ {
		env.likePostAs(t, i, older.ID)
		env.likePostAs(t, i, newer.ID)
	}
	for i := uint(101); i <= 105; i++ {
		env.likePostAs(t, i, top.ID)
	}
	for i := uint(101); i <= 110; i++ {
		env.likePostAs(t, i, stale.ID)
	}

	feed, err := env.feed.Compose(nil, StrategyTrending, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	wantOrder := []uint{top.ID, newer.ID, older.ID}
	if len(feed.Posts) != len(wantOrder) {
		t.Fatalf("got %d posts, want %d (stale and unliked excluded)", len(feed.Posts), len(wantOrder))
	}
	for i, want := range wantOrder {
		if feed.Posts[i].ID != want {
			t.Errorf("position %d: post %d, want %d", i, feed.Posts[i].ID, want)
		}
	}
}

// The documented tie-break: at equal like counts the more recently
// created post ranks first.
func TestComposeTrendingTieBreak(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	now := time.Now()

	p1 := env.createPostAt(t, author.ID, "p1", now.Add(-6*24*time.Hour))
	p2 := env.createPostAt(t, author.ID, "p2", now.Add(-1*24*time.Hour))
	for i := uint(101); i <= 104; i++ {
		env.likePostAs(t, i, p1.ID)
		env.likePostAs(t, i, p2.ID)
	}

	feed, err := env.feed.Compose(nil, StrategyTrending, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(feed.Posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(feed.Posts))
	}
	if feed.Posts[0].ID != p2.ID || feed.Posts[1].ID != p1.ID {
		t.Errorf("got order [%d %d], want [%d %d]", feed.Posts[0].ID, feed.Posts[1].ID, p2.ID, p1.ID)
	}
}

func TestComposeReportsViewerLikeAndSaveState(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	viewer := env.createUser(t, "bob")
	now := time.Now()
	liked := env.createPostAt(t, author.ID, "liked", now.Add(-time.Hour))
	saved := env.createPostAt(t, author.ID, "saved", now.Add(-2*time.Hour))
	env.createPostAt(t, author.ID, "plain", now.Add(-3*time.Hour))

	if _, _, err := env.engagement.ToggleLike(viewer.ID, liked.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := env.engagement.ToggleSave(viewer.ID, saved.ID); err != nil {
		t.Fatalf("save: %v", err)
	}

	feed, err := env.feed.Compose(&viewer.ID, StrategyForYou, 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(feed.LikedPostIDs) != 1 || feed.LikedPostIDs[0] != liked.ID {
		t.Errorf("liked ids = %v, want [%d]", feed.LikedPostIDs, liked.ID)
	}
	if len(feed.SavedPostIDs) != 1 || feed.SavedPostIDs[0] != saved.ID {
		t.Errorf("saved ids = %v, want [%d]", feed.SavedPostIDs, saved.ID)
	}
}

func TestComposeUnknownStrategyFallsBackToForYou(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	env.createPostAt(t, author.ID, "post", time.Now())

	feed, err := env.feed.Compose(nil, "bogus", 0)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if len(feed.Posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(feed.Posts))
	}
}
