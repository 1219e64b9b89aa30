package services

import (
	"errors"
	"testing"

	"github.com/lunaroak/driftfeed/backend/internal/models"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	viewer := env.createUser(t, "bob")
	post := env.createPost(t, author.ID, "sunset", "")

	liked, count, err := env.engagement.ToggleLike(viewer.ID, post.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("first toggle: got liked=%v count=%d, want liked=true count=1", liked, count)
	}

	liked, count, err = env.engagement.ToggleLike(viewer.ID, post.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked || count != 0 {
		t.Fatalf("second toggle: got liked=%v count=%d, want liked=false count=0", liked, count)
	}
}

func TestToggleLikeNotifiesAuthorOnce(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	viewer := env.createUser(t, "bob")
	post := env.createPost(t, author.ID, "sunset", "")

	if _, _, err := env.engagement.ToggleLike(viewer.ID, post.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	notifications := env.notificationsFor(t, author.ID)
	if len(notifications) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifications))
	}
	n := notifications[0]
	if n.Type != models.NotificationLike || n.RelatedID != post.ID {
		t.Errorf("got type=%s related=%d, want type=like related=%d", n.Type, n.RelatedID, post.ID)
	}

	// Unlike must not fan out anything further.
	if _, _, err := env.engagement.ToggleLike(viewer.ID, post.ID); err != nil {
		t.Fatalf("untoggle: %v", err)
	}
	if got := env.notificationsFor(t, author.ID); len(got) != 1 {
		t.Fatalf("after unlike: got %d notifications, want 1", len(got))
	}
}

func TestToggleLikeOwnPostDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	post := env.createPost(t, author.ID, "sunset", "")

	liked, count, err := env.engagement.ToggleLike(author.ID, post.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("got liked=%v count=%d, want liked=true count=1", liked, count)
	}
	if got := env.notificationsFor(t, author.ID); len(got) != 0 {
		t.Fatalf("self-like produced %d notifications, want 0", len(got))
	}
}

func TestToggleLikeMissingPost(t *testing.T) {
	env := newTestEnv(t)
	viewer := env.createUser(t, "bob")

	if _, _, err := env.engagement.ToggleLike(viewer.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestToggleFollowRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	follower := env.createUser(t, "bob")
	followed := env.createUser(t, "alice")

	following, count, err := env.engagement.ToggleFollow(follower.ID, followed.ID)
	if err != nil {
		t.Fatalf("follow: %v", err)
	}
	if !following || count != 1 {
		t.Fatalf("follow: got following=%v count=%d, want following=true count=1", following, count)
	}

	notifications := env.notificationsFor(t, followed.ID)
	if len(notifications) != 1 || notifications[0].Type != models.NotificationFollow {
		t.Fatalf("got notifications %+v, want one follow notification", notifications)
	}
	if notifications[0].RelatedID != follower.ID {
		t.Errorf("got related=%d, want follower id %d", notifications[0].RelatedID, follower.ID)
	}

	following, count, err = env.engagement.ToggleFollow(follower.ID, followed.ID)
	if err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if following || count != 0 {
		t.Fatalf("unfollow: got following=%v count=%d, want following=false count=0", following, count)
	}
	// No notification for unfollowing.
	if got := env.notificationsFor(t, followed.ID); len(got) != 1 {
		t.Fatalf("after unfollow: got %d notifications, want 1", len(got))
	}
}

func TestToggleFollowSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "alice")

	if _, _, err := env.engagement.ToggleFollow(user.ID, user.ID); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("got %v, want ErrSelfFollow", err)
	}

	following, err := env.follows.IsFollowing(user.ID, user.ID)
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if following {
		t.Fatal("self-follow edge was created")
	}
	if got := env.notificationsFor(t, user.ID); len(got) != 0 {
		t.Fatalf("self-follow produced %d notifications, want 0", len(got))
	}
}

func TestToggleFollowMissingUser(t *testing.T) {
	env := newTestEnv(t)
	follower := env.createUser(t, "bob")

	if _, _, err := env.engagement.ToggleFollow(follower.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestToggleSaveRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	author := env.createUser(t, "alice")
	viewer := env.createUser(t, "bob")
	post := env.createPost(t, author.ID, "sunset", "")

	saved, err := env.engagement.ToggleSave(viewer.ID, post.ID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !saved {
		t.Fatal("first toggle: got saved=false, want true")
	}

	saved, err = env.engagement.ToggleSave(viewer.ID, post.ID)
	if err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if saved {
		t.Fatal("second toggle: got saved=true, want false")
	}
	// Saves never notify anyone.
	if got := env.notificationsFor(t, author.ID); len(got) != 0 {
		t.Fatalf("save produced %d notifications, want 0", len(got))
	}
}
