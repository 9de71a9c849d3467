// Package reconcile keeps the bot's following set equal to its follower set.
package reconcile

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/domain"
)

//go:generate moq -out mocks/social.go -pkg mocks -skip-ensure -fmt goimports . Social

// Social is the subset of the social client used for follow reconciliation
type Social interface {
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error
	ListFollowers(ctx context.Context, userID string) ([]domain.Account, error)
	ListFollowing(ctx context.Context, userID string) ([]domain.Account, error)
}

// Delta holds accounts to follow back and accounts to drop, computed by account id
type Delta struct {
	ToFollow   []domain.Account
	ToUnfollow []domain.Account
}

// Empty reports whether there is nothing to do
func (d Delta) Empty() bool {
	return len(d.ToFollow) == 0 && len(d.ToUnfollow) == 0
}

// Result summarizes a bulk run
type Result struct {
	Followers  int
	Following  int
	Followed   int
	Unfollowed int
	Failed     []Failure
}

// Failure is a single account operation that failed during a bulk run
type Failure struct {
	Account domain.Account
	Op      string // follow or unfollow
	Err     error
}

// Reconciler issues follow and unfollow calls to converge following to followers
type Reconciler struct {
	social Social
}

// New makes a reconciler
func New(social Social) *Reconciler {
	return &Reconciler{social: social}
}

// Diff computes followers - following and following - followers, preserving input order.
// The two sets are disjoint by construction.
func Diff(followers, following []domain.Account) Delta {
	followerIDs := make(map[string]bool, len(followers))
	for _, a := range followers {
		followerIDs[a.ID] = true
	}
	followingIDs := make(map[string]bool, len(following))
	for _, a := range following {
		followingIDs[a.ID] = true
	}

	var d Delta
	seen := map[string]bool{}
	for _, a := range followers {
		if !followingIDs[a.ID] && !seen[a.ID] {
			d.ToFollow = append(d.ToFollow, a)
			seen[a.ID] = true
		}
	}
	for _, a := range following {
		if !followerIDs[a.ID] && !seen[a.ID] {
			d.ToUnfollow = append(d.ToUnfollow, a)
			seen[a.ID] = true
		}
	}
	return d
}

// ReconcileAdHoc follows the account back unconditionally, used on a new follower event
func (r *Reconciler) ReconcileAdHoc(ctx context.Context, account domain.Account) error {
	if err := r.social.Follow(ctx, account.ID); err != nil {
		return fmt.Errorf("follow back %s: %w", account.Handle(), err)
	}
	lgr.Printf("[INFO] followed back %s (%s)", account.Handle(), account.ID)
	return nil
}

// ReconcileBulk lists followers and following of the bot and converges them.
// A listing failure aborts the run, a failure on a single account is recorded and skipped.
func (r *Reconciler) ReconcileBulk(ctx context.Context, botID string) (Result, error) {
	followers, err := r.social.ListFollowers(ctx, botID)
	if err != nil {
		return Result{}, fmt.Errorf("list followers: %w", err)
	}
	following, err := r.social.ListFollowing(ctx, botID)
	if err != nil {
		return Result{}, fmt.Errorf("list following: %w", err)
	}

	res := Result{Followers: len(followers), Following: len(following)}
	delta := Diff(followers, following)
	lgr.Printf("[INFO] reconcile %s: %d followers, %d following, %d to follow, %d to unfollow",
		botID, len(followers), len(following), len(delta.ToFollow), len(delta.ToUnfollow))

	for _, a := range delta.ToFollow {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if err := r.social.Follow(ctx, a.ID); err != nil {
			lgr.Printf("[WARN] can't follow %s (%s): %v", a.Handle(), a.ID, err)
			res.Failed = append(res.Failed, Failure{Account: a, Op: "follow", Err: err})
			continue
		}
		res.Followed++
	}

	for _, a := range delta.ToUnfollow {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		if err := r.social.Unfollow(ctx, a.ID); err != nil {
			lgr.Printf("[WARN] can't unfollow %s (%s): %v", a.Handle(), a.ID, err)
			res.Failed = append(res.Failed, Failure{Account: a, Op: "unfollow", Err: err})
			continue
		}
		res.Unfollowed++
	}

	return res, nil
}
