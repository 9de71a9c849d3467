// Package bot implements the bot behaviors: gated posting, mention commands, scheduled jobs,
// global timeline observation and operator notifications.
package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/feed"
	"github.com/umputun/astrolabe/pkg/metrics"
)

//go:generate moq -out mocks/social.go -pkg mocks -skip-ensure -fmt goimports . Social
//go:generate moq -out mocks/gate.go -pkg mocks -skip-ensure -fmt goimports . Gate
//go:generate moq -out mocks/kv.go -pkg mocks -skip-ensure -fmt goimports . KV
//go:generate moq -out mocks/auditor.go -pkg mocks -skip-ensure -fmt goimports . Auditor
//go:generate moq -out mocks/menu.go -pkg mocks -skip-ensure -fmt goimports . Menu
//go:generate moq -out mocks/observation_store.go -pkg mocks -skip-ensure -fmt goimports . ObservationStore
//go:generate moq -out mocks/asker.go -pkg mocks -skip-ensure -fmt goimports . Asker
//go:generate moq -out mocks/feed_reader.go -pkg mocks -skip-ensure -fmt goimports . FeedReader

// Social is the part of the misskey client used to publish
type Social interface {
	Post(ctx context.Context, text string, opts domain.PostOptions) (string, error)
	UploadFile(ctx context.Context, data []byte, name, mime string) (string, error)
	ListEmojis(ctx context.Context) ([]domain.Emoji, error)
}

// Gate is a heat counter with a ceiling
type Gate interface {
	Name() string
	CanPost(ctx context.Context) (bool, error)
	RecordPost(ctx context.Context) error
	Reset(ctx context.Context) error
	Heat(ctx context.Context) (int64, error)
}

// KV is the key-value store access used by jobs
type KV interface {
	GetString(ctx context.Context, table domain.Table, key string) (string, error)
	SetString(ctx context.Context, table domain.Table, key, value string) error
	GetStrings(ctx context.Context, table domain.Table, key string) ([]string, error)
	SetJSON(ctx context.Context, table domain.Table, key string, value any) error
}

// Auditor writes audit log entries
type Auditor interface {
	Write(ctx context.Context, entry domain.AuditEntry) error
}

// Menu provides dinner menu entries
type Menu interface {
	Random(ctx context.Context) (domain.MenuItem, error)
}

// ObservationStore records global timeline notes
type ObservationStore interface {
	Add(ctx context.Context, obs domain.Observation) error
}

// Asker answers chat questions
type Asker interface {
	Ask(ctx context.Context, question, userName string) (string, error)
}

// FeedReader returns the newest item of a feed
type FeedReader interface {
	Latest(ctx context.Context, url string) (feed.Item, error)
}

// Outcome is the result of a post attempt
type Outcome string

// enum of post outcomes, RateLimited is a normal result and never comes with an error
const (
	OutcomePosted      Outcome = "posted"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeFailed      Outcome = "failed"
)

// ErrNoAdmin is returned for direct messages when no admin account is configured
var ErrNoAdmin = errors.New("admin account is not configured")

// Poster publishes notes through the post gate. Every attempt checks the gate first
// and every successful remote post records exactly one post.
type Poster struct {
	social  Social
	gate    Gate
	adminID string
}

// NewPoster makes a poster, adminID is the recipient of direct messages
func NewPoster(social Social, gate Gate, adminID string) *Poster {
	return &Poster{social: social, gate: gate, adminID: adminID}
}

// Note posts a regular note
func (p *Poster) Note(ctx context.Context, text string, visibility domain.Visibility) (Outcome, error) {
	return p.post(ctx, "note", text, domain.PostOptions{Visibility: visibility})
}

// Reply posts a reply to the note replyID with the given visibility
func (p *Poster) Reply(ctx context.Context, text string, visibility domain.Visibility, replyID string) (Outcome, error) {
	return p.post(ctx, "reply", text, domain.PostOptions{Visibility: visibility, ReplyID: replyID})
}

// DirectMessage posts a note visible only to the admin account
func (p *Poster) DirectMessage(ctx context.Context, text string) (Outcome, error) {
	if p.adminID == "" {
		return OutcomeFailed, ErrNoAdmin
	}
	return p.post(ctx, "dm", text, domain.PostOptions{Visibility: domain.VisibilitySpecified,
		VisibleUserIDs: []string{p.adminID}})
}

// NoteWithMedia posts a note with attached drive files
func (p *Poster) NoteWithMedia(ctx context.Context, text string, visibility domain.Visibility, fileIDs []string) (Outcome, error) {
	return p.post(ctx, "media", text, domain.PostOptions{Visibility: visibility, FileIDs: fileIDs})
}

func (p *Poster) post(ctx context.Context, kind, text string, opts domain.PostOptions) (Outcome, error) {
	ok, err := p.gate.CanPost(ctx)
	if err != nil {
		metrics.PostsTotal.WithLabelValues(kind, string(OutcomeFailed)).Inc()
		return OutcomeFailed, fmt.Errorf("check %s gate: %w", p.gate.Name(), err)
	}
	if !ok {
		lgr.Printf("[INFO] %s skipped, %s is over the limit", kind, p.gate.Name())
		metrics.PostsTotal.WithLabelValues(kind, string(OutcomeRateLimited)).Inc()
		return OutcomeRateLimited, nil
	}

	id, err := p.social.Post(ctx, text, opts)
	if err != nil {
		metrics.PostsTotal.WithLabelValues(kind, string(OutcomeFailed)).Inc()
		return OutcomeFailed, fmt.Errorf("post %s: %w", kind, err)
	}
	metrics.PostsTotal.WithLabelValues(kind, string(OutcomePosted)).Inc()
	lgr.Printf("[INFO] posted %s %s", kind, id)

	// the note is out, a counter failure is only logged
	if err := p.gate.RecordPost(ctx); err != nil {
		lgr.Printf("[WARN] can't record post %s: %v", id, err)
	}
	return OutcomePosted, nil
}
