package bot

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/domain"
)

// Notifier writes audit entries and delivers operator-facing failures to the admin by direct message
type Notifier struct {
	audit  Auditor
	poster *Poster // nil disables direct messages
}

// NewNotifier makes a notifier, poster may be nil
func NewNotifier(audit Auditor, poster *Poster) *Notifier {
	return &Notifier{audit: audit, poster: poster}
}

// Info records an informational audit entry
func (n *Notifier) Info(ctx context.Context, source, message string) {
	n.write(ctx, domain.AuditEntry{Level: domain.AuditInfo, Source: source, Message: message})
}

// Record writes the entry as is
func (n *Notifier) Record(ctx context.Context, entry domain.AuditEntry) {
	n.write(ctx, entry)
}

// Failure records an error entry and sends it to the admin
func (n *Notifier) Failure(ctx context.Context, source string, err error) {
	lgr.Printf("[WARN] %s: %v", source, err)
	n.write(ctx, domain.AuditEntry{Level: domain.AuditError, Source: source, Message: err.Error()})

	if n.poster == nil || n.poster.adminID == "" {
		return
	}
	outcome, dmErr := n.poster.DirectMessage(ctx, fmt.Sprintf("[%s] %v", source, err))
	switch {
	case dmErr != nil:
		lgr.Printf("[WARN] can't notify admin about %s failure: %v", source, dmErr)
	case outcome == OutcomeRateLimited:
		lgr.Printf("[INFO] admin notification about %s skipped, rate limited", source)
	}
}

func (n *Notifier) write(ctx context.Context, entry domain.AuditEntry) {
	if n.audit == nil {
		return
	}
	if err := n.audit.Write(ctx, entry); err != nil {
		lgr.Printf("[WARN] can't write audit entry %s/%s: %v", entry.Source, entry.Level, err)
	}
}
