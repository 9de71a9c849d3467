package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/astrolabe/pkg/domain"
)

// Observer records global timeline notes for the text generator
type Observer struct {
	store ObservationStore
}

// NewObserver makes an observer
func NewObserver(store ObservationStore) *Observer {
	return &Observer{store: store}
}

// Observe stores the note author and text, notes without text are skipped
func (o *Observer) Observe(ctx context.Context, note domain.Note) error {
	if strings.TrimSpace(note.Text) == "" {
		return nil
	}
	name := note.User.Name
	if name == "" {
		name = note.User.Username
	}
	obs := domain.Observation{UserName: name, InstanceName: note.InstanceName(), Text: note.Text, ObservedAt: time.Now()}
	if err := o.store.Add(ctx, obs); err != nil {
		return fmt.Errorf("observe note %s: %w", note.ID, err)
	}
	return nil
}
