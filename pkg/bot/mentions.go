package bot

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/domain"
)

// canned replies of mention commands
const (
	msgPong        = "La la la, I can't hear anything~"
	msgHeatInfo    = "You want to know my heat? Probably %d! I think it's %d.\n\n(Probably!)"
	msgHeatReset   = "Done! My heat is reset, now I can chatter as much as I like ♪"
	msgChatTired   = "Sorry, I can't talk right now.\nFeeling a bit down;;"
	msgChatJoke    = "Rabe is only 11, so I don't know~ Sorry!\n\n(This is a 1% joke. Ask again for a real answer.)"
	msgChatFailure = "Hmm, my head is spinning and no answer came out. Try again later!"
)

// MentionHandler runs commands found in notes mentioning the bot.
// Commands are matched as case-insensitive substrings in order: ping, info_bot_heat, reset_bot_heat, test, chat.
type MentionHandler struct {
	botUserID string
	poster    *Poster
	postGate  Gate
	chatGate  Gate
	chat      Asker // nil disables the chat command
	notifier  *Notifier
	jokeRate  float64
	random    func() float64
}

// MentionParams configures MentionHandler
type MentionParams struct {
	BotUserID string
	Poster    *Poster
	PostGate  Gate
	ChatGate  Gate
	Chat      Asker
	Notifier  *Notifier
	JokeRate  float64
}

// NewMentionHandler makes a mention handler
func NewMentionHandler(p MentionParams) *MentionHandler {
	return &MentionHandler{
		botUserID: p.BotUserID,
		poster:    p.Poster,
		postGate:  p.PostGate,
		chatGate:  p.ChatGate,
		chat:      p.Chat,
		notifier:  p.Notifier,
		jokeRate:  p.JokeRate,
		random:    rand.Float64, //nolint:gosec // joke roll
	}
}

// HandleMention dispatches the note to the first matching command, notes without a command are ignored
func (h *MentionHandler) HandleMention(ctx context.Context, note domain.Note) error {
	if h.botUserID != "" && !note.MentionsAccount(h.botUserID) {
		return nil
	}
	text := strings.ToLower(note.Text)
	lgr.Printf("[DEBUG] mention %s from %s", note.ID, note.User.Handle())

	switch {
	case strings.Contains(text, "ping"):
		return h.reply(ctx, "ping", note, msgPong, "pong sent")
	case strings.Contains(text, "info_bot_heat"):
		heat, err := h.postGate.Heat(ctx)
		if err != nil {
			h.notifier.Failure(ctx, "mentions.info_bot_heat", err)
			return err
		}
		return h.reply(ctx, "info_bot_heat", note, fmt.Sprintf(msgHeatInfo, heat, heat), "heat value sent")
	case strings.Contains(text, "reset_bot_heat"):
		if err := h.postGate.Reset(ctx); err != nil {
			h.notifier.Failure(ctx, "mentions.reset_bot_heat", err)
			return err
		}
		return h.reply(ctx, "reset_bot_heat", note, msgHeatReset, "heat reset")
	case strings.Contains(text, "test"):
		lgr.Printf("[INFO] test mention from %s", note.User.Handle())
		h.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditInfo, Source: "mentions.test",
			Message: "test_success", UserID: note.User.ID})
		return nil
	case strings.Contains(text, "chat") && h.chat != nil:
		return h.handleChat(ctx, note)
	}
	return nil
}

var (
	mentionRe = regexp.MustCompile(`@[\w.-]+(@[\w.-]+)?`)
	chatCmdRe = regexp.MustCompile(`(?i)chat`)
)

// chatQuestion drops the first chat command and all mentions from the note text
func chatQuestion(text string) string {
	if loc := chatCmdRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]] + text[loc[1]:]
	}
	return strings.TrimSpace(mentionRe.ReplaceAllString(text, ""))
}

// handleChat answers with the chat gate applied, a rejected or joking reply doesn't raise chat heat
func (h *MentionHandler) handleChat(ctx context.Context, note domain.Note) error {
	ok, err := h.chatGate.CanPost(ctx)
	if err != nil {
		h.notifier.Failure(ctx, "mentions.chat", err)
		return err
	}
	if !ok {
		h.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditError, Source: "mentions.chat",
			Message: "chat heat is over the limit, not answering", UserID: note.User.ID})
		return h.reply(ctx, "chat", note, msgChatTired, "")
	}

	if h.random() < h.jokeRate {
		return h.reply(ctx, "chat", note, msgChatJoke, "")
	}

	question := chatQuestion(note.Text)
	answer, err := h.chat.Ask(ctx, question, note.User.Username)
	if err != nil {
		h.notifier.Failure(ctx, "mentions.chat", err)
		if rerr := h.reply(ctx, "chat", note, msgChatFailure, ""); rerr != nil {
			lgr.Printf("[WARN] can't send chat failure reply to %s: %v", note.ID, rerr)
		}
		return err
	}
	if err := h.chatGate.RecordPost(ctx); err != nil {
		lgr.Printf("[WARN] can't record chat heat: %v", err)
	}

	if err := h.reply(ctx, "chat", note, answer, ""); err != nil {
		return err
	}
	h.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditInfo, Source: "mentions.chat",
		Message: "chat answered", UserID: note.User.ID,
		Metadata: map[string]any{"question": question, "answer": answer}})
	return nil
}

// reply answers the note with its own visibility, auditMsg is recorded on success if not empty
func (h *MentionHandler) reply(ctx context.Context, command string, note domain.Note, text, auditMsg string) error {
	outcome, err := h.poster.Reply(ctx, text, note.Visibility, note.ID)
	if err != nil {
		h.notifier.Failure(ctx, "mentions."+command, err)
		return err
	}
	if outcome == OutcomeRateLimited {
		h.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditWarn, Source: "mentions." + command,
			Message: "reply skipped, post heat is over the limit", UserID: note.User.ID})
		return nil
	}
	if auditMsg != "" {
		h.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditInfo, Source: "mentions." + command,
			Message: auditMsg, UserID: note.User.ID})
	}
	return nil
}
