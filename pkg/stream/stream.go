// Package stream subscribes to Misskey streaming channels and routes events to handlers.
// Each channel runs on its own websocket connection and reconnects forever until the context is canceled.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/gorilla/websocket"

	"github.com/umputun/astrolabe/pkg/config"
	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/metrics"
)

//go:generate moq -out mocks/mention_handler.go -pkg mocks -skip-ensure -fmt goimports . MentionHandler
//go:generate moq -out mocks/follow_handler.go -pkg mocks -skip-ensure -fmt goimports . FollowHandler
//go:generate moq -out mocks/note_observer.go -pkg mocks -skip-ensure -fmt goimports . NoteObserver

// ErrParse is returned for inbound messages that can't be decoded, such messages are dropped
var ErrParse = errors.New("can't parse stream message")

// MentionHandler handles notes mentioning the bot
type MentionHandler interface {
	HandleMention(ctx context.Context, note domain.Note) error
}

// FollowHandler handles new followers
type FollowHandler interface {
	ReconcileAdHoc(ctx context.Context, account domain.Account) error
}

// NoteObserver records global timeline notes
type NoteObserver interface {
	Observe(ctx context.Context, note domain.Note) error
}

// Handlers are the routing targets, nil handlers are skipped
type Handlers struct {
	Mentions MentionHandler
	Follows  FollowHandler
	Observer NoteObserver
}

// Dispatcher owns one reconnecting subscription per configured channel
type Dispatcher struct {
	baseURL   string
	token     string
	botUserID string
	cfg       config.StreamConfig
	handlers  Handlers
	dialer    *websocket.Dialer

	// wait blocks for the reconnect delay, returns ctx error on cancellation
	wait func(ctx context.Context, d time.Duration) error

	wg sync.WaitGroup // in-flight event handlers
}

// New makes a dispatcher for the misskey server and bot account from cfg
func New(mcfg config.MisskeyConfig, scfg config.StreamConfig, handlers Handlers) *Dispatcher {
	if scfg.ShortDelay <= 0 {
		scfg.ShortDelay = 5 * time.Second
	}
	if scfg.LongDelay <= 0 {
		scfg.LongDelay = time.Hour
	}
	if scfg.FailureThreshold <= 0 {
		scfg.FailureThreshold = 12
	}
	if scfg.PingInterval <= 0 {
		scfg.PingInterval = 30 * time.Second
	}
	if scfg.ReadTimeout <= scfg.PingInterval {
		scfg.ReadTimeout = 3 * scfg.PingInterval
	}
	if len(scfg.Channels) == 0 {
		scfg.Channels = []string{config.ChannelHybridTimeline, config.ChannelMain, config.ChannelGlobalTimeline}
	}
	return &Dispatcher{
		baseURL:   mcfg.URL,
		token:     mcfg.Token,
		botUserID: mcfg.BotUserID,
		cfg:       scfg,
		handlers:  handlers,
		dialer:    &websocket.Dialer{HandshakeTimeout: 30 * time.Second},
		wait:      sleepCtx,
	}
}

// Run subscribes to all channels and blocks until ctx is canceled and in-flight handlers are done
func (d *Dispatcher) Run(ctx context.Context) error {
	wsURL, err := StreamURL(d.baseURL, d.token)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, ch := range d.cfg.Channels {
		wg.Add(1)
		go func(channel string) {
			defer wg.Done()
			d.subscribe(ctx, wsURL, channel)
		}(ch)
	}
	wg.Wait()
	d.wg.Wait()
	return ctx.Err()
}

// subscribe keeps a channel connected, reconnecting with reconnectDelay after each failure or disconnect
func (d *Dispatcher) subscribe(ctx context.Context, wsURL, channel string) {
	failures := 0
	for {
		handshake, err := d.session(ctx, wsURL, channel)
		if ctx.Err() != nil {
			lgr.Printf("[INFO] stream %s stopped", channel)
			return
		}
		if handshake {
			failures = 0
		}
		failures++
		delay := reconnectDelay(failures, d.cfg.ShortDelay, d.cfg.LongDelay, d.cfg.FailureThreshold)
		lgr.Printf("[WARN] stream %s disconnected (failure #%d): %v, reconnect in %s", channel, failures, err, delay)
		metrics.StreamReconnects.WithLabelValues(channel).Inc()
		if err := d.wait(ctx, delay); err != nil {
			lgr.Printf("[INFO] stream %s stopped", channel)
			return
		}
	}
}

// reconnectDelay returns short for failures up to threshold and long past it
func reconnectDelay(failures int, short, long time.Duration, threshold int) time.Duration {
	if failures > threshold {
		return long
	}
	return short
}

// session dials, sends the connect message and reads until the connection drops.
// handshake is true if the subscription was established.
func (d *Dispatcher) session(ctx context.Context, wsURL, channel string) (handshake bool, err error) {
	conn, resp, err := d.dialer.DialContext(ctx, wsURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(connectMessage(channel)); err != nil {
		return false, fmt.Errorf("send connect for %s: %w", channel, err)
	}
	lgr.Printf("[INFO] stream %s connected", channel)
	metrics.StreamConnected.WithLabelValues(channel).Set(1)
	defer metrics.StreamConnected.WithLabelValues(channel).Set(0)

	// a silent peer is detected by the read deadline, pongs and messages extend it
	extend := func() error { return conn.SetReadDeadline(time.Now().Add(d.cfg.ReadTimeout)) }
	if err := extend(); err != nil {
		return true, fmt.Errorf("set read deadline: %w", err)
	}
	conn.SetPongHandler(func(string) error { return extend() })

	// ping the server and unblock ReadMessage on shutdown
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(d.cfg.PingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
					lgr.Printf("[DEBUG] stream %s ping failed: %v", channel, err)
				}
			case <-ctx.Done():
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
				_ = conn.Close()
				return
			case <-done:
				return
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return true, fmt.Errorf("read: %w", err)
		}
		if err := extend(); err != nil {
			return true, fmt.Errorf("set read deadline: %w", err)
		}
		evt, err := parseMessage(data)
		if err != nil {
			lgr.Printf("[WARN] stream %s: %v", channel, err)
			metrics.StreamParseErrors.WithLabelValues(channel).Inc()
			continue
		}
		if evt == nil { // not a channel event
			continue
		}
		metrics.StreamEvents.WithLabelValues(channel, evt.Type).Inc()
		d.route(ctx, channel, *evt)
	}
}

type connect struct {
	Type string      `json:"type"`
	Body connectBody `json:"body"`
}

type connectBody struct {
	Channel string         `json:"channel"`
	ID      string         `json:"id"`
	Params  map[string]any `json:"params"`
}

func connectMessage(channel string) connect {
	return connect{Type: "connect", Body: connectBody{Channel: channel, ID: channel, Params: map[string]any{}}}
}

// envelope is the outer frame of every streaming message
type envelope struct {
	Type string          `json:"type"`
	Body json.RawMessage `json:"body"`
}

// Event is a channel event, Body is decoded by the router based on Type
type Event struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Body json.RawMessage `json:"body"`
}

// parseMessage decodes a frame, returns nil event for non-channel frames
func parseMessage(data []byte) (*Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if env.Type != "channel" {
		return nil, nil
	}
	var evt Event
	if err := json.Unmarshal(env.Body, &evt); err != nil {
		return nil, fmt.Errorf("%w: channel body: %w", ErrParse, err)
	}
	return &evt, nil
}

// route sends the event to its handler asynchronously, events of other types are ignored
func (d *Dispatcher) route(ctx context.Context, channel string, evt Event) {
	switch {
	case evt.Type == "note" && channel == config.ChannelHybridTimeline && d.handlers.Mentions != nil:
		var note domain.Note
		if err := json.Unmarshal(evt.Body, &note); err != nil {
			lgr.Printf("[WARN] stream %s: %v", channel, fmt.Errorf("%w: note: %w", ErrParse, err))
			return
		}
		if !note.MentionsAccount(d.botUserID) {
			return
		}
		d.handle(channel, evt.Type, func() error { return d.handlers.Mentions.HandleMention(ctx, note) })

	case evt.Type == "note" && channel == config.ChannelGlobalTimeline && d.handlers.Observer != nil:
		var note domain.Note
		if err := json.Unmarshal(evt.Body, &note); err != nil {
			lgr.Printf("[WARN] stream %s: %v", channel, fmt.Errorf("%w: note: %w", ErrParse, err))
			return
		}
		d.handle(channel, evt.Type, func() error { return d.handlers.Observer.Observe(ctx, note) })

	case evt.Type == "followed" && channel == config.ChannelMain && d.handlers.Follows != nil:
		var account domain.Account
		if err := json.Unmarshal(evt.Body, &account); err != nil {
			lgr.Printf("[WARN] stream %s: %v", channel, fmt.Errorf("%w: followed user: %w", ErrParse, err))
			return
		}
		if account.ID == "" {
			lgr.Printf("[WARN] stream %s: %v: followed event without user id", channel, ErrParse)
			return
		}
		d.handle(channel, evt.Type, func() error { return d.handlers.Follows.ReconcileAdHoc(ctx, account) })
	}
}

func (d *Dispatcher) handle(channel, eventType string, fn func() error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := fn(); err != nil {
			lgr.Printf("[WARN] stream %s %s handler failed: %v", channel, eventType, err)
		}
	}()
}

// StreamURL converts the server base url into the streaming endpoint, https becomes wss and http becomes ws
func StreamURL(baseURL, token string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("parse server url %q: %w", baseURL, err)
	}
	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	case "http", "ws":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}
	u.Path += "/streaming"
	u.RawQuery = url.Values{"i": {token}}.Encode()
	return u.String(), nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
