// Package misskey is a REST client for the subset of the Misskey API the bot uses.
// Mutating calls are retried on 5xx through retry.Policy, listing calls are paginated and never retried.
package misskey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/config"
	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/retry"
)

//go:generate moq -out mocks/words.go -pkg mocks -skip-ensure -fmt goimports . WordStore

// WordStore provides the forbidden word list
type WordStore interface {
	GetStrings(ctx context.Context, table domain.Table, key string) ([]string, error)
}

// Client talks to the Misskey REST API on behalf of the bot account
type Client struct {
	baseURL   string
	token     string
	http      *http.Client
	policy    retry.Policy
	pageSize  int
	pageDelay time.Duration
	words     WordStore
}

// NewClient makes a client from misskey config, words may be nil to disable masking
func NewClient(cfg config.MisskeyConfig, words WordStore) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &Client{
		baseURL:   strings.TrimSuffix(cfg.URL, "/"),
		token:     cfg.Token,
		http:      &http.Client{Timeout: timeout},
		policy:    retry.Policy{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay, Retryable: isServerError},
		pageSize:  pageSize,
		pageDelay: cfg.PageDelay,
		words:     words,
	}
}

// createNoteRequest is the body of notes/create
type createNoteRequest struct {
	Text           string   `json:"text"`
	Visibility     string   `json:"visibility"`
	VisibleUserIDs []string `json:"visibleUserIds,omitempty"`
	FileIDs        []string `json:"fileIds,omitempty"`
	ReplyID        string   `json:"replyId,omitempty"`
	CW             string   `json:"cw,omitempty"`
	LocalOnly      bool     `json:"localOnly"`
}

type createNoteResponse struct {
	CreatedNote struct {
		ID string `json:"id"`
	} `json:"createdNote"`
}

// Post creates a note and returns its id. Text is masked with the forbidden word list first.
func (c *Client) Post(ctx context.Context, text string, opts domain.PostOptions) (string, error) {
	clean, err := c.sanitize(ctx, text)
	if err != nil {
		return "", err
	}

	visibility := opts.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}
	req := createNoteRequest{
		Text:           clean,
		Visibility:     string(visibility),
		VisibleUserIDs: opts.VisibleUserIDs,
		FileIDs:        opts.FileIDs,
		ReplyID:        opts.ReplyID,
		CW:             opts.CW,
		LocalOnly:      opts.LocalOnly,
	}

	var resp createNoteResponse
	err = c.policy.Do(ctx, func(ctx context.Context) error {
		return c.call(ctx, "notes/create", req, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("create note: %w", err)
	}
	return resp.CreatedNote.ID, nil
}

// Reply posts a reply to the note inReplyTo
func (c *Client) Reply(ctx context.Context, text string, visibility domain.Visibility, inReplyTo string) (string, error) {
	return c.Post(ctx, text, domain.PostOptions{Visibility: visibility, ReplyID: inReplyTo})
}

type userIDRequest struct {
	UserID string `json:"userId"`
}

// Follow follows the user
func (c *Client) Follow(ctx context.Context, userID string) error {
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		return c.call(ctx, "following/create", userIDRequest{UserID: userID}, nil)
	})
	if err != nil {
		return fmt.Errorf("follow %s: %w", userID, err)
	}
	return nil
}

// Unfollow unfollows the user
func (c *Client) Unfollow(ctx context.Context, userID string) error {
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		return c.call(ctx, "following/delete", userIDRequest{UserID: userID}, nil)
	})
	if err != nil {
		return fmt.Errorf("unfollow %s: %w", userID, err)
	}
	return nil
}

type listRequest struct {
	UserID  string `json:"userId"`
	Limit   int    `json:"limit"`
	UntilID string `json:"untilId,omitempty"`
}

// relation is an item of users/followers and users/following responses
type relation struct {
	ID       string         `json:"id"`
	Follower domain.Account `json:"follower"`
	Followee domain.Account `json:"followee"`
}

// ListFollowers returns all accounts following the user
func (c *Client) ListFollowers(ctx context.Context, userID string) ([]domain.Account, error) {
	return c.list(ctx, "users/followers", userID, func(r relation) domain.Account { return r.Follower })
}

// ListFollowing returns all accounts the user follows
func (c *Client) ListFollowing(ctx context.Context, userID string) ([]domain.Account, error) {
	return c.list(ctx, "users/following", userID, func(r relation) domain.Account { return r.Followee })
}

// list walks pages with untilId set to the last relation id of the previous page.
// It stops on an empty page or a page shorter than the page size.
func (c *Client) list(ctx context.Context, endpoint, userID string, pick func(relation) domain.Account) ([]domain.Account, error) {
	var res []domain.Account
	untilID := ""
	for page := 1; ; page++ {
		var items []relation
		req := listRequest{UserID: userID, Limit: c.pageSize, UntilID: untilID}
		if err := c.call(ctx, endpoint, req, &items); err != nil {
			return nil, fmt.Errorf("list %s page %d: %w", endpoint, page, err)
		}
		for _, item := range items {
			res = append(res, pick(item))
		}
		if len(items) == 0 || len(items) < c.pageSize {
			break
		}
		untilID = items[len(items)-1].ID

		if c.pageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pageDelay):
			}
		}
	}
	lgr.Printf("[DEBUG] %s for %s: %d accounts", endpoint, userID, len(res))
	return res, nil
}

type emojisResponse struct {
	Emojis []domain.Emoji `json:"emojis"`
}

// ListEmojis returns custom emojis registered on the server
func (c *Client) ListEmojis(ctx context.Context) ([]domain.Emoji, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/emojis", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("make emojis request: %w", err)
	}
	var resp emojisResponse
	if err := c.do(req, "emojis", &resp); err != nil {
		return nil, fmt.Errorf("list emojis: %w", err)
	}
	return resp.Emojis, nil
}

type uploadResponse struct {
	ID string `json:"id"`
}

// UploadFile stores data in the bot's drive and returns the file id
func (c *Client) UploadFile(ctx context.Context, data []byte, name, mime string) (string, error) {
	body, contentType, err := c.multipartBody(data, name, mime)
	if err != nil {
		return "", fmt.Errorf("make upload body: %w", err)
	}

	var resp uploadResponse
	err = c.policy.Do(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/drive/files/create",
			bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("make upload request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		return c.do(req, "drive/files/create", &resp)
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return resp.ID, nil
}

func (c *Client) multipartBody(data []byte, name, mime string) (body []byte, contentType string, err error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("i", c.token); err != nil {
		return nil, "", err
	}
	if mime == "" {
		mime = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", mime)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

// call posts a JSON body to /api/<endpoint> and decodes the JSON response into out, if not nil
func (c *Client) call(ctx context.Context, endpoint string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("make %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return c.do(req, endpoint, out)
}

// do sends the request and classifies failures into the client's error taxonomy
func (c *Client) do(req *http.Request, endpoint string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %w", ErrConnectionRefused, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: truncate(string(body), 512)}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
