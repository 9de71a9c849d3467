package misskey

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/astrolabe/pkg/config"
	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/misskey/mocks"
	"github.com/umputun/astrolabe/pkg/repository"
	"github.com/umputun/astrolabe/pkg/retry"
)

func testClient(url string, words WordStore) *Client {
	return NewClient(config.MisskeyConfig{
		URL:           url,
		Token:         "test-token",
		RetryAttempts: 10,
		RetryDelay:    time.Millisecond,
		PageSize:      100,
	}, words)
}

func TestClient_Post(t *testing.T) {
	var got createNoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/create", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"createdNote":{"id":"note1","text":"x"}}`))
	}))
	defer server.Close()

	words := &mocks.WordStoreMock{
		GetStringsFunc: func(ctx context.Context, table domain.Table, key string) ([]string, error) {
			assert.Equal(t, domain.TableNoteText, table)
			assert.Equal(t, domain.KeyForbidden, key)
			return []string{"foo"}, nil
		},
	}

	c := testClient(server.URL, words)
	id, err := c.Post(context.Background(), "foobar", domain.PostOptions{})
	require.NoError(t, err)
	assert.Equal(t, "note1", id)
	assert.Equal(t, "＊＊＊bar", got.Text)
	assert.Equal(t, "public", got.Visibility)
	assert.Len(t, words.GetStringsCalls(), 1)
}

func TestClient_PostOptions(t *testing.T) {
	var raw map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = w.Write([]byte(`{"createdNote":{"id":"dm1"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL, nil)
	id, err := c.Post(context.Background(), "hello admin", domain.PostOptions{
		Visibility:     domain.VisibilitySpecified,
		VisibleUserIDs: []string{"9admin"},
		FileIDs:        []string{"f1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "dm1", id)
	assert.Equal(t, "specified", raw["visibility"])
	assert.Equal(t, []any{"9admin"}, raw["visibleUserIds"])
	assert.Equal(t, []any{"f1"}, raw["fileIds"])
	assert.NotContains(t, raw, "replyId")
}

func TestClient_Reply(t *testing.T) {
	var got createNoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"createdNote":{"id":"r1"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL, nil)
	id, err := c.Reply(context.Background(), "pong", domain.VisibilityHome, "note42")
	require.NoError(t, err)
	assert.Equal(t, "r1", id)
	assert.Equal(t, "note42", got.ReplyID)
	assert.Equal(t, "home", got.Visibility)
}

func TestClient_ForbiddenWordsMissing(t *testing.T) {
	var got createNoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"createdNote":{"id":"n"}}`))
	}))
	defer server.Close()

	words := &mocks.WordStoreMock{
		GetStringsFunc: func(ctx context.Context, table domain.Table, key string) ([]string, error) {
			return nil, fmt.Errorf("note_text/forbidden: %w", repository.ErrNotFound)
		},
	}
	_, err := testClient(server.URL, words).Post(context.Background(), "foobar", domain.PostOptions{})
	require.NoError(t, err)
	assert.Equal(t, "foobar", got.Text)
}

func TestClient_ForbiddenWordsStoreError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	words := &mocks.WordStoreMock{
		GetStringsFunc: func(ctx context.Context, table domain.Table, key string) ([]string, error) {
			return nil, errors.New("db down")
		},
	}
	_, err := testClient(server.URL, words).Post(context.Background(), "text", domain.PostOptions{})
	require.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&calls), "nothing is posted unsanitized")
}

func TestClient_RetryBound(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"internal"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL, nil)
	err := c.Follow(context.Background(), "user1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteServer)
	assert.ErrorIs(t, err, retry.ErrExhausted)
	assert.Equal(t, int32(10), atomic.LoadInt32(&calls))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "following/create", apiErr.Endpoint)
}

func TestClient_RetryThenSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	require.NoError(t, testClient(server.URL, nil).Unfollow(context.Background(), "user1"))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_RejectedNotRetried(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusTooManyRequests} {
		t.Run(strconv.Itoa(code), func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(code)
			}))
			defer server.Close()

			_, err := testClient(server.URL, nil).Post(context.Background(), "hi", domain.PostOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRemoteRejected)
			assert.NotErrorIs(t, err, ErrRemoteServer)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // nothing listens anymore

	start := time.Now()
	err := testClient(url, nil).Follow(context.Background(), "user1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionRefused)
	assert.NotErrorIs(t, err, retry.ErrExhausted, "refused connections are not retried")
	assert.Less(t, time.Since(start), time.Second)
}

// pagedServer serves n relations with ids r<n-1>..r0 (newest first), honoring limit and untilId
func pagedServer(t *testing.T, n int, field string, requests *[]listRequest) *httptest.Server {
	var mu sync.Mutex
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req listRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		*requests = append(*requests, req)
		mu.Unlock()

		start := n - 1
		if req.UntilID != "" {
			idx, err := strconv.Atoi(req.UntilID[1:])
			require.NoError(t, err)
			start = idx - 1
		}
		items := []map[string]any{}
		for i := start; i >= 0 && len(items) < req.Limit; i-- {
			items = append(items, map[string]any{
				"id":  fmt.Sprintf("r%d", i),
				field: map[string]any{"id": fmt.Sprintf("u%d", i), "username": fmt.Sprintf("user%d", i)},
			})
		}
		_ = json.NewEncoder(w).Encode(items)
	}))
}

func TestClient_ListPagination(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		pageSize int
		requests int
	}{
		{name: "partial last page", n: 250, pageSize: 100, requests: 3},
		{name: "single short page", n: 7, pageSize: 100, requests: 1},
		{name: "small pages", n: 10, pageSize: 3, requests: 4},
		{name: "empty list", n: 0, pageSize: 100, requests: 1},
		{name: "exact multiple needs a final empty page", n: 200, pageSize: 100, requests: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests []listRequest
			server := pagedServer(t, tt.n, "follower", &requests)
			defer server.Close()

			c := testClient(server.URL, nil)
			c.pageSize = tt.pageSize
			accounts, err := c.ListFollowers(context.Background(), "9bot")
			require.NoError(t, err)
			assert.Len(t, accounts, tt.n)
			assert.Len(t, requests, tt.requests)

			// cursor of each page is the last relation id of the previous one
			for i, req := range requests {
				assert.Equal(t, "9bot", req.UserID)
				assert.Equal(t, tt.pageSize, req.Limit)
				if i == 0 {
					assert.Empty(t, req.UntilID)
					continue
				}
				assert.Equal(t, fmt.Sprintf("r%d", tt.n-i*tt.pageSize), req.UntilID)
			}

			// no duplicates
			seen := map[string]bool{}
			for _, a := range accounts {
				assert.False(t, seen[a.ID], "duplicate %s", a.ID)
				seen[a.ID] = true
			}
		})
	}
}

func TestClient_ListFollowing(t *testing.T) {
	var requests []listRequest
	server := pagedServer(t, 3, "followee", &requests)
	defer server.Close()

	accounts, err := testClient(server.URL, nil).ListFollowing(context.Background(), "9bot")
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, domain.Account{ID: "u2", Username: "user2"}, accounts[0])
}

func TestClient_ListPageDelay(t *testing.T) {
	var requests []listRequest
	server := pagedServer(t, 5, "follower", &requests)
	defer server.Close()

	c := testClient(server.URL, nil)
	c.pageSize = 2
	c.pageDelay = 20 * time.Millisecond

	start := time.Now()
	_, err := c.ListFollowers(context.Background(), "9bot")
	require.NoError(t, err)
	assert.Len(t, requests, 3)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond, "delay between each pair of pages")
}

func TestClient_ListErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testClient(server.URL, nil).ListFollowers(context.Background(), "9bot")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemoteServer)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_UploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/drive/files/create", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "test-token", r.FormValue("i"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cloud.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

		_, _ = w.Write([]byte(`{"id":"file1","name":"cloud.png"}`))
	}))
	defer server.Close()

	id, err := testClient(server.URL, nil).UploadFile(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "cloud.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "file1", id)
}

func TestClient_UploadFileRetriesWithFullBody(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("file")
		require.NoError(t, err)
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"id":"file2"}`))
	}))
	defer server.Close()

	id, err := testClient(server.URL, nil).UploadFile(context.Background(), []byte("data"), "a.txt", "")
	require.NoError(t, err)
	assert.Equal(t, "file2", id)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_ListEmojis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/emojis", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"emojis":[{"name":"blobcat","aliases":["cat"],"category":"blob"},{"name":"party","aliases":[]}]}`))
	}))
	defer server.Close()

	emojis, err := testClient(server.URL, nil).ListEmojis(context.Background())
	require.NoError(t, err)
	require.Len(t, emojis, 2)
	assert.Equal(t, "blobcat", emojis[0].Name)
	assert.Equal(t, []string{"cat"}, emojis[0].Aliases)
	assert.Equal(t, "blob", emojis[0].Category)
}

func TestClient_ContextCanceledDuringRetry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := testClient(server.URL, nil)
	c.policy.Delay = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Follow(ctx, "user1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAPIError(t *testing.T) {
	err := &APIError{Endpoint: "notes/create", StatusCode: 503, Body: "busy"}
	assert.Equal(t, "notes/create: status 503: busy", err.Error())
	assert.ErrorIs(t, err, ErrRemoteServer)
	assert.True(t, isServerError(err))

	err = &APIError{Endpoint: "notes/create", StatusCode: 404}
	assert.ErrorIs(t, err, ErrRemoteRejected)
	assert.False(t, isServerError(err))
}
