package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
)

var errBadLimit = errors.New("limit must be a number between 1 and 1000")

// heatStatus is a single gate in the status response
type heatStatus struct {
	Heat  int64  `json:"heat"`
	Limit *int64 `json:"limit"` // null when unlimited
}

type statusResponse struct {
	Status   string                `json:"status"`
	Version  string                `json:"version"`
	Time     time.Time             `json:"time"`
	Database string                `json:"database"`
	Heat     map[string]heatStatus `json:"heat"`
	NextRuns map[string]time.Time  `json:"next_runs,omitempty"`
}

// statusHandler returns heat counters, next job runs and database health
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := statusResponse{Status: "ok", Version: s.version, Time: time.Now().UTC(), Database: "ok",
		Heat: map[string]heatStatus{}}

	if err := s.store.Ping(ctx); err != nil {
		lgr.Printf("[WARN] database ping failed: %v", err)
		resp.Status, resp.Database = "degraded", err.Error()
	}

	for _, g := range s.gates {
		heat, err := g.Heat(ctx)
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
		limit, err := g.Limit(ctx)
		if err != nil {
			RenderError(w, r, err, http.StatusInternalServerError)
			return
		}
		hs := heatStatus{Heat: heat}
		if limit.Set {
			v := limit.Value
			hs.Limit = &v
		}
		resp.Heat[g.Name()] = hs
	}

	if s.scheduler != nil {
		resp.NextRuns = s.scheduler.NextRuns()
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

type auditItem struct {
	ID        int64          `json:"id"`
	Level     string         `json:"level"`
	Source    string         `json:"source"`
	Message   string         `json:"message"`
	UserID    string         `json:"user_id,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// auditHandler returns the most recent audit entries, ?limit=N with 100 by default
func (s *Server) auditHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 1000 {
			RenderError(w, r, errBadLimit, http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := s.store.ListAudit(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list audit entries: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res := make([]auditItem, 0, len(entries))
	for _, e := range entries {
		res = append(res, auditItem{ID: e.ID, Level: string(e.Level), Source: e.Source, Message: e.Message,
			UserID: e.UserID, Metadata: e.Metadata, CreatedAt: e.CreatedAt})
	}
	RenderJSON(w, r, http.StatusOK, res)
}

type reconcileResponse struct {
	Followers  int      `json:"followers"`
	Following  int      `json:"following"`
	Followed   int      `json:"followed"`
	Unfollowed int      `json:"unfollowed"`
	Failed     []string `json:"failed,omitempty"`
}

// reconcileHandler runs a bulk follow reconciliation now
func (s *Server) reconcileHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.scheduler.Reconcile(r.Context())
	if err != nil {
		lgr.Printf("[WARN] on-demand reconcile failed: %v", err)
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}

	resp := reconcileResponse{Followers: res.Followers, Following: res.Following, Followed: res.Followed,
		Unfollowed: res.Unfollowed}
	for _, f := range res.Failed {
		resp.Failed = append(resp.Failed, f.Op+" "+f.Account.Handle()+": "+f.Err.Error())
	}
	RenderJSON(w, r, http.StatusOK, resp)
}
