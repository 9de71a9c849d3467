package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/astrolabe/pkg/config"
	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/repository"
)

// dinnerFull is the memorandum marker of a skipped dinner, same value older versions stored
const dinnerFull = "満腹"

// maxNoteLength is the longest announcement part the emoji job posts
const maxNoteLength = 3000

const (
	msgDinnerFull     = "Oops... I ate too many snacks.\n\nI'm full tonight ><"
	msgDinnerMenu     = "%s\n\nTonight's menu is here!\n『%s』"
	msgBreakfast      = "Hmm... I'm getting hungry.\nOh right! Let's warm up yesterday's 『%s』 ^^"
	msgEmojiHeader    = "New emojis were added!"
	msgEmojiLine      = ":%s: registered as 「%s」"
	msgRemoteImageDef = "Here is a fresh picture from the global timeline!"
)

// ErrEmptyPool is returned when a note_text pool has no entries
var ErrEmptyPool = errors.New("text pool is empty")

// Jobs implements scheduled posting jobs
type Jobs struct {
	poster   *Poster
	kv       KV
	menu     Menu
	social   Social
	feeds    FeedReader
	notifier *Notifier
	client   *http.Client

	random func() float64
	intn   func(n int) int
	now    func() time.Time
}

// JobsParams configures Jobs
type JobsParams struct {
	Poster     *Poster
	KV         KV
	Menu       Menu
	Social     Social
	Feeds      FeedReader
	Notifier   *Notifier
	HTTPClient *http.Client
}

// NewJobs makes jobs runner
func NewJobs(p JobsParams) *Jobs {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Jobs{
		poster:   p.Poster,
		kv:       p.KV,
		menu:     p.Menu,
		social:   p.Social,
		feeds:    p.Feeds,
		notifier: p.Notifier,
		client:   client,
		random:   rand.Float64, //nolint:gosec // not security related
		intn:     rand.Intn,    //nolint:gosec // not security related
		now:      time.Now,
	}
}

// Run executes the job by its kind. Failures are reported to the admin and returned.
func (j *Jobs) Run(ctx context.Context, job config.JobConfig) error {
	var err error
	switch job.Kind {
	case config.JobText:
		err = j.Text(ctx, job)
	case config.JobFeed:
		err = j.Feed(ctx, job)
	case config.JobDinner:
		err = j.Dinner(ctx, job)
	case config.JobBreakfast:
		err = j.Breakfast(ctx, job)
	case config.JobEmoji:
		err = j.Emoji(ctx, job)
	case config.JobRemoteText:
		err = j.RemoteText(ctx, job)
	case config.JobRemoteImage:
		err = j.RemoteImage(ctx, job)
	default:
		err = fmt.Errorf("unknown job kind %q", job.Kind)
	}
	if err != nil {
		j.notifier.Failure(ctx, "jobs."+job.Name, err)
		return err
	}
	return nil
}

// Text posts a random entry of the note_text pool
func (j *Jobs) Text(ctx context.Context, job config.JobConfig) error {
	text, err := j.pick(ctx, job.Pool)
	if err != nil {
		return err
	}
	return j.note(ctx, job, applyTemplate(job.Template, text))
}

// Feed posts the newest feed item unless its link equals the one remembered for the feed url
func (j *Jobs) Feed(ctx context.Context, job config.JobConfig) error {
	item, err := j.feeds.Latest(ctx, job.URL)
	if err != nil {
		return fmt.Errorf("read feed %s: %w", job.URL, err)
	}
	if item.Link == "" {
		return fmt.Errorf("feed %s: newest item has no link", job.URL)
	}

	last, err := j.kv.GetString(ctx, domain.TableMemorandum, job.URL)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if last == item.Link {
		j.notifier.Info(ctx, "jobs."+job.Name, fmt.Sprintf("feed %s not updated since last run", job.URL))
		return nil
	}

	text := item.Title + "\n" + item.Link
	if job.Pool != "" {
		comment, err := j.pick(ctx, job.Pool)
		if err != nil {
			return err
		}
		text = comment + "\n\n" + text
	}
	// the link is remembered only once the post is delivered or skipped by the gate
	if err := j.note(ctx, job, text); err != nil {
		return err
	}
	return j.kv.SetString(ctx, domain.TableMemorandum, job.URL, item.Link)
}

// Dinner posts a random menu entry and remembers it for breakfast, or with 10% chance skips dinner
func (j *Jobs) Dinner(ctx context.Context, job config.JobConfig) error {
	item, err := j.menu.Random(ctx)
	if err != nil {
		return fmt.Errorf("pick dinner: %w", err)
	}

	if j.random() < 0.1 {
		if err := j.kv.SetString(ctx, domain.TableMemorandum, domain.KeyDinner, dinnerFull); err != nil {
			return err
		}
		return j.note(ctx, job, msgDinnerFull)
	}

	pool := job.Pool
	if pool == "" {
		pool = "dinner_text"
	}
	comment, err := j.pick(ctx, pool)
	if err != nil {
		return err
	}
	if err := j.kv.SetString(ctx, domain.TableMemorandum, domain.KeyDinner, item.Name); err != nil {
		return err
	}
	return j.note(ctx, job, fmt.Sprintf(msgDinnerMenu, comment, item.Name))
}

// Breakfast re-posts yesterday's dinner, nothing if there was none
func (j *Jobs) Breakfast(ctx context.Context, job config.JobConfig) error {
	dinner, err := j.kv.GetString(ctx, domain.TableMemorandum, domain.KeyDinner)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if dinner == "" || dinner == dinnerFull {
		j.notifier.Info(ctx, "jobs."+job.Name, "no breakfast today")
		return nil
	}
	return j.note(ctx, job, fmt.Sprintf(msgBreakfast, dinner))
}

// Emoji announces custom emojis added since the previous run. The first run only stores the list.
func (j *Jobs) Emoji(ctx context.Context, job config.JobConfig) error {
	emojis, err := j.social.ListEmojis(ctx)
	if err != nil {
		return fmt.Errorf("list emojis: %w", err)
	}
	names := make([]string, 0, len(emojis))
	for _, e := range emojis {
		names = append(names, e.Name)
	}

	prev, err := j.kv.GetStrings(ctx, domain.TableMemorandum, domain.KeyEmojiList)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			j.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditWarn, Source: "jobs." + job.Name,
				Message: fmt.Sprintf("stored emoji list unreadable, re-initialized: %v", err)})
		}
		if err := j.kv.SetJSON(ctx, domain.TableMemorandum, domain.KeyEmojiList, names); err != nil {
			return err
		}
		j.notifier.Info(ctx, "jobs."+job.Name, fmt.Sprintf("initial emoji list saved, %d emojis", len(names)))
		return nil
	}

	added := newNames(prev, names)
	if len(added) == 0 {
		j.notifier.Info(ctx, "jobs."+job.Name, "no new emojis")
		return j.kv.SetJSON(ctx, domain.TableMemorandum, domain.KeyEmojiList, names)
	}

	lines := []string{msgEmojiHeader}
	for _, name := range added {
		lines = append(lines, fmt.Sprintf(msgEmojiLine, name, name))
	}
	parts := splitLines(lines, maxNoteLength)
	for i, part := range parts {
		if len(parts) > 1 {
			part = fmt.Sprintf("%s\n(%d/%d)", part, i+1, len(parts))
		}
		if err := j.note(ctx, job, part); err != nil {
			return err
		}
	}
	if err := j.kv.SetJSON(ctx, domain.TableMemorandum, domain.KeyEmojiList, names); err != nil {
		return err
	}
	j.notifier.Info(ctx, "jobs."+job.Name, fmt.Sprintf("%d new emojis announced", len(added)))
	return nil
}

// newNames returns names of curr absent in prev, in curr order
func newNames(prev, curr []string) []string {
	known := make(map[string]bool, len(prev))
	for _, n := range prev {
		known[n] = true
	}
	var res []string
	for _, n := range curr {
		if !known[n] {
			res = append(res, n)
			known[n] = true
		}
	}
	return res
}

// splitLines joins lines with newlines into parts of at most limit characters.
// A single line longer than limit becomes its own part.
func splitLines(lines []string, limit int) []string {
	var parts []string
	var current strings.Builder
	currentLen := 0
	for _, line := range lines {
		lineLen := utf8.RuneCountInString(line)
		if currentLen > 0 && currentLen+lineLen+1 > limit {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteString("\n")
			currentLen++
		}
		current.WriteString(line)
		currentLen += lineLen
	}
	if currentLen > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

type remoteText struct {
	Text string `json:"text"`
}

// RemoteText posts the text returned by a generator service as {"text": "..."}
func (j *Jobs) RemoteText(ctx context.Context, job config.JobConfig) error {
	body, _, err := j.fetch(ctx, job.URL)
	if err != nil {
		return err
	}
	var resp remoteText
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode %s response: %w", job.URL, err)
	}
	if strings.TrimSpace(resp.Text) == "" {
		return fmt.Errorf("no text in %s response", job.URL)
	}
	return j.note(ctx, job, applyTemplate(job.Template, resp.Text))
}

// RemoteImage uploads the image returned by a generator service and posts it with the template text
func (j *Jobs) RemoteImage(ctx context.Context, job config.JobConfig) error {
	data, contentType, err := j.fetch(ctx, job.URL)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("no image data in %s response", job.URL)
	}
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		contentType = "image/png"
	}

	name := fmt.Sprintf("%s_%s%s", job.Name, j.now().UTC().Format("20060102T150405"), imageExt(contentType))
	fileID, err := j.social.UploadFile(ctx, data, name, contentType)
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}

	text := job.Template
	if text == "" {
		text = msgRemoteImageDef
	}
	outcome, err := j.poster.NoteWithMedia(ctx, text, visibility(job), []string{fileID})
	if err != nil {
		return err
	}
	j.logOutcome(ctx, job, outcome)
	return nil
}

func imageExt(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// fetch GETs url and returns the body with its media type
func (j *Jobs) fetch(ctx context.Context, url string) (body []byte, contentType string, err error) {
	if url == "" {
		return nil, "", errors.New("job url is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, "", fmt.Errorf("make request: %w", err)
	}
	resp, err := j.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("get %s: unexpected status code: %d", url, resp.StatusCode)
	}
	body, err = io.ReadAll(io.LimitReader(resp.Body, 20*1024*1024))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", url, err)
	}
	contentType, _, _ = strings.Cut(resp.Header.Get("Content-Type"), ";")
	return body, strings.TrimSpace(contentType), nil
}

// pick returns a random entry of the note_text pool
func (j *Jobs) pick(ctx context.Context, pool string) (string, error) {
	if pool == "" {
		return "", errors.New("text pool is not configured")
	}
	items, err := j.kv.GetStrings(ctx, domain.TableNoteText, pool)
	if err != nil {
		return "", fmt.Errorf("load pool %s: %w", pool, err)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("%s: %w", pool, ErrEmptyPool)
	}
	return items[j.intn(len(items))], nil
}

func (j *Jobs) note(ctx context.Context, job config.JobConfig, text string) error {
	outcome, err := j.poster.Note(ctx, text, visibility(job))
	if err != nil {
		return err
	}
	j.logOutcome(ctx, job, outcome)
	return nil
}

func (j *Jobs) logOutcome(ctx context.Context, job config.JobConfig, outcome Outcome) {
	if outcome == OutcomeRateLimited {
		j.notifier.Record(ctx, domain.AuditEntry{Level: domain.AuditWarn, Source: "jobs." + job.Name,
			Message: "post skipped, heat is over the limit"})
		return
	}
	lgr.Printf("[INFO] job %s posted", job.Name)
	j.notifier.Info(ctx, "jobs."+job.Name, "posted")
}

func visibility(job config.JobConfig) domain.Visibility {
	if job.Visibility == "" {
		return domain.VisibilityPublic
	}
	return domain.Visibility(job.Visibility)
}

// applyTemplate substitutes the first %s of tmpl with text, empty tmpl returns text
func applyTemplate(tmpl, text string) string {
	if tmpl == "" {
		return text
	}
	if !strings.Contains(tmpl, "%s") {
		return tmpl + "\n" + text
	}
	return strings.Replace(tmpl, "%s", text, 1)
}
