// Package feed reads RSS/Atom feeds for the feed posting job
package feed

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// ErrNoItems is returned by Latest for a feed without entries
var ErrNoItems = errors.New("feed has no items")

// Feed is a parsed feed with items in document order
type Feed struct {
	Title string
	Link  string
	Items []Item
}

// Item is a single feed entry with plain text title
type Item struct {
	Title     string
	Link      string
	GUID      string
	Published time.Time
}

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	strip     *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if userAgent == "" {
		userAgent = "astrolabe-bot/1.0"
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		strip:     bluemonday.StrictPolicy(),
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*Feed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &Feed{Title: p.plain(parsed.Title), Link: parsed.Link, Items: make([]Item, 0, len(parsed.Items))}
	for _, it := range parsed.Items {
		item := Item{Title: p.plain(it.Title), Link: strings.TrimSpace(it.Link), GUID: it.GUID}
		if item.GUID == "" {
			item.GUID = item.Link
		}
		if it.PublishedParsed != nil {
			item.Published = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			item.Published = *it.UpdatedParsed
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}

// Latest returns the first item of the feed, which is the newest one for all feeds the bot reads
func (p *Parser) Latest(ctx context.Context, url string) (Item, error) {
	f, err := p.Parse(ctx, url)
	if err != nil {
		return Item{}, err
	}
	if len(f.Items) == 0 {
		return Item{}, fmt.Errorf("%s: %w", url, ErrNoItems)
	}
	return f.Items[0], nil
}

// plain strips markup and entities from titles, posts are plain text
func (p *Parser) plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.strip.Sanitize(s)))
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/rdf+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

var acceptLanguages = []string{"ja,en-US;q=0.8,en;q=0.6", "ja-JP,ja;q=0.9,en;q=0.7", "en-US,en;q=0.9,ja;q=0.8"}
