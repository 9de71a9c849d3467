package misskey

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/umputun/astrolabe/pkg/domain"
	"github.com/umputun/astrolabe/pkg/repository"
)

// MaskRune replaces every character of a forbidden word
const MaskRune = "＊"

// MaskWords replaces every case-insensitive occurrence of each word with MaskRune repeated to the match length.
// Longer words win over their prefixes.
func MaskWords(text string, words []string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		parts = append(parts, w)
	}
	if len(parts) == 0 {
		return text
	}
	slices.SortStableFunc(parts, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})
	for i, w := range parts {
		parts[i] = regexp.QuoteMeta(w)
	}

	re, err := regexp.Compile("(?i)(?:" + strings.Join(parts, "|") + ")")
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat(MaskRune, utf8.RuneCountInString(m))
	})
}

// sanitize masks forbidden words from the note_text table, a missing list means nothing to mask
func (c *Client) sanitize(ctx context.Context, text string) (string, error) {
	if c.words == nil {
		return text, nil
	}
	words, err := c.words.GetStrings(ctx, domain.TableNoteText, domain.KeyForbidden)
	if errors.Is(err, repository.ErrNotFound) {
		return text, nil
	}
	if err != nil {
		return "", fmt.Errorf("load forbidden words: %w", err)
	}
	return MaskWords(text, words), nil
}
