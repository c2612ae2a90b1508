package extract

import (
	"fmt"
	"strings"

	"github.com/SlyMarbo/rss"
	"github.com/samber/lo"
)

// extractFeed flattens a saved RSS/Atom document into item titles and bodies.
func extractFeed(raw []byte) (string, error) {
	feed, err := rss.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: parse feed: %v", ErrExtractionFailed, err)
	}

	sections := lo.Map(feed.Items, func(item *rss.Item, _ int) string {
		title := strings.TrimSpace(item.Title)
		body := itemText(item)
		if title == "" {
			return body
		}
		if body == "" {
			return title
		}
		return title + "\n\n" + body
	})
	sections = lo.Filter(sections, func(s string, _ int) bool { return s != "" })

	if title := strings.TrimSpace(feed.Title); title != "" {
		sections = append([]string{title}, sections...)
	}

	return strings.Join(sections, "\n\n"), nil
}

// itemText returns the richest available text for an item.
// Content (full body) is preferred over Summary (short excerpt).
func itemText(item *rss.Item) string {
	if c := strings.TrimSpace(item.Content); c != "" {
		return c
	}
	return strings.TrimSpace(item.Summary)
}
