package photos

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/dtroode/gourmet-server/internal/model"
)

const screenshot = "screenshot"

// IsScreenshot reports whether the filename names a screenshot.
// A Caser is stateful, so each call folds with its own.
func IsScreenshot(filename string) bool {
	return strings.Contains(cases.Fold().String(filename), screenshot)
}

// Accept applies the filter predicate to an item. It returns the capture time
// in UTC truncated to whole seconds.
func Accept(item model.MediaItem) (time.Time, bool) {
	if IsScreenshot(item.Filename) {
		return time.Time{}, false
	}
	if item.CreationTime == "" {
		return time.Time{}, false
	}
	shotAt, err := time.Parse(time.RFC3339, item.CreationTime)
	if err != nil {
		return time.Time{}, false
	}
	return shotAt.UTC().Truncate(time.Second), true
}

// Filter keeps the items accepted by Accept, preserving order.
func Filter(items []model.MediaItem) []model.Candidate {
	out := make([]model.Candidate, 0, len(items))
	for _, it := range items {
		if shotAt, ok := Accept(it); ok {
			out = append(out, model.Candidate{Item: it, ShotAt: shotAt})
		}
	}
	return out
}
