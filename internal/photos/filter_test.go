package photos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/gourmet-server/internal/model"
)

func TestIsScreenshot(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"IMG_Screenshot_1.jpg", true},
		{"screenshot.png", true},
		{"SCREENSHOT_2024.HEIC", true},
		{"my-ScreenShot", true},
		{"IMG_0001.jpg", false},
		{"screen_shot.jpg", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, IsScreenshot(tt.filename))
		})
	}
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name   string
		item   model.MediaItem
		wantOK bool
		want   time.Time
	}{
		{
			name:   "regular photo",
			item:   model.MediaItem{Filename: "IMG_1.jpg", CreationTime: "2024-01-01T12:00:00Z"},
			wantOK: true,
			want:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "fractional seconds and offset",
			item:   model.MediaItem{Filename: "IMG_2.jpg", CreationTime: "2024-01-01T21:00:00.750+09:00"},
			wantOK: true,
			want:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "screenshot",
			item: model.MediaItem{Filename: "IMG_Screenshot_1.jpg", CreationTime: "2024-01-01T12:00:00Z"},
		},
		{
			name: "missing creation time",
			item: model.MediaItem{Filename: "IMG_3.jpg"},
		},
		{
			name: "unparseable creation time",
			item: model.MediaItem{Filename: "IMG_4.jpg", CreationTime: "yesterday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Accept(tt.item)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got))
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestFilter(t *testing.T) {
	items := []model.MediaItem{
		{ID: "1", Filename: "a.jpg", CreationTime: "2024-01-02T00:00:00Z"},
		{ID: "2", Filename: "Screenshot.png", CreationTime: "2024-01-02T00:00:00Z"},
		{ID: "3", Filename: "b.jpg"},
		{ID: "4", Filename: "c.jpg", CreationTime: "2024-01-01T00:00:00Z"},
	}

	got := Filter(items)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "1", got[0].Item.ID)
		assert.Equal(t, "4", got[1].Item.ID)
	}
}
