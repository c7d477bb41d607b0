package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryFromIndex(t *testing.T) {
	want := []string{"ramen", "japanese_food", "international_cuisine", "cafe", "other"}
	require.Equal(t, len(want), CategoryCount)

	for i, name := range want {
		c, err := CategoryFromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, name, c.String())
	}

	_, err := CategoryFromIndex(-1)
	assert.Error(t, err)
	_, err = CategoryFromIndex(CategoryCount)
	assert.Error(t, err)
}

func TestCategory_Accepted(t *testing.T) {
	assert.True(t, CategoryRamen.Accepted())
	assert.True(t, CategoryCafe.Accepted())
	assert.False(t, CategoryOther.Accepted())
}

func TestIngestOutcome_Message(t *testing.T) {
	assert.Equal(t, "No media items found", IngestOutcomeNoMedia.Message())
	assert.Equal(t, "Successfully processed photos", IngestOutcomeReachedWatermark.Message())
	assert.Equal(t, "Successfully processed photos", IngestOutcomeProcessed.Message())
}
