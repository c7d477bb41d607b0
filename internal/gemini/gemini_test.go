package gemini

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gourmet-server/internal/model"
)

type fakeGenerator struct {
	resp  *genai.GenerateContentResponse
	err   error
	parts []genai.Part
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	return f.resp, f.err
}

func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, genai.Text(t))
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}

func TestDescriber_DescribeFood(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse(" ラーメン", "\n")}
	d := &Describer{model: gen}

	answer, err := d.DescribeFood(context.Background(), []byte("img"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "ラーメン", answer)

	require.Len(t, gen.parts, 2)
	assert.Equal(t, genai.Text(Prompt), gen.parts[0])
	blob, ok := gen.parts[1].(genai.Blob)
	require.True(t, ok)
	assert.Equal(t, "image/png", blob.MIMEType)
	assert.Equal(t, []byte("img"), blob.Data)
}

func TestDescriber_DescribeFoodErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{name: "api failure", gen: &fakeGenerator{err: errors.New("quota exceeded")}},
		{name: "no candidates", gen: &fakeGenerator{resp: &genai.GenerateContentResponse{}}},
		{name: "blank text", gen: &fakeGenerator{resp: textResponse("  ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Describer{model: tt.gen}

			_, err := d.DescribeFood(context.Background(), []byte("img"), "image/jpeg")
			var upErr *model.UpstreamError
			require.ErrorAs(t, err, &upErr)
			assert.Equal(t, "gemini", upErr.Service)
		})
	}
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "jpeg", imageFormat("image/jpeg"))
	assert.Equal(t, "png", imageFormat("IMAGE/PNG"))
	assert.Equal(t, "jpeg", imageFormat(""))
	assert.Equal(t, "jpeg", imageFormat("application/octet-stream"))
}

func TestToFoodCategory(t *testing.T) {
	tests := []struct {
		answer string
		want   model.FoodCategory
	}{
		{"ラーメン", model.FoodRamen},
		{"ﾗｰﾒﾝ", model.FoodRamen},
		{"カフェです", model.FoodCafe},
		{"和食", model.FoodJapanese},
		{"洋食。", model.FoodWestern},
		{"エスニック", model.FoodEthnic},
		{"飲食物ではない", model.FoodNotFood},
		{"sushi", model.FoodNotFood},
		{"", model.FoodNotFood},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFoodCategory(tt.answer))
		})
	}
}
