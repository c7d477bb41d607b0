// Package gemini asks a Gemini vision model what kind of food a photo shows.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/text/unicode/norm"

	"github.com/dtroode/gourmet-server/internal/model"
)

const serviceName = "gemini"

// Prompt lists the answers the model may give, in Japanese.
const Prompt = "画像の飲食物は、ラーメン/カフェ/和食/洋食/エスニック/飲食物ではない のいずれに当てはまるか単語で答えよ"

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

var _ model.FoodDescriber = (*Describer)(nil)

// Describer is a model.FoodDescriber backed by Vertex AI.
type Describer struct {
	client *genai.Client
	model  contentGenerator
}

// New connects to Vertex AI and selects the generative model.
func New(ctx context.Context, project, location, modelName string) (*Describer, error) {
	if strings.TrimSpace(project) == "" {
		return nil, errors.New("gemini project required")
	}
	client, err := genai.NewClient(ctx, project, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &Describer{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (d *Describer) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

// DescribeFood sends the image with Prompt and returns the text of the
// first candidate.
func (d *Describer) DescribeFood(ctx context.Context, image []byte, mimeType string) (string, error) {
	resp, err := d.model.GenerateContent(ctx, genai.Text(Prompt), genai.ImageData(imageFormat(mimeType), image))
	if err != nil {
		return "", &model.UpstreamError{Service: serviceName, Err: err}
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		break
	}

	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", &model.UpstreamError{Service: serviceName, Err: errors.New("empty response")}
	}
	return answer, nil
}

// imageFormat turns a MIME type into the format name ImageData expects.
func imageFormat(mimeType string) string {
	format, ok := strings.CutPrefix(strings.ToLower(mimeType), "image/")
	if !ok || format == "" {
		return "jpeg"
	}
	return format
}

var answers = []struct {
	word     string
	category model.FoodCategory
}{
	{"ラーメン", model.FoodRamen},
	{"カフェ", model.FoodCafe},
	{"和食", model.FoodJapanese},
	{"洋食", model.FoodWestern},
	{"エスニック", model.FoodEthnic},
	{"飲食物ではない", model.FoodNotFood},
}

// ToFoodCategory maps a free text answer to a FoodCategory. The answer is
// NFKC normalized first so half-width katakana match. Unknown answers are
// FoodNotFood.
func ToFoodCategory(answer string) model.FoodCategory {
	normalized := norm.NFKC.String(answer)
	for _, a := range answers {
		if strings.Contains(normalized, a.word) {
			return a.category
		}
	}
	return model.FoodNotFood
}
