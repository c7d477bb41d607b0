// Package classifier predicts the food category of a photo with a
// convolutional model run through ONNX Runtime.
package classifier

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/gourmet-server/internal/model"
)

// Runtime runs the model on one preprocessed input.
type Runtime interface {
	Run(input []float32) ([]float32, error)
	Close() error
}

// RuntimeFactory builds a Runtime from the bytes of a model artifact.
type RuntimeFactory func(modelData []byte) (Runtime, error)

var _ model.Classifier = (*Classifier)(nil)

// Classifier maps image bytes to a model.Category.
type Classifier struct {
	runtime Runtime
}

func New(runtime Runtime) *Classifier {
	return &Classifier{runtime: runtime}
}

func (c *Classifier) Classify(ctx context.Context, image []byte) (model.Category, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	input, err := Preprocess(image)
	if err != nil {
		return 0, err
	}

	probs, err := c.runtime.Run(input)
	if err != nil {
		return 0, fmt.Errorf("failed to run model: %w", err)
	}

	idx, err := ArgMax(probs)
	if err != nil {
		return 0, err
	}

	return model.CategoryFromIndex(idx)
}

func (c *Classifier) Close() error {
	return c.runtime.Close()
}

var _ model.ClassifierLoader = (*Loader)(nil)

// Loader builds a Classifier from the model artifact kept in object storage.
type Loader struct {
	storage    model.Storage
	object     string
	newRuntime RuntimeFactory
}

func NewLoader(storage model.Storage, object string, newRuntime RuntimeFactory) *Loader {
	return &Loader{
		storage:    storage,
		object:     object,
		newRuntime: newRuntime,
	}
}

// Load downloads the artifact and creates a fresh runtime session.
func (l *Loader) Load(ctx context.Context) (model.Classifier, error) {
	rc, err := l.storage.Download(ctx, l.object)
	if err != nil {
		return nil, fmt.Errorf("failed to download model %s: %w", l.object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", l.object, err)
	}

	rt, err := l.newRuntime(data)
	if err != nil {
		return nil, fmt.Errorf("failed to create model runtime: %w", err)
	}

	return New(rt), nil
}
