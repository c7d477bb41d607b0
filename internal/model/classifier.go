package model

import "context"

// Classifier predicts the category of an image.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (Category, error)
	Close() error
}

// ClassifierLoader builds a Classifier from the current model artifact.
type ClassifierLoader interface {
	Load(ctx context.Context) (Classifier, error)
}

// FoodDescriber asks a vision model which kind of food an image shows.
// The answer is free text.
type FoodDescriber interface {
	DescribeFood(ctx context.Context, image []byte, mimeType string) (string, error)
}
