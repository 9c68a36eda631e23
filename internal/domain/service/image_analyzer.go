package service

import (
	"context"
)

// ImageAnalysis is what an analyzer recognised in a photo.
type ImageAnalysis struct {
	ItemName    string `json:"itemName"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*ImageAnalysis, error)
}
