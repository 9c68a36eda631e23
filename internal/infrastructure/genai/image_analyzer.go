package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"mados/internal/domain/service"
)

const analyzePrompt = "Based on the image, describe the main item. Provide a response in JSON format " +
	"including a 'itemName' (string), 'category' (string, e.g., 'electronics', 'apparel', 'furniture'), " +
	"and a brief 'description' (string)."

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ImageAnalyzer asks Gemini to name the item shown in a photo.
type ImageAnalyzer struct {
	models contentGenerator
	model  string
}

func NewImageAnalyzer(ctx context.Context, apiKey, model string) (*ImageAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &ImageAnalyzer{models: client.Models, model: model}, nil
}

func responseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"itemName":    {Type: genai.TypeString},
			"category":    {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
		},
	}
}

func (a *ImageAnalyzer) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*service.ImageAnalysis, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(analyzePrompt),
		}, genai.RoleUser),
	}

	resp, err := a.models.GenerateContent(ctx, a.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("gemini returned an empty response")
	}

	var analysis service.ImageAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	return &analysis, nil
}
