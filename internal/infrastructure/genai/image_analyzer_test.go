package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	text string
	err  error

	gotModel  string
	gotConfig *genai.GenerateContentConfig
	gotParts  []*genai.Part
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel = model
	f.gotConfig = config
	if len(contents) > 0 {
		f.gotParts = contents[0].Parts
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.text}}},
		}},
	}, nil
}

func TestAnalyzeImageDecodesJSON(t *testing.T) {
	fake := &fakeModels{text: ` {"itemName":"Sepatu lari","category":"apparel","description":"Sepatu olahraga"} `}
	a := &ImageAnalyzer{models: fake, model: "gemini-2.5-flash"}

	got, err := a.AnalyzeImage(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "Sepatu lari", got.ItemName)
	assert.Equal(t, "apparel", got.Category)
	assert.Equal(t, "gemini-2.5-flash", fake.gotModel)
	assert.Equal(t, "application/json", fake.gotConfig.ResponseMIMEType)
	require.Len(t, fake.gotParts, 2)
	require.NotNil(t, fake.gotParts[0].InlineData)
	assert.Equal(t, "image/jpeg", fake.gotParts[0].InlineData.MIMEType)
}

func TestAnalyzeImageErrors(t *testing.T) {
	for name, fake := range map[string]*fakeModels{
		"api error": {err: errors.New("quota")},
		"empty":     {text: "  "},
		"not json":  {text: "a shoe"},
	} {
		t.Run(name, func(t *testing.T) {
			a := &ImageAnalyzer{models: fake, model: "m"}
			_, err := a.AnalyzeImage(context.Background(), []byte{1}, "image/png")
			assert.Error(t, err)
		})
	}
}

func TestNewImageAnalyzerRequiresKey(t *testing.T) {
	_, err := NewImageAnalyzer(context.Background(), "", "")
	assert.Error(t, err)
}
