package assistant

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstPart(t *testing.T) {
	tests := []struct {
		name string
		res  *genai.GenerateContentResponse
		ok   bool
	}{
		{"no candidates", &genai.GenerateContentResponse{}, false},
		{"blocked candidate with nil content", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: nil, FinishReason: genai.FinishReasonSafety}},
		}, false},
		{"candidate with no parts", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
		}, false},
		{"text part", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text("hi")}}}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part, ok := firstPart(tt.res)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, part)
				assert.Equal(t, genai.Text("hi"), part)
			}
		})
	}
}

func TestFirstPartFunctionCall(t *testing.T) {
	call := genai.FunctionCall{Name: "search_products", Args: map[string]interface{}{"query": "milk"}}
	res := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{call}}}},
	}

	part, ok := firstPart(res)
	require.True(t, ok)

	got, isCall := part.(genai.FunctionCall)
	require.True(t, isCall)
	assert.Equal(t, "search_products", got.Name)
}
