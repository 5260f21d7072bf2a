package vision

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLLM replays canned replies in order and records every call.
type stubLLM struct {
	replies []string
	errs    []error
	systems []string
	prompts []string
	calls   int
}

func (s *stubLLM) Complete(_ context.Context, system string, user []ContentPart) (string, error) {
	i := s.calls
	s.calls++
	s.systems = append(s.systems, system)

	var text strings.Builder
	for _, p := range user {
		if p.Type == "text" {
			text.WriteString(p.Text)
		}
	}
	s.prompts = append(s.prompts, text.String())

	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "", errors.New("stub exhausted")
}

const testImageURI = "data:image/jpeg;base64,Zm9vZA=="

func TestAnalyzeImageCalibratesAndEnriches(t *testing.T) {
	llm := &stubLLM{replies: []string{
		`[{"name": "chicken breast", "weight_g": 200}]`,
		`{"foods": [{"name": "chicken breast", "weight_g": 220, "nutrition": {"calories": 363, "protein": 68, "carbs": 0, "fat": 8}}]}`,
	}}

	items, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// 200g * 1.1 calibration
	assert.Equal(t, "chicken breast", items[0].Name)
	assert.Equal(t, 220.0, items[0].WeightG)
	assert.False(t, items[0].FromLabel)
	assert.False(t, items[0].Incomplete())

	require.NotNil(t, items[0].Nutrition)
	assert.Equal(t, 363.0, items[0].Nutrition.Calories)
	assert.Equal(t, 68.0, items[0].Nutrition.Protein)

	// the enrichment request quotes the calibrated weight, not the raw one
	require.Equal(t, 2, llm.calls)
	assert.Contains(t, llm.prompts[1], "220g of chicken breast")
}

func TestAnalyzeImageLabelItemSkipsCalibrationAndEnrichment(t *testing.T) {
	llm := &stubLLM{replies: []string{
		`[{"name": "protein bar", "weight_g": 60, "nutrition": {"calories": 240, "protein": 20, "carbs": 22, "fat": 9}}]`,
	}}

	items, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, 60.0, items[0].WeightG, "label weights must not be calibrated")
	assert.True(t, items[0].FromLabel)
	require.NotNil(t, items[0].Nutrition)
	assert.Equal(t, 240.0, items[0].Nutrition.Calories)

	assert.Equal(t, 1, llm.calls, "nothing pending, no enrichment call")
}

func TestAnalyzeImageMixedLabelAndEstimate(t *testing.T) {
	llm := &stubLLM{replies: []string{
		`[
			{"name": "protein bar", "weight_g": 60, "nutrition": {"calories": 240, "protein": 20, "carbs": 22, "fat": 9}},
			{"name": "banana", "weight_g": 100}
		]`,
		`{"foods": [{"name": "Banana", "weight_g": 110, "nutrition": {"calories": 98, "protein": 1.2, "carbs": 25, "fat": 0.4}}]}`,
	}}

	items, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 60.0, items[0].WeightG)
	assert.Equal(t, 110.0, items[1].WeightG)

	// match is case-insensitive on the name
	require.NotNil(t, items[1].Nutrition)
	assert.Equal(t, 98.0, items[1].Nutrition.Calories)

	// only the banana appears in the enrichment request
	assert.NotContains(t, llm.prompts[1], "protein bar")
}

func TestAnalyzeImageFencedReply(t *testing.T) {
	llm := &stubLLM{replies: []string{
		"Here's the breakdown:\n```json\n[{\"name\": \"toast\", \"weight_g\": 40}]\n```",
		`{"foods": [{"name": "toast", "weight_g": 44, "nutrition": {"calories": 120, "protein": 4, "carbs": 20, "fat": 2}}]}`,
	}}

	items, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 44.0, items[0].WeightG)
}

func TestAnalyzeImageEmptyArray(t *testing.T) {
	llm := &stubLLM{replies: []string{`[]`}}

	items, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, llm.calls)
}

func TestAnalyzeImageMalformedReply(t *testing.T) {
	llm := &stubLLM{replies: []string{"I see some food but cannot describe it."}}

	_, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "I see some food but cannot describe it.", malformed.Raw)
}

func TestAnalyzeImageValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		reply  string
		index  int
		reason string
	}{
		{
			name:   "missing name",
			reply:  `[{"name": "rice", "weight_g": 100}, {"weight_g": 50}]`,
			index:  1,
			reason: "missing name",
		},
		{
			name:   "missing weight",
			reply:  `[{"name": "rice"}]`,
			index:  0,
			reason: "missing weight_g",
		},
		{
			name:   "zero weight",
			reply:  `[{"name": "rice", "weight_g": 0}]`,
			index:  0,
			reason: "positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &stubLLM{replies: []string{tc.reply}}
			_, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)

			var invalid *ItemValidationError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.index, invalid.Index)
			assert.Contains(t, invalid.Reason, tc.reason)
		})
	}
}

func TestAnalyzeImageEnrichmentMissLeavesItemIncomplete(t *testing.T) {
	llm := &stubLLM{replies: []string{
		`[{"name": "mystery stew", "weight_g": 300}]`,
		`{"foods": []}`,
	}}

	items, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.NoError(t, err, "a lookup miss is not a failure")
	require.Len(t, items, 1)
	assert.True(t, items[0].Incomplete())
	assert.Nil(t, items[0].Nutrition)
}

func TestAnalyzeImageVisionCallFailure(t *testing.T) {
	llm := &stubLLM{errs: []error{errors.New("connection refused")}}

	_, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.ErrorIs(t, err, ErrVisionCallFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAnalyzeImageMalformedEnrichmentReply(t *testing.T) {
	llm := &stubLLM{replies: []string{
		`[{"name": "rice", "weight_g": 100}]`,
		"Sorry, I can't provide nutrition data for that.",
	}}

	_, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Sorry, I can't provide nutrition data for that.", malformed.Raw)
}

func TestAnalyzeImageEnrichmentCallFailure(t *testing.T) {
	llm := &stubLLM{
		replies: []string{`[{"name": "rice", "weight_g": 100}]`, ""},
		errs:    []error{nil, errors.New("rate limited")},
	}

	_, err := NewPipeline(llm).AnalyzeImage(context.Background(), testImageURI)
	require.ErrorIs(t, err, ErrEnrichmentCallFailed)
}

func TestAnalyzeImageRejectsNonDataURI(t *testing.T) {
	llm := &stubLLM{}
	_, err := NewPipeline(llm).AnalyzeImage(context.Background(), "https://example.com/food.jpg")
	require.Error(t, err)
	assert.Equal(t, 0, llm.calls)
}

func TestAnalyzeTextUsesTextPrompt(t *testing.T) {
	llm := &stubLLM{replies: []string{
		`[{"name": "oatmeal", "weight_g": 80}]`,
		`{"foods": [{"name": "oatmeal", "weight_g": 88, "nutrition": {"calories": 330, "protein": 11, "carbs": 56, "fat": 6}}]}`,
	}}

	items, err := NewPipeline(llm).AnalyzeText(context.Background(), "a bowl of oatmeal")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 88.0, items[0].WeightG)

	assert.Equal(t, textSystemPrompt, llm.systems[0])
	assert.Contains(t, llm.prompts[0], "a bowl of oatmeal")
}
