package synthesis

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/finsight/pkg/models"
)

func sampleSummaries() *models.SummaryMap {
	m := models.NewSummaryMap()
	m.Set("yf_price", models.SummaryEntry{
		Type: "price",
		Summary: &models.PriceSummary{
			DataType:     models.LabelPriceAction,
			Ticker:       "ACME",
			CurrentState: models.PriceState{Price: "14.00", DailyChange: "7.69"},
		},
	})
	return m
}

func TestNewRequest(t *testing.T) {
	r, err := NewRequest("  Should I buy ACME?  ", sampleSummaries())
	require.NoError(t, err)
	assert.Equal(t, "Should I buy ACME?", r.OriginalQuestion)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Contains(t, decoded, "original_question")
	assert.Contains(t, decoded, "visualization_summaries")
	assert.Contains(t, string(decoded["visualization_summaries"]), `"type":"price"`)
}

func TestNewRequestErrors(t *testing.T) {
	tests := []struct {
		name      string
		question  string
		summaries *models.SummaryMap
		want      error
	}{
		{"missing question", "", sampleSummaries(), ErrMissingQuestion},
		{"blank question", "   ", sampleSummaries(), ErrMissingQuestion},
		{"nil summaries", "why?", nil, ErrNoSummaries},
		{"empty summaries", "why?", models.NewSummaryMap(), ErrNoSummaries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequest(tt.question, tt.summaries)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewRequestQuestionTooLong(t *testing.T) {
	_, err := NewRequest(strings.Repeat("x", 2001), sampleSummaries())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingQuestion)
	assert.Contains(t, err.Error(), "invalid synthesis request")
}

func TestPrompt(t *testing.T) {
	r, err := NewRequest("Should I buy ACME?", sampleSummaries())
	require.NoError(t, err)

	prompt, err := r.Prompt()
	require.NoError(t, err)
	assert.Contains(t, prompt, `Original Question: "Should I buy ACME?"`)
	assert.Contains(t, prompt, "Available Data Summaries:\n{\n  \"yf_price\": {")
	assert.Contains(t, prompt, `"dailyChange": "7.69"`)
	assert.True(t, strings.HasSuffix(prompt, "be concise in your response."))
}

func TestPrepare(t *testing.T) {
	r := &Request{OriginalQuestion: "How is ACME doing?", VisualizationSummaries: sampleSummaries()}
	p, err := r.Prepare()
	require.NoError(t, err)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "How is ACME doing?", decoded["original_question"])
	assert.NotEmpty(t, decoded["prompt"])
	assert.NotNil(t, decoded["visualization_summaries"])

	_, err = (&Request{}).Prepare()
	assert.ErrorIs(t, err, ErrMissingQuestion)
}
