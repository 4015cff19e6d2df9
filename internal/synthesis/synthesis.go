// Package synthesis builds the hand-off to the narrative synthesizer: the
// user's original question paired with the aggregate summary map, and the
// prompt text the synthesizer is given. Nothing here sends the request.
package synthesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/seenimoa/finsight/pkg/models"
)

var (
	ErrMissingQuestion = errors.New("original question is required")
	ErrNoSummaries     = errors.New("at least one summary is required")
)

// Request is the synthesizer's input.
type Request struct {
	OriginalQuestion       string             `json:"original_question" validate:"required,max=2000"`
	VisualizationSummaries *models.SummaryMap `json:"visualization_summaries" validate:"required"`
}

// Prepared is a validated request together with its rendered prompt.
type Prepared struct {
	*Request
	Prompt string `json:"prompt"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewRequest builds and validates a synthesis request.
func NewRequest(question string, summaries *models.SummaryMap) (*Request, error) {
	r := &Request{
		OriginalQuestion:       strings.TrimSpace(question),
		VisualizationSummaries: summaries,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate reports ErrMissingQuestion or ErrNoSummaries for the two
// required fields, and a wrapped validation error for anything else.
func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				switch {
				case fe.Field() == "original_question" && fe.Tag() == "required":
					return ErrMissingQuestion
				case fe.Field() == "visualization_summaries":
					return ErrNoSummaries
				}
			}
		}
		return fmt.Errorf("invalid synthesis request: %w", err)
	}
	if r.VisualizationSummaries.Len() == 0 {
		return ErrNoSummaries
	}
	return nil
}

const promptTemplate = `Given a user's question about a stock and the analyzed data, provide a comprehensive answer.

Original Question: "%s"

Available Data Summaries:
%s

Analyze the data and provide a clear, comprehensive answer that:
1. Directly addresses the user's question
2. Highlights key insights from each type of analysis
3. Notes any significant patterns or trends
4. Provides context for the numbers
5. Concludes with actionable insights or key takeaways

Keep the tone professional but conversational. Structure the response clearly using bullet points or paragraphs as needed. If the data presented is self explanatory, be concise in your response.`

// Prompt renders the synthesizer prompt with the summaries as indented JSON.
func (r *Request) Prompt() (string, error) {
	summaries, err := json.MarshalIndent(r.VisualizationSummaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summaries: %w", err)
	}
	return fmt.Sprintf(promptTemplate, r.OriginalQuestion, summaries), nil
}

// Prepare validates the request and renders its prompt.
func (r *Request) Prepare() (*Prepared, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	prompt, err := r.Prompt()
	if err != nil {
		return nil, err
	}
	return &Prepared{Request: r, Prompt: prompt}, nil
}
