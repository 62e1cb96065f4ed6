package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/prompts"
)

// ErrEmptyInput is returned when there are no skills or no experience to write from
var ErrEmptyInput = errors.New("skills and experience are required")

// GenerationError is returned when the provider fails or returns nothing usable
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// BioRequest is the input for a generated bio
type BioRequest struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	// Name and Title are optional and sharpen the prompt when present
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
}

// SplitSkills turns a comma separated list into trimmed, non-empty names
func SplitSkills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BioGenerator writes first-person portfolio bios
type BioGenerator struct {
	client Client
	tier   ModelTier
}

// NewBioGenerator returns a generator using the standard tier
func NewBioGenerator(client Client) *BioGenerator {
	return &BioGenerator{client: client, tier: TierStandard}
}

// Prompt builds the prompt for req
func (g *BioGenerator) Prompt(req BioRequest) (string, error) {
	key := "generate-bio"
	if req.Name != "" && req.Title != "" {
		key = "generate-bio-with-role"
	}
	tmpl, err := prompts.Get(prompts.BioFile, key)
	if err != nil {
		return "", err
	}
	return prompts.Format(tmpl, map[string]string{
		"Skills":     strings.Join(req.Skills, ", "),
		"Experience": strings.TrimSpace(req.Experience),
		"Name":       req.Name,
		"Title":      req.Title,
	}), nil
}

// Generate asks the model for a bio. Input without skills or experience is
// rejected before any call is made.
func (g *BioGenerator) Generate(ctx context.Context, req BioRequest) (string, error) {
	if len(req.Skills) == 0 || strings.TrimSpace(req.Experience) == "" {
		return "", ErrEmptyInput
	}
	if g.client == nil {
		return "", &GenerationError{Message: "no text-generation client configured"}
	}

	prompt, err := g.Prompt(req)
	if err != nil {
		return "", &GenerationError{Message: "failed to build prompt", Cause: err}
	}
	text, err := g.client.GenerateContent(ctx, prompt, g.tier)
	if err != nil {
		return "", &GenerationError{Message: "failed to generate bio", Cause: err}
	}
	bio := CleanText(text)
	if bio == "" {
		return "", &GenerationError{Message: "model returned an empty bio"}
	}
	return bio, nil
}
