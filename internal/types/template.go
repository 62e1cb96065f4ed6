//nolint:revive // types is a standard Go package name pattern
package types

// Difficulty is the advertised complexity of a template
type Difficulty string

// Template difficulties
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// TemplateInfo is the metadata shown by the template selection UI
type TemplateInfo struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
}
