package skills

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Scale maps proficiency levels to percentages. Default is used for any level
// string outside the closed enum.
type Scale struct {
	Beginner     int
	Intermediate int
	Advanced     int
	Expert       int
	Default      int
}

// Two scales are in use and templates pick one each. They are kept apart on purpose;
// unifying them would change how existing templates read.
var (
	// LinearScale is used by the general-purpose templates
	LinearScale = Scale{Beginner: 25, Intermediate: 50, Advanced: 75, Expert: 90, Default: 50}
	// GenerousScale is used by the specialist templates
	GenerousScale = Scale{Beginner: 50, Intermediate: 70, Advanced: 85, Expert: 95, Default: 60}
)

// Percent returns the level's percentage clamped to [0,100]
func (s Scale) Percent(level types.SkillLevel) int {
	var v int
	switch normalizeLevel(level) {
	case types.LevelBeginner:
		v = s.Beginner
	case types.LevelIntermediate:
		v = s.Intermediate
	case types.LevelAdvanced:
		v = s.Advanced
	case types.LevelExpert:
		v = s.Expert
	default:
		v = s.Default
	}
	return clamp(v)
}

// ProficiencyPercent is Percent as a free function
func ProficiencyPercent(level types.SkillLevel, scale Scale) int {
	return scale.Percent(level)
}

// Average returns the rounded mean percentage of skills, or 0 for an empty list
func (s Scale) Average(list []types.SkillData) int {
	if len(list) == 0 {
		return 0
	}
	total := 0
	for _, sk := range list {
		total += s.Percent(sk.Level)
	}
	return int(math.Round(float64(total) / float64(len(list))))
}

// Accents maps proficiency levels to a cosmetic gradient token
type Accents struct {
	Beginner     string
	Intermediate string
	Advanced     string
	Expert       string
	Default      string
}

// For returns the accent for level
func (a Accents) For(level types.SkillLevel) string {
	switch normalizeLevel(level) {
	case types.LevelBeginner:
		return a.Beginner
	case types.LevelIntermediate:
		return a.Intermediate
	case types.LevelAdvanced:
		return a.Advanced
	case types.LevelExpert:
		return a.Expert
	}
	return a.Default
}

// LevelLabel returns the level capitalised for display ("expert" -> "Expert").
// Unknown levels are returned trimmed but otherwise untouched.
func LevelLabel(level types.SkillLevel) string {
	l := strings.TrimSpace(string(level))
	if l == "" {
		return ""
	}
	if n := normalizeLevel(level); n != "" {
		l = string(n)
	}
	r, size := utf8.DecodeRuneInString(l)
	return string(unicode.ToUpper(r)) + l[size:]
}

func normalizeLevel(level types.SkillLevel) types.SkillLevel {
	switch l := types.SkillLevel(strings.ToLower(strings.TrimSpace(string(level)))); l {
	case types.LevelBeginner, types.LevelIntermediate, types.LevelAdvanced, types.LevelExpert:
		return l
	}
	return ""
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
