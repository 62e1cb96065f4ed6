// Package skills buckets free-text skill lists into display groups and maps
// proficiency levels to percentages and accent tokens.
package skills

import (
	"strings"

	"github.com/jonathan/portfolio-builder/internal/types"
)

// Bucket is one named group in a keyword table. A skill belongs to the bucket
// when its category equals Key (case-insensitive) or its name contains any of
// the keywords (case-insensitive).
type Bucket struct {
	Key      string
	Keywords []string

	// Display metadata carried with the table
	Title     string
	Icon      string
	Caption   string
	Highlight string
	Unit      string
}

// KeywordTable is an ordered list of buckets
type KeywordTable []Bucket

// Group is a bucket together with the skills classified into it
type Group struct {
	Bucket
	Skills []types.SkillData
}

// Matches reports whether the skill belongs to the bucket
func (b Bucket) Matches(skill types.SkillData) bool {
	if b.Key != "" && strings.EqualFold(strings.TrimSpace(skill.Category), b.Key) {
		return true
	}
	name := strings.ToLower(skill.Name)
	for _, kw := range b.Keywords {
		if kw != "" && strings.Contains(name, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Classify maps each bucket key to the skills it matches, preserving input
// order. A skill matched by several buckets appears in each of them.
func Classify(skills []types.SkillData, table KeywordTable) map[string][]types.SkillData {
	out := make(map[string][]types.SkillData, len(table))
	for _, g := range GroupBy(skills, table) {
		out[g.Key] = g.Skills
	}
	return out
}

// GroupBy is the ordered form of Classify. Every bucket of the table is returned,
// including empty ones.
func GroupBy(skills []types.SkillData, table KeywordTable) []Group {
	groups := make([]Group, 0, len(table))
	for _, b := range table {
		g := Group{Bucket: b, Skills: []types.SkillData{}}
		for _, s := range skills {
			if b.Matches(s) {
				g.Skills = append(g.Skills, s)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// Unmatched returns the skills no bucket of the table claims
func Unmatched(skills []types.SkillData, table KeywordTable) []types.SkillData {
	var out []types.SkillData
	for _, s := range skills {
		matched := false
		for _, b := range table {
			if b.Matches(s) {
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, s)
		}
	}
	return out
}

// Featured collects up to limit skills across groups in group order, counting a
// skill that fanned out into several groups only once. A limit <= 0 means no limit.
func Featured(groups []Group, limit int) []types.SkillData {
	seen := make(map[string]bool)
	var out []types.SkillData
	for _, g := range groups {
		for _, s := range g.Skills {
			key := identity(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, s)
			if limit > 0 && len(out) == limit {
				return out
			}
		}
	}
	return out
}

// identity falls back to name and level for skills without an id
func identity(s types.SkillData) string {
	if s.ID != "" {
		return "id:" + s.ID
	}
	return "nl:" + strings.ToLower(s.Name) + "|" + string(s.Level)
}
