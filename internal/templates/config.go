// Package templates holds the per-template configuration that drives both the
// live preview and the static export, and the registry that enumerates them.
package templates

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/skills"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// SectionKind identifies a page section
type SectionKind string

// Section kinds
const (
	SectionNav        SectionKind = "nav"
	SectionHero       SectionKind = "hero"
	SectionStats      SectionKind = "stats"
	SectionSkills     SectionKind = "skills"
	SectionExperience SectionKind = "experience"
	SectionProjects   SectionKind = "projects"
	SectionEducation  SectionKind = "education"
	SectionContact    SectionKind = "contact"
	SectionFooter     SectionKind = "footer"
)

// SectionSpec places a section in the page and carries its copy
type SectionSpec struct {
	Kind       SectionKind
	Anchor     string
	NavLabel   string
	Heading    string
	Subheading string
}

// NameCase controls how the user's name is shown in the hero
type NameCase int

// Name casings
const (
	NameAsIs NameCase = iota
	NameUpper
	NameFirst
)

// DateStyle controls how dates are shown
type DateStyle int

// Date styles
const (
	DateLong DateStyle = iota // "January 2023"
	DateRaw                   // as entered
)

// SkillDisplay selects the skills section layout
type SkillDisplay int

// Skill displays
const (
	SkillsFlat SkillDisplay = iota
	SkillsGrouped
)

// Stat is one entry of the stats banner
type Stat struct {
	Icon  string `json:"icon"`
	Value string `json:"value"`
	Label string `json:"label"`
}

// IconRule assigns Icon to names containing any keyword
type IconRule struct {
	Keywords []string
	Icon     string
}

// IconSet picks an icon for a skill name. First matching rule wins.
type IconSet struct {
	Rules   []IconRule
	Default string
}

// For returns the icon for name
func (s IconSet) For(name string) string {
	lower := strings.ToLower(name)
	for _, r := range s.Rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.Icon
			}
		}
	}
	return s.Default
}

// HeroConfig configures the hero section
type HeroConfig struct {
	NameCase     NameCase
	BioHeading   string
	ContactLinks bool
	Actions      []string
}

// SkillsConfig configures the skills section
type SkillsConfig struct {
	Display          SkillDisplay
	Buckets          skills.KeywordTable
	OtherTitle       string
	OtherIcon        string
	GroupLimit       int
	FeaturedTitle    string
	FeaturedLimit    int
	FeaturedBuckets  int
	FeaturedMeta     []string
	ProficiencyLabel string
	Notes            map[string]string
	Icons            IconSet
	ShowCategory     bool
	ShowLevel        bool
	ShowPercent      bool
	ShowBar          bool
}

// ExperienceConfig configures the experience timeline
type ExperienceConfig struct {
	CurrentBadge      string
	PastBadge         string
	AchievementsTitle string
	Achievements      []string
}

// Banner is the decorative header of a project card
type Banner struct {
	Icon    string
	Title   string
	Caption string
	// UseProjectTitle replaces Title with the project title
	UseProjectTitle bool
}

// ProjectsConfig configures the project gallery
type ProjectsConfig struct {
	Limit     int
	TechLimit int
	LinkLabel string
	CodeLabel string
	Badge     string
	Banner    *Banner
}

// ContactConfig configures the contact section
type ContactConfig struct {
	InfoTitle    string
	Details      bool
	Social       bool
	CallToAction bool
	FormTitle    string
	SubmitLabel  string
}

// DesignSupport lists the DesignOptions a template honors besides the font family
type DesignSupport struct {
	PrimaryColor bool
	DarkMode     bool
	BorderRadius bool
	Animations   bool
}

// Config fully describes a template. Templates are data; the shared projection
// interprets them.
type Config struct {
	Info         types.TemplateInfo
	Scale        skills.Scale
	Accents      skills.Accents
	Palette      Palette
	Dark         Palette
	Sections     []SectionSpec
	Hero         HeroConfig
	Stats        []Stat
	Skills       SkillsConfig
	Experience   ExperienceConfig
	Projects     ProjectsConfig
	Contact      ContactConfig
	FooterSuffix string
	DateStyle    DateStyle
	Honors       DesignSupport
}

// ID returns the template id
func (c *Config) ID() string {
	return c.Info.ID
}

// Section returns the spec for kind
func (c *Config) Section(kind SectionKind) (SectionSpec, bool) {
	for _, s := range c.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return SectionSpec{}, false
}

// Validate checks the configuration is usable by the projection
func (c *Config) Validate() error {
	if c.Info.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if c.Info.Name == "" {
		return fmt.Errorf("template %s: name is required", c.Info.ID)
	}
	switch c.Info.Difficulty {
	case types.DifficultyBeginner, types.DifficultyIntermediate, types.DifficultyAdvanced:
	default:
		return fmt.Errorf("template %s: invalid difficulty %q", c.Info.ID, c.Info.Difficulty)
	}

	seen := make(map[SectionKind]bool)
	for _, s := range c.Sections {
		if seen[s.Kind] {
			return fmt.Errorf("template %s: duplicate section %s", c.Info.ID, s.Kind)
		}
		seen[s.Kind] = true
	}
	if !seen[SectionHero] {
		return fmt.Errorf("template %s: hero section is required", c.Info.ID)
	}
	if seen[SectionSkills] && c.Skills.Display == SkillsGrouped && len(c.Skills.Buckets) == 0 {
		return fmt.Errorf("template %s: grouped skills need a keyword table", c.Info.ID)
	}
	return nil
}
