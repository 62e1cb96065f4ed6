// Package types provides type definitions for structured data used throughout the portfolio-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// SkillLevel is the qualitative proficiency of a skill
type SkillLevel string

// Skill levels
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Layout is the page layout hint from the design options
type Layout string

// Layouts
const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutGrid         Layout = "grid"
)

// BorderRadius is the corner rounding hint from the design options
type BorderRadius string

// Border radius options
const (
	RadiusNone   BorderRadius = "none"
	RadiusSmall  BorderRadius = "small"
	RadiusMedium BorderRadius = "medium"
	RadiusLarge  BorderRadius = "large"
)

// UserData holds identity and narrative fields. Empty optional fields are not rendered.
type UserData struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
}

// SkillData is a single skill entry. Category is free text.
type SkillData struct {
	ID       string     `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Level    SkillLevel `json:"level" validate:"oneof=beginner intermediate advanced expert"`
	Category string     `json:"category"`
}

// ProjectData is a portfolio project. An empty EndDate means the project is ongoing.
type ProjectData struct {
	ID           string   `json:"id" validate:"required"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	Github       string   `json:"github,omitempty"`
	Image        string   `json:"image,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
}

// ExperienceData is a work history entry. An empty EndDate means current position.
type ExperienceData struct {
	ID          string `json:"id" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Location    string `json:"location"`
}

// EducationData is an education entry
type EducationData struct {
	ID          string `json:"id" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// DesignOptions are advisory styling hints. Not every template honors every option.
type DesignOptions struct {
	PrimaryColor   string       `json:"primaryColor"`
	SecondaryColor string       `json:"secondaryColor"`
	FontFamily     string       `json:"fontFamily"`
	Layout         Layout       `json:"layout" validate:"omitempty,oneof=single-column two-column grid"`
	Animations     bool         `json:"animations"`
	DarkMode       bool         `json:"darkMode"`
	BorderRadius   BorderRadius `json:"borderRadius" validate:"omitempty,oneof=none small medium large"`
}

// PortfolioState is the aggregate root passed to both rendering paths
type PortfolioState struct {
	SelectedTemplate string           `json:"selectedTemplate"`
	UserData         UserData         `json:"userData"`
	Projects         []ProjectData    `json:"projects" validate:"dive"`
	Experience       []ExperienceData `json:"experience" validate:"dive"`
	Education        []EducationData  `json:"education" validate:"dive"`
	Skills           []SkillData      `json:"skills" validate:"dive"`
	DesignOptions    DesignOptions    `json:"designOptions"`
}

var validate = validator.New()

// Validate checks enum fields and required ids. Renderers never call this;
// it guards the editing boundary.
func (s *PortfolioState) Validate() error {
	return validate.Struct(s)
}

// Clone returns a deep copy of the state
func (s PortfolioState) Clone() PortfolioState {
	out := s
	out.Projects = cloneProjects(s.Projects)
	out.Experience = append([]ExperienceData(nil), s.Experience...)
	out.Education = append([]EducationData(nil), s.Education...)
	out.Skills = append([]SkillData(nil), s.Skills...)
	return out
}

func cloneProjects(in []ProjectData) []ProjectData {
	if in == nil {
		return nil
	}
	out := make([]ProjectData, len(in))
	for i, p := range in {
		out[i] = p
		out[i].Technologies = append([]string(nil), p.Technologies...)
	}
	return out
}

// SkillNames returns the skill names in list order
func (s *PortfolioState) SkillNames() []string {
	names := make([]string, 0, len(s.Skills))
	for _, sk := range s.Skills {
		names = append(names, sk.Name)
	}
	return names
}
