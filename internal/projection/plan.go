// Package projection turns a template configuration and a portfolio state into
// a page plan: the ordered visible sections with every display string already
// bound. The live renderer and the static exporter both interpret the same plan.
package projection

import (
	"github.com/jonathan/portfolio-builder/internal/templates"
)

// Page is the projection plan for one template and one state
type Page struct {
	TemplateID   string            `json:"template_id"`
	TemplateName string            `json:"template_name"`
	Title        string            `json:"title"`
	Classes      templates.Palette `json:"-"`
	Styles       Styles            `json:"styles"`
	Sections     []Section         `json:"sections"`
}

// Styles are inline CSS declarations derived from DesignOptions. Values are
// sanitised before they get here.
type Styles struct {
	Page   string `json:"page,omitempty"`
	Hero   string `json:"hero,omitempty"`
	Accent string `json:"accent,omitempty"`
	Card   string `json:"card,omitempty"`
}

// Section is one visible page section. Exactly one payload field is set,
// matching Kind.
type Section struct {
	Kind       templates.SectionKind `json:"kind"`
	Anchor     string                `json:"anchor,omitempty"`
	Heading    string                `json:"heading,omitempty"`
	Subheading string                `json:"subheading,omitempty"`

	Nav        *Nav             `json:"nav,omitempty"`
	Hero       *Hero            `json:"hero,omitempty"`
	Stats      []templates.Stat `json:"stats,omitempty"`
	Skills     *Skills          `json:"skills,omitempty"`
	Experience *Experience      `json:"experience,omitempty"`
	Projects   []ProjectItem    `json:"projects,omitempty"`
	Education  []EducationItem  `json:"education,omitempty"`
	Contact    *Contact         `json:"contact,omitempty"`
	Footer     string           `json:"footer,omitempty"`
}

// Link is a labelled hyperlink
type Link struct {
	Label    string `json:"label"`
	Href     string `json:"href"`
	Icon     string `json:"icon,omitempty"`
	External bool   `json:"external,omitempty"`
}

// Nav is the top navigation bar
type Nav struct {
	Brand string `json:"brand"`
	Links []Link `json:"links"`
}

// Hero is the page header
type Hero struct {
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	BioHeading string   `json:"bio_heading,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Links      []Link   `json:"links,omitempty"`
	Actions    []string `json:"actions,omitempty"`
}

// SkillItem is one rendered skill. Empty strings are not rendered.
type SkillItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
	Percent  string `json:"percent,omitempty"`
	Width    int    `json:"width,omitempty"`
	Accent   string `json:"accent,omitempty"`
	Note     string `json:"note,omitempty"`
}

// SkillGroup is a classified bucket with its summary line
type SkillGroup struct {
	Key       string      `json:"key"`
	Title     string      `json:"title"`
	Icon      string      `json:"icon,omitempty"`
	Caption   string      `json:"caption,omitempty"`
	Highlight string      `json:"highlight,omitempty"`
	Summary   string      `json:"summary"`
	Items     []SkillItem `json:"items"`
}

// Skills is the skills section payload. Flat templates use Items; grouped
// templates use Featured and Groups.
type Skills struct {
	Items            []SkillItem  `json:"items,omitempty"`
	FeaturedTitle    string       `json:"featured_title,omitempty"`
	Featured         []SkillItem  `json:"featured,omitempty"`
	FeaturedMeta     []string     `json:"featured_meta,omitempty"`
	ProficiencyLabel string       `json:"proficiency_label,omitempty"`
	Groups           []SkillGroup `json:"groups,omitempty"`
}

// Experience is the experience timeline payload
type Experience struct {
	AchievementsTitle string           `json:"achievements_title,omitempty"`
	Items             []ExperienceItem `json:"items"`
}

// ExperienceItem is one position
type ExperienceItem struct {
	ID           string   `json:"id"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	Period       string   `json:"period"`
	Badge        string   `json:"badge,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Banner is the decorative project card header
type Banner struct {
	Icon    string `json:"icon,omitempty"`
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
	Badge   string `json:"badge,omitempty"`
}

// ProjectItem is one project card
type ProjectItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Period       string   `json:"period"`
	Image        string   `json:"image,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Links        []Link   `json:"links,omitempty"`
	Banner       *Banner  `json:"banner,omitempty"`
}

// EducationItem is one education entry
type EducationItem struct {
	ID          string `json:"id"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	GPA         string `json:"gpa,omitempty"`
}

// Detail is one line of contact information
type Detail struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

// FormField is an input of the inert contact form
type FormField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
}

// Form is the contact form. It has no action; submitting it does nothing.
type Form struct {
	Title  string      `json:"title"`
	Submit string      `json:"submit"`
	Fields []FormField `json:"fields"`
}

// Contact is the contact section payload
type Contact struct {
	InfoTitle string   `json:"info_title,omitempty"`
	Details   []Detail `json:"details,omitempty"`
	Social    []Link   `json:"social,omitempty"`
	Actions   []Link   `json:"actions,omitempty"`
	Form      *Form    `json:"form,omitempty"`
}

// Find returns the first section of kind, or nil
func (p *Page) Find(kind templates.SectionKind) *Section {
	for i := range p.Sections {
		if p.Sections[i].Kind == kind {
			return &p.Sections[i]
		}
	}
	return nil
}
