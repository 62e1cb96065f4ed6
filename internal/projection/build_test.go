package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

func mustTemplate(t *testing.T, id string) *templates.Config {
	t.Helper()
	cfg, err := templates.MustBuiltinRegistry().Get(id)
	require.NoError(t, err)
	return cfg
}

func kinds(p *Page) []templates.SectionKind {
	out := make([]templates.SectionKind, 0, len(p.Sections))
	for _, s := range p.Sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestBuild_OmitsEmptySections(t *testing.T) {
	state := types.SeedState()
	state.Projects = nil
	state.Experience = []types.ExperienceData{}

	for _, cfg := range templates.Builtin() {
		t.Run(cfg.ID(), func(t *testing.T) {
			page := Build(cfg, &state, Options{Year: 2024})
			assert.Nil(t, page.Find(templates.SectionProjects))
			assert.Nil(t, page.Find(templates.SectionExperience))
			assert.NotNil(t, page.Find(templates.SectionSkills))
			assert.NotNil(t, page.Find(templates.SectionEducation))
			assert.NotNil(t, page.Find(templates.SectionHero))
		})
	}
}

func TestBuild_NavSkipsHiddenSections(t *testing.T) {
	state := types.SeedState()
	state.Projects = nil

	page := Build(mustTemplate(t, "professional"), &state, Options{Year: 2024})
	nav := page.Find(templates.SectionNav)
	require.NotNil(t, nav)
	for _, l := range nav.Nav.Links {
		assert.NotEqual(t, "#projects", l.Href)
	}
	assert.Equal(t, "ALEX CHEN", nav.Nav.Brand)
}

func TestBuild_PresentForOngoingExperience(t *testing.T) {
	state := types.SeedState()
	for _, cfg := range templates.Builtin() {
		t.Run(cfg.ID(), func(t *testing.T) {
			page := Build(cfg, &state, Options{Year: 2024})
			sec := page.Find(templates.SectionExperience)
			require.NotNil(t, sec)
			assert.Contains(t, sec.Experience.Items[0].Period, Present)
			assert.NotContains(t, sec.Experience.Items[1].Period, Present)
		})
	}
}

func TestBuild_DateStyles(t *testing.T) {
	state := types.SeedState()

	long := Build(mustTemplate(t, "simple"), &state, Options{Year: 2024})
	assert.Equal(t, "June 2020 - December 2021", long.Find(templates.SectionExperience).Experience.Items[1].Period)

	raw := Build(mustTemplate(t, "minimal"), &state, Options{Year: 2024})
	assert.Equal(t, "2020-06-01 - 2021-12-31", raw.Find(templates.SectionExperience).Experience.Items[1].Period)
}

func TestBuild_FrontendMinimalState(t *testing.T) {
	state := types.PortfolioState{
		UserData: types.UserData{Name: "Jane Doe"},
		Skills:   []types.SkillData{{ID: "s1", Name: "React", Level: types.LevelExpert, Category: "frontend"}},
	}

	page := Build(mustTemplate(t, "frontend"), &state, Options{Year: 2024})

	hero := page.Find(templates.SectionHero)
	require.NotNil(t, hero)
	assert.Equal(t, "JANE DOE", hero.Hero.Name)
	assert.Empty(t, hero.Hero.Links)

	skills := page.Find(templates.SectionSkills)
	require.NotNil(t, skills)
	require.Len(t, skills.Skills.Featured, 1)
	assert.Equal(t, "React", skills.Skills.Featured[0].Name)
	assert.Equal(t, "95%", skills.Skills.Featured[0].Percent)
	require.Len(t, skills.Skills.Groups, 1)
	assert.Equal(t, "Frameworks", skills.Skills.Groups[0].Title)
	assert.Equal(t, "1 Technologies • 95% Avg", skills.Skills.Groups[0].Summary)

	for _, s := range page.Sections {
		assert.NotEqual(t, "Featured Projects", s.Heading)
		assert.NotEqual(t, "Professional Experience", s.Heading)
	}
	assert.Equal(t, []templates.SectionKind{
		templates.SectionHero, templates.SectionStats, templates.SectionSkills,
		templates.SectionContact, templates.SectionFooter,
	}, kinds(page))
}

func TestBuild_OtherSkillsBucket(t *testing.T) {
	state := types.PortfolioState{
		UserData: types.UserData{Name: "Sam"},
		Skills: []types.SkillData{
			{ID: "1", Name: "Node.js", Level: types.LevelAdvanced, Category: "backend"},
			{ID: "2", Name: "Cobol", Level: types.LevelBeginner, Category: "legacy"},
		},
	}
	page := Build(mustTemplate(t, "backend"), &state, Options{Year: 2024})
	groups := page.Find(templates.SectionSkills).Skills.Groups
	require.Len(t, groups, 2)
	assert.Equal(t, "Languages", groups[0].Title)
	assert.Equal(t, "Other Skills", groups[1].Title)
	assert.Equal(t, "Cobol", groups[1].Items[0].Name)
}

func TestBuild_FlatSkills(t *testing.T) {
	state := types.SeedState()
	page := Build(mustTemplate(t, "simple"), &state, Options{Year: 2024})
	items := page.Find(templates.SectionSkills).Skills.Items
	require.Len(t, items, len(state.Skills))
	assert.Equal(t, "React Native", items[0].Name)
	assert.Equal(t, "Expert", items[0].Level)
	assert.Equal(t, 90, items[0].Width)
	assert.Equal(t, "mobile", items[0].Category)
}

func TestBuild_SpecialistProjectLimits(t *testing.T) {
	state := types.SeedState()
	state.Projects = append(state.Projects, types.ProjectData{ID: "4", Title: "Fourth", StartDate: "2024-01-01"})

	page := Build(mustTemplate(t, "mobile"), &state, Options{Year: 2024})
	projects := page.Find(templates.SectionProjects).Projects
	require.Len(t, projects, 3)
	assert.Len(t, projects[2].Technologies, 4)
	assert.Equal(t, "Live", projects[0].Banner.Badge)
}

func TestBuild_OptionalContactFields(t *testing.T) {
	state := types.SeedState()
	state.UserData.Phone = ""
	state.UserData.Github = ""

	page := Build(mustTemplate(t, "frontend"), &state, Options{Year: 2024})
	contact := page.Find(templates.SectionContact).Contact
	for _, d := range contact.Details {
		assert.NotEqual(t, "📞", d.Icon)
	}
	for _, l := range contact.Social {
		assert.NotEqual(t, "GitHub", l.Label)
	}
	require.NotNil(t, contact.Form)
	assert.Len(t, contact.Form.Fields, 3)

	simple := Build(mustTemplate(t, "simple"), &state, Options{Year: 2024})
	actions := simple.Find(templates.SectionContact).Contact.Actions
	require.Len(t, actions, 1)
	assert.Equal(t, "Send Email", actions[0].Label)
}

func TestBuild_DropsUnsafeLinks(t *testing.T) {
	state := types.SeedState()
	state.UserData.Github = "javascript:alert(1)"
	page := Build(mustTemplate(t, "frontend"), &state, Options{Year: 2024})
	for _, l := range page.Find(templates.SectionContact).Contact.Social {
		assert.NotEqual(t, "GitHub", l.Label)
	}
}

func TestBuild_Footer(t *testing.T) {
	state := types.SeedState()
	page := Build(mustTemplate(t, "simple"), &state, Options{Year: 2024})
	assert.Equal(t, "© 2024 Alex Chen. All rights reserved.", page.Find(templates.SectionFooter).Footer)
}

func TestBuild_DesignOptions(t *testing.T) {
	state := types.SeedState()
	state.DesignOptions.DarkMode = true
	state.DesignOptions.BorderRadius = types.RadiusLarge

	modern := mustTemplate(t, "modern")
	page := Build(modern, &state, Options{Year: 2024})
	assert.Equal(t, "font-family: Inter, sans-serif", page.Styles.Page)
	assert.Equal(t, "background-color: #3b82f6", page.Styles.Hero)
	assert.Equal(t, "border-radius: 1rem", page.Styles.Card)
	assert.Equal(t, modern.Palette.Merge(modern.Dark).Page, page.Classes.Page)
	assert.Contains(t, page.Classes.Card, modern.Palette.Animate)

	simple := Build(mustTemplate(t, "simple"), &state, Options{Year: 2024})
	assert.Empty(t, simple.Styles.Hero)
	assert.Empty(t, simple.Styles.Card)
	assert.Equal(t, "font-family: Inter, sans-serif", simple.Styles.Page)
}

func TestBuild_DoesNotMutateState(t *testing.T) {
	state := types.SeedState()
	before := state.Clone()
	for _, cfg := range templates.Builtin() {
		Build(cfg, &state, Options{Year: 2024})
	}
	assert.Equal(t, before, state)
}

func TestSanitizers(t *testing.T) {
	assert.Equal(t, "#fff", SafeColor(" #fff "))
	assert.Empty(t, SafeColor("red; background: url(x)"))
	assert.Equal(t, "Inter, sans-serif", SafeFont("Inter, sans-serif"))
	assert.Empty(t, SafeFont("Inter; color: red"))
	assert.Equal(t, "https://x.dev", SafeURL("https://x.dev"))
	assert.Equal(t, "tel:+1 555", SafeURL("tel:+1 555"))
	assert.Equal(t, "#contact", SafeURL("#contact"))
	assert.Empty(t, SafeURL("javascript:alert(1)"))
	assert.Equal(t, "0.5rem", RadiusValue(""))
	assert.Equal(t, "0", RadiusValue(types.RadiusNone))
}
