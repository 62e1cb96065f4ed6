package rendering

import (
	"fmt"

	"github.com/jonathan/portfolio-builder/internal/projection"
	"github.com/jonathan/portfolio-builder/internal/templates"
)

// Render builds the live node tree for page. It places the strings the plan
// bound and nothing else.
func Render(page *projection.Page) *Tree {
	r := liveRenderer{page: page, cls: page.Classes}
	root := el("div", r.cls.Page).attr("style", page.Styles.Page).attr("data-template", page.TemplateID)
	for i := range page.Sections {
		root.add(r.section(&page.Sections[i]))
	}
	return &Tree{TemplateID: page.TemplateID, Title: page.Title, Root: root}
}

type liveRenderer struct {
	page *projection.Page
	cls  templates.Palette
}

func (r *liveRenderer) section(s *projection.Section) *Node {
	switch s.Kind {
	case templates.SectionNav:
		return r.nav(s.Nav)
	case templates.SectionHero:
		return r.hero(s)
	case templates.SectionStats:
		return r.stats(s)
	case templates.SectionFooter:
		return el("footer", r.cls.Footer, text("p", "", s.Footer))
	}

	out := el("section", r.cls.Section).attr("id", s.Anchor)
	if s.Heading != "" {
		out.add(text("h2", r.cls.Heading, s.Heading).attr("style", r.page.Styles.Accent))
	}
	if s.Subheading != "" {
		out.add(text("p", r.cls.Subheading, s.Subheading))
	}
	switch s.Kind {
	case templates.SectionSkills:
		out.add(r.skills(s.Skills)...)
	case templates.SectionExperience:
		out.add(r.experience(s.Experience)...)
	case templates.SectionProjects:
		for _, p := range s.Projects {
			out.add(r.project(p))
		}
	case templates.SectionEducation:
		for _, e := range s.Education {
			out.add(r.education(e))
		}
	case templates.SectionContact:
		out.add(r.contact(s.Contact)...)
	}
	return out
}

func (r *liveRenderer) link(l projection.Link, class string) *Node {
	a := el("a", class).attr("href", l.Href)
	if l.External {
		a.attr("target", "_blank").attr("rel", "noopener noreferrer")
	}
	if l.Icon != "" {
		a.add(text("span", "", l.Icon))
	}
	return a.add(text("span", "", l.Label))
}

func (r *liveRenderer) card() *Node {
	return el("div", r.cls.Card).attr("style", r.page.Styles.Card)
}

func (r *liveRenderer) nav(n *projection.Nav) *Node {
	links := el("div", "")
	for _, l := range n.Links {
		links.add(r.link(l, r.cls.NavLink))
	}
	return el("nav", r.cls.Nav, text("div", r.cls.NavBrand, n.Brand), links)
}

func (r *liveRenderer) hero(s *projection.Section) *Node {
	h := s.Hero
	out := el("section", r.cls.Hero).attr("id", s.Anchor).attr("style", r.page.Styles.Hero)
	out.add(text("h1", r.cls.HeroName, h.Name))
	if h.Title != "" {
		out.add(text("p", r.cls.HeroTitle, h.Title))
	}
	if h.Bio != "" {
		if h.BioHeading != "" {
			out.add(text("h2", r.cls.Subheading, h.BioHeading))
		}
		out.add(text("p", r.cls.HeroBio, h.Bio))
	}
	if len(h.Links) > 0 {
		links := el("div", "")
		for _, l := range h.Links {
			links.add(r.link(l, r.cls.HeroLink))
		}
		out.add(links)
	}
	if len(h.Actions) > 0 {
		actions := el("div", "")
		for i, a := range h.Actions {
			class := r.cls.Button
			if i > 0 {
				class = r.cls.ButtonAlt
			}
			actions.add(text("button", class, a).attr("type", "button"))
		}
		out.add(actions)
	}
	return out
}

func (r *liveRenderer) stats(s *projection.Section) *Node {
	out := el("section", r.cls.Stats).attr("id", s.Anchor)
	for _, st := range s.Stats {
		out.add(el("div", r.cls.Stat,
			text("div", r.cls.StatIcon, st.Icon),
			text("div", r.cls.StatValue, st.Value),
			text("div", r.cls.StatLabel, st.Label),
		))
	}
	return out
}

func (r *liveRenderer) skillItem(s projection.SkillItem, label string) *Node {
	out := r.card()
	if s.Icon != "" {
		out.add(text("span", "", s.Icon))
	}
	out.add(text("h3", r.cls.CardTitle, s.Name))
	if s.Category != "" {
		out.add(text("span", r.cls.Muted, s.Category))
	}
	if s.Level != "" {
		out.add(text("span", r.cls.Badge, s.Level))
	}
	if label != "" {
		out.add(text("span", r.cls.Muted, label))
	}
	if s.Percent != "" {
		out.add(text("span", r.cls.Muted, s.Percent))
	}
	if s.Width > 0 {
		bar := el("div", joinClass(r.cls.Bar, s.Accent)).attr("style", fmt.Sprintf("width: %d%%", s.Width))
		out.add(el("div", r.cls.BarTrack, bar))
	}
	if s.Note != "" {
		out.add(text("p", r.cls.Body, s.Note))
	}
	return out
}

func (r *liveRenderer) skills(s *projection.Skills) []*Node {
	var out []*Node
	for _, item := range s.Items {
		out = append(out, r.skillItem(item, ""))
	}
	if s.FeaturedTitle != "" {
		featured := r.card().add(text("h3", r.cls.CardTitle, s.FeaturedTitle))
		for _, m := range s.FeaturedMeta {
			featured.add(text("span", r.cls.Muted, m))
		}
		for _, item := range s.Featured {
			featured.add(r.skillItem(item, s.ProficiencyLabel))
		}
		out = append(out, featured)
	}
	for _, g := range s.Groups {
		group := r.card()
		if g.Icon != "" {
			group.add(text("span", "", g.Icon))
		}
		group.add(text("h3", r.cls.CardTitle, g.Title))
		if g.Caption != "" {
			group.add(text("p", r.cls.Muted, g.Caption))
		}
		if g.Highlight != "" {
			group.add(text("span", r.cls.Badge, g.Highlight))
		}
		group.add(text("p", r.cls.Muted, g.Summary))
		for _, item := range g.Items {
			group.add(r.skillItem(item, ""))
		}
		out = append(out, group)
	}
	return out
}

func (r *liveRenderer) experience(e *projection.Experience) []*Node {
	out := make([]*Node, 0, len(e.Items))
	for _, item := range e.Items {
		card := r.card()
		card.add(text("h3", r.cls.CardTitle, item.Position))
		card.add(text("p", r.cls.Muted, item.Company))
		if item.Location != "" {
			card.add(text("p", r.cls.Muted, item.Location))
		}
		card.add(text("p", r.cls.Muted, item.Period))
		if item.Badge != "" {
			card.add(text("span", r.cls.Badge, item.Badge))
		}
		if item.Description != "" {
			card.add(text("p", r.cls.Body, item.Description))
		}
		if len(item.Achievements) > 0 {
			if e.AchievementsTitle != "" {
				card.add(text("h4", r.cls.CardTitle, e.AchievementsTitle))
			}
			list := el("ul", "")
			for _, a := range item.Achievements {
				list.add(text("li", r.cls.Body, a))
			}
			card.add(list)
		}
		out = append(out, card)
	}
	return out
}

func (r *liveRenderer) project(p projection.ProjectItem) *Node {
	card := r.card()
	if b := p.Banner; b != nil {
		banner := el("div", "")
		if b.Icon != "" {
			banner.add(text("span", "", b.Icon))
		}
		if b.Title != "" {
			banner.add(text("span", r.cls.CardTitle, b.Title))
		}
		if b.Caption != "" {
			banner.add(text("span", r.cls.Muted, b.Caption))
		}
		if b.Badge != "" {
			banner.add(text("span", r.cls.Badge, b.Badge))
		}
		card.add(banner)
	}
	if p.Image != "" {
		card.add(el("img", "").attr("src", p.Image).attr("alt", p.Title))
	}
	card.add(text("h3", r.cls.CardTitle, p.Title))
	if p.Description != "" {
		card.add(text("p", r.cls.Body, p.Description))
	}
	card.add(text("p", r.cls.Muted, p.Period))
	if len(p.Technologies) > 0 {
		techs := el("div", "")
		for _, t := range p.Technologies {
			techs.add(text("span", r.cls.Tag, t))
		}
		card.add(techs)
	}
	if len(p.Links) > 0 {
		links := el("div", "")
		for _, l := range p.Links {
			links.add(r.link(l, r.cls.Link))
		}
		card.add(links)
	}
	return card
}

func (r *liveRenderer) education(e projection.EducationItem) *Node {
	card := r.card()
	if e.Degree != "" {
		card.add(text("h3", r.cls.CardTitle, e.Degree))
	}
	if e.Field != "" {
		card.add(text("p", r.cls.Body, e.Field))
	}
	card.add(text("p", r.cls.Muted, e.Institution))
	card.add(text("p", r.cls.Muted, e.Period))
	if e.GPA != "" {
		card.add(text("p", r.cls.Muted, e.GPA))
	}
	return card
}

func (r *liveRenderer) contact(c *projection.Contact) []*Node {
	var out []*Node
	info := el("div", "")
	if c.InfoTitle != "" {
		info.add(text("h3", r.cls.CardTitle, c.InfoTitle))
	}
	for _, d := range c.Details {
		row := el("div", "", text("span", "", d.Icon))
		if d.Href != "" {
			row.add(text("a", r.cls.Link, d.Text).attr("href", d.Href))
		} else {
			row.add(text("span", r.cls.Body, d.Text))
		}
		info.add(row)
	}
	if len(c.Social) > 0 {
		social := el("div", "")
		for _, l := range c.Social {
			social.add(r.link(l, r.cls.Link))
		}
		info.add(social)
	}
	if len(c.Actions) > 0 {
		actions := el("div", "")
		for _, l := range c.Actions {
			actions.add(r.link(l, r.cls.Button))
		}
		info.add(actions)
	}
	if len(info.Children) > 0 {
		out = append(out, info)
	}

	if f := c.Form; f != nil {
		form := el("form", r.cls.Card).attr("onsubmit", "return false")
		form.add(text("h3", r.cls.CardTitle, f.Title))
		for _, field := range f.Fields {
			if field.Type == "textarea" {
				form.add(el("textarea", r.cls.Input).attr("name", field.Name).attr("placeholder", field.Placeholder).attr("rows", "5"))
				continue
			}
			form.add(el("input", r.cls.Input).attr("type", field.Type).attr("name", field.Name).attr("placeholder", field.Placeholder))
		}
		form.add(text("button", r.cls.Button, f.Submit).attr("type", "submit"))
		out = append(out, form)
	}
	return out
}

func joinClass(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
