package projection

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/skills"
	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// Options are inputs to Build that do not come from the state
type Options struct {
	// Year is shown in the footer copyright line
	Year int
}

// Build projects state through cfg. Sections whose backing list is empty are
// left out entirely. The state is only read.
func Build(cfg *templates.Config, state *types.PortfolioState, opts Options) *Page {
	b := builder{cfg: cfg, state: state, opts: opts}
	return b.page()
}

type builder struct {
	cfg   *templates.Config
	state *types.PortfolioState
	opts  Options
}

func (b *builder) page() *Page {
	page := &Page{
		TemplateID:   b.cfg.ID(),
		TemplateName: b.cfg.Info.Name,
		Title:        pageTitle(b.state.UserData.Name),
		Classes:      b.classes(),
		Styles:       buildStyles(b.cfg.Honors, b.state.DesignOptions),
	}

	for _, spec := range b.cfg.Sections {
		if !b.visible(spec.Kind) {
			continue
		}
		sec := Section{
			Kind:       spec.Kind,
			Anchor:     spec.Anchor,
			Heading:    spec.Heading,
			Subheading: spec.Subheading,
		}
		switch spec.Kind {
		case templates.SectionNav:
			sec.Nav = b.nav()
		case templates.SectionHero:
			sec.Hero = b.hero()
		case templates.SectionStats:
			sec.Stats = append([]templates.Stat(nil), b.cfg.Stats...)
		case templates.SectionSkills:
			sec.Skills = b.skills()
		case templates.SectionExperience:
			sec.Experience = b.experience()
		case templates.SectionProjects:
			sec.Projects = b.projects()
		case templates.SectionEducation:
			sec.Education = b.education()
		case templates.SectionContact:
			sec.Contact = b.contact()
		case templates.SectionFooter:
			sec.Footer = fmt.Sprintf("© %d %s%s", b.opts.Year, b.state.UserData.Name, b.cfg.FooterSuffix)
		}
		page.Sections = append(page.Sections, sec)
	}
	return page
}

// visible is the omission rule shared by both rendering paths
func (b *builder) visible(kind templates.SectionKind) bool {
	switch kind {
	case templates.SectionSkills:
		return len(b.state.Skills) > 0
	case templates.SectionExperience:
		return len(b.state.Experience) > 0
	case templates.SectionProjects:
		return len(b.state.Projects) > 0
	case templates.SectionEducation:
		return len(b.state.Education) > 0
	case templates.SectionStats:
		return len(b.cfg.Stats) > 0
	}
	return true
}

func (b *builder) classes() templates.Palette {
	p := b.cfg.Palette
	if b.cfg.Honors.DarkMode && b.state.DesignOptions.DarkMode {
		p = p.Merge(b.cfg.Dark)
	}
	if b.cfg.Honors.Animations && b.state.DesignOptions.Animations && p.Animate != "" {
		p.Card = strings.TrimSpace(p.Card + " " + p.Animate)
	}
	return p
}

func (b *builder) nav() *Nav {
	nav := &Nav{Brand: strings.ToUpper(b.state.UserData.Name)}
	for _, spec := range b.cfg.Sections {
		if spec.NavLabel == "" || spec.Anchor == "" || !b.visible(spec.Kind) {
			continue
		}
		nav.Links = append(nav.Links, Link{Label: spec.NavLabel, Href: "#" + spec.Anchor})
	}
	return nav
}

func (b *builder) hero() *Hero {
	u := b.state.UserData
	h := &Hero{
		Name:    displayName(u.Name, b.cfg.Hero.NameCase),
		Title:   u.Title,
		Bio:     u.Bio,
		Actions: append([]string(nil), b.cfg.Hero.Actions...),
	}
	if u.Bio != "" {
		h.BioHeading = b.cfg.Hero.BioHeading
	}
	if b.cfg.Hero.ContactLinks {
		if u.Email != "" {
			h.Links = append(h.Links, Link{Label: "Email", Href: "mailto:" + u.Email})
		}
		if u.Phone != "" {
			h.Links = append(h.Links, Link{Label: "Phone", Href: "tel:" + u.Phone})
		}
		if SafeURL(u.Website) != "" {
			h.Links = append(h.Links, Link{Label: "Website", Href: SafeURL(u.Website), External: true})
		}
	}
	return h
}

func (b *builder) skillItem(s types.SkillData) SkillItem {
	sc := b.cfg.Skills
	item := SkillItem{
		ID:     s.ID,
		Name:   s.Name,
		Icon:   sc.Icons.For(s.Name),
		Accent: b.cfg.Accents.For(s.Level),
		Note:   sc.Notes[s.Name],
	}
	if sc.ShowCategory {
		item.Category = strings.TrimSpace(s.Category)
	}
	if sc.ShowLevel {
		item.Level = skills.LevelLabel(s.Level)
	}
	pct := b.cfg.Scale.Percent(s.Level)
	if sc.ShowPercent {
		item.Percent = fmt.Sprintf("%d%%", pct)
	}
	if sc.ShowBar {
		item.Width = pct
	}
	return item
}

func (b *builder) skills() *Skills {
	sc := b.cfg.Skills
	out := &Skills{}

	if sc.Display == templates.SkillsFlat {
		for _, s := range b.state.Skills {
			out.Items = append(out.Items, b.skillItem(s))
		}
		return out
	}

	groups := skills.GroupBy(b.state.Skills, sc.Buckets)
	if sc.OtherTitle != "" {
		if rest := skills.Unmatched(b.state.Skills, sc.Buckets); len(rest) > 0 {
			groups = append(groups, skills.Group{
				Bucket: skills.Bucket{Key: "other", Title: sc.OtherTitle, Icon: sc.OtherIcon, Unit: "Technologies"},
				Skills: rest,
			})
		}
	}

	if sc.FeaturedTitle != "" {
		source := groups
		if sc.FeaturedBuckets > 0 && sc.FeaturedBuckets < len(source) {
			source = source[:sc.FeaturedBuckets]
		}
		for _, s := range skills.Featured(source, sc.FeaturedLimit) {
			out.Featured = append(out.Featured, b.skillItem(s))
		}
		if len(out.Featured) > 0 {
			out.FeaturedTitle = sc.FeaturedTitle
			out.FeaturedMeta = append([]string(nil), sc.FeaturedMeta...)
			out.ProficiencyLabel = sc.ProficiencyLabel
		}
	}

	for _, g := range groups {
		if len(g.Skills) == 0 {
			continue
		}
		unit := g.Unit
		if unit == "" {
			unit = "Technologies"
		}
		title := g.Title
		if title == "" {
			title = g.Key
		}
		sg := SkillGroup{
			Key:       g.Key,
			Title:     title,
			Icon:      g.Icon,
			Caption:   g.Caption,
			Highlight: g.Highlight,
			Summary:   fmt.Sprintf("%d %s • %d%% Avg", len(g.Skills), unit, b.cfg.Scale.Average(g.Skills)),
		}
		members := g.Skills
		if sc.GroupLimit > 0 && len(members) > sc.GroupLimit {
			members = members[:sc.GroupLimit]
		}
		for _, s := range members {
			item := b.skillItem(s)
			item.Note = ""
			sg.Items = append(sg.Items, item)
		}
		out.Groups = append(out.Groups, sg)
	}
	return out
}

func (b *builder) experience() *Experience {
	ec := b.cfg.Experience
	out := &Experience{}
	if len(ec.Achievements) > 0 {
		out.AchievementsTitle = ec.AchievementsTitle
	}
	for _, e := range b.state.Experience {
		item := ExperienceItem{
			ID:           e.ID,
			Position:     e.Position,
			Company:      e.Company,
			Location:     e.Location,
			Period:       Period(e.StartDate, e.EndDate, b.rawDates()),
			Description:  e.Description,
			Achievements: append([]string(nil), ec.Achievements...),
		}
		if strings.TrimSpace(e.EndDate) == "" {
			item.Badge = ec.CurrentBadge
		} else {
			item.Badge = ec.PastBadge
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func (b *builder) projects() []ProjectItem {
	pc := b.cfg.Projects
	list := b.state.Projects
	if pc.Limit > 0 && len(list) > pc.Limit {
		list = list[:pc.Limit]
	}

	out := make([]ProjectItem, 0, len(list))
	for _, p := range list {
		techs := p.Technologies
		if pc.TechLimit > 0 && len(techs) > pc.TechLimit {
			techs = techs[:pc.TechLimit]
		}
		item := ProjectItem{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Period:       Period(p.StartDate, p.EndDate, b.rawDates()),
			Image:        SafeURL(p.Image),
			Technologies: append([]string(nil), techs...),
		}
		if href := SafeURL(p.Github); href != "" && pc.CodeLabel != "" {
			item.Links = append(item.Links, Link{Label: pc.CodeLabel, Href: href, External: true})
		}
		if href := SafeURL(p.Link); href != "" && pc.LinkLabel != "" {
			item.Links = append(item.Links, Link{Label: pc.LinkLabel, Href: href, External: true})
		}
		if pc.Banner != nil {
			banner := &Banner{
				Icon:    pc.Banner.Icon,
				Title:   pc.Banner.Title,
				Caption: pc.Banner.Caption,
				Badge:   pc.Badge,
			}
			if pc.Banner.UseProjectTitle {
				banner.Title = p.Title
			}
			item.Banner = banner
		}
		out = append(out, item)
	}
	return out
}

func (b *builder) education() []EducationItem {
	out := make([]EducationItem, 0, len(b.state.Education))
	for _, e := range b.state.Education {
		item := EducationItem{
			ID:          e.ID,
			Degree:      e.Degree,
			Field:       e.Field,
			Institution: e.Institution,
			Period:      Period(e.StartDate, e.EndDate, b.rawDates()),
		}
		if strings.TrimSpace(e.GPA) != "" {
			item.GPA = "GPA: " + strings.TrimSpace(e.GPA)
		}
		out = append(out, item)
	}
	return out
}

func (b *builder) contact() *Contact {
	cc := b.cfg.Contact
	u := b.state.UserData
	out := &Contact{InfoTitle: cc.InfoTitle}

	if cc.Details {
		if u.Phone != "" {
			out.Details = append(out.Details, Detail{Icon: "📞", Text: u.Phone, Href: "tel:" + u.Phone})
		}
		if u.Email != "" {
			out.Details = append(out.Details, Detail{Icon: "✉️", Text: u.Email, Href: "mailto:" + u.Email})
		}
		if u.Location != "" {
			out.Details = append(out.Details, Detail{Icon: "📍", Text: u.Location})
		}
	}
	if cc.Social {
		if href := SafeURL(u.Github); href != "" {
			out.Social = append(out.Social, Link{Label: "GitHub", Href: href, Icon: "🐙", External: true})
		}
		if href := SafeURL(u.Linkedin); href != "" {
			out.Social = append(out.Social, Link{Label: "LinkedIn", Href: href, Icon: "💼", External: true})
		}
		if href := SafeURL(u.Website); href != "" {
			out.Social = append(out.Social, Link{Label: "Website", Href: href, Icon: "🌐", External: true})
		}
	}
	if cc.CallToAction {
		if u.Email != "" {
			out.Actions = append(out.Actions, Link{Label: "Send Email", Href: "mailto:" + u.Email})
		}
		if u.Phone != "" {
			out.Actions = append(out.Actions, Link{Label: "Call Now", Href: "tel:" + u.Phone})
		}
	}
	if cc.FormTitle != "" {
		out.Form = &Form{
			Title:  cc.FormTitle,
			Submit: cc.SubmitLabel,
			Fields: []FormField{
				{Name: "name", Type: "text", Placeholder: "Your Name"},
				{Name: "email", Type: "email", Placeholder: "Your Email"},
				{Name: "message", Type: "textarea", Placeholder: "Your Message"},
			},
		}
	}
	return out
}

func (b *builder) rawDates() bool {
	return b.cfg.DateStyle == templates.DateRaw
}

func displayName(name string, c templates.NameCase) string {
	switch c {
	case templates.NameUpper:
		return strings.ToUpper(name)
	case templates.NameFirst:
		if fields := strings.Fields(name); len(fields) > 0 {
			return fields[0]
		}
	}
	return name
}

func pageTitle(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Portfolio"
	}
	return strings.TrimSpace(name) + " - Portfolio"
}
