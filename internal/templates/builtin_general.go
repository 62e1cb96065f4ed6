package templates

import (
	"github.com/jonathan/portfolio-builder/internal/skills"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var linearAccents = skills.Accents{
	Expert:       "from-blue-500 to-blue-600",
	Advanced:     "from-blue-400 to-blue-500",
	Intermediate: "from-blue-300 to-blue-400",
	Beginner:     "from-blue-200 to-blue-300",
	Default:      "from-blue-300 to-blue-400",
}

func simpleTemplate() *Config {
	return &Config{
		Info: types.TemplateInfo{
			ID:          "simple",
			Name:        "Simple",
			Description: "Clean single-page layout with the essentials and nothing else",
			Difficulty:  types.DifficultyBeginner,
		},
		Scale:   skills.LinearScale,
		Accents: linearAccents,
		Palette: Palette{
			Page:       "min-h-screen bg-white text-gray-800",
			Hero:       "bg-gray-50 py-16 px-6 text-center",
			HeroName:   "text-5xl font-bold text-gray-900 mb-4",
			HeroTitle:  "text-2xl text-gray-600 mb-8",
			HeroBio:    "text-lg text-gray-700 max-w-2xl mx-auto leading-relaxed",
			HeroLink:   "text-blue-600 hover:text-blue-800 mx-3",
			Section:    "container mx-auto max-w-4xl py-12 px-6",
			Heading:    "text-3xl font-bold text-gray-900 mb-8",
			Subheading: "text-lg text-gray-600 mb-6",
			Card:       "bg-gray-50 p-6 rounded-lg mb-4",
			CardTitle:  "text-xl font-semibold text-gray-900",
			Muted:      "text-sm text-gray-500",
			Body:       "text-gray-700 mt-2",
			Tag:        "inline-block px-3 py-1 mr-2 mb-2 bg-blue-100 text-blue-800 rounded-full text-sm",
			BarTrack:   "w-full bg-gray-200 rounded-full h-2 my-2",
			Bar:        "bg-blue-600 h-2 rounded-full",
			Link:       "text-blue-600 hover:text-blue-800 mr-4",
			Button:     "inline-block px-6 py-3 bg-blue-600 text-white rounded-lg mx-2",
			Footer:     "bg-gray-50 py-8 text-center text-gray-600",
		},
		Sections: []SectionSpec{
			{Kind: SectionHero, Anchor: "home"},
			{Kind: SectionSkills, Anchor: "skills", Heading: "Skills"},
			{Kind: SectionExperience, Anchor: "experience", Heading: "Experience"},
			{Kind: SectionProjects, Anchor: "projects", Heading: "Projects"},
			{Kind: SectionEducation, Anchor: "education", Heading: "Education"},
			{Kind: SectionContact, Anchor: "contact", Heading: "Contact", Subheading: "Ready to work together? Let's get in touch!"},
			{Kind: SectionFooter},
		},
		Hero: HeroConfig{ContactLinks: true},
		Skills: SkillsConfig{
			Display:      SkillsFlat,
			ShowCategory: true,
			ShowLevel:    true,
			ShowBar:      true,
		},
		Projects:     ProjectsConfig{LinkLabel: "View Project", CodeLabel: "GitHub"},
		Contact:      ContactConfig{CallToAction: true},
		FooterSuffix: ". All rights reserved.",
	}
}

func minimalTemplate() *Config {
	return &Config{
		Info: types.TemplateInfo{
			ID:          "minimal",
			Name:        "Minimal",
			Description: "Black-on-white typographic layout with raw dates and an education section",
			Difficulty:  types.DifficultyBeginner,
		},
		Scale:   skills.LinearScale,
		Accents: linearAccents,
		Palette: Palette{
			Page:       "min-h-screen bg-white text-black",
			Hero:       "max-w-3xl mx-auto pt-16 pb-8 px-6",
			HeroName:   "text-4xl font-light mb-2",
			HeroTitle:  "text-xl text-gray-600 mb-6",
			HeroBio:    "text-gray-800 leading-relaxed mt-8",
			HeroLink:   "text-black underline mr-4",
			Section:    "max-w-3xl mx-auto py-8 px-6 border-t border-gray-200",
			Heading:    "text-2xl font-light mb-6",
			Subheading: "text-gray-600 mb-4",
			Card:       "mb-6",
			CardTitle:  "text-lg font-medium",
			Muted:      "text-sm text-gray-500",
			Body:       "text-gray-800 mt-2",
			Tag:        "inline-block mr-3 text-sm text-gray-600",
			Link:       "text-black underline mr-4",
			Footer:     "max-w-3xl mx-auto py-8 px-6 text-sm text-gray-500",
		},
		Sections: []SectionSpec{
			{Kind: SectionHero, Anchor: "about"},
			{Kind: SectionSkills, Anchor: "skills", Heading: "Skills"},
			{Kind: SectionProjects, Anchor: "projects", Heading: "Projects"},
			{Kind: SectionExperience, Anchor: "experience", Heading: "Experience"},
			{Kind: SectionEducation, Anchor: "education", Heading: "Education"},
			{Kind: SectionContact, Anchor: "contact", Heading: "Contact"},
			{Kind: SectionFooter},
		},
		Hero:         HeroConfig{ContactLinks: true, BioHeading: "About"},
		Skills:       SkillsConfig{Display: SkillsFlat, ShowCategory: true},
		Projects:     ProjectsConfig{LinkLabel: "View Project", CodeLabel: "GitHub"},
		Contact:      ContactConfig{Details: true},
		FooterSuffix: ". All rights reserved.",
		DateStyle:    DateRaw,
	}
}

func modernTemplate() *Config {
	return &Config{
		Info: types.TemplateInfo{
			ID:          "modern",
			Name:        "Modern",
			Description: "Card-based layout that follows your primary color, dark mode and corner style",
			Difficulty:  types.DifficultyIntermediate,
		},
		Scale:   skills.LinearScale,
		Accents: linearAccents,
		Palette: Palette{
			Page:       "min-h-screen bg-gray-50 text-gray-800",
			Hero:       "py-20 px-6 text-center bg-blue-600",
			HeroName:   "text-5xl font-bold text-white mb-4",
			HeroTitle:  "text-2xl text-gray-200 mb-6",
			HeroBio:    "text-lg text-gray-600 max-w-3xl mx-auto mt-10 leading-relaxed",
			HeroLink:   "text-white hover:underline mx-3",
			Section:    "max-w-5xl mx-auto py-12 px-6",
			Heading:    "text-3xl font-bold mb-8",
			Subheading: "text-gray-500 mb-6",
			Card:       "bg-white border border-gray-200 p-6 mb-4 shadow-sm",
			CardTitle:  "text-xl font-semibold",
			Muted:      "text-sm text-gray-500",
			Body:       "text-gray-600 mt-2",
			Tag:        "inline-block px-3 py-1 mr-2 mb-2 rounded-full text-sm bg-blue-50 text-blue-700",
			Badge:      "inline-block px-2 py-1 rounded text-xs bg-blue-50 text-blue-700",
			Link:       "text-blue-600 hover:underline mr-4",
			Footer:     "py-8 text-center text-gray-500 bg-gray-100",
			Animate:    "transition-transform duration-300 hover:-translate-y-1",
		},
		Dark: Palette{
			Page:      "min-h-screen bg-gray-800 text-gray-100",
			HeroBio:   "text-lg text-gray-300 max-w-3xl mx-auto mt-10 leading-relaxed",
			Card:      "bg-gray-700 border border-gray-600 p-6 mb-4 shadow-sm",
			Muted:     "text-sm text-gray-400",
			Body:      "text-gray-300 mt-2",
			Footer:    "py-8 text-center text-gray-400 bg-gray-900",
			CardTitle: "text-xl font-semibold text-white",
		},
		Sections: []SectionSpec{
			{Kind: SectionHero, Anchor: "home"},
			{Kind: SectionSkills, Anchor: "skills", Heading: "Skills"},
			{Kind: SectionProjects, Anchor: "projects", Heading: "Projects"},
			{Kind: SectionExperience, Anchor: "experience", Heading: "Experience"},
			{Kind: SectionEducation, Anchor: "education", Heading: "Education"},
			{Kind: SectionContact, Anchor: "contact", Heading: "Contact"},
			{Kind: SectionFooter},
		},
		Hero:         HeroConfig{ContactLinks: true, BioHeading: "About Me"},
		Skills:       SkillsConfig{Display: SkillsFlat, ShowCategory: true, ShowLevel: true},
		Projects:     ProjectsConfig{LinkLabel: "View Project", CodeLabel: "GitHub"},
		Contact:      ContactConfig{Details: true, Social: true},
		FooterSuffix: ". All rights reserved.",
		Honors:       DesignSupport{PrimaryColor: true, DarkMode: true, BorderRadius: true, Animations: true},
	}
}

func professionalTemplate() *Config {
	return &Config{
		Info: types.TemplateInfo{
			ID:          "professional",
			Name:        "Professional",
			Description: "Polished dark layout with navigation, stats and skills grouped by category",
			Difficulty:  types.DifficultyIntermediate,
		},
		Scale: skills.LinearScale,
		Accents: skills.Accents{
			Expert:       "from-blue-500 to-cyan-500",
			Advanced:     "from-green-500 to-emerald-500",
			Intermediate: "from-yellow-500 to-orange-500",
			Beginner:     "from-orange-500 to-red-500",
			Default:      "from-blue-500 to-cyan-500",
		},
		Palette: darkPalette("cyan", "from-gray-900 via-slate-900 to-gray-900"),
		Sections: []SectionSpec{
			{Kind: SectionNav},
			{Kind: SectionHero, Anchor: "home", NavLabel: "Home"},
			{Kind: SectionStats, Anchor: "stats"},
			{Kind: SectionSkills, Anchor: "skills", NavLabel: "Skills", Heading: "Skills & Technologies",
				Subheading: "A comprehensive overview of my technical expertise and proficiency levels"},
			{Kind: SectionExperience, Anchor: "work", NavLabel: "Work", Heading: "Work Experience",
				Subheading: "My professional journey and achievements"},
			{Kind: SectionProjects, Anchor: "projects", NavLabel: "Projects", Heading: "Featured Projects",
				Subheading: "A showcase of my recent work and contributions"},
			{Kind: SectionEducation, Anchor: "education", Heading: "Education"},
			{Kind: SectionContact, Anchor: "contact", NavLabel: "Contact", Heading: "Get In Touch",
				Subheading: "Let's collaborate and build something amazing together"},
			{Kind: SectionFooter},
		},
		Hero: HeroConfig{NameCase: NameFirst, Actions: []string{"Hire Me", "Download CV"}},
		Stats: []Stat{
			{Icon: "⭐", Value: "1+", Label: "Years Experience"},
			{Icon: "🚀", Value: "15+", Label: "Projects Completed"},
			{Icon: "⚡", Value: "10+", Label: "Technologies"},
			{Icon: "🎯", Value: "92%", Label: "Academic Score"},
		},
		Skills: SkillsConfig{
			Display: SkillsGrouped,
			Buckets: skills.KeywordTable{
				{Key: "frontend", Title: "Frontend", Icon: "🌐", Unit: "Technologies"},
				{Key: "backend", Title: "Backend", Icon: "🔧", Unit: "Technologies"},
				{Key: "mobile", Title: "Mobile", Icon: "📱", Unit: "Technologies"},
				{Key: "tools", Title: "Tools", Icon: "🛠️", Unit: "Technologies"},
			},
			OtherTitle:  "Other Skills",
			OtherIcon:   "🗄️",
			GroupLimit:  3,
			ShowPercent: true,
			ShowBar:     true,
		},
		Experience: ExperienceConfig{
			CurrentBadge:      "Current",
			PastBadge:         "Full-time",
			AchievementsTitle: "Key Achievements",
			Achievements:      []string{"✓ Built 5+ production applications", "✓ Improved performance by 40%", "✓ Led team of 3 developers"},
		},
		Projects: ProjectsConfig{
			LinkLabel: "Live Demo",
			CodeLabel: "View Code",
			Badge:     "Live",
			Banner:    &Banner{Icon: "</>"},
		},
		Contact: ContactConfig{
			InfoTitle:   "Contact Information",
			Details:     true,
			Social:      true,
			FormTitle:   "Send a Message",
			SubmitLabel: "Send Message",
		},
		FooterSuffix: " - Built with passion and code",
	}
}

func creativeTemplate() *Config {
	return &Config{
		Info: types.TemplateInfo{
			ID:          "creative",
			Name:        "Creative",
			Description: "Bold orange and pink showcase for designers and makers",
			Difficulty:  types.DifficultyIntermediate,
		},
		Scale: skills.LinearScale,
		Accents: skills.Accents{
			Expert:       "from-orange-500 to-pink-500",
			Advanced:     "from-orange-400 to-pink-400",
			Intermediate: "from-yellow-400 to-orange-400",
			Beginner:     "from-yellow-300 to-orange-300",
			Default:      "from-orange-400 to-pink-400",
		},
		Palette: Palette{
			Page:       "min-h-screen bg-gradient-to-br from-orange-50 via-red-50 to-pink-50 text-gray-900",
			Nav:        "sticky top-0 z-50 bg-white/80 backdrop-blur px-6 py-4 flex justify-between items-center",
			NavBrand:   "text-2xl font-black bg-gradient-to-r from-orange-500 to-pink-500 bg-clip-text text-transparent",
			NavLink:    "text-gray-700 hover:text-orange-500 mx-3 font-medium",
			Hero:       "py-24 px-6 text-center",
			HeroName:   "text-6xl md:text-8xl font-black mb-4 bg-gradient-to-r from-orange-500 via-red-500 to-pink-500 bg-clip-text text-transparent",
			HeroTitle:  "text-2xl md:text-3xl text-gray-700 mb-6",
			HeroBio:    "text-lg text-gray-600 max-w-3xl mx-auto mb-8 leading-relaxed",
			Button:     "px-8 py-4 bg-gradient-to-r from-orange-500 to-pink-500 text-white rounded-full font-bold mx-2",
			ButtonAlt:  "px-8 py-4 border-2 border-orange-500 text-orange-500 rounded-full font-bold mx-2",
			Section:    "py-20 px-6 max-w-6xl mx-auto",
			Heading:    "text-5xl font-black text-center mb-4 bg-gradient-to-r from-orange-500 to-pink-500 bg-clip-text text-transparent",
			Subheading: "text-xl text-gray-600 text-center mb-12",
			Card:       "bg-white rounded-3xl shadow-xl p-6 mb-6",
			CardTitle:  "text-xl font-bold text-gray-900",
			Muted:      "text-sm text-gray-500",
			Body:       "text-gray-600 mt-2",
			Tag:        "inline-block px-3 py-1 mr-2 mb-2 bg-gradient-to-r from-orange-100 to-pink-100 text-orange-700 rounded-full text-sm",
			BarTrack:   "w-full bg-orange-100 rounded-full h-3 my-2",
			Bar:        "h-3 rounded-full bg-gradient-to-r",
			Link:       "text-orange-600 hover:text-pink-600 font-semibold mr-4",
			Input:      "w-full px-4 py-3 mb-4 border-2 border-orange-200 rounded-xl",
			Footer:     "py-8 text-center text-gray-600",
		},
		Sections: []SectionSpec{
			{Kind: SectionNav},
			{Kind: SectionHero, Anchor: "home", NavLabel: "Home"},
			{Kind: SectionSkills, Anchor: "skills", NavLabel: "Skills", Heading: "Creative Skills",
				Subheading: "A colorful showcase of my creative abilities"},
			{Kind: SectionExperience, Anchor: "work", NavLabel: "Work", Heading: "Experience"},
			{Kind: SectionProjects, Anchor: "projects", NavLabel: "Projects", Heading: "Creative Projects",
				Subheading: "Bold and innovative projects that showcase creativity"},
			{Kind: SectionEducation, Anchor: "education", Heading: "Education"},
			{Kind: SectionContact, Anchor: "contact", NavLabel: "Contact", Heading: "Let's Create Together",
				Subheading: "Ready to bring your ideas to life?"},
			{Kind: SectionFooter},
		},
		Hero: HeroConfig{NameCase: NameFirst, Actions: []string{"Let's Work Together", "View My Work"}},
		Skills: SkillsConfig{
			Display:      SkillsFlat,
			Icons:        IconSet{Default: "🎨"},
			ShowCategory: true,
			ShowLevel:    true,
			ShowBar:      true,
		},
		Projects: ProjectsConfig{
			LinkLabel: "Live Demo",
			CodeLabel: "View Project",
			Banner:    &Banner{Icon: "🚀", UseProjectTitle: true},
		},
		Contact: ContactConfig{
			InfoTitle:   "Get In Touch",
			Details:     true,
			Social:      true,
			FormTitle:   "Send a Message",
			SubmitLabel: "Send Message",
		},
		FooterSuffix: " - Creative Portfolio",
	}
}
