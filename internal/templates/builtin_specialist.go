package templates

import (
	"github.com/jonathan/portfolio-builder/internal/skills"
	"github.com/jonathan/portfolio-builder/internal/types"
)

// specialist carries what differs between the role-focused templates. They
// share section order, hero layout, grouped skills and the contact form.
type specialist struct {
	info           types.TemplateInfo
	accent         string
	gradient       string
	palette        Palette
	accents        skills.Accents
	actions        []string
	stats          []Stat
	skillsHeading  string
	skillsSub      string
	featuredTitle  string
	featuredLimit  int
	featuredFrom   int
	featuredMeta   []string
	groupLimit     int
	buckets        skills.KeywordTable
	icons          IconSet
	notes          map[string]string
	experienceHead string
	experienceSub  string
	achievements   []string
	projectsSub    string
	banner         Banner
	linkLabel      string
	contactHeading string
	contactSub     string
	contactInfo    string
	footer         string
}

func newSpecialist(s specialist) *Config {
	experienceHead := s.experienceHead
	if experienceHead == "" {
		experienceHead = "Professional Experience"
	}
	banner := s.banner
	return &Config{
		Info:    s.info,
		Scale:   skills.GenerousScale,
		Accents: s.accents,
		Palette: darkPalette(s.accent, s.gradient).Merge(s.palette),
		Sections: []SectionSpec{
			{Kind: SectionHero, Anchor: "home"},
			{Kind: SectionStats, Anchor: "stats"},
			{Kind: SectionSkills, Anchor: "skills", Heading: s.skillsHeading, Subheading: s.skillsSub},
			{Kind: SectionExperience, Anchor: "experience", Heading: experienceHead, Subheading: s.experienceSub},
			{Kind: SectionProjects, Anchor: "projects", Heading: "Featured Projects", Subheading: s.projectsSub},
			{Kind: SectionEducation, Anchor: "education", Heading: "Education"},
			{Kind: SectionContact, Anchor: "contact", Heading: s.contactHeading, Subheading: s.contactSub},
			{Kind: SectionFooter},
		},
		Hero:  HeroConfig{NameCase: NameUpper, Actions: s.actions},
		Stats: s.stats,
		Skills: SkillsConfig{
			Display:          SkillsGrouped,
			Buckets:          s.buckets,
			OtherTitle:       "Other Skills",
			OtherIcon:        "✨",
			GroupLimit:       s.groupLimit,
			FeaturedTitle:    s.featuredTitle,
			FeaturedLimit:    s.featuredLimit,
			FeaturedBuckets:  s.featuredFrom,
			FeaturedMeta:     s.featuredMeta,
			ProficiencyLabel: "Proficiency",
			Notes:            s.notes,
			Icons:            s.icons,
			ShowPercent:      true,
			ShowBar:          true,
		},
		Experience: ExperienceConfig{
			CurrentBadge: "Current",
			PastBadge:    "Full-time",
			Achievements: s.achievements,
		},
		Projects: ProjectsConfig{
			Limit:     3,
			TechLimit: 4,
			LinkLabel: s.linkLabel,
			CodeLabel: "View Code",
			Badge:     "Live",
			Banner:    &banner,
		},
		Contact: ContactConfig{
			InfoTitle:   s.contactInfo,
			Details:     true,
			Social:      true,
			FormTitle:   "Send a Message",
			SubmitLabel: "Send Message",
		},
		FooterSuffix: s.footer,
	}
}

func frontendTemplate() *Config {
	return newSpecialist(specialist{
		info: types.TemplateInfo{
			ID:          "frontend",
			Name:        "Frontend Developer",
			Description: "Bright gradient layout for UI engineers with framework, design and tooling breakdowns",
			Difficulty:  types.DifficultyAdvanced,
		},
		accent:   "blue",
		gradient: "from-blue-50 via-white to-purple-50",
		palette: Palette{
			Page:      "min-h-screen bg-gradient-to-br from-blue-50 via-white to-purple-50 text-gray-900",
			HeroName:  "text-5xl md:text-7xl font-bold mb-4 bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent",
			HeroTitle: "text-2xl md:text-3xl text-blue-700 mb-6",
			HeroBio:   "text-lg text-gray-600 max-w-3xl mx-auto mb-8 leading-relaxed",
			Stats:     "py-12 px-6 bg-white/70 grid grid-cols-2 md:grid-cols-4 gap-6 text-center",
			StatLabel: "text-gray-600",
			Heading:   "text-4xl font-bold text-center mb-4 bg-gradient-to-r from-blue-600 to-purple-600 bg-clip-text text-transparent",
			Card:      "bg-white border border-blue-100 shadow-lg rounded-xl p-6 mb-6",
			CardTitle: "text-xl font-bold text-gray-900 mb-2",
			Body:      "text-gray-600 leading-relaxed",
			Muted:     "text-gray-500 text-sm",
			BarTrack:  "w-full bg-gray-200 rounded-full h-2 my-2",
			Tag:       "inline-block px-3 py-1 mr-2 mb-2 bg-blue-100 text-blue-700 rounded-full text-sm",
			Input:     "w-full px-4 py-3 mb-4 bg-white border border-gray-300 rounded-lg",
			Footer:    "py-8 text-center text-gray-500 border-t border-gray-200",
		},
		accents: skills.Accents{
			Expert:       "from-blue-500 to-purple-500",
			Advanced:     "from-green-500 to-blue-500",
			Intermediate: "from-yellow-500 to-green-500",
			Beginner:     "from-orange-500 to-yellow-500",
			Default:      "from-gray-500 to-blue-500",
		},
		actions: []string{"View My Work", "Download Resume"},
		stats: []Stat{
			{Icon: "🎨", Value: "50+", Label: "UI Designs"},
			{Icon: "⚡", Value: "30+", Label: "Web Apps"},
			{Icon: "📱", Value: "100%", Label: "Responsive"},
			{Icon: "🚀", Value: "95%", Label: "Performance"},
		},
		skillsHeading: "Frontend Expertise",
		skillsSub:     "Specialized in creating beautiful, responsive, and performant user interfaces",
		featuredTitle: "Core Technologies",
		featuredLimit: 6,
		featuredFrom:  1,
		featuredMeta:  []string{"Experience: 3+ Years", "Projects: 20+ Apps"},
		groupLimit:    4,
		buckets: skills.KeywordTable{
			{Key: "frontend", Keywords: []string{"react", "vue", "angular", "html", "css", "javascript"},
				Title: "Frameworks", Icon: "💻", Caption: "Modern JavaScript frameworks", Highlight: "React Specialist", Unit: "Technologies"},
			{Key: "ui", Keywords: []string{"figma", "adobe", "sketch", "ui", "ux"},
				Title: "UI/UX Design", Icon: "🎨", Caption: "User interface design", Highlight: "Design Expert", Unit: "Tools"},
			{Key: "tools", Keywords: []string{"git", "webpack", "vite", "npm"},
				Title: "Tools", Icon: "🛠️", Caption: "Development workflow", Highlight: "Tool Master", Unit: "Tools"},
		},
		icons: IconSet{
			Rules: []IconRule{
				{Keywords: []string{"react", "vue", "angular"}, Icon: "💻"},
				{Keywords: []string{"html", "css", "javascript"}, Icon: "🌐"},
				{Keywords: []string{"ui", "ux", "figma"}, Icon: "🎨"},
				{Keywords: []string{"responsive", "mobile"}, Icon: "📱"},
			},
			Default: "🖥️",
		},
		notes: map[string]string{
			"React":      "Modern UI development with hooks and context management.",
			"Vue.js":     "Progressive framework for building user interfaces.",
			"Angular":    "Platform for building mobile and desktop web applications.",
			"JavaScript": "ES6+, async/await, modern JavaScript features.",
			"HTML5":      "Semantic markup and modern web standards.",
			"CSS3":       "Advanced styling with Flexbox, Grid, and animations.",
		},
		experienceSub:  "My journey in frontend development and UI/UX design",
		achievements:   []string{"✓ Built 20+ responsive websites", "✓ Improved UX by 40%", "✓ Led design system implementation"},
		projectsSub:    "A showcase of my frontend development work and UI/UX designs",
		banner:         Banner{Icon: "💻", Title: "Web App", Caption: "Frontend Development"},
		linkLabel:      "Live Demo",
		contactHeading: "Let's Work Together",
		contactSub:     "Ready to create amazing user experiences? Let's discuss your next project",
		contactInfo:    "Get In Touch",
		footer:         " - Crafting beautiful user experiences with code",
	})
}

func backendTemplate() *Config {
	return newSpecialist(specialist{
		info: types.TemplateInfo{
			ID:          "backend",
			Name:        "Backend Developer",
			Description: "Dark green layout for server-side engineers with language, database and cloud breakdowns",
			Difficulty:  types.DifficultyAdvanced,
		},
		accent:   "green",
		gradient: "from-gray-900 via-green-900 to-gray-900",
		accents: skills.Accents{
			Expert:       "from-green-500 to-blue-500",
			Advanced:     "from-blue-500 to-purple-500",
			Intermediate: "from-yellow-500 to-green-500",
			Beginner:     "from-orange-500 to-yellow-500",
			Default:      "from-gray-500 to-green-500",
		},
		actions: []string{"View My Work", "Download Resume"},
		stats: []Stat{
			{Icon: "⚙️", Value: "50+", Label: "APIs Built"},
			{Icon: "🚀", Value: "99.9%", Label: "Uptime"},
			{Icon: "📊", Value: "1M+", Label: "Requests/Day"},
			{Icon: "🔒", Value: "100%", Label: "Secure"},
		},
		skillsHeading: "Backend Expertise",
		skillsSub:     "Specialized in building scalable, secure, and high-performance server-side applications",
		featuredTitle: "Core Technologies",
		featuredLimit: 6,
		featuredFrom:  1,
		featuredMeta:  []string{"Experience: 4+ Years", "Projects: 30+ APIs"},
		groupLimit:    4,
		buckets: skills.KeywordTable{
			{Key: "backend", Keywords: []string{"node", "python", "java", "php", "ruby"},
				Title: "Languages", Icon: "💻", Caption: "Server-side programming", Highlight: "Node.js Expert", Unit: "Languages"},
			{Key: "database", Keywords: []string{"mysql", "postgresql", "mongodb", "redis"},
				Title: "Databases", Icon: "🗄️", Caption: "Data storage & management", Highlight: "Database Pro", Unit: "Databases"},
			{Key: "cloud", Keywords: []string{"aws", "azure", "docker", "kubernetes"},
				Title: "Cloud & DevOps", Icon: "☁️", Caption: "Infrastructure & deployment", Highlight: "Cloud Expert", Unit: "Tools"},
		},
		icons: IconSet{
			Rules: []IconRule{
				{Keywords: []string{"node", "python", "java"}, Icon: "💻"},
				{Keywords: []string{"mysql", "postgresql", "mongodb"}, Icon: "🗄️"},
				{Keywords: []string{"aws", "azure", "docker"}, Icon: "☁️"},
				{Keywords: []string{"api", "rest", "graphql"}, Icon: "🖧"},
			},
			Default: "📦",
		},
		notes: map[string]string{
			"Node.js":       "JavaScript runtime for building scalable server-side applications.",
			"Python":        "Versatile language for web development, data science, and automation.",
			"Java":          "Enterprise-grade applications with Spring framework.",
			"PHP":           "Server-side scripting for web development and APIs.",
			"Ruby on Rails": "Rapid web application development framework.",
			".NET":          "Microsoft framework for building enterprise applications.",
		},
		experienceSub:  "My journey in backend development and system architecture",
		achievements:   []string{"✓ Built 30+ production APIs", "✓ Improved performance by 60%", "✓ Led microservices architecture"},
		projectsSub:    "A showcase of my backend development work and API designs",
		banner:         Banner{Icon: "⚙️", Title: "Backend API", Caption: "Server Development"},
		linkLabel:      "API Docs",
		contactHeading: "Let's Build Something Great",
		contactSub:     "Ready to scale your backend infrastructure? Let's discuss your next project",
		contactInfo:    "Get In Touch",
		footer:         " - Building robust backend systems with precision",
	})
}

func devopsTemplate() *Config {
	return newSpecialist(specialist{
		info: types.TemplateInfo{
			ID:          "devops",
			Name:        "DevOps Engineer",
			Description: "Dark orange layout for platform engineers with cloud, CI/CD and infrastructure breakdowns",
			Difficulty:  types.DifficultyAdvanced,
		},
		accent:   "orange",
		gradient: "from-gray-900 via-orange-900 to-gray-900",
		accents: skills.Accents{
			Expert:       "from-orange-500 to-red-500",
			Advanced:     "from-blue-500 to-purple-500",
			Intermediate: "from-green-500 to-blue-500",
			Beginner:     "from-yellow-500 to-green-500",
			Default:      "from-gray-500 to-orange-500",
		},
		actions: []string{"View My Work", "Download Resume"},
		stats: []Stat{
			{Icon: "🚀", Value: "99.9%", Label: "Uptime"},
			{Icon: "⚡", Value: "50+", Label: "Deployments/Day"},
			{Icon: "🔧", Value: "100+", Label: "Infrastructure"},
			{Icon: "📊", Value: "24/7", Label: "Monitoring"},
		},
		skillsHeading: "DevOps Expertise",
		skillsSub:     "Specialized in automation, infrastructure as code, and continuous integration/deployment",
		featuredTitle: "Core Technologies",
		featuredLimit: 6,
		featuredMeta:  []string{"Experience: 3+ Years", "Projects: 40+ Systems"},
		groupLimit:    4,
		buckets: skills.KeywordTable{
			{Key: "cloud", Keywords: []string{"aws", "azure", "gcp", "docker"},
				Title: "Cloud Platforms", Icon: "☁️", Caption: "Cloud infrastructure & services", Highlight: "AWS Expert", Unit: "Platforms"},
			{Key: "cicd", Keywords: []string{"jenkins", "gitlab", "github", "ci/cd"},
				Title: "CI/CD & Automation", Icon: "⚡", Caption: "Continuous integration & deployment", Highlight: "Automation Pro", Unit: "Tools"},
			{Key: "infrastructure", Keywords: []string{"terraform", "ansible", "kubernetes", "monitoring"},
				Title: "Infrastructure", Icon: "⚙️", Caption: "Infrastructure as code", Highlight: "IaC Specialist", Unit: "Tools"},
		},
		icons: IconSet{
			Rules: []IconRule{
				{Keywords: []string{"docker", "kubernetes"}, Icon: "📦"},
				{Keywords: []string{"aws", "azure", "gcp"}, Icon: "☁️"},
				{Keywords: []string{"jenkins", "ci/cd", "gitlab"}, Icon: "⚡"},
				{Keywords: []string{"terraform", "ansible"}, Icon: "⚙️"},
			},
			Default: "🖧",
		},
		notes: map[string]string{
			"Docker":     "Containerization platform for consistent deployments.",
			"Kubernetes": "Container orchestration for scalable applications.",
			"AWS":        "Cloud computing platform with comprehensive services.",
			"Jenkins":    "Open-source automation server for CI/CD pipelines.",
			"Terraform":  "Infrastructure as code for cloud resource management.",
			"Ansible":    "Configuration management and automation tool.",
		},
		experienceSub:  "My journey in DevOps engineering and infrastructure automation",
		achievements:   []string{"✓ Automated 100+ deployments", "✓ Reduced deployment time by 80%", "✓ Achieved 99.9% uptime"},
		projectsSub:    "A showcase of my DevOps engineering work and infrastructure solutions",
		banner:         Banner{Icon: "⚙️", Title: "DevOps Solution", Caption: "Infrastructure & Automation"},
		linkLabel:      "View Docs",
		contactHeading: "Let's Automate Together",
		contactSub:     "Ready to streamline your infrastructure? Let's discuss your DevOps needs",
		contactInfo:    "Get In Touch",
		footer:         " - Automating infrastructure with precision and reliability",
	})
}

func aimlTemplate() *Config {
	return newSpecialist(specialist{
		info: types.TemplateInfo{
			ID:          "aiml",
			Name:        "AI/ML Engineer",
			Description: "Purple and pink layout for machine learning engineers with model, framework and data breakdowns",
			Difficulty:  types.DifficultyAdvanced,
		},
		accent:   "purple",
		gradient: "from-gray-900 via-purple-900 to-pink-900",
		accents: skills.Accents{
			Expert:       "from-purple-500 to-pink-500",
			Advanced:     "from-blue-500 to-purple-500",
			Intermediate: "from-green-500 to-blue-500",
			Beginner:     "from-yellow-500 to-green-500",
			Default:      "from-gray-500 to-purple-500",
		},
		actions: []string{"View My Work", "Download Resume"},
		stats: []Stat{
			{Icon: "🧠", Value: "50+", Label: "ML Models"},
			{Icon: "📊", Value: "95%", Label: "Accuracy"},
			{Icon: "⚡", Value: "10TB+", Label: "Data Processed"},
			{Icon: "🚀", Value: "5+", Label: "AI Products"},
		},
		skillsHeading: "AI/ML Expertise",
		skillsSub:     "Specialized in machine learning, deep learning, and artificial intelligence solutions",
		featuredTitle: "Core Technologies",
		featuredLimit: 6,
		featuredMeta:  []string{"Experience: 3+ Years", "Projects: 25+ Models"},
		groupLimit:    4,
		buckets: skills.KeywordTable{
			{Key: "ml", Keywords: []string{"machine learning", "deep learning", "neural network", "ai"},
				Title: "Machine Learning", Icon: "🧠", Caption: "ML algorithms & models", Highlight: "ML Expert", Unit: "Technologies"},
			{Key: "python", Keywords: []string{"python", "tensorflow", "pytorch", "scikit"},
				Title: "Python & Frameworks", Icon: "🐍", Caption: "Programming & ML frameworks", Highlight: "Python Specialist", Unit: "Technologies"},
			{Key: "data", Keywords: []string{"pandas", "numpy", "data", "analysis"},
				Title: "Data Science", Icon: "📊", Caption: "Data analysis & visualization", Highlight: "Data Expert", Unit: "Tools"},
		},
		icons: IconSet{
			Rules: []IconRule{
				{Keywords: []string{"python", "tensorflow", "pytorch"}, Icon: "💻"},
				{Keywords: []string{"machine learning", "deep learning"}, Icon: "🧠"},
				{Keywords: []string{"data", "pandas", "numpy"}, Icon: "🗄️"},
				{Keywords: []string{"neural", "ai", "model"}, Icon: "🔬"},
			},
			Default: "📈",
		},
		notes: map[string]string{
			"Python":           "Primary language for data science and machine learning.",
			"TensorFlow":       "Open-source platform for machine learning and deep learning.",
			"PyTorch":          "Deep learning framework with dynamic computation graphs.",
			"Machine Learning": "Algorithms that learn patterns from data.",
			"Deep Learning":    "Neural networks with multiple layers.",
			"Pandas":           "Data manipulation and analysis library for Python.",
		},
		experienceSub:  "My journey in artificial intelligence and machine learning",
		achievements:   []string{"✓ Built 25+ ML models", "✓ Achieved 95% accuracy", "✓ Led AI product development"},
		projectsSub:    "A showcase of my AI/ML development work and intelligent solutions",
		banner:         Banner{Icon: "🧠", Title: "AI Solution", Caption: "Machine Learning"},
		linkLabel:      "View Demo",
		contactHeading: "Let's Build the Future",
		contactSub:     "Ready to implement AI solutions? Let's discuss your machine learning needs",
		contactInfo:    "Get In Touch",
		footer:         " - Building intelligent solutions with artificial intelligence",
	})
}

func mobileTemplate() *Config {
	return newSpecialist(specialist{
		info: types.TemplateInfo{
			ID:          "mobile",
			Name:        "Mobile App Developer",
			Description: "Dark purple layout for app developers with mobile, frontend, backend and tooling breakdowns",
			Difficulty:  types.DifficultyAdvanced,
		},
		accent:   "pink",
		gradient: "from-gray-900 via-purple-900 to-gray-900",
		accents: skills.Accents{
			Expert:       "from-red-500 to-pink-500",
			Advanced:     "from-orange-500 to-red-500",
			Intermediate: "from-yellow-500 to-orange-500",
			Beginner:     "from-green-500 to-yellow-500",
			Default:      "from-blue-500 to-purple-500",
		},
		actions: []string{"Hire Me", "Download CV"},
		stats: []Stat{
			{Icon: "⭐", Value: "2+", Label: "Years Experience"},
			{Icon: "🚀", Value: "15+", Label: "Apps Published"},
			{Icon: "⚡", Value: "10+", Label: "Technologies"},
			{Icon: "🎯", Value: "95%", Label: "Client Satisfaction"},
		},
		skillsHeading: "Skills & Technologies",
		skillsSub:     "A comprehensive overview of my mobile development expertise and proficiency levels",
		featuredTitle: "Mobile Development Technologies",
		featuredLimit: 4,
		featuredFrom:  1,
		featuredMeta:  []string{"Experience: 2+ Years", "Projects: 8+ Apps"},
		groupLimit:    3,
		buckets: skills.KeywordTable{
			{Key: "mobile", Keywords: []string{"react native", "flutter", "android", "ios"},
				Title: "Mobile", Icon: "📱", Caption: "Cross-platform apps", Highlight: "React Native Specialist", Unit: "Technologies"},
			{Key: "frontend", Keywords: []string{"react", "javascript", "html", "css"},
				Title: "Frontend", Icon: "🌐", Caption: "Modern web interfaces", Highlight: "React.js Expert", Unit: "Technologies"},
			{Key: "backend", Keywords: []string{"node", "firebase", "database"},
				Title: "Backend", Icon: "🗄️", Caption: "Server & APIs", Highlight: "Full-Stack Pro", Unit: "Technologies"},
			{Key: "tools", Keywords: []string{"git", "github", "figma"},
				Title: "Tools", Icon: "🛠️", Caption: "Development workflow", Highlight: "Git Master", Unit: "Technologies"},
		},
		icons: IconSet{
			Rules: []IconRule{
				{Keywords: []string{"react native", "react-native"}, Icon: "📱"},
				{Keywords: []string{"flutter"}, Icon: "🎨"},
				{Keywords: []string{"android", "kotlin"}, Icon: "💻"},
				{Keywords: []string{"ios", "swift"}, Icon: "📱"},
				{Keywords: []string{"firebase", "database"}, Icon: "🗄️"},
			},
			Default: "💻",
		},
		notes: map[string]string{
			"React Native":    "Cross-platform mobile apps with native performance and hot reload capabilities.",
			"Flutter":         "Google's UI toolkit for building natively compiled applications with beautiful interfaces.",
			"Android Studio":  "Official IDE for Android development with powerful tools and full control.",
			"iOS Development": "Native iOS app development using Swift with full access to Apple's ecosystem.",
		},
		experienceHead: "Work Experience",
		experienceSub:  "My professional journey and achievements in mobile app development",
		achievements:   []string{"✓ Built 5+ production apps", "✓ Improved performance by 40%", "✓ Led team of 3 developers"},
		projectsSub:    "A showcase of my recent mobile app development work and contributions",
		banner:         Banner{Icon: "📱", Caption: "Mobile App", UseProjectTitle: true},
		linkLabel:      "Live Demo",
		contactHeading: "Get In Touch",
		contactSub:     "Let's collaborate and build amazing mobile applications together",
		contactInfo:    "Contact Information",
		footer:         " - Built with passion and code for mobile excellence",
	})
}
