//nolint:revive // types is a standard Go package name pattern
package types

// SeedState returns the example portfolio a new editing session starts from.
// Each call returns a fresh value.
func SeedState() PortfolioState {
	return PortfolioState{
		SelectedTemplate: "mobile",
		UserData: UserData{
			Name:     "Alex Chen",
			Title:    "Mobile App Developer",
			Bio:      "Passionate mobile app developer specializing in React Native and Flutter. I create cross-platform mobile applications that deliver native performance and exceptional user experiences. Eager to take on new challenges and use creative thinking to build fast, responsive, and user-friendly mobile solutions.",
			Email:    "alex.chen@example.com",
			Phone:    "+1 (555) 987-6543",
			Location: "San Francisco, CA",
			Website:  "https://alexchen.dev",
			Github:   "https://github.com/alexchen",
			Linkedin: "https://linkedin.com/in/alexchen",
		},
		Projects: []ProjectData{
			{
				ID:           "1",
				Title:        "E-Commerce Mobile App",
				Description:  "Built a cross-platform e-commerce mobile app using React Native with Firebase backend. Features include user authentication, payment processing, push notifications, and offline support.",
				Technologies: []string{"React Native", "Firebase", "Redux", "Stripe"},
				Link:         "https://play.google.com/store/apps/details?id=com.ecommerce.app",
				Github:       "https://github.com/alexchen/ecommerce-mobile",
				StartDate:    "2023-01-01",
			},
			{
				ID:           "2",
				Title:        "Task Management Mobile App",
				Description:  "Developed a cross-platform mobile application using React Native for task management with offline capabilities, cloud synchronization, and team collaboration features.",
				Technologies: []string{"React Native", "Redux Toolkit", "Firebase", "AsyncStorage"},
				Link:         "https://apps.apple.com/app/taskmanager/id123456789",
				Github:       "https://github.com/alexchen/taskmanager-mobile",
				StartDate:    "2022-06-01",
			},
			{
				ID:           "3",
				Title:        "Fitness Tracking App",
				Description:  "Created a Flutter-based fitness tracking app with real-time workout monitoring, progress tracking, and social features. Available on both iOS and Android.",
				Technologies: []string{"Flutter", "Dart", "Firebase", "HealthKit", "Google Fit"},
				Link:         "https://play.google.com/store/apps/details?id=com.fitness.tracker",
				Github:       "https://github.com/alexchen/fitness-tracker",
				StartDate:    "2023-03-01",
			},
		},
		Experience: []ExperienceData{
			{
				ID:          "1",
				Position:    "Senior Mobile App Developer",
				Company:     "MobileTech Solutions",
				StartDate:   "2022-01-01",
				Description: "Lead development of multiple cross-platform mobile applications using React Native and Flutter. Mentor junior developers and implement best practices for mobile app performance and user experience.",
				Location:    "San Francisco, CA",
			},
			{
				ID:          "2",
				Position:    "Mobile App Developer",
				Company:     "AppStart Inc",
				StartDate:   "2020-06-01",
				EndDate:     "2021-12-31",
				Description: "Developed and maintained mobile applications using React Native and native iOS/Android development. Collaborated with design team to implement responsive mobile interfaces and optimized app performance.",
				Location:    "Remote",
			},
		},
		Education: []EducationData{
			{
				ID:          "1",
				Degree:      "Bachelor of Science",
				Institution: "University of California",
				Field:       "Computer Science",
				StartDate:   "2016-09-01",
				EndDate:     "2020-05-31",
				GPA:         "3.8",
			},
		},
		Skills: []SkillData{
			{ID: "1", Name: "React Native", Level: LevelExpert, Category: "mobile"},
			{ID: "2", Name: "Flutter", Level: LevelAdvanced, Category: "mobile"},
			{ID: "3", Name: "Android Studio", Level: LevelAdvanced, Category: "mobile"},
			{ID: "4", Name: "iOS Development", Level: LevelIntermediate, Category: "mobile"},
			{ID: "5", Name: "JavaScript", Level: LevelExpert, Category: "frontend"},
			{ID: "6", Name: "React.js", Level: LevelExpert, Category: "frontend"},
			{ID: "7", Name: "Next.js", Level: LevelAdvanced, Category: "frontend"},
			{ID: "8", Name: "Node.js", Level: LevelAdvanced, Category: "backend"},
			{ID: "9", Name: "Firebase", Level: LevelExpert, Category: "backend"},
			{ID: "10", Name: "MongoDB", Level: LevelAdvanced, Category: "database"},
			{ID: "11", Name: "Git", Level: LevelExpert, Category: "tools"},
			{ID: "12", Name: "GitHub", Level: LevelExpert, Category: "tools"},
		},
		DesignOptions: DesignOptions{
			PrimaryColor:   "#3b82f6",
			SecondaryColor: "#8b5cf6",
			FontFamily:     "Inter, sans-serif",
			Layout:         LayoutSingleColumn,
			Animations:     true,
			DarkMode:       false,
			BorderRadius:   RadiusMedium,
		},
	}
}
