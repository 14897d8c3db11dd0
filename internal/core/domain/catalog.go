package domain

// Static content catalogs. Loaded at process start; the accessor functions
// return fresh slices so callers can filter and sort freely.

var defaultProjects = []Project{
	{
		ID:          "1",
		Slug:        "ai-agent-dashboard",
		Name:        "AI-Agent Dashboard",
		Category:    "AI/ML",
		Description: "Full-featured AI-powered WhatsApp Business Bot Dashboard with customer conversation management and multi-role access.",
		Role:        "Front-End Developer",
		Duration:    "May 2025 – Present",
		TechStack:   []string{"Next.js 15", "React 19", "Tailwind CSS", "TanStack Query", "TipTap", "Recharts", "AWS EC2"},
		Points: []string{
			"Built a full-featured AI-powered WhatsApp Business Bot Dashboard with customer conversation management and multi-role access.",
			"Implemented live chat, drag-and-drop templates, TipTap rich text editor, and analytics with Recharts.",
			"Deployed using AWS EC2, Nginx, SSL, and automation scripts.",
			"Optimized UX with infinite scroll, advanced filtering, toasts, and multilingual/RTL support.",
		},
		Year:     2025,
		Featured: true,
	},
	{
		ID:          "2",
		Slug:        "logo-diffusion",
		Name:        "LogoDiffusion",
		Category:    "Frontend",
		Description: "Gallery system with four gallery types, bulk operations, and drag-and-drop reordering.",
		Role:        "Front-End Developer",
		Duration:    "May 2025 – Present",
		TechStack:   []string{"React", "Redux", "TypeScript", "@dnd-kit", "REST API"},
		Points: []string{
			"Developed a gallery system with 4 gallery types, bulk operations, and drag-and-drop reordering.",
			"Implemented advanced filtering, optimistic UI updates, and request cancellation.",
			"Enhanced UI with modals, dropdowns, skeleton loaders, and confirmation dialogs.",
		},
		Year:     2025,
		Featured: true,
	},
	{
		ID:          "3",
		Slug:        "lifeward",
		Name:        "Lifeward",
		Category:    "E-Commerce",
		Description: "E-commerce platform for flowers and gifts with filtering, favorites, and responsive design.",
		Role:        "Front-End Developer",
		Duration:    "March 2024 – May 2024",
		TechStack:   []string{"ReactJS", "Redux Toolkit"},
		Points: []string{
			"Built an e-commerce platform for flowers and gifts with filtering, favorites, and responsive design.",
		},
		Year: 2024,
	},
	{
		ID:          "4",
		Slug:        "aswar-almanora",
		Name:        "Aswar Almanora",
		Category:    "E-Commerce",
		Description: "E-commerce site for herbs and spices with reusable UI components.",
		Role:        "Front-End Developer",
		Duration:    "July 2023 – Sept 2023",
		TechStack:   []string{"ReactJS", "Redux Toolkit"},
		Points: []string{
			"Developed an e-commerce site for herbs and spices with reusable UI components.",
		},
		Year: 2023,
	},
	{
		ID:          "5",
		Slug:        "youtube-clone",
		Name:        "YouTube Clone",
		Category:    "Personal",
		Description: "Responsive YouTube clone with video search, category browsing, and playback.",
		Role:        "Front-End Developer",
		Duration:    "Jan 2025 – Feb 2025",
		TechStack:   []string{"ReactJS", "YouTube Data API"},
		Points: []string{
			"Developed a responsive YouTube clone with video search, category browsing, and playback functionalities.",
		},
		Year: 2025,
	},
}

var defaultSkills = []Skill{
	{Name: "React", Category: "Frontend", Proficiency: 95},
	{Name: "Next.js", Category: "Frontend", Proficiency: 93},
	{Name: "TypeScript", Category: "Frontend", Proficiency: 91},
	{Name: "JavaScript", Category: "Frontend", Proficiency: 89},
	{Name: "Tailwind CSS", Category: "Frontend", Proficiency: 87},
	{Name: "Redux Toolkit", Category: "Frontend", Proficiency: 85},
	{Name: "HTML/CSS", Category: "Frontend", Proficiency: 83},
	{Name: "Git", Category: "Tools", Proficiency: 90},
	{Name: "Webpack", Category: "Tools", Proficiency: 88},
	{Name: "Vite", Category: "Tools", Proficiency: 86},
	{Name: "AWS EC2", Category: "Tools", Proficiency: 85},
	{Name: "Nginx", Category: "Tools", Proficiency: 83},
}

var defaultExperience = []Experience{
	{
		Company:  "Aydn Labs",
		Role:     "Front-End Developer (Remote)",
		Duration: "May 2025 – Present",
		Points: []string{
			"Designed, implemented, and deployed scalable web apps for AI-powered platforms.",
			"Handled AWS EC2 deployments, Nginx configurations, SSL setup, and automation scripts.",
			"Developed front-end features using React, Next.js, TypeScript, Tailwind CSS, TanStack Query, Recharts, TipTap.",
			"Contributed to backend using Node.js.",
			"Led bug fixing and performance optimization.",
		},
	},
	{
		Company:  "Sarri Technology",
		Role:     "Front-End Developer",
		Duration: "July 2023 – Dec 2023",
		Location: "Cairo, Egypt",
		Points: []string{
			"Developed web apps using ReactJS and Redux Toolkit.",
			"Integrated REST APIs and improved scalability.",
		},
	},
}

// DefaultProjects returns a copy of the built-in project catalog.
func DefaultProjects() []Project {
	out := make([]Project, len(defaultProjects))
	copy(out, defaultProjects)
	return out
}

// DefaultSkills returns a copy of the built-in skill catalog.
func DefaultSkills() []Skill {
	out := make([]Skill, len(defaultSkills))
	copy(out, defaultSkills)
	return out
}

// DefaultExperience returns a copy of the built-in work history.
func DefaultExperience() []Experience {
	out := make([]Experience, len(defaultExperience))
	copy(out, defaultExperience)
	return out
}
