package domain

// DefaultSiteConfig returns the built-in document used when nothing has
// been persisted yet or the persisted value cannot be read.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Hero: Hero{
			Status:   "Available for new projects",
			Title:    "Designing digital experiences that matter.",
			Subtitle: "I'm a multidisciplinary designer and developer helping startups build clean, modern products that delight users and drive growth.",
		},
		About: About{
			Title:        "Crafting interfaces that bridge the gap between people and technology.",
			Description1: "With over 5 years of experience in product design, I've had the privilege of working with global brands and local startups alike. My philosophy is simple: good design is invisible.",
			Description2: "I specialize in creating scalable design systems and high-performance React applications. My background in both engineering and aesthetics allows me to build products that look beautiful and work flawlessly.",
		},
		Projects: seedProjects(),
	}
}

func seedProjects() []Project {
	return []Project{
		{
			ID:          "1",
			Title:       "E-commerce Redesign",
			Category:    "UI/UX Design",
			Description: "A modern overhaul of a digital storefront focusing on conversion and accessibility.",
			ImageURL:    "https://picsum.photos/seed/proj1/800/600",
			Tags:        []string{"React", "Tailwind", "Framer"},
		},
		{
			ID:          "2",
			Title:       "Brand Identity",
			Category:    "Branding",
			Description: "Minimalist visual identity for a sustainable tech startup based in Berlin.",
			ImageURL:    "https://picsum.photos/seed/proj2/800/600",
			Tags:        []string{"Graphic Design", "Logo", "Strategy"},
		},
		{
			ID:          "3",
			Title:       "Mobile Banking App",
			Category:    "Product Design",
			Description: "Comprehensive design system for a fintech solution with complex data visualization.",
			ImageURL:    "https://picsum.photos/seed/proj3/800/600",
			Tags:        []string{"UX Research", "Prototyping", "Figma"},
		},
	}
}
