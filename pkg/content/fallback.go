package content

import "time"

// Embedded defaults shown whenever the store is unreachable or a section is
// empty. The functions return fresh copies so resolved payloads can be
// shaped without mutating shared state.

func timePtr(t time.Time) *time.Time { return &t }

func FallbackArticles() []Article {
	return []Article{
		{
			Title:       "Scaling M-Pesa Integrations with Supabase Edge Functions",
			Summary:     "How to orchestrate 10K+ daily transactions with automated reconciliation, retries, and observability powered by Supabase.",
			PublishedAt: timePtr(time.Date(2024, 8, 12, 0, 0, 0, 0, nairobi)),
			ReadTime:    9,
			Tags:        []string{"Fintech", "Supabase", "Edge Functions"},
			URL:         "https://blog.example.com/supabase-mpesa-scale",
			ImageURL:    "https://images.unsplash.com/photo-1667372393119-3d4c48d07fc9?auto=format&fit=crop&w=1200&q=80",
		},
		{
			Title:       "Designing Full-Stack Flutter + Supabase Apps for Offline Field Teams",
			Summary:     "Patterns that keep agents productive during connectivity drops, including conflict resolution and background sync.",
			PublishedAt: timePtr(time.Date(2024, 5, 22, 0, 0, 0, 0, nairobi)),
			ReadTime:    11,
			Tags:        []string{"Flutter", "Mobile", "Architecture"},
			URL:         "https://medium.com/@dancanmurithi/flutter-supabase-offline",
			ImageURL:    "https://images.unsplash.com/photo-1588196749597-9ff075ee6b5b?auto=format&fit=crop&w=1200&q=80",
		},
	}
}

var nairobi = time.FixedZone("EAT", 3*60*60)

func FallbackCertifications() []Certification {
	return []Certification{
		{
			Name:            "AWS Certified Solutions Architect",
			Issuer:          "Amazon Web Services",
			IssuedOn:        "2024",
			Status:          "Active",
			LogoURL:         "https://images.unsplash.com/photo-1523474253046-8cd2748b5fd2?w=100&h=100&fit=crop",
			VerificationURL: "#",
			Skills:          []string{"Cloud Architecture", "AWS Services", "Infrastructure Design"},
		},
		{
			Name:            "Azure Developer Associate",
			Issuer:          "Microsoft",
			IssuedOn:        "2023",
			Status:          "Active",
			LogoURL:         "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=100&h=100&fit=crop",
			VerificationURL: "#",
			Skills:          []string{"Azure", "DevOps", "Cloud Development"},
		},
		{
			Name:            "Google Cloud Professional",
			Issuer:          "Google Cloud",
			IssuedOn:        "2023",
			Status:          "Active",
			LogoURL:         "https://images.unsplash.com/photo-1573804633927-bfcbcd909acd?w=100&h=100&fit=crop",
			VerificationURL: "#",
			Skills:          []string{"GCP", "Kubernetes", "Microservices"},
		},
		{
			Name:            "CompTIA Security+",
			Issuer:          "CompTIA",
			IssuedOn:        "2022",
			Status:          "Active",
			LogoURL:         "https://images.unsplash.com/photo-1563986768494-4dee2763ff3f?w=100&h=100&fit=crop",
			VerificationURL: "#",
			Skills:          []string{"Security", "Risk Management", "Compliance"},
		},
		{
			Name:            "Bachelor of Science in Computer Science",
			Issuer:          "Masinde Muliro University of Science & Technology",
			IssuedOn:        "2024",
			Status:          "Completed",
			LogoURL:         "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=100&h=100&fit=crop",
			VerificationURL: "#",
			Skills:          []string{"Computer Science", "Algorithms", "Software Engineering"},
		},
	}
}

func FallbackExperiences() []Experience {
	return []Experience{
		{
			Company:     "Bamaki Solutions",
			Position:    "Software Engineer (Remote)",
			Location:    "Nairobi, Kenya",
			Period:      "Jan 2024 – Present",
			Type:        "Full-time",
			Description: "Collaborate with a remote-first team to design, develop, and deploy custom software solutions for multiple clients across sectors.",
			Responsibilities: []string{
				"Build scalable web and mobile applications using React, Flutter, Firebase, Node.js, and AWS",
				"Work closely with clients to gather requirements, propose solutions, and deliver timely feature updates",
				"Contribute to both frontend and backend systems, including APIs, dashboards, and cloud infrastructure",
			},
			Achievements: []string{
				"Delivered 5+ production-ready systems for clients in retail, fintech, and logistics",
				"Optimized inventory dashboards by reducing Firestore reads by 40% through caching and batching",
				"Spearheaded a mobile-first donation platform with multi-payment support (M-Pesa, PayPal, card)",
			},
			Tech: []string{"React", "Flutter", "Firebase", "Node.js", "AWS", "M-Pesa API"},
		},
		{
			Company:     "Oseo Communication Limited",
			Position:    "Software Engineer",
			Location:    "Nairobi, Kenya",
			Period:      "May 2024 – Present",
			Type:        "Full-time",
			Description: "Develop Android and web applications to support SIM card registration, airtime distribution, and float reconciliation processes.",
			Responsibilities: []string{
				"Design backend systems to track airtime purchases and reconcile vendor transactions",
				"Build REST APIs and Firebase-integrated services for real-time dashboards",
				"Provide cross-department technical support and network troubleshooting",
				"Lead secure network infrastructure setup for distributed teams",
			},
			Achievements: []string{
				"Launched a real-time airtime reconciliation dashboard used by field agents",
				"Streamlined registration workflows, reducing onboarding time by 40%",
				"Cut discrepancies in vendor transactions by 70% through automation",
			},
			Tech: []string{"Android", "Firebase", "REST APIs", "AWS EC2", "MySQL", "Networking"},
		},
	}
}

func FallbackSkillCategories() []SkillCategory {
	return []SkillCategory{
		{Category: "Programming Languages & Frameworks", Skills: []string{"Java", "Kotlin", "Dart", "TypeScript", "React", "Node.js", "Next.js"}},
		{Category: "Mobile Development", Skills: []string{"Native Android (Java/Kotlin)", "Cross-platform Apps (Flutter)", "Mobile UI/UX"}},
		{Category: "Web Development", Skills: []string{"React", "Next.js", "Node.js", "Express.js", "REST APIs", "Supabase Functions"}},
		{Category: "M-Pesa & Payment Integrations", Skills: []string{"M-Pesa STK Push", "B2B/B2C Workflows", "Daraja API", "Africa's Talking", "Webhooks"}},
		{Category: "Backend Integration & APIs", Skills: []string{"Supabase Edge Functions", "GraphQL", "Webhook Automation", "API Gateway"}},
		{Category: "Databases & Storage", Skills: []string{"Supabase PostgreSQL", "MySQL", "Firestore", "Realtime Database", "Data Migration"}},
		{Category: "Cloud & DevOps", Skills: []string{"AWS", "Firebase", "Render", "Docker", "CI/CD Pipelines"}},
		{Category: "Networking & IT Support", Skills: []string{"Structured Cabling", "Network Setup", "MySQL Replication", "Disaster Recovery"}},
		{Category: "Soft Skills", Skills: []string{"Problem-solving", "Team Leadership", "Client Communication", "Mentorship"}},
	}
}

func FallbackProjects() []Project {
	return []Project{
		{
			Title:       "M-Pesa Reconciliation Platform",
			Description: "Payment orchestration service handling STK push, B2B/B2C workflows and automated settlement reports for distributed field teams.",
			Category:    "fintech",
			Status:      "production",
			URL:         "https://github.com/dancanmurithi",
			Features: []string{
				"Automated daily reconciliation across vendors",
				"Webhook-driven transaction status tracking",
				"Role-based dashboards for finance teams",
			},
			Highlights: []string{"Cut vendor discrepancies by 70%"},
			Tech:       []string{"Node.js", "Supabase", "Daraja API"},
		},
		{
			Title:       "Field Agent Companion",
			Description: "Offline-first Flutter app for SIM registration and airtime distribution with background sync and conflict resolution.",
			Category:    "mobile",
			Status:      "completed",
			URL:         "https://github.com/dancanmurithi",
			Features: []string{
				"Offline queue with background sync",
				"Realtime float balance tracking",
			},
			Highlights: []string{"Reduced onboarding time by 40%"},
			Tech:       []string{"Flutter", "Firebase", "REST APIs"},
		},
		{
			Title:       "Donation Platform",
			Description: "Mobile-first giving platform with multi-payment support across M-Pesa, PayPal and card rails.",
			Category:    "web",
			Status:      "in-progress",
			URL:         "https://github.com/dancanmurithi",
			Features: []string{
				"Multi-currency checkout",
				"Campaign progress tracking",
			},
			Tech: []string{"React", "Supabase", "M-Pesa API"},
		},
	}
}

func FallbackTestimonials() []Testimonial {
	return []Testimonial{
		{
			Name:    "Grace K.",
			Role:    "Head of Digital Products",
			Company: "FinServe Africa",
			Content: "Dancan reimagined our payment infrastructure—STK push success rates improved immediately and the entire system feels resilient.",
			Rating:  5,
			Status:  TestimonialStatusApproved,
		},
		{
			Name:    "Michael C.",
			Role:    "Product Manager",
			Company: "InnovateLabs",
			Content: "From architecture diagrams to deployment, he handled everything with clarity and speed. Communication was excellent throughout.",
			Rating:  5,
			Status:  TestimonialStatusApproved,
		},
	}
}

func FallbackContactSettings() ContactSettings {
	return ContactSettings{
		Email:    "muthetidan@gmail.com",
		Phone:    "+254 790 449 157",
		Location: "Nairobi, Kenya",
	}
}

func FallbackEducation() Education {
	return Education{
		Degree:         "Bachelor of Science in Computer Science",
		Institution:    "Masinde Muliro University of Science & Technology",
		Location:       "Kakamega, Kenya",
		GraduationDate: "Dec 2024",
	}
}

// HeroProfile is the static hero section; it has no store backing.
func HeroProfile() Profile {
	return Profile{
		Name: "Dancan Murithi",
		Roles: []string{
			"Software Engineer",
			"Full-Stack Developer",
			"Mobile Developer",
			"Backend Specialist",
		},
		Tagline: "Results-driven Software Engineer specializing in scalable web and mobile applications. Expert in full-stack development with Java, Kotlin, Flutter, React, and cloud platforms.",
		Channels: []ContactChannel{
			{Icon: "map-pin", Label: "Location", Value: "Nairobi, Kenya"},
			{Icon: "mail", Label: "Email", Value: "muthetidan@gmail.com", Href: "mailto:muthetidan@gmail.com"},
			{Icon: "phone", Label: "Phone", Value: "(+254) 790 449 157", Href: "tel:+254790449157"},
			{Icon: "linkedin", Label: "LinkedIn", Value: "Connect", Href: "https://linkedin.com/in/dancan-murithi-6843422bb"},
		},
	}
}
