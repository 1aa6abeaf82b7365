// SPDX-License-Identifier: GPL-3.0-only

package catalog

// DefaultPricing returns the static seed pricing catalog. Each call builds
// a fresh value so callers can mutate the result freely.
func DefaultPricing() PricingCatalog {
	return PricingCatalog{
		Plans: map[string]Plan{
			"free": {
				Key:             "free",
				Name:            "Free Trial",
				ValidityDays:    30,
				MaxUsers:        10,
				PlatformPerSeat: 0,
				LabPerSeat:      0,
			},
			"basic": {
				Key:             "basic",
				Name:            "Basic Plan",
				ValidityDays:    45,
				MaxUsers:        2000,
				PlatformPerSeat: 125,
				LabPerSeat:      75,
			},
			"medium": {
				Key:             "medium",
				Name:            "Premium Plan",
				ValidityDays:    45,
				MaxUsers:        5000,
				PlatformPerSeat: 100,
				LabPerSeat:      125,
			},
			"enterprise": {
				Key:             "enterprise",
				Name:            "Enterprise Plan",
				ValidityDays:    60,
				MaxUsers:        10000,
				Unlimited:       true,
				PlatformPerSeat: 75,
				LabPerSeat:      150,
			},
		},
		Addons: []Addon{
			{Key: "m365", Name: "M365 Copilot", PerSeat: 0},
			{Key: "d365", Name: "D365 License", PerSeat: 150},
			{Key: "security", Name: "Security Copilot", PerSeat: 265},
			{Key: "studio", Name: "Copilot Studio", PerSeat: 250},
			{Key: "fabric", Name: "Fabric Service", PerSeat: 0},
			{Key: "azurevmw", Name: "Azure VMWare", PerSeat: 0},
			{Key: "ghcopilot", Name: "GitHub Copilot", PerSeat: 0},
		},
		OptionalFeatures: OptionalFeatures{
			AIAgent:         OptionalFeature{Name: "AI Agent", PerSeat: 70},
			ManagedServices: OptionalFeature{Name: "Managed Services", PerSeat: 0},
		},
		AIAgentFeatures: []string{
			"Agentic Scoring",
			"Idea Generator",
			"Synthetic Data Creation",
			"AI Mentor",
		},
		UI: Theme{
			AccentColor:        "#3B82F6",
			AccentColorDark:    "#1D4ED8",
			AccentCyan:         "#0EA5E9",
			PrimaryGradient:    "linear-gradient(135deg, #E0F2FE 0%, #BAE6FD 25%, #7DD3FC 50%, #38BDF8 75%, #0EA5E9 100%)",
			BackgroundGradient: "linear-gradient(135deg, #F0F9FF 0%, #E0F2FE 25%, #BAE6FD 50%, #7DD3FC 75%, #38BDF8 100%)",
		},
	}
}

// DefaultLabs returns the static seed labs catalog.
func DefaultLabs() LabsCatalog {
	return LabsCatalog{
		Labs: []Lab{
			{
				ID:          1,
				Name:        "AI Research Lab",
				Description: "Advanced artificial intelligence research and development environment with GPU clusters and ML frameworks.",
				Cost:        "$0.50/hour",
				Status:      StatusAvailable,
				Features:    []string{"GPU Clusters", "ML Frameworks", "Data Processing", "Model Training"},
			},
			{
				ID:          2,
				Name:        "Data Analytics Lab",
				Description: "Comprehensive data analysis and visualization environment with big data processing capabilities.",
				Cost:        "$0.30/hour",
				Status:      StatusAvailable,
				Features:    []string{"Big Data Processing", "Visualization Tools", "Statistical Analysis", "Real-time Analytics"},
			},
			{
				ID:          3,
				Name:        "Security Testing Lab",
				Description: "Dedicated environment for security testing, penetration testing, and vulnerability assessment.",
				Cost:        "$0.40/hour",
				Status:      StatusAvailable,
				Features:    []string{"Penetration Testing", "Vulnerability Scanning", "Security Monitoring", "Compliance Testing"},
			},
			{
				ID:          4,
				Name:        "Development Lab",
				Description: "Full-stack development environment with CI/CD pipelines and deployment tools.",
				Cost:        "$0.25/hour",
				Status:      StatusAvailable,
				Features:    []string{"CI/CD Pipelines", "Container Orchestration", "Code Repositories", "Testing Frameworks"},
			},
			{
				ID:          5,
				Name:        "Blockchain Lab",
				Description: "Blockchain development and testing environment with smart contract deployment capabilities.",
				Cost:        "$0.60/hour",
				Status:      StatusAvailable,
				Features:    []string{"Smart Contracts", "Blockchain Networks", "Cryptocurrency Testing", "DeFi Protocols"},
			},
			{
				ID:          6,
				Name:        "IoT Simulation Lab",
				Description: "Internet of Things device simulation and testing environment for connected devices.",
				Cost:        "$0.35/hour",
				Status:      StatusAvailable,
				Features:    []string{"Device Simulation", "Network Testing", "Protocol Analysis", "Performance Monitoring"},
			},
			{
				ID:          7,
				Name:        "Cloud Migration Lab",
				Description: "Environment for testing and validating cloud migration strategies and tools.",
				Cost:        "$0.45/hour",
				Status:      StatusAvailable,
				Features:    []string{"Migration Tools", "Cloud Platforms", "Performance Testing", "Cost Optimization"},
			},
			{
				ID:          8,
				Name:        "Mobile Testing Lab",
				Description: "Comprehensive mobile application testing environment with device emulation.",
				Cost:        "$0.20/hour",
				Status:      StatusAvailable,
				Features:    []string{"Device Emulation", "Cross-platform Testing", "Performance Testing", "User Experience Testing"},
			},
		},
		PageConfig: PageConfig{
			Title:                "Available Labs",
			Subtitle:             "Choose from our comprehensive selection of specialized lab environments",
			CustomLabTitle:       "Need a Custom Lab Environment?",
			CustomLabDescription: "We can create specialized lab environments tailored to your specific requirements and use cases.",
			CustomLabButtonText:  "Contact Sales Team",
		},
	}
}
