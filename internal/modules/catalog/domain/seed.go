package domain

// BuiltinReadings returns the immutable reading checklist that ships with the
// tracker. Callers receive a fresh slice and may append custom items to it.
func BuiltinReadings() []ReadingItem {
	return []ReadingItem{
		{
			ID:          "mig-basics",
			Title:       "Intro to MIG Welding Parameters",
			Description: "Voltage, wire feed speed, contact tip to work distance",
			Category:    "process",
			Link:        "https://weldingtipsandtricks.com/mig-welding-basics.html",
			Type:        "Article",
			Tags:        []string{"process", "setup"},
			Origin:      OriginDefault,
		},
		{
			ID:          "safety-gear",
			Title:       "Personal Protective Equipment Checklist",
			Description: "Helmet shade charts, gloves, jacket ratings",
			Category:    "safety",
			Link:        "https://www.lincolnelectric.com/en-us/support/welding-safety/Pages/welding-safety-gear.aspx",
			Type:        "Guide",
			Tags:        []string{"safety"},
			Origin:      OriginDefault,
		},
		{
			ID:          "joint-prep",
			Title:       "Preparing Joints for Strong Welds",
			Description: "Cleaning, bevels, root gap, and fit-up for mild steel",
			Category:    "process",
			Link:        "https://www.millerwelds.com/resource/articles/welding-joint-preparation",
			Type:        "Article",
			Tags:        []string{"process", "fit-up"},
			Origin:      OriginDefault,
		},
		{
			ID:          "metallurgy",
			Title:       "Metallurgy Basics for Fabrication",
			Description: "How heat-affected zones behave and why cooling matters",
			Category:    "theory",
			Link:        "https://materials.openstax.org/books/introduction-to-materials-science",
			Type:        "Chapter",
			Tags:        []string{"theory"},
			Origin:      OriginDefault,
		},
		{
			ID:          "symbols",
			Title:       "Reading Welding Symbols",
			Description: "Blueprint interpretation essentials for fabrication drawings",
			Category:    "theory",
			Link:        "https://www.thefabricator.com/thefabricator/article/shopmanagement/welding-symbols-demystified",
			Type:        "Article",
			Tags:        []string{"theory", "blueprint"},
			Origin:      OriginDefault,
		},
		{
			ID:          "safety-ventilation",
			Title:       "Ventilation & Fume Safety",
			Description: "Airflow strategies and respirator selection for indoor bays",
			Category:    "safety",
			Link:        "https://www.osha.gov/sites/default/files/publications/welding.pdf",
			Type:        "PDF",
			Tags:        []string{"safety", "environment"},
			Origin:      OriginDefault,
		},
	}
}

// BuiltinPractice returns the static practice drill checklist.
func BuiltinPractice() []PracticeItem {
	return []PracticeItem{
		{
			ID:          "pads-of-beads",
			Title:       "Pads of Beads",
			Description: "Run five steady beads focusing on travel speed and gun angle.",
			Focus:       "Fundamentals",
		},
		{
			ID:          "lap-joint",
			Title:       "Lap Joint Fillets",
			Description: `Three 3" coupons, horizontal position, evaluate for undercut.`,
			Focus:       "Positioning",
		},
		{
			ID:          "t-joint",
			Title:       "T-Joint Fillets",
			Description: "Practice pushing vs pulling to compare penetration.",
			Focus:       "Technique",
		},
		{
			ID:          "butt-joint",
			Title:       "Butt Joint Root Pass",
			Description: `1/8" plate with 1/16" gap, monitor heat input and tie-in.`,
			Focus:       "Heat control",
		},
		{
			ID:          "fabrication-mini",
			Title:       "Mini Fabrication Project",
			Description: "Assemble a small frame or rack; track prep, tack, and final welds.",
			Focus:       "Project",
		},
		{
			ID:          "cleanup",
			Title:       "Cleanup & Inspection",
			Description: "Grind, wire brush, and photograph your best weld for review.",
			Focus:       "Quality",
		},
	}
}
