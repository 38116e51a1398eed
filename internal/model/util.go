package model

// MigrateAble is array of model instance, use for migrating database
var MigrateAble []interface{}

func init() {
	MigrateAble = append(
		MigrateAble,
		&Job{},
		&Application{},
	)
}

// StarterJobs are the listings installed into an empty catalog so the board
// is not blank on first boot.
var StarterJobs = []JobFields{
	{
		Title:       "Senior Product Manager",
		Company:     "Atlas Metrics",
		Location:    "Berlin, Germany",
		Type:        "Full-time",
		Rate:        "₹35L–₹45L",
		Deadline:    "2026-03-15",
		Description: "Own the product strategy for a B2B SaaS platform used by hundreds of customers.",
	},
	{
		Title:       "Frontend Engineer",
		Company:     "Northlight",
		Location:    "Remote (EU)",
		Type:        "Full-time",
		Rate:        "₹30L–₹40L",
		Deadline:    "2026-02-28",
		Description: "Build polished React interfaces for a fast-growing product-led startup.",
	},
	{
		Title:       "Head of Growth",
		Company:     "Finwave",
		Location:    "London, UK",
		Type:        "Full-time",
		Rate:        "₹40L–₹50L + ESOPs",
		Deadline:    "2026-03-31",
		Description: "Lead acquisition and lifecycle teams for a Series B fintech scale-up.",
	},
	{
		Title:       "People Operations Lead",
		Company:     "Brightline",
		Location:    "Amsterdam, NL (Hybrid)",
		Type:        "Full-time",
		Rate:        "₹25L–₹32L",
		Description: "Shape people processes, onboarding and culture for a 150+ person organisation.",
	},
	{
		Title:       "Customer Success Manager",
		Company:     "Relay",
		Location:    "Remote",
		Type:        "Contract",
		Rate:        "₹4,000–₹5,000/hour",
		Description: "Own strategic accounts and help customers realise value from the platform.",
	},
}
