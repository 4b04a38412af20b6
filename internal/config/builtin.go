package config

// BuiltinWindows returns the stock portfolio catalog, in icon order.
//
// A config file that sets windows replaces this list entirely.
func BuiltinWindows() []WindowEntry {
	return []WindowEntry{
		{
			ID:      "About",
			Title:   "About Me",
			Icon:    "notes",
			Content: "Hi! This desktop is a portfolio. Double-click an icon to open a window.",
		},
		{
			ID:      "Education",
			Title:   "Education",
			Icon:    "books",
			Content: "Degrees, courses and certificates.",
		},
		{
			ID:      "Experience",
			Title:   "Experience",
			Icon:    "briefcase",
			Content: "Roles, teams and the things shipped along the way.",
		},
		{
			ID:      "Projects",
			Title:   "Projects",
			Icon:    "folder",
			Content: "Selected open source and side projects.",
		},
		{
			ID:      "Contact Me",
			Title:   "Contact Me",
			Icon:    "contacts",
			Content: "Reach out by email or on any of the usual networks.",
		},
	}
}
