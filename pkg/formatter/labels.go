package formatter

var categoryLabels = map[string]string{
	"bug":         "Bug",
	"feature":     "Feature Request",
	"enhancement": "Enhancement",
	"ui-ux":       "UI/UX",
}

var statusLabels = map[string]string{
	"planned":      "Planned",
	"in-progress":  "In Progress",
	"completed":    "Completed",
	"under-review": "Under Review",
}

// Category returns the display label for a category code, or the code itself
// when it is unknown.
func Category(code string) string {
	if label, ok := categoryLabels[code]; ok {
		return label
	}
	return code
}

// Status returns the display label for a status code, or the code itself
// when it is unknown.
func Status(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}
