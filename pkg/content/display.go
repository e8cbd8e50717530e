package content

import "strings"

// Icon keys understood by the frontend. The palettes and their order are
// load-bearing: rotation by index must stay stable across renders.
var (
	skillIconPalette = []string{
		"code", "smartphone", "globe", "server",
		"database", "cloud", "settings", "users",
	}

	skillIconMap = map[string]string{
		"Programming Languages & Frameworks": "code",
		"Mobile Development":                 "smartphone",
		"Web Development":                    "globe",
		"M-Pesa & Payment Integrations":      "server",
		"Backend Integration & APIs":         "database",
		"Databases & Storage":                "cloud",
		"Cloud & DevOps":                     "cloud",
		"Networking & IT Support":            "settings",
		"Soft Skills":                        "users",
	}

	projectIconPalette = []string{"credit-card", "smartphone", "globe", "server"}

	projectCategoryIcons = map[string]string{
		"web":     "globe",
		"mobile":  "smartphone",
		"api":     "server",
		"fintech": "credit-card",
		"ai":      "brain",
	}
)

// Badge variants for project status. Unrecognized statuses render like
// completed ones.
const (
	variantPrimary   = "primary"
	variantSecondary = "secondary"
)

var projectStatusVariants = map[string]string{
	"production":  variantPrimary,
	"in-progress": variantSecondary,
	"completed":   variantSecondary,
}

// SkillIcon returns the icon key for a category: exact name match first,
// otherwise a deterministic rotation over the palette by position.
func SkillIcon(category string, index int) string {
	if icon, ok := skillIconMap[category]; ok {
		return icon
	}
	return skillIconPalette[index%len(skillIconPalette)]
}

// ProjectIcon dispatches on the lower-cased category, falling back to an
// index rotation for visual variety.
func ProjectIcon(category string, index int) string {
	if category != "" {
		if icon, ok := projectCategoryIcons[strings.ToLower(category)]; ok {
			return icon
		}
	}
	return projectIconPalette[index%len(projectIconPalette)]
}

// FormatStatus turns a raw status key into a human label: dashes and
// underscores become spaces, each word is capitalized. An absent status
// reads "Planned".
func FormatStatus(status string) string {
	if status == "" {
		return "Planned"
	}
	s := strings.NewReplacer("-", " ", "_", " ").Replace(status)
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// StatusVariant maps a raw status to its badge variant; unknown and absent
// statuses are treated as completed.
func StatusVariant(status string) string {
	if v, ok := projectStatusVariants[strings.ToLower(status)]; ok {
		return v
	}
	return projectStatusVariants["completed"]
}
