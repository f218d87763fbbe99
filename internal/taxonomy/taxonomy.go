// Package taxonomy holds the static status-code table: which of the seven categories
// each chat analysis status belongs to, and how it is badged.
package taxonomy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Version identifies the revision of the status table. Bump it whenever a status or
// category is added, moved or removed.
const Version = "2024.1"

// Category is one of the seven semantic status groups.
type Category string

const (
	CategoryPositive    Category = "positive"
	CategoryNeutral     Category = "neutral"
	CategoryStruggle    Category = "struggle"
	CategoryCritical    Category = "critical"
	CategoryHelpSeeking Category = "help-seeking"
	CategoryTechnical   Category = "technical"
	CategorySpecial     Category = "special"
)

// Variant is the badge colour a status renders with.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantInfo    Variant = "info"
	VariantWarning Variant = "warning"
	VariantError   Variant = "error"
	VariantPurple  Variant = "purple"
	VariantIndigo  Variant = "indigo"
	VariantDefault Variant = "default"
)

// Group is a category with its display name, badge variant and member statuses.
type Group struct {
	Category    Category `json:"category"`
	DisplayName string   `json:"displayName"`
	Variant     Variant  `json:"variant"`
	Statuses    []string `json:"statuses"`
}

// groups is the status table in sidebar order.
var groups = []Group{
	{
		Category:    CategoryPositive,
		DisplayName: "Positive Flow",
		Variant:     VariantSuccess,
		Statuses:    []string{"smooth_progress", "learning_effectively", "feature_exploring", "goal_achieved", "highly_engaged"},
	},
	{
		Category:    CategoryNeutral,
		DisplayName: "Neutral/Working",
		Variant:     VariantInfo,
		Statuses:    []string{"building_actively", "iterating", "experimenting", "asking_questions"},
	},
	{
		Category:    CategoryStruggle,
		DisplayName: "Struggle Indicators",
		Variant:     VariantWarning,
		Statuses:    []string{"stuck", "confused", "repeating_issues", "frustrated", "going_in_circles"},
	},
	{
		Category:    CategoryCritical,
		DisplayName: "Critical States",
		Variant:     VariantError,
		Statuses:    []string{"abandonment_risk", "completely_lost", "angry", "giving_up"},
	},
	{
		Category:    CategoryHelpSeeking,
		DisplayName: "Help-Seeking",
		Variant:     VariantPurple,
		Statuses:    []string{"needs_guidance", "requesting_examples", "seeking_alternatives", "documentation_needed"},
	},
	{
		Category:    CategoryTechnical,
		DisplayName: "Technical Issues",
		Variant:     VariantIndigo,
		Statuses:    []string{"debugging", "troubleshooting_db", "performance_issues", "integration_problems"},
	},
	{
		Category:    CategorySpecial,
		DisplayName: "Special States",
		Variant:     VariantDefault,
		Statuses:    []string{"off_topic", "inactive", "testing_limits", "copy_pasting"},
	},
}

// FallbackCategory is reported for status codes missing from the table.
const FallbackCategory = CategorySpecial

var byStatus = func() map[string]int {
	m := make(map[string]int)
	for i, g := range groups {
		for _, s := range g.Statuses {
			m[s] = i
		}
	}
	return m
}()

// Groups returns a copy of the status table in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		g.Statuses = append([]string(nil), g.Statuses...)
		out[i] = g
	}
	return out
}

// Lookup returns the group of status and whether status is a known code.
// Unknown codes resolve to the special group with the default variant.
func Lookup(status string) (Group, bool) {
	i, ok := byStatus[status]
	if !ok {
		i = len(groups) - 1
	}
	g := groups[i]
	g.Statuses = append([]string(nil), g.Statuses...)
	return g, ok
}

// CategoryOf returns the category of status.
func CategoryOf(status string) Category {
	if i, ok := byStatus[status]; ok {
		return groups[i].Category
	}
	return FallbackCategory
}

// VariantOf returns the badge variant of status; unknown codes get the default variant.
func VariantOf(status string) Variant {
	if i, ok := byStatus[status]; ok {
		return groups[i].Variant
	}
	return VariantDefault
}

// StatusesIn returns the member statuses of c, or nil for an unknown category.
func StatusesIn(c Category) []string {
	for _, g := range groups {
		if g.Category == c {
			return append([]string(nil), g.Statuses...)
		}
	}
	return nil
}

// IsKnown reports whether status appears in the table.
func IsKnown(status string) bool {
	_, ok := byStatus[status]
	return ok
}

// FormatStatus turns a status code into a label: "going_in_circles" -> "Going In Circles".
func FormatStatus(status string) string {
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(strings.ReplaceAll(status, "_", " "))
}
