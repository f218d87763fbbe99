package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localnerve/supportdash/internal/taxonomy"
	"github.com/localnerve/supportdash/internal/trends"
	"github.com/localnerve/supportdash/internal/utils"
)

// TaxonomyResponse is the static lookup data a dashboard needs to render filters.
type TaxonomyResponse struct {
	Version          string            `json:"version"`
	Groups           []taxonomy.Group  `json:"groups"`
	FallbackCategory taxonomy.Category `json:"fallbackCategory"`
	FallbackVariant  taxonomy.Variant  `json:"fallbackVariant"`
	DisplayNames     map[string]string `json:"displayNames"`
	PresetsVersion   string            `json:"presetsVersion"`
	Presets          []trends.Preset   `json:"presets"`
	DefaultRange     string            `json:"defaultRange"`
}

// GetTaxonomy handles GET /api/taxonomy
// @Summary Status taxonomy
// @Description Status categories, badge variants, display names and date presets, with their versions
// @Tags Taxonomy
// @Produce json
// @Success 200 {object} TaxonomyResponse
// @Router /taxonomy [get]
func GetTaxonomy(c *fiber.Ctx) error {
	groups := taxonomy.Groups()
	names := make(map[string]string)
	for _, g := range groups {
		for _, s := range g.Statuses {
			names[s] = taxonomy.FormatStatus(s)
		}
	}
	return utils.SuccessResponse(c, TaxonomyResponse{
		Version:          taxonomy.Version,
		Groups:           groups,
		FallbackCategory: taxonomy.FallbackCategory,
		FallbackVariant:  taxonomy.VariantOf(""),
		DisplayNames:     names,
		PresetsVersion:   trends.PresetsVersion,
		Presets:          trends.Presets(),
		DefaultRange:     trends.DefaultRangeKey,
	}, fiber.StatusOK)
}
