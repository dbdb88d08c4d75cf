package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedanga/astro-engine-go/internal/astro"
	"github.com/vedanga/astro-engine-go/internal/models"
)

func afflictedChart() *models.Chart {
	return &models.Chart{
		Positions: map[astro.Planet]models.PlanetaryPosition{
			astro.Sun:     {Planet: astro.Sun, Sign: "Libra", Dignity: models.Debilitated},
			astro.Mercury: {Planet: astro.Mercury, Sign: "Libra", Dignity: models.Neutral, Combust: true},
			astro.Venus:   {Planet: astro.Venus, Sign: "Gemini", Dignity: models.Neutral},
		},
		Strengths: map[astro.Planet]models.PlanetStrength{
			astro.Venus: {Total: 151.2, Percentage: 42},
		},
	}
}

func TestDetectAfflictions(t *testing.T) {
	svc := NewRemedyService(nil)
	doshas := []models.YogaResult{
		{Rule: "Mangal Dosha", Kind: "dosha", Matched: true},
		{Rule: "Grahan Dosha", Kind: "dosha", Matched: false},
	}

	afflictions := svc.Detect(afflictedChart(), doshas)
	require.Len(t, afflictions, 4)

	assert.Equal(t, astro.Sun, afflictions[0].Planet)
	assert.Equal(t, models.AfflictionDebilitated, afflictions[0].Kind)
	assert.Contains(t, afflictions[0].Source, "Libra")

	assert.Equal(t, astro.Mercury, afflictions[1].Planet)
	assert.Equal(t, models.AfflictionCombust, afflictions[1].Kind)

	assert.Equal(t, astro.Venus, afflictions[2].Planet)
	assert.Equal(t, models.AfflictionWeak, afflictions[2].Kind)

	// Unmatched doshas contribute nothing; Mangal Dosha adds Mars.
	assert.Equal(t, astro.Mars, afflictions[3].Planet)
	assert.Equal(t, models.AfflictionDosha, afflictions[3].Kind)
	assert.Equal(t, "Mangal Dosha", afflictions[3].Source)
}

func TestDetectDoshaPlanetFanout(t *testing.T) {
	svc := NewRemedyService(nil)
	chart := &models.Chart{Positions: map[astro.Planet]models.PlanetaryPosition{}}

	afflictions := svc.Detect(chart, []models.YogaResult{
		{Rule: "Kaal Sarp Dosha", Kind: "dosha", Matched: true},
	})
	require.Len(t, afflictions, 2)
	assert.Equal(t, astro.Rahu, afflictions[0].Planet)
	assert.Equal(t, astro.Ketu, afflictions[1].Planet)
}

func TestRecommendEmitsFourCategories(t *testing.T) {
	svc := NewRemedyService(nil)

	remedies := svc.Recommend([]models.Affliction{
		{Planet: astro.Sun, Kind: models.AfflictionDebilitated},
	})
	require.Len(t, remedies, 4)
	assert.Equal(t, models.Gemstone, remedies[0].Category)
	assert.Equal(t, models.Mantra, remedies[1].Category)
	assert.Equal(t, models.Charity, remedies[2].Category)
	assert.Equal(t, models.Fasting, remedies[3].Category)

	assert.Contains(t, remedies[0].Description, "Ruby")
	assert.Contains(t, remedies[0].Description, "Gold")
	assert.Equal(t, "Sunday", remedies[3].Day)
}

func TestRecommendUsesSilverForOtherPlanets(t *testing.T) {
	svc := NewRemedyService(nil)

	remedies := svc.Recommend([]models.Affliction{
		{Planet: astro.Venus, Kind: models.AfflictionWeak},
	})
	require.NotEmpty(t, remedies)
	assert.Contains(t, remedies[0].Description, "Diamond")
	assert.Contains(t, remedies[0].Description, "Silver")
}

func TestRecommendDeduplicatesByPlanet(t *testing.T) {
	svc := NewRemedyService(nil)

	remedies := svc.Recommend([]models.Affliction{
		{Planet: astro.Moon, Kind: models.AfflictionDebilitated, Source: "debilitated in Scorpio"},
		{Planet: astro.Moon, Kind: models.AfflictionDosha, Source: "Kemadruma Dosha"},
	})
	require.Len(t, remedies, 4)
	for _, r := range remedies {
		assert.Equal(t, astro.Moon, r.Planet)
		assert.Equal(t, models.AfflictionDebilitated, r.Affliction.Kind, "first affliction wins")
	}
}

func TestRemedyCalculate(t *testing.T) {
	svc := NewRemedyService(nil)

	report, err := svc.Calculate(afflictedChart(), []models.YogaResult{
		{Rule: "Mangal Dosha", Kind: "dosha", Matched: true},
	})
	require.NoError(t, err)

	require.Len(t, report.Afflictions, 4)
	assert.Len(t, report.Remedies, 16)
	assert.Equal(t, generalRemedies, report.General)

	var mantras int
	for _, r := range report.Remedies {
		if r.Category == models.Mantra {
			mantras++
			assert.True(t, strings.HasPrefix(r.Description, "Om "), "mantra text: %s", r.Description)
		}
	}
	assert.Equal(t, 4, mantras)
}
