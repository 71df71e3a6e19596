// ABOUTME: Tests for the tiered keyword router.
// ABOUTME: Validates tier precedence, determinism, and totality of routing.

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

func TestRoute_GreetingTier(t *testing.T) {
	d := Route("hello")
	assert.Equal(t, specialist.Greeting, d.Specialist)
	assert.Equal(t, TierGreeting, d.Tier)
	assert.Contains(t, d.Matched, "hello")
}

func TestRoute_GreetingPrecedesMarket(t *testing.T) {
	// A greeting token beats a market token even when both are present.
	d := Route("hello, what is today's wheat price")
	assert.Equal(t, specialist.Greeting, d.Specialist)
	assert.Equal(t, TierGreeting, d.Tier)
}

func TestRoute_DocumentTier(t *testing.T) {
	d := Route("can you summarize this pdf report")
	assert.Equal(t, specialist.Document, d.Specialist)
	assert.Equal(t, TierDocument, d.Tier)
}

func TestRoute_WeatherWithCity(t *testing.T) {
	d := Route("weather of karachi")
	assert.Equal(t, specialist.Weather, d.Specialist)
	assert.Equal(t, TierWeather, d.Tier)
	assert.Contains(t, d.Matched, "weather")
	assert.Contains(t, d.Matched, "karachi")
}

func TestRoute_WeatherWithoutCity(t *testing.T) {
	// A weather token alone is sufficient; city detection only adds precision.
	d := Route("kal barish hogi kya")
	assert.Equal(t, specialist.Weather, d.Specialist)
	assert.Equal(t, TierWeather, d.Tier)
}

func TestRoute_WeatherWithMisspelledCity(t *testing.T) {
	exact := Route("karachi weather")
	fuzzy := Route("karaci weather")

	assert.Equal(t, specialist.Weather, exact.Specialist)
	assert.Equal(t, specialist.Weather, fuzzy.Specialist)
	assert.Contains(t, exact.Matched, "karachi")
	assert.Contains(t, fuzzy.Matched, "karachi", "misspelling should resolve to the canonical city")
}

func TestRoute_MarketTier(t *testing.T) {
	d := Route("wheat mandi rate in punjab")
	assert.Equal(t, specialist.Market, d.Specialist)
	assert.Equal(t, TierMarket, d.Tier)
}

func TestRoute_PestTier(t *testing.T) {
	d := Route("my cotton has insect attack")
	assert.Equal(t, specialist.Pest, d.Specialist)
	assert.Equal(t, TierPest, d.Tier)
}

func TestRoute_MarketPrecedesPest(t *testing.T) {
	// Both single-keyword tiers match; market is evaluated first.
	d := Route("spray ki price kitni hai")
	assert.Equal(t, specialist.Market, d.Specialist)
}

func TestRoute_MultiDomainChain(t *testing.T) {
	tests := []struct {
		query string
		want  specialist.ID
		tier  Tier
	}{
		{"sandy soil me kya ugana chahiye", specialist.Soil, TierSoil},
		{"urea kitni daalni chahiye", specialist.Resource, TierResource},
		{"is saal paidawar kitni hogi", specialist.Yield, TierYield},
		{"crop rotation plan chahiye", specialist.Planning, TierPlanning},
	}
	for _, tt := range tests {
		d := Route(tt.query)
		assert.Equal(t, tt.want, d.Specialist, "query %q", tt.query)
		assert.Equal(t, tt.tier, d.Tier, "query %q", tt.query)
	}
}

func TestRoute_SoilPrecedesResource(t *testing.T) {
	// Priority chain: soil group wins even when an irrigation token is present.
	d := Route("clay soil me pani kab dein")
	assert.Equal(t, specialist.Soil, d.Specialist)
}

func TestRoute_KnowledgeTier(t *testing.T) {
	d := Route("NPK fertilizer kya hota hai?")
	assert.Equal(t, specialist.Knowledge, d.Specialist)
	assert.Equal(t, TierKnowledge, d.Tier)
	assert.Contains(t, d.Matched, "kya hota")
}

func TestRoute_DefaultTier(t *testing.T) {
	d := Route("gandum acha lag raha")
	assert.Equal(t, specialist.General, d.Specialist)
	assert.Equal(t, TierDefault, d.Tier)
}

func TestRoute_TotalFunction(t *testing.T) {
	// Route always produces a valid specialist, whatever the input.
	for _, q := range []string{"", "   ", "ß∂ƒ©", "12345", "a"} {
		d := Route(q)
		assert.True(t, specialist.Valid(d.Specialist), "query %q", q)
	}
}

func TestRoute_Deterministic(t *testing.T) {
	first := Route("wheat price in lahore mandi")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Route("wheat price in lahore mandi"))
	}
}

func TestRoute_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Route("WHEAT PRICE").Specialist, Route("wheat price").Specialist)
}
