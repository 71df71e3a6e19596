// ABOUTME: Tiered keyword router mapping free-text queries to a specialist.
// ABOUTME: Earlier tiers pre-empt later ones; the router is total and never fails.

package router

import (
	"strings"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// Tier names which rule group produced a routing decision.
type Tier string

const (
	TierGreeting   Tier = "greeting"
	TierDocument   Tier = "document"
	TierWeather    Tier = "weather"
	TierMarket     Tier = "market"
	TierPest       Tier = "pest"
	TierSoil       Tier = "soil"
	TierResource   Tier = "resource"
	TierYield      Tier = "yield"
	TierPlanning   Tier = "planning"
	TierKnowledge  Tier = "knowledge"
	TierDefault    Tier = "default"
	TierContinuity Tier = "continuity" // set by session continuity, not by Route
)

// Decision is the ephemeral result of routing one query. It is recomputed per
// request and never persisted.
type Decision struct {
	Specialist specialist.ID
	Tier       Tier
	Matched    []string // keywords that fired, for diagnostics
}

var greetingWords = []string{
	"hello", "hey", "salam", "assalamualaikum", "asalamualaikum", "aoa",
	"kia haal", "kese ho", "good morning", "good night", "good evening",
	"hi there",
}

var documentWords = []string{
	"document", "file", "pdf", "upload", "image", "read",
	"analyze", "summary", "paper", "report",
}

var weatherWords = []string{
	"weather", "mausam", "barish", "rain", "forecast", "humidity",
	"temperature", "garmi", "thand",
}

var marketWords = []string{
	"price", "rate", "qeemat", "mandi", "market", "sell", "bech",
	"profit", "munafa", "subsidy", "loan", "bhav",
}

var pestWords = []string{
	"pest", "disease", "keera", "beemari", "yellow", "spots", "damage",
	"attack", "spray", "insect", "leaf", "patta",
}

var soilWords = []string{
	"soil", "matti", "sandy", "loam", "clay", "grow", "uga",
}

// Resource tokens are the Urdu terms, product names, and irrigation words.
// Generic English "fertilizer"/"npk" mentions are left to later tiers so that
// knowledge-phrased questions about fertilizers reach the knowledge expert.
var resourceWords = []string{
	"khaad", "urea", "dap", "irrigation", "pani", "water", "drip",
}

var yieldWords = []string{
	"yield", "production", "paidawar", "mound", "mann", "kitna", "how much",
}

var planningWords = []string{
	"calendar", "rotation", "schedule", "kab", "timing", "next crop", "baad",
}

var knowledgePhrases = []string{
	"what is", "kya hai", "kya hota", "explain", "samjhao", "batao", "tell me",
	"how to", "kaise", "tareeqa", "method", "process",
	"why", "kyun", "kyu", "reason", "wajah",
	"difference", "fark", "compare", "comparison",
	"best practice", "technique",
	"learn", "seekhna", "knowledge", "information", "maloomat",
	"general", "aam", "basic", "zaruri", "definition", "tareef",
}

// Route maps a query to a specialist using fixed tier precedence:
// greeting, document, weather, market, pest, the soil/resource/yield/planning
// chain, knowledge phrases, then the general default. Matching is
// case-insensitive substring containment; no stemming. Deterministic for a
// fixed input.
func Route(text string) Decision {
	q := strings.ToLower(text)

	if hits := matchAll(q, greetingWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Greeting, Tier: TierGreeting, Matched: hits}
	}

	if hits := matchAll(q, documentWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Document, Tier: TierDocument, Matched: hits}
	}

	// Weather tokens route to the weather specialist with or without a city;
	// detected cities only sharpen the specialist's own lookup.
	if hits := matchAll(q, weatherWords); len(hits) > 0 {
		for _, c := range MatchCities(text) {
			hits = append(hits, string(c))
		}
		return Decision{Specialist: specialist.Weather, Tier: TierWeather, Matched: hits}
	}

	// Single-keyword tiers for perishable real-time domains: misrouting a
	// price or pest query costs more than misrouting a knowledge query, so
	// the evidentiary bar is one token.
	if hits := matchAll(q, marketWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Market, Tier: TierMarket, Matched: hits}
	}
	if hits := matchAll(q, pestWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Pest, Tier: TierPest, Matched: hits}
	}

	// Priority chain: first matching group wins, not a score.
	if hits := matchAll(q, soilWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Soil, Tier: TierSoil, Matched: hits}
	}
	if hits := matchAll(q, resourceWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Resource, Tier: TierResource, Matched: hits}
	}
	if hits := matchAll(q, yieldWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Yield, Tier: TierYield, Matched: hits}
	}
	if hits := matchAll(q, planningWords); len(hits) > 0 {
		return Decision{Specialist: specialist.Planning, Tier: TierPlanning, Matched: hits}
	}

	if hits := matchAll(q, knowledgePhrases); len(hits) > 0 {
		return Decision{Specialist: specialist.Knowledge, Tier: TierKnowledge, Matched: hits}
	}

	return Decision{Specialist: specialist.General, Tier: TierDefault}
}

// matchAll returns every word from the table contained in q.
func matchAll(q string, words []string) []string {
	var hits []string
	for _, w := range words {
		if strings.Contains(q, w) {
			hits = append(hits, w)
		}
	}
	return hits
}
