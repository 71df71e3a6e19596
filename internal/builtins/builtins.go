// ABOUTME: Locally-served specialist responders built on the lookup clients
// ABOUTME: Register wires every specialist so the gateway answers without an upstream

package builtins

import (
	"strings"

	"github.com/Tahasaif3/FarmSmart-AI/internal/lookup"
	"github.com/Tahasaif3/FarmSmart-AI/internal/router"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// questionMarker separates the conversation context from the question the
// orchestrator wants answered.
const questionMarker = "Current question: "

// Register binds a locally-served responder for every specialist in the
// roster. The market, weather, and knowledge responders answer from the
// lookup clients; the rest answer from static agronomy tables.
func Register(r *specialist.Registry, weather *lookup.WeatherClient, market *lookup.MarketClient, kb *lookup.KnowledgeBase) {
	r.Register(specialist.Greeting, specialist.DispatchFunc(greetingResponder))
	r.Register(specialist.Document, specialist.DispatchFunc(documentResponder))
	r.Register(specialist.Weather, weatherResponder(weather))
	r.Register(specialist.Market, marketResponder(market))
	r.Register(specialist.Pest, specialist.DispatchFunc(pestResponder))
	r.Register(specialist.Soil, specialist.DispatchFunc(soilResponder))
	r.Register(specialist.Resource, resourceResponder(kb))
	r.Register(specialist.Yield, specialist.DispatchFunc(yieldResponder))
	r.Register(specialist.Planning, planningResponder(kb))
	r.Register(specialist.Knowledge, knowledgeResponder(kb))
	r.Register(specialist.General, specialist.DispatchFunc(generalResponder))
}

// currentQuestion strips the conversation context off an augmented prompt,
// leaving just the question being asked now.
func currentQuestion(prompt string) string {
	if idx := strings.LastIndex(prompt, questionMarker); idx >= 0 {
		return strings.TrimSpace(prompt[idx+len(questionMarker):])
	}
	return strings.TrimSpace(prompt)
}

// questionCity returns the first city mentioned in the question, or the
// fallback when none is found.
func questionCity(question, fallback string) string {
	if cities := router.MatchCities(question); len(cities) > 0 {
		return string(cities[0])
	}
	return fallback
}
