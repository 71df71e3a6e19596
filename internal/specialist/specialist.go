// ABOUTME: Closed enumeration of domain specialists and the dispatch contract.
// ABOUTME: The registry maps each specialist ID to its dispatcher so routing stays exhaustive.

package specialist

import (
	"context"
	"errors"
)

// ErrUnknownSpecialist indicates a dispatch was requested for an ID not in the registry.
var ErrUnknownSpecialist = errors.New("unknown specialist")

// ID identifies one of the fixed set of responder roles.
type ID string

const (
	Greeting  ID = "greeting"
	Document  ID = "document"
	Weather   ID = "weather"
	Market    ID = "market"
	Pest      ID = "pest"
	Soil      ID = "soil"
	Resource  ID = "resource"
	Yield     ID = "yield"
	Planning  ID = "planning"
	Knowledge ID = "knowledge" // master knowledge expert
	General   ID = "general"   // default when no tier matches
)

// All lists every specialist in roster order.
func All() []ID {
	return []ID{
		Greeting, Document, Weather, Market, Pest,
		Soil, Resource, Yield, Planning, Knowledge, General,
	}
}

// Valid reports whether id names a known specialist. Continuity uses this to
// avoid reusing an ID persisted by an older deployment.
func Valid(id ID) bool {
	switch id {
	case Greeting, Document, Weather, Market, Pest,
		Soil, Resource, Yield, Planning, Knowledge, General:
		return true
	}
	return false
}

// Descriptions maps each specialist to a short human-readable summary,
// served by the agent roster endpoint.
var Descriptions = map[ID]string{
	Greeting:  "Welcomes users and guides them toward asking for help",
	Document:  "Reads and analyzes uploaded agricultural documents",
	Weather:   "3-day forecasts and weather-driven farming actions",
	Market:    "Commodity prices, trends, and sell/buy timing",
	Pest:      "Pest and disease diagnosis with treatment plans",
	Soil:      "Soil analysis and crop recommendations",
	Resource:  "Fertilizer schedules and irrigation planning",
	Yield:     "Yield estimation and profitability projections",
	Planning:  "Crop calendars, rotation plans, month-wise scheduling",
	Knowledge: "Comprehensive agricultural knowledge across all domains",
	General:   "General-purpose assistant for everything else",
}

// Dispatcher produces a specialist's answer for an augmented query. The
// implementation is an external capability (an LLM call in production); the
// orchestrator only depends on this contract. Dispatch may return a transient
// error, which the orchestrator converts into a fallback response.
type Dispatcher interface {
	Dispatch(ctx context.Context, id ID, prompt string) (string, error)
}

// DispatchFunc adapts a function to the Dispatcher interface.
type DispatchFunc func(ctx context.Context, id ID, prompt string) (string, error)

// Dispatch calls f.
func (f DispatchFunc) Dispatch(ctx context.Context, id ID, prompt string) (string, error) {
	return f(ctx, id, prompt)
}

// Registry maps specialist IDs to their dispatchers.
type Registry struct {
	handlers map[ID]Dispatcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[ID]Dispatcher)}
}

// Register binds a dispatcher to a specialist ID, replacing any previous binding.
func (r *Registry) Register(id ID, d Dispatcher) {
	r.handlers[id] = d
}

// Dispatch routes the prompt to the handler registered for id.
func (r *Registry) Dispatch(ctx context.Context, id ID, prompt string) (string, error) {
	d, ok := r.handlers[id]
	if !ok {
		return "", ErrUnknownSpecialist
	}
	return d.Dispatch(ctx, id, prompt)
}
