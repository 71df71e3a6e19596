// ABOUTME: Warm/cold continuity decision for returning sessions
// ABOUTME: Reuses the last specialist inside the idle window, re-routes otherwise

package session

import (
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/router"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// DefaultIdleWindow is how long a session stays warm without activity.
const DefaultIdleWindow = 15 * time.Minute

// Continuity decides whether a returning session keeps its previous
// specialist or goes back through keyword routing. Expiry is lazy: nothing
// watches the clock, staleness is only observed at decision time.
type Continuity struct {
	idleWindow time.Duration

	now func() time.Time // injectable for tests
}

// NewContinuity creates a continuity decider with the given idle window.
// A zero or negative window falls back to the default.
func NewContinuity(idleWindow time.Duration) *Continuity {
	if idleWindow <= 0 {
		idleWindow = DefaultIdleWindow
	}
	return &Continuity{
		idleWindow: idleWindow,
		now:        time.Now,
	}
}

// Decide returns the specialist for this request. Warm sessions — last
// activity inside the idle window and a valid recorded specialist — reuse
// that specialist verbatim without inspecting the query. Everything else is
// cold and routes fresh. A last agent persisted by an older deployment that
// no longer names a known specialist is treated as cold rather than
// dispatched blind.
func (c *Continuity) Decide(snap *Snapshot, route func() router.Decision) router.Decision {
	if snap != nil &&
		snap.LastAgent != "" &&
		specialist.Valid(snap.LastAgent) &&
		!snap.LastActive.IsZero() &&
		c.now().Sub(snap.LastActive) <= c.idleWindow {
		return router.Decision{Specialist: snap.LastAgent, Tier: router.TierContinuity}
	}
	return route()
}
