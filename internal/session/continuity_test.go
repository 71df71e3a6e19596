// ABOUTME: Tests for the warm/cold continuity decision
// ABOUTME: Validates idle window boundaries, invalid persisted agents, and new sessions

package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Tahasaif3/FarmSmart-AI/internal/router"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// routeStub returns a fixed cold decision and counts invocations.
type routeStub struct {
	calls    int
	decision router.Decision
}

func (r *routeStub) route() router.Decision {
	r.calls++
	return r.decision
}

func newTestContinuity(at time.Time, window time.Duration) *Continuity {
	c := NewContinuity(window)
	c.now = func() time.Time { return at }
	return c
}

func TestContinuity_WarmReusesLastAgent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestContinuity(base.Add(5*time.Minute), 15*time.Minute)
	stub := &routeStub{decision: router.Decision{Specialist: specialist.Market, Tier: router.TierMarket}}

	snap := &Snapshot{ID: "s1", LastAgent: specialist.Weather, LastActive: base}
	d := c.Decide(snap, stub.route)

	assert.Equal(t, specialist.Weather, d.Specialist)
	assert.Equal(t, router.TierContinuity, d.Tier)
	assert.Zero(t, stub.calls, "warm session must not consult the router")
}

func TestContinuity_ColdAfterIdleWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestContinuity(base.Add(15*time.Minute+time.Second), 15*time.Minute)
	stub := &routeStub{decision: router.Decision{Specialist: specialist.Market, Tier: router.TierMarket}}

	snap := &Snapshot{ID: "s1", LastAgent: specialist.Weather, LastActive: base}
	d := c.Decide(snap, stub.route)

	assert.Equal(t, specialist.Market, d.Specialist)
	assert.Equal(t, router.TierMarket, d.Tier)
	assert.Equal(t, 1, stub.calls)
}

func TestContinuity_WarmAtExactWindowBoundary(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestContinuity(base.Add(15*time.Minute), 15*time.Minute)
	stub := &routeStub{decision: router.Decision{Specialist: specialist.Market, Tier: router.TierMarket}}

	snap := &Snapshot{ID: "s1", LastAgent: specialist.Pest, LastActive: base}
	d := c.Decide(snap, stub.route)

	assert.Equal(t, specialist.Pest, d.Specialist, "elapsed == window is still warm")
}

func TestContinuity_ColdWithoutLastAgent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestContinuity(base.Add(time.Minute), 15*time.Minute)
	stub := &routeStub{decision: router.Decision{Specialist: specialist.Soil, Tier: router.TierSoil}}

	// Active recently but no specialist recorded yet.
	snap := &Snapshot{ID: "s1", LastActive: base}
	d := c.Decide(snap, stub.route)

	assert.Equal(t, specialist.Soil, d.Specialist)
	assert.Equal(t, 1, stub.calls)
}

func TestContinuity_ColdWithUnknownPersistedAgent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := newTestContinuity(base.Add(time.Minute), 15*time.Minute)
	stub := &routeStub{decision: router.Decision{Specialist: specialist.General, Tier: router.TierDefault}}

	// A specialist id written by an older deployment must not be dispatched.
	snap := &Snapshot{ID: "s1", LastAgent: "livestock", LastActive: base}
	d := c.Decide(snap, stub.route)

	assert.Equal(t, specialist.General, d.Specialist)
	assert.Equal(t, 1, stub.calls)
}

func TestContinuity_ColdForEmptySnapshot(t *testing.T) {
	c := newTestContinuity(time.Now(), 15*time.Minute)
	stub := &routeStub{decision: router.Decision{Specialist: specialist.General, Tier: router.TierDefault}}

	d := c.Decide(&Snapshot{ID: "fresh"}, stub.route)

	assert.Equal(t, specialist.General, d.Specialist)
	assert.Equal(t, 1, stub.calls)
}

func TestContinuity_DefaultWindow(t *testing.T) {
	c := NewContinuity(0)
	assert.Equal(t, DefaultIdleWindow, c.idleWindow)
}
