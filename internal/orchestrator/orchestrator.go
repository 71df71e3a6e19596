// ABOUTME: Per-request pipeline: session continuity, routing, dispatch, persistence
// ABOUTME: Converts every pipeline failure into a low-confidence fallback answer

package orchestrator

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Tahasaif3/FarmSmart-AI/internal/router"
	"github.com/Tahasaif3/FarmSmart-AI/internal/session"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// Confidence levels reported on results.
const (
	ConfidenceHigh = "high"
	ConfidenceLow  = "low"
)

// apologyAnswer replaces specialist output too short to be a real answer.
const apologyAnswer = "Maazrat! Aapka sawal clear nahi hai. Kripya dobara behtar tareeqay se poochein."

// fallbackAnswer is returned when the pipeline fails for any reason.
const fallbackAnswer = "System temporarily busy hai. Kripya thori dair baad dubara try karein."

// minAnswerChars is the shortest specialist output accepted as an answer.
const minAnswerChars = 10

// Result is the outcome of handling one query.
type Result struct {
	Answer     string
	Specialist specialist.ID
	Confidence string
	SessionID  string
	Timestamp  time.Time
}

// Options configures the orchestrator.
type Options struct {
	DispatchTimeout time.Duration // bound on one specialist call, 0 means no extra bound
	MaxTurns        int           // transcript depth, 0 means the default
}

// Orchestrator runs the full pipeline for one query: resolve the session,
// decide the specialist, build the contextual prompt, dispatch, and persist
// both turns.
type Orchestrator struct {
	store      session.Store
	continuity *session.Continuity
	dispatcher specialist.Dispatcher
	opts       Options
	logger     *slog.Logger

	now   func() time.Time // injectable for tests
	newID func() string
}

// New creates an orchestrator over the given store, continuity decider, and
// dispatcher.
func New(store session.Store, continuity *session.Continuity, dispatcher specialist.Dispatcher, opts Options) *Orchestrator {
	return &Orchestrator{
		store:      store,
		continuity: continuity,
		dispatcher: dispatcher,
		opts:       opts,
		logger:     slog.Default().With("component", "orchestrator"),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// Handle processes one query. It never returns an error for a well-formed
// request: dispatch failures, timeouts, and store failures mid-flight all
// yield a fixed low-confidence fallback Result instead. The only error path
// is caller cancellation, in which case no assistant turn is persisted.
// Input validation (empty or over-long query) is the HTTP boundary's job.
func (o *Orchestrator) Handle(ctx context.Context, query, sessionID string) (*Result, error) {
	now := o.now()
	if sessionID == "" {
		sessionID = "user_" + now.Format("20060102_150405")
		o.logger.Debug("generated session id", "session_id", sessionID)
	}

	snap, err := o.store.Load(ctx, sessionID)
	if err != nil {
		o.logger.Error("loading session", "session_id", sessionID, "error", err)
		return o.fallback(sessionID, specialist.General, now), nil
	}

	decision := o.continuity.Decide(snap, func() router.Decision {
		return router.Route(query)
	})
	o.logger.Info("routed query",
		"session_id", sessionID,
		"specialist", decision.Specialist,
		"tier", decision.Tier,
	)

	// Prepend recent history so a follow-up like "aur lahore me?" carries its
	// subject along.
	prompt := query
	if transcript := session.Transcript(snap.Messages, o.opts.MaxTurns); transcript != "" {
		prompt = transcript + "\n\nCurrent question: " + query
	}

	if err := o.store.AppendMessage(ctx, &session.Message{
		ID:        o.newID(),
		SessionID: sessionID,
		Role:      session.RoleUser,
		Content:   query,
		CreatedAt: now,
	}); err != nil {
		o.logger.Error("persisting user turn", "session_id", sessionID, "error", err)
		return o.fallback(sessionID, decision.Specialist, now), nil
	}

	if err := o.store.SetLastAgent(ctx, sessionID, decision.Specialist, now); err != nil {
		o.logger.Error("recording last agent", "session_id", sessionID, "error", err)
		return o.fallback(sessionID, decision.Specialist, now), nil
	}

	dctx := ctx
	if o.opts.DispatchTimeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, o.opts.DispatchTimeout)
		defer cancel()
	}

	raw, err := o.dispatcher.Dispatch(dctx, decision.Specialist, prompt)
	if err != nil {
		// The caller going away is not a pipeline failure: surface it and
		// leave no assistant turn behind.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		o.logger.Warn("dispatch failed",
			"session_id", sessionID,
			"specialist", decision.Specialist,
			"error", err,
		)
		return o.fallback(sessionID, decision.Specialist, now), nil
	}

	answer := Normalize(raw)
	if utf8.RuneCountInString(answer) < minAnswerChars {
		answer = apologyAnswer
	}

	if err := o.store.AppendMessage(ctx, &session.Message{
		ID:        o.newID(),
		SessionID: sessionID,
		Role:      session.RoleAssistant,
		Content:   answer,
		Agent:     decision.Specialist,
		CreatedAt: now,
	}); err != nil {
		o.logger.Error("persisting assistant turn", "session_id", sessionID, "error", err)
		return o.fallback(sessionID, decision.Specialist, now), nil
	}

	return &Result{
		Answer:     answer,
		Specialist: decision.Specialist,
		Confidence: ConfidenceHigh,
		SessionID:  sessionID,
		Timestamp:  now,
	}, nil
}

func (o *Orchestrator) fallback(sessionID string, sp specialist.ID, at time.Time) *Result {
	return &Result{
		Answer:     fallbackAnswer,
		Specialist: sp,
		Confidence: ConfidenceLow,
		SessionID:  sessionID,
		Timestamp:  at,
	}
}
