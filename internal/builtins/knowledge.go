// ABOUTME: Knowledge, resource, and planning responders over the knowledge base
// ABOUTME: Each returns structured JSON the orchestrator knows how to render

package builtins

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tahasaif3/FarmSmart-AI/internal/lookup"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// topicAliases maps question keywords to knowledge base topics, checked in
// order so the most specific signal wins.
var topicAliases = []struct {
	keyword string
	topic   string
}{
	{"organic", "organic_farming"},
	{"climate", "climate_smart"},
	{"fertilizer", "fertilizers"},
	{"khaad", "fertilizers"},
	{"npk", "fertilizers"},
	{"urea", "fertilizers"},
	{"irrigation", "irrigation"},
	{"pani", "irrigation"},
	{"drip", "irrigation"},
	{"soil", "soil_science"},
	{"matti", "soil_science"},
	{"pest", "pests_diseases"},
	{"disease", "pests_diseases"},
	{"keera", "pests_diseases"},
	{"machinery", "farm_machinery"},
	{"tractor", "farm_machinery"},
	{"scheme", "government_schemes"},
	{"subsidy", "government_schemes"},
	{"loan", "government_schemes"},
	{"market", "marketing"},
	{"sell", "marketing"},
	{"crop", "crop_basics"},
	{"fasal", "crop_basics"},
}

func knowledgeResponder(kb *lookup.KnowledgeBase) specialist.DispatchFunc {
	return func(_ context.Context, _ specialist.ID, prompt string) (string, error) {
		question := currentQuestion(prompt)
		result := kb.Lookup(questionTopic(question), "")

		payload, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("encoding knowledge result: %w", err)
		}
		return string(payload), nil
	}
}

// resourceResponder answers fertilizer and irrigation questions from the
// matching knowledge base topics.
func resourceResponder(kb *lookup.KnowledgeBase) specialist.DispatchFunc {
	return func(_ context.Context, _ specialist.ID, prompt string) (string, error) {
		question := strings.ToLower(currentQuestion(prompt))

		topic := "fertilizers"
		for _, w := range []string{"irrigation", "pani", "water", "drip"} {
			if strings.Contains(question, w) {
				topic = "irrigation"
				break
			}
		}

		payload, err := json.Marshal(kb.Lookup(topic, ""))
		if err != nil {
			return "", fmt.Errorf("encoding resource result: %w", err)
		}
		return string(payload), nil
	}
}

// monthNames covers the English month names; the calendar falls back to the
// current month when the question names none.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

func planningResponder(kb *lookup.KnowledgeBase) specialist.DispatchFunc {
	return func(_ context.Context, _ specialist.ID, prompt string) (string, error) {
		question := currentQuestion(prompt)
		region := questionCity(question, "")

		plan := kb.Calendar(questionMonth(question), region)
		payload, err := json.Marshal(plan)
		if err != nil {
			return "", fmt.Errorf("encoding calendar: %w", err)
		}
		return string(payload), nil
	}
}

// questionTopic finds the knowledge base topic a question is about. Unknown
// subjects fall through to the question text itself, which the knowledge base
// resolves by content search.
func questionTopic(question string) string {
	q := strings.ToLower(question)
	for _, entry := range topicAliases {
		if strings.Contains(q, entry.keyword) {
			return entry.topic
		}
	}
	return question
}

// questionMonth extracts a month mentioned by name, or 0 for "this month".
func questionMonth(question string) int {
	q := strings.ToLower(question)
	for i, name := range monthNames {
		if strings.Contains(q, name) {
			return i + 1
		}
	}
	return 0
}
