// ABOUTME: Tests for the locally-served specialist responders
// ABOUTME: Uses real lookup clients with the static baseline sources

package builtins

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/lookup"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

func newTestRegistry(t *testing.T) *specialist.Registry {
	t.Helper()

	weather := lookup.NewWeatherClient("http://127.0.0.1:1", "test-key", time.Minute, 10)
	market := lookup.NewMarketClient(lookup.StaticQuoteSource{}, time.Minute, 10)
	kb := lookup.NewKnowledgeBase(time.Minute, 10)
	t.Cleanup(func() {
		weather.Close()
		market.Close()
		kb.Close()
	})

	r := specialist.NewRegistry()
	Register(r, weather, market, kb)
	return r
}

func TestRegister_CoversEverySpecialist(t *testing.T) {
	r := newTestRegistry(t)

	for _, id := range specialist.All() {
		if id == specialist.Weather {
			continue // needs a live upstream, covered separately
		}
		answer, err := r.Dispatch(context.Background(), id, "wheat question")
		if err != nil {
			t.Errorf("dispatch to %s: %v", id, err)
		}
		if answer == "" {
			t.Errorf("dispatch to %s returned empty answer", id)
		}
	}
}

func TestCurrentQuestion(t *testing.T) {
	prompt := "Previous conversation:\n- user: hello\n\nCurrent question: wheat rate?"
	if got := currentQuestion(prompt); got != "wheat rate?" {
		t.Errorf("currentQuestion = %q", got)
	}

	if got := currentQuestion("  bare question  "); got != "bare question" {
		t.Errorf("bare prompt: currentQuestion = %q", got)
	}
}

func TestMarketResponder_QuotesNamedCommodity(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Market, "gandum ka rate kya hai?")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(answer), &obj); err != nil {
		t.Fatalf("answer is not JSON: %v", err)
	}
	if obj["product"] != "wheat" {
		t.Errorf("product = %v, want wheat (gandum alias)", obj["product"])
	}
	if _, ok := obj["price_per_kg_pkr"]; !ok {
		t.Error("quote payload missing price_per_kg_pkr")
	}
}

func TestQuestionProduct_FirstMentionWins(t *testing.T) {
	if got := questionProduct("compare wheat and rice prices"); got != "wheat" {
		t.Errorf("questionProduct = %q, want wheat", got)
	}
	if got := questionProduct("koi bhi sawal"); got != defaultProduct {
		t.Errorf("no commodity: questionProduct = %q, want %q", got, defaultProduct)
	}
}

func TestKnowledgeResponder_ResolvesTopic(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Knowledge, "what is npk fertilizer")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(answer), &obj); err != nil {
		t.Fatalf("answer is not JSON: %v", err)
	}
	if obj["topic"] != "fertilizers" {
		t.Errorf("topic = %v, want fertilizers", obj["topic"])
	}
	if _, ok := obj["data"].(map[string]any); !ok {
		t.Error("knowledge payload missing data object")
	}
}

func TestResourceResponder_IrrigationTopic(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Resource, "drip irrigation ka kharcha?")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !strings.Contains(answer, "irrigation") {
		t.Errorf("expected irrigation topic in answer, got %q", answer)
	}
}

func TestPlanningResponder_NamedMonth(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Planning, "november me kya karna chahiye?")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(answer), &obj); err != nil {
		t.Fatalf("answer is not JSON: %v", err)
	}
	if obj["month"] != "November" {
		t.Errorf("month = %v, want November", obj["month"])
	}
}

func TestSoilResponder_MatchesSoilType(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Soil, "sandy matti me kya ugayen?")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(answer), &obj); err != nil {
		t.Fatalf("answer is not JSON: %v", err)
	}
	crops, ok := obj["crops"].([]any)
	if !ok || len(crops) == 0 {
		t.Fatalf("crops missing from payload: %v", obj)
	}
	found := false
	for _, c := range crops {
		if c == "Groundnut" {
			found = true
		}
	}
	if !found {
		t.Errorf("sandy soil should recommend Groundnut, got %v", crops)
	}
}

func TestPestResponder(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Pest, "pattay yellow ho rahay hain")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !strings.Contains(answer, "Tashkhees") {
		t.Errorf("expected a diagnosis, got %q", answer)
	}

	answer, err = r.Dispatch(context.Background(), specialist.Pest, "fasal kharab hai")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !strings.Contains(answer, "tafseel") {
		t.Errorf("unknown symptoms should ask for detail, got %q", answer)
	}
}

func TestYieldResponder(t *testing.T) {
	r := newTestRegistry(t)

	answer, err := r.Dispatch(context.Background(), specialist.Yield, "wheat ki paidawar kitni hogi?")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !strings.Contains(answer, "Wheat") || !strings.Contains(answer, "mann") {
		t.Errorf("expected a wheat estimate, got %q", answer)
	}
}

func TestFormatForecast(t *testing.T) {
	f := &lookup.Forecast{
		Location: "Karachi",
		Region:   "Sindh",
		Current: lookup.Conditions{
			TempC: 34, FeelsLikeC: 37.5, Condition: "Sunny",
			Humidity: 60, WindKph: 18,
		},
		Days: []lookup.DayForecast{
			{Date: "2026-03-01", MaxTempC: 35, MinTempC: 24, RainChance: 10, Condition: "Sunny"},
			{Date: "2026-03-02", MaxTempC: 33, MinTempC: 23, RainChance: 80, Condition: "Rain"},
		},
	}

	out := formatForecast(f)
	if !strings.Contains(out, "Karachi, Sindh") {
		t.Errorf("missing location: %q", out)
	}
	if !strings.Contains(out, "2026-03-02") {
		t.Errorf("missing forecast day: %q", out)
	}
	if !strings.Contains(out, "spray aur irrigation rok dein") {
		t.Errorf("80%% rain chance should warn against spraying: %q", out)
	}
}

func TestFormatForecast_ClearAdvice(t *testing.T) {
	f := &lookup.Forecast{
		Location: "Multan",
		Current:  lookup.Conditions{TempC: 30, Condition: "Clear"},
		Days: []lookup.DayForecast{
			{Date: "2026-03-01", RainChance: 5, Condition: "Sunny"},
		},
	}

	out := formatForecast(f)
	if !strings.Contains(out, "acha waqt hai") {
		t.Errorf("clear skies should greenlight field work: %q", out)
	}
}

func TestQuestionCity(t *testing.T) {
	if got := questionCity("weather in faisalabad", "Lahore"); got != "faisalabad" {
		t.Errorf("questionCity = %q, want faisalabad", got)
	}
	if got := questionCity("mausam kaisa hai", "Lahore"); got != "Lahore" {
		t.Errorf("fallback: questionCity = %q, want Lahore", got)
	}
}
