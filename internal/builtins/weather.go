// ABOUTME: Weather responder: forecast lookup plus spray and irrigation advice
// ABOUTME: Errors propagate so the orchestrator serves its fallback answer

package builtins

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tahasaif3/FarmSmart-AI/internal/lookup"
	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// defaultCity anchors weather lookups when the question names no city.
const defaultCity = "Lahore"

// rainSprayThreshold is the rain chance above which spraying is a waste.
const rainSprayThreshold = 60

func weatherResponder(client *lookup.WeatherClient) specialist.DispatchFunc {
	return func(ctx context.Context, _ specialist.ID, prompt string) (string, error) {
		question := currentQuestion(prompt)
		city := questionCity(question, defaultCity)

		f, err := client.Forecast(ctx, city)
		if err != nil {
			return "", err
		}
		return formatForecast(f), nil
	}
}

// formatForecast renders a forecast as a farmer-facing answer: current
// conditions, the 3-day outlook, and what the rain chances mean for field work.
func formatForecast(f *lookup.Forecast) string {
	var b strings.Builder

	place := f.Location
	if f.Region != "" {
		place += ", " + f.Region
	}
	fmt.Fprintf(&b, "🌦️ Mausam — %s\n\n", place)
	fmt.Fprintf(&b, "Abhi: %.1f°C (mehsoos %.1f°C), %s, humidity %d%%, hawa %.0f km/h\n",
		f.Current.TempC, f.Current.FeelsLikeC, f.Current.Condition, f.Current.Humidity, f.Current.WindKph)

	if len(f.Days) > 0 {
		b.WriteString("\nAgle din:\n")
		for _, d := range f.Days {
			fmt.Fprintf(&b, "- %s: %.0f°/%.0f°C, barish ka imkan %d%%, %s\n",
				d.Date, d.MaxTempC, d.MinTempC, d.RainChance, d.Condition)
		}
	}

	b.WriteString("\n💡 Salah: ")
	if rainExpected(f) {
		b.WriteString("Barish ka imkan hai, spray aur irrigation rok dein. Kata hua fasal dhak kar rakhein.")
	} else {
		b.WriteString("Mausam saaf hai, spray aur irrigation ke liye acha waqt hai.")
	}
	return b.String()
}

func rainExpected(f *lookup.Forecast) bool {
	for _, d := range f.Days {
		if d.RainChance >= rainSprayThreshold {
			return true
		}
	}
	return false
}
