// ABOUTME: Normalizes raw specialist output into user-facing text
// ABOUTME: Structured JSON is rendered as labeled lines, prose is cleaned of artifacts

package orchestrator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// delegationPhrases are meta-commentary fragments some responders emit before
// handing off; they carry no information for the user.
var delegationPhrases = []string{
	"I'll delegate", "I'm delegating", "I will ask", "Let me check",
	"I'll transfer", "I'm transferring",
}

// Normalize converts raw specialist output into presentable text. Output that
// parses as a JSON object is rendered with the structured formatter; anything
// else is treated as prose and cleaned of code fences and delegation phrases.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err == nil && obj != nil {
		return formatStructured(obj)
	}

	return cleanProse(raw)
}

// cleanProse strips code fences and delegation phrases from free-text output.
func cleanProse(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	for _, phrase := range delegationPhrases {
		text = strings.ReplaceAll(text, phrase, "")
	}
	return strings.TrimSpace(text)
}

// formatStructured renders a JSON object the way users expect to read it:
// known shapes (knowledge base payloads, crop recommendations, market quotes)
// get their dedicated layout, everything else becomes labeled lines.
func formatStructured(obj map[string]any) string {
	if data, ok := obj["data"].(map[string]any); ok {
		content, err := json.MarshalIndent(data, "", "  ")
		if err == nil {
			return "📚 Knowledge Base:\n\n" + string(content)
		}
	}

	if crops, ok := obj["crops"].([]any); ok {
		names := make([]string, 0, len(crops))
		for _, c := range crops {
			names = append(names, fmt.Sprint(c))
		}
		return fmt.Sprintf("✅ Aap ki soil ke liye best crops hain: %s\n\n📌 Wajah: %s",
			strings.Join(names, ", "), stringField(obj, "reason"))
	}

	if _, ok := obj["price_per_kg_pkr"]; ok {
		advice := stringField(obj, "urdu_tip")
		if advice == "" {
			advice = stringField(obj, "advice")
		}
		trend := stringField(obj, "trend")
		if trend == "" {
			trend = "stable"
		}
		return strings.Join([]string{
			"💰 Market Ki Taza Khabar:",
			"Cheez: " + stringField(obj, "product"),
			fmt.Sprintf("Qeemat: PKR %v/kg", obj["price_per_kg_pkr"]),
			"Trend: " + trend,
			"Best Mandian: " + joinField(obj, "best_markets"),
			"💡 Salah: " + advice,
		}, "\n")
	}

	// Generic object: one "Key Name: value" line per field, sorted for a
	// stable rendering.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		v := obj[k]
		switch v.(type) {
		case map[string]any, []any:
			encoded, err := json.Marshal(v)
			if err == nil {
				v = string(encoded)
			}
		}
		lines = append(lines, titleKey(k)+": "+fmt.Sprint(v))
	}
	return strings.Join(lines, "\n")
}

// stringField returns obj[key] if it is a string, else "".
func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// joinField renders a string-array field as a comma-separated list.
func joinField(obj map[string]any, key string) string {
	items, ok := obj[key].([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprint(it))
	}
	return strings.Join(parts, ", ")
}

// titleKey turns a snake_case field name into a display label.
func titleKey(k string) string {
	words := strings.Split(k, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
