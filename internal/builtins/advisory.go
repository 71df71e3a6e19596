// ABOUTME: Static advisory responders: greeting, document, soil, pest, yield, general
// ABOUTME: Table-driven answers for the specialists that need no external lookup

package builtins

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

func greetingResponder(_ context.Context, _ specialist.ID, _ string) (string, error) {
	return "Assalam-o-Alaikum! 🌾 Main FarmSmart hoon, aap ka farming assistant. " +
		"Mausam, mandi rates, fasal ki beemari, khaad, ya kisi bhi kheti ke sawal " +
		"ke liye pooch sakte hain.", nil
}

func documentResponder(_ context.Context, _ specialist.ID, _ string) (string, error) {
	return "Document analysis ke liye apni file ka matan query ke sath bhejein. " +
		"Soil test report, fertilizer recommendation, ya scheme ke kaghzat — " +
		"main parh kar khulasa aur agle qadam bata doon ga.", nil
}

// soilCrops maps a soil type to the crops that do well in it.
var soilCrops = []struct {
	soil   string
	crops  []string
	reason string
}{
	{
		soil:   "sandy",
		crops:  []string{"Groundnut", "Bajra", "Watermelon", "Carrot"},
		reason: "Sandy soil jaldi paani nikal deti hai, is liye kam paani wali aur jar wali faslein behtar chalti hain",
	},
	{
		soil:   "clay",
		crops:  []string{"Rice", "Sugarcane", "Berseem"},
		reason: "Clay soil paani rokti hai, is liye zyada paani wali faslein acha karti hain",
	},
	{
		soil:   "loam",
		crops:  []string{"Wheat", "Maize", "Cotton", "Vegetables"},
		reason: "Loam soil me paani aur khorak ka tawazun sab se acha hota hai, zyada tar faslein is me chalti hain",
	},
}

func soilResponder(_ context.Context, _ specialist.ID, prompt string) (string, error) {
	question := strings.ToLower(currentQuestion(prompt))

	rec := soilCrops[len(soilCrops)-1] // loam is the safe default
	for _, entry := range soilCrops {
		if strings.Contains(question, entry.soil) {
			rec = entry
			break
		}
	}

	payload, err := json.Marshal(map[string]any{
		"crops":  rec.crops,
		"reason": rec.reason,
	})
	if err != nil {
		return "", fmt.Errorf("encoding crop recommendation: %w", err)
	}
	return string(payload), nil
}

// pestRemedies maps symptom keywords to a diagnosis and treatment.
var pestRemedies = []struct {
	keywords  []string
	diagnosis string
	treatment string
}{
	{
		keywords:  []string{"yellow", "peela"},
		diagnosis: "Pattay peelay hona aksar nitrogen ki kami ya yellow rust ki nishani hai",
		treatment: "Urea ka spray karein (2%); agar dhariyan nazar aayen to fungicide (propiconazole) istemal karein",
	},
	{
		keywords:  []string{"spots", "dhabbay", "blight"},
		diagnosis: "Pattoon par dhabbay fungal blight ki alamat hain",
		treatment: "Mancozeb ya copper oxychloride ka spray 10 din ke waqfay se do dafa karein",
	},
	{
		keywords:  []string{"borer", "sundi", "caterpillar"},
		diagnosis: "Tana ya phal ki sundi ka hamla lagta hai",
		treatment: "Pheromone traps lagayen aur emamectin benzoate ka spray shaam ke waqt karein",
	},
	{
		keywords:  []string{"aphid", "sasta", "tela"},
		diagnosis: "Tela (aphid) ras choos kar fasal kamzor karta hai",
		treatment: "Neem ka tel ya imidacloprid ka spray karein; ladybird beetles ko nuqsan na pohanchayen",
	},
}

func pestResponder(_ context.Context, _ specialist.ID, prompt string) (string, error) {
	question := strings.ToLower(currentQuestion(prompt))

	for _, r := range pestRemedies {
		for _, kw := range r.keywords {
			if strings.Contains(question, kw) {
				return fmt.Sprintf("🐛 Tashkhees: %s\n\n💊 Ilaj: %s\n\n"+
					"⚠️ Spray hamesha shaam ko karein aur hawa tez ho to rok dein.",
					r.diagnosis, r.treatment), nil
			}
		}
	}

	return "🐛 Beemari ki durust tashkhees ke liye mazeed tafseel chahiye: kaunsi fasal hai, " +
		"pattoon ka rang kaisa hai, aur nuqsan kahan se shuru hua? " +
		"Mojooda pattay ki photo kisi qareebi zarai markaz ko bhi dikhayen.", nil
}

// yieldEstimates are indicative per-acre yields for the staple crops.
var yieldEstimates = map[string]string{
	"wheat":     "Aam paidawar 35-45 mann fi acre; achi khaad aur waqt par pani se 50 mann tak mumkin hai",
	"rice":      "Basmati 25-35 mann fi acre, IRRI qisman 50-60 mann tak de sakti hain",
	"cotton":    "Aam paidawar 20-30 mann phutti fi acre; IPM apnane se nuqsan kam hota hai",
	"sugarcane": "Aam paidawar 600-800 mann fi acre; drip irrigation se 1000 mann tak mumkin hai",
	"maize":     "Hybrid makai 80-100 mann fi acre tak deti hai, desi qisman 40-50 mann",
}

func yieldResponder(_ context.Context, _ specialist.ID, prompt string) (string, error) {
	question := currentQuestion(prompt)
	product := questionProduct(question)

	if est, ok := yieldEstimates[product]; ok {
		label := strings.ToUpper(product[:1]) + product[1:]
		return fmt.Sprintf("📈 %s: %s.\n\nDurust andaza zameen ki sehat, beej ki qisam, "+
			"aur pani ki dastyabi par munhasir hai.", label, est), nil
	}
	return "📈 Is fasal ka paidawar ka andaza mere paas nahi. Wheat, rice, cotton, " +
		"sugarcane, ya maize ke baray me pooch kar dekhein.", nil
}

func generalResponder(_ context.Context, _ specialist.ID, prompt string) (string, error) {
	return "Main kheti barhi ke sawalat me madad karta hoon: mausam, mandi rates, " +
		"fasal ki beemari, soil aur khaad, paidawar ka andaza, aur crop calendar. " +
		"Apna sawal thora khol kar poochein, jaise \"Lahore me wheat ka rate kya hai?\"", nil
}
