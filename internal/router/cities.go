// ABOUTME: Fuzzy lookup of Pakistani city names in free text for weather routing.
// ABOUTME: Accepts canonical names, known short-forms, and small misspellings.

package router

import (
	"strings"
)

// City is a canonical city identifier.
type City string

// Canonical Pakistani cities recognized in queries.
var canonicalCities = []City{
	"karachi", "lahore", "islamabad", "rawalpindi", "peshawar", "quetta",
	"hyderabad", "multan", "faisalabad", "sialkot", "gujranwala", "gujrat",
	"sukkur", "larkana", "dadu", "mirpurkhas", "khairpur", "nawabshah",
	"jacobabad", "shikarpur", "thatta", "badin", "rahim yar khan",
	"bahawalpur", "sargodha", "mardan", "swat", "kohat", "muzaffarabad",
	"gilgit", "skardu",
}

// cityAliases maps common Roman Urdu short-forms and frequent misspellings
// to their canonical city.
var cityAliases = map[string]City{
	"karachy":   "karachi",
	"karachii":  "karachi",
	"hyd":       "hyderabad",
	"hyderbad":  "hyderabad",
	"islbd":     "islamabad",
	"islamabd":  "islamabad",
	"lahor":     "lahore",
	"sukar":     "sukkur",
	"multn":     "multan",
	"pindi":     "rawalpindi",
	"fsd":       "faisalabad",
	"ryk":       "rahim yar khan",
}

// maxCityMatches caps how many cities a single query can resolve to.
const maxCityMatches = 2

// maxEditDistance is the misspelling tolerance against canonical names.
const maxEditDistance = 2

// exactCityLookup maps every canonical name and alias token sequence to its
// canonical city, built once at init.
var exactCityLookup = buildExactLookup()

func buildExactLookup() map[string]City {
	m := make(map[string]City, len(canonicalCities)+len(cityAliases))
	for _, c := range canonicalCities {
		m[string(c)] = c
	}
	for alias, c := range cityAliases {
		m[alias] = c
	}
	return m
}

// longestCityName is the word count of the longest canonical name ("rahim yar khan").
const longestCityName = 3

// MatchCities finds up to two canonical cities mentioned in free text,
// first-occurrence order. Matching is case-insensitive and ignores
// punctuation. At each position the longest exact match (canonical or alias)
// wins; only when no exact match exists is a fuzzy match with edit
// distance <= 2 against a canonical name accepted.
func MatchCities(text string) []City {
	tokens := tokenize(text)

	var found []City
	seen := make(map[City]bool)
	add := func(c City) {
		if !seen[c] {
			seen[c] = true
			found = append(found, c)
		}
	}

	for i := 0; i < len(tokens) && len(found) < maxCityMatches; {
		// Longest exact match at this position first.
		matched := 0
		for n := longestCityName; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			window := strings.Join(tokens[i:i+n], " ")
			if c, ok := exactCityLookup[window]; ok {
				add(c)
				matched = n
				break
			}
		}
		if matched > 0 {
			i += matched
			continue
		}

		if c, ok := fuzzyCity(tokens[i]); ok {
			add(c)
		}
		i++
	}

	return found
}

// fuzzyCity matches a single token against canonical names within the edit
// distance bound. Short tokens are skipped: with a tolerance of 2, a word
// like "what" is two edits from "swat". Short-forms belong in the alias table.
func fuzzyCity(token string) (City, bool) {
	if len(token) < 5 {
		return "", false
	}
	best := City("")
	bestDist := maxEditDistance + 1
	for _, c := range canonicalCities {
		if strings.Contains(string(c), " ") {
			continue
		}
		d := editDistance(token, string(c), maxEditDistance)
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist <= maxEditDistance {
		return best, true
	}
	return "", false
}

// tokenize lower-cases the text and splits it on anything that is not a
// letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && !(r >= 0x80)
	})
}

// editDistance computes the Levenshtein distance between a and b, giving up
// early once the distance is known to exceed bound (returns bound+1).
func editDistance(a, b string, bound int) int {
	if abs(len(a)-len(b)) > bound {
		return bound + 1
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > bound {
			return bound + 1
		}
		prev, cur = cur, prev
	}

	if prev[len(b)] > bound {
		return bound + 1
	}
	return prev[len(b)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
