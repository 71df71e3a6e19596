// ABOUTME: Knowledge base lookups: topic search, practice search, crop calendar
// ABOUTME: Long-TTL cache; the underlying tables change on deploys, not at runtime

package lookup

import (
	"fmt"
	"strings"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/cache"
)

// KnowledgeBase answers agronomy questions from the static tables, caching
// composed results.
type KnowledgeBase struct {
	cache *cache.Cache[string, map[string]any]

	now func() time.Time // injectable for the calendar default
}

// NewKnowledgeBase creates a knowledge base with the given cache bounds.
func NewKnowledgeBase(ttl time.Duration, maxSize int) *KnowledgeBase {
	return &KnowledgeBase{
		cache: cache.New[string, map[string]any](ttl, maxSize),
		now:   time.Now,
	}
}

// Lookup returns the knowledge entry for a topic. An exact topic key wins;
// otherwise every topic whose content mentions the term is returned. Unknown
// terms get a pointer at the available topics instead of an empty answer.
func (kb *KnowledgeBase) Lookup(topic, subtopic string) map[string]any {
	key := fmt.Sprintf("knowledge_%s_%s", topic, subtopic)
	if r, ok := kb.cache.Get(key); ok {
		return r
	}

	data := map[string]any{}
	topicLower := strings.ToLower(strings.TrimSpace(topic))

	if entry, ok := knowledgeDB[topicLower]; ok {
		data = entry.(map[string]any)
	} else {
		for mainTopic, content := range knowledgeDB {
			if strings.Contains(strings.ToLower(fmt.Sprint(content)), topicLower) {
				data[mainTopic] = content
			}
		}
	}

	if len(data) == 0 {
		data = map[string]any{
			"message":    fmt.Sprintf("Information about '%s' is being compiled.", topic),
			"suggestion": "Try topics like: " + strings.Join(Topics(), ", "),
		}
	}

	result := map[string]any{"topic": topic, "subtopic": subtopic, "data": data}
	kb.cache.Put(key, result)
	return result
}

// SearchPractices finds farming practices whose name contains a query word.
func (kb *KnowledgeBase) SearchPractices(query, region string) map[string]any {
	if region == "" {
		region = "Pakistan"
	}
	key := fmt.Sprintf("practices_%s_%s", strings.ToLower(query), region)
	if r, ok := kb.cache.Get(key); ok {
		return r
	}

	results := map[string]any{}
	for practice, details := range practicesDB {
		for _, word := range strings.Fields(strings.ToLower(query)) {
			if strings.Contains(practice, word) {
				results[practice] = details
				break
			}
		}
	}

	var result map[string]any
	if len(results) == 0 {
		result = map[string]any{
			"query":               query,
			"message":             "No exact match found",
			"available_practices": Practices(),
			"suggestion":          "Try: " + strings.Join(Practices(), ", "),
		}
	} else {
		result = map[string]any{
			"query":     query,
			"region":    region,
			"practices": results,
		}
	}

	kb.cache.Put(key, result)
	return result
}

// Calendar returns the farming activities for a month (1-12). Out-of-range
// months mean "this month".
func (kb *KnowledgeBase) Calendar(month int, region string) map[string]any {
	if region == "" {
		region = "Punjab"
	}
	if month < 1 || month > 12 {
		month = int(kb.now().Month())
	}

	plan := farmingCalendar[month]
	next := farmingCalendar[(month%12)+1]

	return map[string]any{
		"month":           monthNames[month],
		"region":          region,
		"season":          plan.Season,
		"key_activities":  plan.Activities,
		"urdu_summary":    plan.Urdu,
		"next_month_prep": next.Activities[0],
	}
}

// CacheLen reports how many composed answers are currently cached.
func (kb *KnowledgeBase) CacheLen() int {
	return kb.cache.Len()
}

// Close releases the cache resources.
func (kb *KnowledgeBase) Close() {
	kb.cache.Close()
}

// Topics lists the knowledge base topics in a stable order.
func Topics() []string {
	return []string{
		"crop_basics", "soil_science", "irrigation", "fertilizers",
		"pests_diseases", "farm_machinery", "government_schemes",
		"marketing", "organic_farming", "climate_smart",
	}
}

// Practices lists the available practice entries in a stable order.
func Practices() []string {
	return []string{
		"land_preparation", "seed_selection", "water_management",
		"weed_control", "harvest_timing", "post_harvest",
	}
}
