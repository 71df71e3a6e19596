// ABOUTME: Market price lookups with a pluggable quote source and a medium TTL cache
// ABOUTME: Ships a baseline static source so the gateway answers without an upstream

package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/cache"
)

// Quote is one commodity price report.
type Quote struct {
	Product       string   `json:"product"`
	Region        string   `json:"region"`
	PricePerKgPKR float64  `json:"price_per_kg_pkr"`
	PriceMin      float64  `json:"price_min"`
	PriceMax      float64  `json:"price_max"`
	Demand        string   `json:"demand"`
	Supply        string   `json:"supply"`
	Trend         string   `json:"trend"`
	BestMarkets   []string `json:"best_markets"`
	Advice        string   `json:"advice"`
	UrduTip       string   `json:"urdu_tip"`
}

// QuoteSource produces a fresh quote for a product in a region.
type QuoteSource interface {
	Fetch(ctx context.Context, product, region string) (*Quote, error)
}

// QuoteSourceFunc adapts a function to the QuoteSource interface.
type QuoteSourceFunc func(ctx context.Context, product, region string) (*Quote, error)

// Fetch calls f.
func (f QuoteSourceFunc) Fetch(ctx context.Context, product, region string) (*Quote, error) {
	return f(ctx, product, region)
}

// MarketClient answers price lookups through a TTL cache; prices are
// perishable but not minute-to-minute, so the cache window is wider than
// weather's.
type MarketClient struct {
	source QuoteSource
	cache  *cache.Cache[string, *Quote]
	logger *slog.Logger
}

// NewMarketClient creates a market client over the given source.
func NewMarketClient(source QuoteSource, ttl time.Duration, maxSize int) *MarketClient {
	return &MarketClient{
		source: source,
		cache:  cache.New[string, *Quote](ttl, maxSize),
		logger: slog.Default().With("component", "market"),
	}
}

// Quote returns the price report for a product, cached per product+region
// within the TTL.
func (c *MarketClient) Quote(ctx context.Context, product, region string) (*Quote, error) {
	if region == "" {
		region = "Pakistan"
	}
	key := fmt.Sprintf("market_%s_%s", strings.ToLower(product), strings.ToLower(region))
	if q, ok := c.cache.Get(key); ok {
		return q, nil
	}

	q, err := c.source.Fetch(ctx, product, region)
	if err != nil {
		c.logger.Error("market fetch failed", "product", product, "error", err)
		return nil, fmt.Errorf("fetching quote for %s: %w", product, err)
	}

	c.cache.Put(key, q)
	return q, nil
}

// CacheLen reports how many quotes are currently cached.
func (c *MarketClient) CacheLen() int {
	return c.cache.Len()
}

// Close releases the cache resources.
func (c *MarketClient) Close() {
	c.cache.Close()
}

// baselineQuotes are indicative mandi prices for the staple commodities,
// used when no live source is configured.
var baselineQuotes = map[string]Quote{
	"wheat": {
		PricePerKgPKR: 102, PriceMin: 95, PriceMax: 112,
		Demand: "high", Supply: "medium", Trend: "stable",
		BestMarkets: []string{"Lahore Akbari Mandi", "Multan Ghalla Mandi"},
		Advice:      "Government support price active, sell at procurement centers",
		UrduTip:     "Sarkari rate pe bechein, intezar na karein",
	},
	"rice": {
		PricePerKgPKR: 220, PriceMin: 180, PriceMax: 260,
		Demand: "high", Supply: "medium", Trend: "increasing",
		BestMarkets: []string{"Gujranwala Rice Market", "Hafizabad Mandi"},
		Advice:      "Basmati export demand strong this quarter",
		UrduTip:     "Basmati ka rate barh raha hai, grade ka khayal rakhein",
	},
	"cotton": {
		PricePerKgPKR: 385, PriceMin: 350, PriceMax: 420,
		Demand: "medium", Supply: "low", Trend: "increasing",
		BestMarkets: []string{"Multan Cotton Market", "Bahawalpur Mandi"},
		Advice:      "Ginning factories buying actively, check moisture discount",
		UrduTip:     "Phutti sukhi bech kar behtar rate lein",
	},
	"sugarcane": {
		PricePerKgPKR: 11, PriceMin: 9, PriceMax: 13,
		Demand: "high", Supply: "high", Trend: "stable",
		BestMarkets: []string{"Mill gate (contract)", "Local crusher"},
		Advice:      "Mill contracts beat open market for large volumes",
		UrduTip:     "Mill se seedha contract behtar hai",
	},
	"maize": {
		PricePerKgPKR: 72, PriceMin: 62, PriceMax: 84,
		Demand: "high", Supply: "medium", Trend: "increasing",
		BestMarkets: []string{"Okara Grain Market", "Sahiwal Mandi"},
		Advice:      "Poultry feed demand keeps prices firm",
		UrduTip:     "Feed mills achi qeemat de rahi hain",
	},
	"potato": {
		PricePerKgPKR: 58, PriceMin: 40, PriceMax: 75,
		Demand: "medium", Supply: "high", Trend: "decreasing",
		BestMarkets: []string{"Lahore Sabzi Mandi", "Okara Mandi"},
		Advice:      "Cold storage extends the selling window past the glut",
		UrduTip:     "Cold storage me rakh kar off-season bechein",
	},
	"onion": {
		PricePerKgPKR: 85, PriceMin: 60, PriceMax: 110,
		Demand: "high", Supply: "medium", Trend: "increasing",
		BestMarkets: []string{"Karachi Sabzi Mandi", "Hyderabad Mandi"},
		Advice:      "Prices typically peak before the Sindh harvest arrives",
		UrduTip:     "Aglay hafte qeemat barh sakti hai",
	},
}

// defaultQuotePrice is the indicative price for commodities outside the
// baseline table.
const defaultQuotePrice = 100

// StaticQuoteSource serves the baseline table. Unknown products get a flat
// indicative quote rather than an error; a missing row should not take the
// market specialist down.
type StaticQuoteSource struct{}

// Fetch returns the baseline quote for the product.
func (StaticQuoteSource) Fetch(ctx context.Context, product, region string) (*Quote, error) {
	q, ok := baselineQuotes[strings.ToLower(strings.TrimSpace(product))]
	if !ok {
		return &Quote{
			Product:       product,
			Region:        region,
			PricePerKgPKR: defaultQuotePrice,
			Trend:         "stable",
			Advice:        "No listed baseline for this product, verify at your local mandi",
			UrduTip:       "Apni qareebi mandi se rate zaroor check karein",
		}, nil
	}
	q.Product = product
	q.Region = region
	return &q, nil
}
