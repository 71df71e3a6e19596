// ABOUTME: Tests for market quote lookups
// ABOUTME: Validates caching per product+region and the static baseline source

package lookup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketClient_CachesPerProductRegion(t *testing.T) {
	calls := 0
	src := QuoteSourceFunc(func(ctx context.Context, product, region string) (*Quote, error) {
		calls++
		return &Quote{Product: product, Region: region, PricePerKgPKR: 100}, nil
	})

	c := NewMarketClient(src, time.Minute, 10)
	defer c.Close()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.Quote(ctx, "wheat", "Punjab")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)

	_, err := c.Quote(ctx, "wheat", "Sindh")
	require.NoError(t, err)
	_, err = c.Quote(ctx, "rice", "Punjab")
	require.NoError(t, err)
	assert.Equal(t, 3, calls, "product and region are both part of the key")
}

func TestMarketClient_DefaultRegion(t *testing.T) {
	var gotRegion string
	src := QuoteSourceFunc(func(ctx context.Context, product, region string) (*Quote, error) {
		gotRegion = region
		return &Quote{Product: product, Region: region}, nil
	})

	c := NewMarketClient(src, time.Minute, 10)
	defer c.Close()

	_, err := c.Quote(context.Background(), "wheat", "")
	require.NoError(t, err)
	assert.Equal(t, "Pakistan", gotRegion)
}

func TestMarketClient_SourceErrorNotCached(t *testing.T) {
	calls := 0
	src := QuoteSourceFunc(func(ctx context.Context, product, region string) (*Quote, error) {
		calls++
		return nil, errors.New("upstream down")
	})

	c := NewMarketClient(src, time.Minute, 10)
	defer c.Close()
	ctx := context.Background()

	_, err := c.Quote(ctx, "wheat", "Punjab")
	require.Error(t, err)
	_, err = c.Quote(ctx, "wheat", "Punjab")
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, c.CacheLen())
}

func TestStaticQuoteSource_Baseline(t *testing.T) {
	q, err := StaticQuoteSource{}.Fetch(context.Background(), "Wheat", "Punjab")
	require.NoError(t, err)
	assert.Equal(t, "Wheat", q.Product)
	assert.Equal(t, "Punjab", q.Region)
	assert.Equal(t, 102.0, q.PricePerKgPKR)
	assert.NotEmpty(t, q.BestMarkets)
	assert.NotEmpty(t, q.UrduTip)
}

func TestStaticQuoteSource_UnknownProduct(t *testing.T) {
	q, err := StaticQuoteSource{}.Fetch(context.Background(), "dragonfruit", "Pakistan")
	require.NoError(t, err, "an unlisted product is not an error")
	assert.Equal(t, float64(defaultQuotePrice), q.PricePerKgPKR)
	assert.Equal(t, "stable", q.Trend)
}
