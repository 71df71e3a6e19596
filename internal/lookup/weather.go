// ABOUTME: Weather forecast client for farming decisions, backed by weatherapi.com
// ABOUTME: Responses are cached briefly; weather goes stale in minutes, not hours

package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/cache"
)

// ErrWeatherUnavailable indicates the upstream weather API could not serve
// the request.
var ErrWeatherUnavailable = errors.New("weather data unavailable")

// DefaultWeatherBaseURL is the production weather API endpoint.
const DefaultWeatherBaseURL = "https://api.weatherapi.com/v1"

// forecastDays is how many days of forecast a farming decision needs.
const forecastDays = 3

// Forecast is the weather picture for one location.
type Forecast struct {
	Location   string        `json:"location"`
	Region     string        `json:"region"`
	Current    Conditions    `json:"current"`
	Days       []DayForecast `json:"forecast"`
	AirQuality AirQuality    `json:"air_quality"`
}

// Conditions is the current observed weather.
type Conditions struct {
	TempC           float64 `json:"temp_c"`
	FeelsLikeC      float64 `json:"feels_like"`
	Condition       string  `json:"condition"`
	Humidity        int     `json:"humidity"`
	WindKph         float64 `json:"wind_kph"`
	UVIndex         float64 `json:"uv_index"`
	PrecipitationMM float64 `json:"precipitation_mm"`
}

// DayForecast is one day of the forward forecast.
type DayForecast struct {
	Date       string  `json:"date"`
	MaxTempC   float64 `json:"max_temp"`
	MinTempC   float64 `json:"min_temp"`
	RainChance int     `json:"rain_chance"`
	Condition  string  `json:"condition"`
}

// AirQuality carries the spray-planning relevant air metrics.
type AirQuality struct {
	EPAIndex float64 `json:"aqi"`
	PM25     float64 `json:"pm2_5"`
}

// WeatherClient fetches forecasts with a bounded TTL cache in front.
type WeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   *cache.Cache[string, *Forecast]
	logger  *slog.Logger
}

// NewWeatherClient creates a weather client. baseURL may be empty for the
// production endpoint; ttl and maxSize bound the response cache.
func NewWeatherClient(baseURL, apiKey string, ttl time.Duration, maxSize int) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	return &WeatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New[string, *Forecast](ttl, maxSize),
		logger:  slog.Default().With("component", "weather"),
	}
}

// Forecast returns the current conditions and 3-day outlook for a location.
// Within the cache TTL, repeated lookups for the same location are answered
// from cache without touching the network.
func (c *WeatherClient) Forecast(ctx context.Context, location string) (*Forecast, error) {
	key := "weather_" + location
	if f, ok := c.cache.Get(key); ok {
		return f, nil
	}

	f, err := c.fetch(ctx, location)
	if err != nil {
		c.logger.Error("weather fetch failed", "location", location, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}

	c.cache.Put(key, f)
	return f, nil
}

// CacheLen reports how many forecasts are currently cached.
func (c *WeatherClient) CacheLen() int {
	return c.cache.Len()
}

// Close releases the cache resources.
func (c *WeatherClient) Close() {
	c.cache.Close()
}

// apiResponse mirrors the weatherapi.com forecast.json payload, limited to
// the fields the gateway uses.
type apiResponse struct {
	Location struct {
		Name   string `json:"name"`
		Region string `json:"region"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Humidity   int     `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		UV         float64 `json:"uv"`
		PrecipMM   float64 `json:"precip_mm"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
		AirQuality map[string]float64 `json:"air_quality"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC     float64 `json:"maxtemp_c"`
				MinTempC     float64 `json:"mintemp_c"`
				ChanceOfRain int     `json:"daily_chance_of_rain"`
				Condition    struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (c *WeatherClient) fetch(ctx context.Context, location string) (*Forecast, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", location)
	q.Set("days", fmt.Sprint(forecastDays))
	q.Set("aqi", "yes")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast.json?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API status %d", resp.StatusCode)
	}

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	f := &Forecast{
		Location: api.Location.Name,
		Region:   api.Location.Region,
		Current: Conditions{
			TempC:           api.Current.TempC,
			FeelsLikeC:      api.Current.FeelsLikeC,
			Condition:       api.Current.Condition.Text,
			Humidity:        api.Current.Humidity,
			WindKph:         api.Current.WindKph,
			UVIndex:         api.Current.UV,
			PrecipitationMM: api.Current.PrecipMM,
		},
		AirQuality: AirQuality{
			EPAIndex: api.Current.AirQuality["us-epa-index"],
			PM25:     api.Current.AirQuality["pm2_5"],
		},
	}
	for _, day := range api.Forecast.ForecastDay {
		f.Days = append(f.Days, DayForecast{
			Date:       day.Date,
			MaxTempC:   day.Day.MaxTempC,
			MinTempC:   day.Day.MinTempC,
			RainChance: day.Day.ChanceOfRain,
			Condition:  day.Day.Condition.Text,
		})
	}
	return f, nil
}
