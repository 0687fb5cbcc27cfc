// File: services/intelligence/weather.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// WeatherClient fetches current conditions from OpenWeatherMap so itinerary
// prompts can mention them. A nil client or empty key simply produces no
// weather line; plans do not depend on it.
type WeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: openWeatherURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Current returns a one-line summary like "clear sky, 27.4°C" for a city.
func (w *WeatherClient) Current(ctx context.Context, city string) (string, error) {
	if w == nil || w.apiKey == "" || city == "" {
		return "", nil
	}

	endpoint := fmt.Sprintf("%s?q=%s&appid=%s&units=metric",
		w.baseURL, url.QueryEscape(city), w.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(data.Weather) == 0 {
		return "", fmt.Errorf("weather response missing conditions")
	}

	return fmt.Sprintf("%s, %.1f°C", data.Weather[0].Description, data.Main.Temp), nil
}
