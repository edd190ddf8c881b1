package service

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/output"
)

// WeatherService shows destination weather
type WeatherService struct{}

// NewWeatherService creates a new weather service
func NewWeatherService() *WeatherService {
	return &WeatherService{}
}

// Current shows the current weather for a destination
func (ws *WeatherService) Current(destination string) error {
	weather, err := api.GetWeather(destination)
	if err != nil {
		return fmt.Errorf("failed to fetch weather: %w", err)
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", weather)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Destination": weather.Destination,
		"Condition":   weather.Condition,
		"Temperature": fmt.Sprintf("%.1f°C", weather.TempC),
		"Humidity":    fmt.Sprintf("%d%%", weather.Humidity),
		"Wind":        fmt.Sprintf("%.0f kph", weather.WindKph),
		"Fetched":     weather.FetchedAt,
	})
	return nil
}
