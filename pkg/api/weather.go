package api

import (
	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// GetWeather retrieves current weather for a destination
func GetWeather(destination string) (*Weather, error) {
	logger.Debug("Fetching weather", "destination", destination)

	var response struct {
		Weather Weather `json:"weather"`
	}

	resp, err := client.GetClient().
		R().
		SetQueryParam("destination", destination).
		SetResult(&response).
		Get("/api/v1/weather")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response.Weather, nil
}
