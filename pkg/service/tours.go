package service

import (
	"fmt"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/output"
)

// TourService handles tour browsing and AI-assisted suggestions
type TourService struct{}

// NewTourService creates a new tour service
func NewTourService() *TourService {
	return &TourService{}
}

// Browse lists tours, optionally filtered by a search query
func (ts *TourService) Browse(query string, page, limit int) error {
	attachSession()

	resp, err := api.GetTours(query, page, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch tours: %w", err)
	}

	if len(resp.Tours) == 0 {
		fmt.Println("No tours found")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", resp.Tours)
	}

	headers := []string{"ID", "Title", "Destination", "Days", "Price", "Rating"}
	rows := make([][]string, 0, len(resp.Tours))
	for _, tour := range resp.Tours {
		rows = append(rows, []string{
			tour.ID,
			truncate(tour.Title, 35),
			tour.Destination,
			fmt.Sprintf("%d", tour.DurationDays),
			fmt.Sprintf("%.2f %s", tour.Price, tour.Currency),
			fmt.Sprintf("%.1f (%d)", tour.Rating, tour.ReviewCount),
		})
	}
	formatter.PrintTable(headers, rows)
	return nil
}

// View shows one tour in full, with the destination's current weather
func (ts *TourService) View(tourID string) error {
	attachSession()

	tour, err := api.GetTour(tourID)
	if err != nil {
		return fmt.Errorf("failed to fetch tour: %w", err)
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", tour)
	}

	formatter.PrintInfo("%s", tour.Title)
	formatter.PrintKeyValue(map[string]interface{}{
		"Destination": tour.Destination,
		"Duration":    fmt.Sprintf("%d days", tour.DurationDays),
		"Price":       fmt.Sprintf("%.2f %s", tour.Price, tour.Currency),
		"Rating":      fmt.Sprintf("%.1f (%d reviews)", tour.Rating, tour.ReviewCount),
		"Departure":   tour.DepartureDate,
	})
	if tour.Description != "" {
		fmt.Printf("\n%s\n", tour.Description)
	}

	// Weather is a nicety; skip the card when the lookup fails
	if weather, err := api.GetWeather(tour.Destination); err == nil {
		fmt.Printf("\nWeather in %s: %s, %.1f°C, wind %.0f kph\n",
			weather.Destination, weather.Condition, weather.TempC, weather.WindKph)
	}
	return nil
}

// Suggest asks the platform for AI-assisted tour suggestions
func (ts *TourService) Suggest(prompt string) error {
	attachSession()

	resp, err := api.SuggestTours(prompt)
	if err != nil {
		return fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	if len(resp.Suggestions) == 0 {
		fmt.Println("No suggestions for that query")
		return nil
	}

	if output.GetOutputFormat() == output.FormatJSON {
		return output.Print("", resp.Suggestions)
	}

	formatter.PrintInfo("Suggestions for %q", resp.Query)
	fmt.Println()
	for i, s := range resp.Suggestions {
		fmt.Printf("[%d] %s - %s, %d days, %.2f %s\n",
			i+1, s.Tour.Title, s.Tour.Destination, s.Tour.DurationDays, s.Tour.Price, s.Tour.Currency)
		fmt.Printf("    %s\n\n", s.Reason)
	}
	return nil
}
