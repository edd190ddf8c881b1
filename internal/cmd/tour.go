package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var (
	tourPage  int
	tourLimit int
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Browse tours",
	Long:  "Browse, search, and get suggestions for tours",
}

var tourListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List tours, optionally filtered by a search query",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		return service.NewTourService().Browse(query, tourPage, tourLimit)
	},
}

var tourViewCmd = &cobra.Command{
	Use:   "view <tour-id>",
	Short: "Show a tour with destination weather",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewTourService().View(args[0])
	},
}

var tourSuggestCmd = &cobra.Command{
	Use:   "suggest <prompt>",
	Short: "Get AI-assisted tour suggestions",
	Long:  "Describe the trip you want in plain language and get matching tours",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewTourService().Suggest(strings.Join(args, " "))
	},
}

func init() {
	tourListCmd.Flags().IntVar(&tourPage, "page", 1, "Page number")
	tourListCmd.Flags().IntVar(&tourLimit, "limit", 20, "Results per page")

	tourCmd.AddCommand(tourListCmd)
	tourCmd.AddCommand(tourViewCmd)
	tourCmd.AddCommand(tourSuggestCmd)
}
