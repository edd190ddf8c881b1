package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/service"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <destination>",
	Short: "Show current weather for a destination",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewWeatherService().Current(strings.Join(args, " "))
	},
}
