package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/config"
	clierrors "github.com/wanderly/wanderly-cli/pkg/errors"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "wanderly",
	Short: "Wanderly CLI - Travel platform client",
	Long: `Wanderly CLI is a command-line client for the Wanderly travel
platform. Browse tours, check destination weather, and take part in
the traveller forum directly from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		config.SetString("output.format", outputFmt)

		client.Init()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, clierrors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/wanderly/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(tourCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(staffCmd)
	rootCmd.AddCommand(versionCmd)
}
