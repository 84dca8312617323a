// Package cmd provides the CLI commands for sales-economics.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sales-economics/core/catalog"
	"sales-economics/internal/config"
	"sales-economics/internal/logging"
)

var (
	cfgFile     string
	catalogFile string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sales-economics",
	Short: "Quantitative sales economics for AI call handling",
	Long: `sales-economics models the economics of replacing human call
handling with AI subscription tiers.

It computes total cost of ownership, recommends subscription tiers,
projects ROI under named scenarios, forecasts market penetration, and
searches for cost-optimal contract configurations.

Examples:
  sales-economics tco --agents 10 --calls 5000 --salary 35000 --industry financial_services
  sales-economics recommend --calls 5000 --cost 40000
  sales-economics optimize --calls 60000 --industry healthcare --budget 50000`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "pricing catalog override file (HCL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(tcoCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(roiCmd)
	rootCmd.AddCommand(marketCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadCatalog resolves the pricing catalog for a command run.
// The --catalog flag wins over the config file; neither means built-in.
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogFile
	if path == "" {
		path = config.Get().Catalog.Path
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// printResult renders a result to stdout as JSON, indented unless the
// configured output format is compact
func printResult(result interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	if config.Get().Output.Format != "compact" {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

// readInputFile decodes a JSON input file into dst
func readInputFile(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing input file %s: %w", path, err)
	}
	return nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sales-economics version 0.1.0")
	},
}
