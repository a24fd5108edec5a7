package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nvandessel/rankforge/internal/catalog"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "rankforge",
		Short: "Rankforge - tier lists as knowledge graphs",
		Long: `rankforge ranks catalog items into tiers, free scores, or a 1-100 scale,
and exports the result as a property graph or as an operation batch for a
knowledge-graph network.

Rankings are declared in YAML sheets and replayed through the scoring
policies, so a sheet produces exactly what the equivalent sequence of
drag-and-drop interactions would.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose diagnostics")
	rootCmd.PersistentFlags().String("catalog", "", "Extra catalog YAML file (appended to built-ins)")

	viper.SetEnvPrefix("RANKFORGE")
	viper.AutomaticEnv()
	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(
		newVersionCmd(),
		newCategoriesCmd(),
		newShowCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("rankforge version %s\n", version)
			}
		},
	}
}

// loadCatalogs returns the built-in categories plus any user catalog file
// named by the --catalog flag or RANKFORGE_CATALOG.
func loadCatalogs() ([]catalog.Category, error) {
	cats := catalog.Builtin()

	path := viper.GetString("catalog")
	if path == "" {
		return cats, nil
	}

	extra, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return append(cats, extra...), nil
}

// newLogger builds the CLI logger. Verbose gets full development output;
// otherwise only encoder diagnostics (warnings) reach stderr.
func newLogger() *zap.Logger {
	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err == nil {
			return logger
		}
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
