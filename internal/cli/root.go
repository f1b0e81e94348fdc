// Package cli implements the aura CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"aura/internal/core"
	"aura/internal/repository"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	baseDir     string
	sourceLabel string
	formatFlag  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "aura",
	Short: "Generate healthcare test cases from requirement text",
	Long: "aura turns free-text healthcare requirements into canned test cases " +
		"with full traceability. Rule-based, deterministic, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&baseDir, "dir", "d", "", "Artifacts base directory (default: $AURA_DIR or .)")
	RootCmd.PersistentFlags().StringVarP(&sourceLabel, "source", "s", "", "Requirement source label (default: $AURA_SOURCE or manual)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or yaml")
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *core.Config {
	cfg, _ := core.LoadConfig()
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if sourceLabel != "" {
		cfg.SourceLabel = sourceLabel
	}
	return cfg
}

func newGenerator(cfg *core.Config) (*core.Generator, error) {
	logger := core.NewLogger(cfg.LogLevel)
	return core.NewDefaultGenerator(logger)
}

func openRepository(cfg *core.Config) *repository.Repository {
	return repository.NewRepository(cfg.BaseDir)
}

func printDoc(doc any) {
	switch formatFlag {
	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			exitErr("marshal output", err)
		}
		fmt.Print(string(b))
	default:
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			exitErr("marshal output", err)
		}
		fmt.Println(string(b))
	}
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
