// Package main provides the catsim binary: a command-line harness around the
// adaptive assessment engine for simulating sessions, validating item banks
// and inspecting item information curves.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"traitcat/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catsim",
		Short:         "Adaptive trait assessment toolkit",
		Long:          "catsim drives the IRT-CAT measurement engine: simulate adaptive sessions, validate item banks and plot item information.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newCurveCmd())
	return root
}

// loadConfig pulls the engine limits from the environment, honoring an
// optional .env file the same way the long-running services do.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: loading .env: %v", err)
	}
	return config.LoadConfig()
}
