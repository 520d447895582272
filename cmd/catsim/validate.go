package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"traitcat/internal/domain"
	"traitcat/internal/interpret"
	"traitcat/internal/itembank"
)

func newValidateCmd() *cobra.Command {
	var (
		bankPath      string
		interpretPath string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an item bank and optional interpretation config",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := itembank.Load(bankPath)
			if err != nil {
				return err
			}
			perDim := make(map[domain.Dimension]int)
			for _, item := range bank.Items() {
				perDim[item.Dimension]++
			}
			fmt.Printf("bank ok: %d items\n", bank.Len())
			for _, dim := range domain.Dimensions {
				fmt.Printf("  %-26s %d\n", dim, perDim[dim])
			}

			if interpretPath != "" {
				icfg, err := interpret.LoadConfig(interpretPath)
				if err != nil {
					return err
				}
				fmt.Printf("interpret config ok: %d profiles, %d patterns, %d mandates\n",
					len(icfg.Profiles), len(icfg.Patterns), len(icfg.Mandates))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bankPath, "bank", "", "item bank YAML to validate")
	cmd.Flags().StringVar(&interpretPath, "interpret", "", "interpretation config YAML to validate")
	cmd.MarkFlagRequired("bank")
	return cmd
}
