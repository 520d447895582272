package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"traitcat/internal/irt"
	"traitcat/internal/itembank"
)

func newCurveCmd() *cobra.Command {
	var (
		bankPath string
		itemID   string
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print an item's information curve over the theta grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			bank := itembank.Sample()
			if bankPath != "" {
				bank, err = itembank.Load(bankPath)
				if err != nil {
					return err
				}
			}
			item, ok := bank.Get(itemID)
			if !ok {
				return fmt.Errorf("item %s not in bank", itemID)
			}

			fmt.Printf("%s (%s)  a=%.2f  b=%v\n", item.ItemID, item.Dimension, item.Discrimination, item.Thresholds)
			peak := 0.0
			for _, theta := range cfg.Grid().Points() {
				if info := irt.Information(theta, item); info > peak {
					peak = info
				}
			}
			for _, theta := range cfg.Grid().Points() {
				info := irt.Information(theta, item)
				bar := strings.Repeat("#", int(info/peak*40+0.5))
				fmt.Printf("%+5.1f  %6.3f  %s\n", theta, info, bar)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bankPath, "bank", "", "item bank YAML (default: built-in sample bank)")
	cmd.Flags().StringVar(&itemID, "item", "", "item id to plot")
	cmd.MarkFlagRequired("item")
	return cmd
}
