package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"traitcat/internal/cat"
	"traitcat/internal/domain"
	"traitcat/internal/interpret"
	"traitcat/internal/irt"
	"traitcat/internal/itembank"
	"traitcat/internal/session"
)

func newSimulateCmd() *cobra.Command {
	var (
		trueTheta     float64
		bankPath      string
		strategyName  string
		interpretPath string
		contextName   string
		userID        string
		verbose       bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulated adaptive assessment",
		Long:  "Simulates a respondent with a known trait level: each administered item is answered with its most likely category at the true theta, so estimator recovery is directly visible.",
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

			logger := zap.NewNop()
			if verbose {
				logger, err = zap.NewProduction()
				if err != nil {
					return err
				}
				defer logger.Sync()
			}

			rule := cfg.StopRule()
			var strategy cat.Strategy
			switch strategyName {
			case "info":
				strategy = cat.MaxInformation{}
			case "coverage":
				strategy = cat.DimensionCoverage{}
			default:
				return fmt.Errorf("unknown strategy %q (want info or coverage)", strategyName)
			}

			var icfg *interpret.Config
			var profile interpret.ContextProfile
			if interpretPath != "" {
				icfg, err = interpret.LoadConfig(interpretPath)
				if err != nil {
					return err
				}
				var ok bool
				profile, ok = icfg.Profile(contextName)
				if !ok {
					return fmt.Errorf("context %q: %w", contextName, interpret.ErrUnknownProfile)
				}
				// Context weighting decorates selection and focuses the
				// precision target on the dimensions the context cares about.
				weight := interpret.SelectionWeight(profile)
				switch s := strategy.(type) {
				case cat.MaxInformation:
					s.Weight = weight
					strategy = s
				case cat.DimensionCoverage:
					s.Fallback.Weight = weight
					strategy = s
				}
				rule.Important = profile.ImportantDimensions()
			}

			svc := session.NewService(session.NewMemoryStore(), bank, strategy, rule, cfg.Grid(), logger)
			ctx := context.Background()

			sess, err := svc.Start(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Printf("session %s (true theta %.2f, strategy %s)\n\n", sess.ID, trueTheta, strategyName)

			for step := 1; ; step++ {
				item, err := svc.NextItem(ctx, sess.ID)
				if err != nil {
					return err
				}
				if item == nil {
					break
				}
				category := likelyCategory(trueTheta, *item)
				sess, err = svc.Submit(ctx, sess.ID, item.ItemID, category)
				if err != nil {
					return err
				}
				est := sess.Estimates[item.Dimension]
				fmt.Printf("%2d. %-28s %-24s answer=%d  theta=%+.2f  se=%.2f\n",
					step, item.ItemID, item.Dimension, category, est.Theta, est.SE)
				if sess.State == domain.SessionComplete {
					break
				}
			}

			final, err := svc.Get(ctx, sess.ID)
			if err != nil {
				return err
			}
			fmt.Printf("\ncomplete after %d items (%s)\n\n", len(final.Administered), final.StopReason)
			for _, dim := range domain.Dimensions {
				est := final.Estimates[dim]
				fmt.Printf("  %-26s theta=%+.2f  se=%.2f  percentile=%d\n",
					dim, est.Theta, est.SE, interpret.Percentile(est.Theta))
			}

			if icfg != nil {
				printInterpretation(final, icfg, profile)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&trueTheta, "theta", 0.5, "true trait level of the simulated respondent")
	cmd.Flags().StringVar(&bankPath, "bank", "", "item bank YAML (default: built-in sample bank)")
	cmd.Flags().StringVar(&strategyName, "strategy", "info", "selection strategy: info or coverage")
	cmd.Flags().StringVar(&interpretPath, "interpret", "", "interpretation config YAML")
	cmd.Flags().StringVar(&contextName, "context", "", "business context profile to apply")
	cmd.Flags().StringVar(&userID, "user", "sim-user", "user id recorded on the session")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable structured engine logs")
	return cmd
}

// likelyCategory picks the category the respondent most probably selects at
// the true theta. Deterministic on purpose: simulations must be reproducible.
func likelyCategory(theta float64, item domain.Item) int {
	best := 1
	bestP := -1.0
	for c := 1; c <= item.Categories(); c++ {
		p, err := irt.CategoryProbability(theta, item, c)
		if err != nil {
			continue
		}
		if p > bestP {
			bestP = p
			best = c
		}
	}
	return best
}

func printInterpretation(sess *domain.Session, icfg *interpret.Config, profile interpret.ContextProfile) {
	report := interpret.WeightedScores(sess.Estimates, profile)
	fmt.Printf("\ncontext %q: fitness %.3f (%s), approval %.1f%%\n",
		report.Context, report.Fitness, report.FitnessLevel,
		interpret.ApprovalProbability(report.Fitness, profile)*100)

	findings := interpret.DetectFrictions(sess.Estimates, icfg.Patterns, len(sess.Responses))
	if len(findings) == 0 {
		fmt.Println("no trait interactions detected")
		return
	}
	net := interpret.NetFriction(findings)
	fmt.Printf("net friction %.2f (%s)\n", net, interpret.FrictionLevel(net))
	for _, f := range findings {
		fmt.Printf("  [%s] %s: %s\n", f.Kind, f.PatternID, f.Description)
	}
	for _, m := range interpret.MandatesFor(findings, icfg.Mandates) {
		fmt.Printf("  mandate: %s (urgency %d/5, %s)\n", m.Mandate.Title, m.Mandate.Urgency, m.Mandate.Timeline)
	}
}
