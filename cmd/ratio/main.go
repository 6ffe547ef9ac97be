// Command ratio evaluates exact rational arithmetic over 64-bit integers.
//
// Every rational operand is given as two integer arguments, numerator then
// denominator:
//
//	ratio add 1 2 1 3      # 5/6
//	ratio pow 2 3 -2       # 9/4
//	ratio --spaced div 3 1 2 3
//	ratio sub -- -1 2 1 3  # a leading negative operand needs --
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ratio/src/math/rational"
)

type app struct {
	verbose    bool
	configPath string

	showSign    bool
	denominator bool
	spaced      bool

	format rational.FormatOptions
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "ratio",
		Short: "Exact rational arithmetic on the command line",
		Long: `ratio reduces, combines, compares and converts rational numbers.

Each rational operand is written as two integers, NUM DEN. A zero
denominator is allowed: n/0 is signed infinity and 0/0 is NaN.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			a.format = cfg.Format

			flags := cmd.Flags()
			if flags.Changed("sign") {
				a.format.ShowSign = a.showSign
			}
			if flags.Changed("denominator") {
				a.format.ForceDenominator = a.denominator
			}
			if flags.Changed("spaced") {
				a.format.SpacedSlash = a.spaced
			}
			a.logger.Debug("configured",
				zap.String("config", a.configPath),
				zap.Bool("show_sign", a.format.ShowSign),
				zap.Bool("force_denominator", a.format.ForceDenominator),
				zap.Bool("spaced_slash", a.format.SpacedSlash))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML file with format options")
	pf.BoolVar(&a.showSign, "sign", false, "always print the sign")
	pf.BoolVar(&a.denominator, "denominator", false, "print /1 for whole numbers")
	pf.BoolVar(&a.spaced, "spaced", false, "print spaces around the slash")

	root.AddCommand(
		a.reduceCmd(),
		a.binaryCmd("add", "Add two rationals", rational.Rational[int64].Add),
		a.binaryCmd("sub", "Subtract the second rational from the first", rational.Rational[int64].Sub),
		a.binaryCmd("mul", "Multiply two rationals", rational.Rational[int64].Mul),
		a.binaryCmd("div", "Divide the first rational by the second", rational.Rational[int64].Quo),
		a.powCmd(),
		a.cmpCmd(),
		a.floatCmd(),
		a.intCmd(),
	)
	// Stop flag parsing at the first operand so negative numbers pass through.
	for _, c := range root.Commands() {
		c.Flags().SetInterspersed(false)
	}
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
