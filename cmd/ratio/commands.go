package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ratio/src/math/rational"
)

type r64 = rational.Rational[int64]

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return v, nil
}

// parseOperands reads consecutive NUM DEN argument pairs.
func parseOperands(args []string) ([]r64, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected NUM DEN pairs, got %d arguments", len(args))
	}
	out := make([]r64, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		num, err := parseInt(args[i])
		if err != nil {
			return nil, err
		}
		den, err := parseInt(args[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, rational.New(num, den))
	}
	return out, nil
}

func (a *app) print(cmd *cobra.Command, op string, r r64) {
	a.logger.Debug("evaluated",
		zap.String("op", op),
		zap.Int64("num", r.Num()),
		zap.Int64("den", r.Den()))
	fmt.Fprintln(cmd.OutOrStdout(), r.Text(a.format))
}

func (a *app) reduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce NUM DEN",
		Short: "Reduce a rational to lowest terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			a.print(cmd, "reduce", ops[0])
			return nil
		},
	}
}

func (a *app) binaryCmd(name, short string, fn func(x, y r64) r64) *cobra.Command {
	return &cobra.Command{
		Use:   name + " N1 D1 N2 D2",
		Short: short,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			a.print(cmd, name, fn(ops[0], ops[1]))
			return nil
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow NUM DEN EXP",
		Short: "Raise a rational to a power",
		Long: `Raise NUM/DEN to EXP. An integer exponent gives an exact rational;
a fractional exponent converts to floating point first.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args[:2])
			if err != nil {
				return err
			}
			if e, err := strconv.Atoi(args[2]); err == nil {
				a.print(cmd, "pow", ops[0].Pow(e))
				return nil
			}
			e, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[2], err)
			}
			// Whole exponents written in float syntax, such as 1e3, stay exact.
			if e == math.Trunc(e) && e >= math.MinInt && e < math.MaxInt {
				a.print(cmd, "pow", ops[0].Pow(int(e)))
				return nil
			}
			v := ops[0].PowFloat(e)
			a.logger.Debug("evaluated", zap.String("op", "powf"), zap.Float64("result", v))
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}
}

func (a *app) cmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp N1 D1 N2 D2",
		Short: "Compare two rationals, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ops[0].Cmp(ops[1]))
			return nil
		},
	}
}

func (a *app) floatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float NUM DEN",
		Short: "Convert a rational to floating point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(ops[0].Float64(), 'g', -1, 64))
			return nil
		},
	}
}

func (a *app) intCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "int NUM DEN",
		Short: "Truncate a rational to an integer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			v, err := ops[0].TryInt()
			if err != nil {
				a.logger.Warn("integer conversion failed", zap.Stringer("value", ops[0]), zap.Error(err))
				return fmt.Errorf("int %s: %w", ops[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}
