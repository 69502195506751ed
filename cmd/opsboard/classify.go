package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okian/opsboard/internal/domain/quadrant"
	"github.com/okian/opsboard/internal/domain/threshold"
)

func (c *cli) classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a single value with the configured rules",
	}

	cmd.AddCommand(c.classifySellThroughCmd())
	cmd.AddCommand(c.classifyRangeCmd())
	cmd.AddCommand(c.classifyQuadrantCmd())

	return cmd
}

func (c *cli) classifySellThroughCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sell-through PERCENT",
		Short: "Classify a sell-through percentage as Optimal, Warning or Critical",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			label, err := threshold.Classify(v[0], c.sellThroughTable())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
			return err
		},
	}
}

func (c *cli) classifyRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range CURRENT MIN MAX",
		Short: "Place a stock level against its par band",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			status, err := threshold.ClassifyRange(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			out := string(status)
			if g, gerr := threshold.NewGauge(v[0], v[1], v[2]); gerr == nil {
				out += fmt.Sprintf(" fill=%.3f min=%.3f", g.Fill, g.MinMarker)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func (c *cli) classifyQuadrantCmd() *cobra.Command {
	var scheme string

	cmd := &cobra.Command{
		Use:   "quadrant X Y",
		Short: "Place a point on the menu or store matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			var sc quadrant.Scheme
			switch scheme {
			case "menu":
				sc = c.menuScheme()
			case "store":
				sc = c.storeScheme()
			default:
				return fmt.Errorf("%w: unknown scheme %q", quadrant.ErrInvalidScheme, scheme)
			}
			tag, err := sc.Tag(v[0], v[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", tag.Quadrant, tag.Name, tag.Color)
			return err
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", "menu", "matrix to use: menu or store")

	return cmd
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", threshold.ErrInvalidMetric, a)
		}
		out[i] = v
	}
	return out, nil
}
