package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/opsboard/internal/domain/period"
)

func (c *cli) periodCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "period START END",
		Short: "Format a reporting period label",
		Long: `Format a reporting period the way the dashboard header shows it.

An unparsable bound prints "-" and exits non-zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := c.locale(locale)
			if err != nil {
				return err
			}
			labels, err := period.Format(args[0], args[1], loc)
			if _, werr := fmt.Fprintln(cmd.OutOrStdout(), labels.Range); werr != nil {
				return werr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&locale, "locale", "", "label locale: en-US, en-GB or id-ID")

	return cmd
}
