package main

import (
	"github.com/spf13/cobra"

	"github.com/okian/opsboard/internal/adapters/dataset"
)

func (c *cli) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample dataset as a starting point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(dataset.SampleYAML())
			return err
		},
	}
}
