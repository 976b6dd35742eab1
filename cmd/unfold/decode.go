package main

import (
	"fmt"
	"os"

	"github.com/mnightingale/unfold"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	strategyForward  = "forward"
	strategyBackward = "backward"
	strategyStream   = "stream"
)

func newDecodeCmd(a *app) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Unfold a file or stdin",
		Long: `Unfold a file or stdin and write the result to stdout.

Examples:
  # Unfold an LDIF file
  unfold decode people.ldif

  # Unfold from stdin without holding the whole input in memory
  cat people.ldif | unfold decode --strategy stream -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strategy == strategyStream {
				return decodeStream(a, cmd, args)
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var out []byte
			switch strategy {
			case strategyForward:
				out = unfold.Decode(data)
			case strategyBackward:
				out = unfold.DecodeInPlace(data)
			default:
				return fmt.Errorf("unknown strategy %q", strategy)
			}

			a.logger.Debug("unfolded",
				zap.String("strategy", strategy),
				zap.Int("in", len(data)),
				zap.Int("out", len(out)))

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", strategyForward, "forward, backward or stream")

	return cmd
}

func decodeStream(a *app, cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	n, err := unfold.NewDecoder(in).WriteTo(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("unfold: %w", err)
	}

	a.logger.Debug("unfolded", zap.String("strategy", strategyStream), zap.Int64("out", n))
	return nil
}
