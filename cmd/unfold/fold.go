package main

import (
	"fmt"
	"strings"

	"github.com/mnightingale/unfold"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var breaks = map[string]unfold.Break{
	"crlf": unfold.CRLF,
	"lf":   unfold.LF,
	"cr":   unfold.CR,
	"lfcr": unfold.LFCR,
}

func newFoldCmd(a *app) *cobra.Command {
	var (
		width   int
		brkName string
	)

	cmd := &cobra.Command{
		Use:   "fold [file]",
		Short: "Fold long lines of a file or stdin",
		Long: `Fold long lines so that no physical line exceeds --width bytes. Each
continuation line starts with a single space after the chosen line break.

Examples:
  # Fold at the LDIF default of 76 bytes with CRLF
  unfold fold people.ldif

  # Fold stdin at 40 bytes with LF
  cat notes.txt | unfold fold --width 40 --break lf -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			brk, ok := breaks[strings.ToLower(brkName)]
			if !ok {
				return fmt.Errorf("unknown break %q: %w", brkName, unfold.ErrInvalidBreak)
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			enc, err := unfold.NewEncoder(cmd.OutOrStdout(), unfold.WithLineLength(width), unfold.WithBreak(brk))
			if err != nil {
				return err
			}
			if _, err := enc.Write(data); err != nil {
				return err
			}

			a.logger.Debug("folded",
				zap.Int("width", width),
				zap.String("break", strings.ToLower(brkName)),
				zap.Int("in", len(data)))

			return enc.Close()
		},
	}

	cmd.Flags().IntVar(&width, "width", unfold.DefaultLineLength, "maximum line length, excluding the line break")
	cmd.Flags().StringVar(&brkName, "break", "crlf", "line break before continuation lines: crlf, lf, cr or lfcr")

	return cmd
}
