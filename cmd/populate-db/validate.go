package main

import (
	"fmt"

	"github.com/Gunvolt24/distinsert/internal/domain"
	"github.com/Gunvolt24/distinsert/internal/seeddata"
	"github.com/Gunvolt24/distinsert/pkg/validate"
	"github.com/spf13/cobra"
)

// newValidateCmd — сухой прогон проверки: встроенный сид или файл --in.
// Вердикты пишутся в stdout по строке на запись, сводка — в stderr.
func newValidateCmd() *cobra.Command {
	var (
		inputPath string
		formatStr string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the built-in seed or a seed file without touching any store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			validator := validate.NewRecordValidator()
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

			if inputPath != "" {
				summary, err := validate.ValidateFile(ctx, validator, inputPath, validate.InputFormat(formatStr), out)
				if err != nil {
					return fmt.Errorf("validation: %w (%s)", err, summary)
				}
				fmt.Fprintf(errOut, "validation ok (%s)\n", summary)
				return nil
			}

			var records []domain.Record
			for _, s := range domain.Stores() {
				records = append(records, seeddata.ForStore(s)...)
			}
			res, err := validate.ValidateRecords(ctx, validator, records, out)
			if err != nil {
				return err
			}
			summary := fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
			if res.InvalidLinesCount > 0 {
				return fmt.Errorf("validation: %w (%s)", validate.ErrInvalidSeed, summary)
			}
			fmt.Fprintf(errOut, "validation ok (%s)\n", summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "in", "", "path to a seed file (.json or .jsonl); empty validates the built-in seed")
	cmd.Flags().StringVar(&formatStr, "format", string(validate.FormatAuto), "input format: auto|json|jsonl")
	return cmd
}
