package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nao1215/tablediff"
	"github.com/nao1215/tablediff/config"
	"github.com/nao1215/tablediff/logger"
)

var (
	// Flags for the compare command
	beforePath     string
	afterPath      string
	keyColumns     []string
	compareColumns []string
	outputPath     string
)

// compareCmd compares two tabular files and writes the Excel report.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a before and an after file and write an Excel report",
	Long: `Compare two tabular files (CSV, TSV, LTSV, Parquet, or XLSX, optionally
compressed with gzip, bzip2, xz, or zstd) and classify rows as deleted,
added, or modified.

Rows are matched by the --key columns. Changes are detected over the
--compare columns; when omitted, every non-key column is compared.

Examples:
  # Match employees by id, compare every other column
  tablediff compare --before before.csv --after after.csv --key id

  # Composite key and an explicit compare selection
  tablediff compare --before q1.xlsx --after q2.xlsx \
    --key dept,emp_id --compare name,salary --output changes.xlsx`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&beforePath, "before", "", "Path to the before (baseline) file")
	compareCmd.Flags().StringVar(&afterPath, "after", "", "Path to the after (updated) file")
	compareCmd.Flags().StringSliceVar(&keyColumns, "key", nil, "Identifier column(s) matching rows between the files")
	compareCmd.Flags().StringSliceVar(&compareColumns, "compare", nil, "Column(s) to compare for changes (default: all non-key columns)")
	compareCmd.Flags().StringVar(&outputPath, "output", "", "Path of the Excel report to write")

	_ = compareCmd.MarkFlagRequired("before")
	_ = compareCmd.MarkFlagRequired("after")
	_ = compareCmd.MarkFlagRequired("key")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	output := outputPath
	if output == "" {
		output = cfg.Report.Output
	}

	before, err := tablediff.Load(beforePath)
	if err != nil {
		return fmt.Errorf("failed to load before file: %w", err)
	}
	after, err := tablediff.Load(afterPath)
	if err != nil {
		return fmt.Errorf("failed to load after file: %w", err)
	}
	l.Info("files loaded",
		zap.Int("before_rows", before.Len()),
		zap.Int("after_rows", after.Len()),
		zap.Int("columns", len(before.Columns())),
	)

	result, err := tablediff.Compare(before, after, keyColumns, compareColumns)
	if err != nil {
		var layoutErr *tablediff.LayoutError
		if errors.As(err, &layoutErr) {
			l.Error("layout verification failed: the files have different columns")
			if len(layoutErr.OnlyInBefore) > 0 {
				l.Error("columns only in before file",
					zap.String("columns", strings.Join(layoutErr.OnlyInBefore, ", ")))
			}
			if len(layoutErr.OnlyInAfter) > 0 {
				l.Error("columns only in after file",
					zap.String("columns", strings.Join(layoutErr.OnlyInAfter, ", ")))
			}
		}
		return err
	}

	summary := result.Summary()
	l.Info("comparison complete",
		zap.Int("deleted", summary.Deleted),
		zap.Int("added", summary.Added),
		zap.Int("modified", summary.Modified),
	)
	if result.Empty() {
		l.Info("no differences found between the files based on selected columns")
	}

	if err := tablediff.WriteReport(output, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	l.Info("report written", zap.String("path", output))

	return nil
}
