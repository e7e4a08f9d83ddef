package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dibatch/adapters/excel"
	"dibatch/app"
	"dibatch/domain/metrics"
	"dibatch/internal"
	"dibatch/internal/config"
)

func main() {
	// Optional .env, same as any other environment source.
	_ = godotenv.Load()

	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "dibatch",
		Short: "Batch tool for exploration bout formatting and Discrimination Index calculation",
		Long: `dibatch converts behavioral observation CSV exports into workbooks,
formats sheets by object_id into side-by-side layouts, and calculates the
Discrimination Index (DI) per sheet with a consolidated report.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				internal.DefaultLogger.SetLevel(internal.LogLevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed progress information")

	rootCmd.AddCommand(
		newConvertCmd(),
		newFormatCmd(),
		newDICmd(),
		newProcessCmd(),
		newPipelineCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newConvertCmd() *cobra.Command {
	var folder, output string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a folder of CSV files into one workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = fmt.Sprintf("combined_excel_%s.xlsx", time.Now().Format("20060102_150405"))
			}

			wb, err := excel.ConvertCSVFolder(folder, cfg.Output)
			if err != nil {
				return err
			}
			defer wb.Close()
			if err := wb.Save(output); err != nil {
				return err
			}
			color.Green("Created %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "csv-folder", "c", ".", "folder containing CSV files")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook path (default: timestamped name)")
	return cmd
}

func newFormatCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Group sheets by object_id into side-by-side combined sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedName(input, "_formatted")
			}

			source, err := excel.OpenWorkbook(input, cfg.Output)
			if err != nil {
				return err
			}
			defer source.Close()

			sink := excel.NewWorkbook(cfg.Output)
			defer sink.Close()

			pipeline := app.NewPipeline(cfg)
			written, err := pipeline.Format(source, sink, source.DataSheetNames())
			if err != nil {
				return err
			}
			if err := sink.Save(output); err != nil {
				return err
			}
			color.Green("Formatted %d sheets into %s", written, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "excel-file", "e", "", "input workbook (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook path")
	_ = cmd.MarkFlagRequired("excel-file")
	return cmd
}

func newDICmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "di",
		Short: "Calculate the Discrimination Index for every sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedName(input, "_DI_processed")
			}

			wb, err := excel.OpenWorkbook(input, cfg.Output)
			if err != nil {
				return err
			}
			defer wb.Close()

			pipeline := app.NewPipeline(cfg)
			summaries, err := pipeline.ComputeDI(wb, wb, wb.DataSheetNames())
			if err != nil {
				return err
			}
			if err := wb.Save(output); err != nil {
				return err
			}
			printSummaries(summaries)
			color.Green("Results saved to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "excel-file", "e", "", "input workbook (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook path")
	_ = cmd.MarkFlagRequired("excel-file")
	return cmd
}

func newProcessCmd() *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Format by object_id, then calculate the Discrimination Index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = derivedName(input, "_DI_processed")
			}

			source, err := excel.OpenWorkbook(input, cfg.Output)
			if err != nil {
				return err
			}
			defer source.Close()

			return formatAndCompute(cfg, source, output)
		},
	}

	cmd.Flags().StringVarP(&input, "excel-file", "e", "", "input workbook (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook path")
	_ = cmd.MarkFlagRequired("excel-file")
	return cmd
}

func newPipelineCmd() *cobra.Command {
	var folder, output string

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Full pipeline: convert CSVs, format by object_id, calculate DI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if output == "" {
				output = fmt.Sprintf("DI_results_%s.xlsx", time.Now().Format("20060102_150405"))
			}

			converted, err := excel.ConvertCSVFolder(folder, cfg.Output)
			if err != nil {
				return err
			}
			defer converted.Close()

			if cfg.CSV.KeepIntermediate {
				intermediate := excel.TempWorkbookPath(".", "converted")
				if err := converted.Save(intermediate); err != nil {
					internal.DefaultLogger.Warn("could not keep intermediate workbook: %v", err)
				} else {
					internal.DefaultLogger.Info("intermediate workbook kept at %s", intermediate)
				}
			}

			return formatAndCompute(cfg, converted, output)
		},
	}

	cmd.Flags().StringVarP(&folder, "csv-folder", "c", ".", "folder containing CSV files")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output workbook path (default: timestamped name)")
	return cmd
}

// formatAndCompute chains the format and DI stages over an in-memory
// workbook and commits the result once at the end.
func formatAndCompute(cfg config.Config, source *excel.Workbook, output string) error {
	sink := excel.NewWorkbook(cfg.Output)
	defer sink.Close()

	pipeline := app.NewPipeline(cfg)
	summaries, err := pipeline.Process(source, sink, source.DataSheetNames())
	if err != nil {
		return err
	}
	if err := sink.Save(output); err != nil {
		return err
	}
	printSummaries(summaries)
	color.Green("Results saved to %s", output)
	return nil
}

func printSummaries(summaries []metrics.SubjectSummary) {
	if len(summaries) == 0 {
		color.Yellow("No sheets produced results")
		return
	}

	bold := color.New(color.Bold)
	for _, s := range summaries {
		r := s.Rounded()
		bold.Printf("\n%s\n", r.Sheet)
		fmt.Printf("  Obj1 Exploration: %.1f\n", r.Obj1Total)
		fmt.Printf("  Obj2 Exploration: %.1f\n", r.Obj2Total)
		fmt.Printf("  TET:              %.1f\n", r.TET)
		fmt.Printf("  DI:               %s\n", color.CyanString("%.2f", r.DI))
	}
	fmt.Println()
}

// derivedName appends a suffix to a workbook path's stem.
func derivedName(path, suffix string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return stem + suffix + ".xlsx"
}
