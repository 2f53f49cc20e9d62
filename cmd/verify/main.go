// Command verify checks from the terminal that a EUR report file is a
// correct fixed-rate conversion of its BGN source. Exit codes: 0 when the
// reports match, 1 when discrepancies were found, 2 on usage or
// configuration errors.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/levcheck/verifier/internal/currency"
	"github.com/levcheck/verifier/internal/domain"
	"github.com/levcheck/verifier/internal/export"
	"github.com/levcheck/verifier/internal/gridsource"
	"github.com/levcheck/verifier/internal/verification"
)

var (
	columnsFlag string
	sheetFlag   string
	outputFlag  string

	// set by runVerify; read by main to pick the exit code
	verificationPassed = true
)

var rootCmd = &cobra.Command{
	Use:   "verify <source-bgn-file> <target-eur-file>",
	Short: "Verify that a EUR report is a correct fixed-rate copy of a BGN report",
	Long: `verify compares two report files cell by cell. Every numeric BGN amount
in the source is converted at the fixed rate 1 EUR = 1.95583 BGN, rounded
to the cent (half away from zero), and checked against the EUR file.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runVerify,
}

func init() {
	rootCmd.Flags().StringVarP(&columnsFlag, "columns", "c", "",
		"comma-separated columns to check (default: every numeric column)")
	rootCmd.Flags().StringVarP(&sheetFlag, "sheet", "s", "",
		"sheet name for xlsx input (default: first sheet)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "",
		"write the CSV mismatch report to this file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	sourcePath, targetPath := args[0], args[1]

	sourceData, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	targetData, err := os.ReadFile(targetPath)
	if err != nil {
		return fmt.Errorf("read target: %w", err)
	}

	source, err := gridsource.FromFile(sourcePath, sourceData, sheetFlag)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}
	target, err := gridsource.FromFile(targetPath, targetData, sheetFlag)
	if err != nil {
		return fmt.Errorf("load target: %w", err)
	}

	verifier := verification.NewService(currency.Default())
	report, err := verifier.Verify(source, target, parseSelection(columnsFlag))
	if err != nil {
		return err
	}

	fmt.Printf("Checked %s against %s\n", targetPath, sourcePath)
	fmt.Printf("Columns: %s\n", strings.Join(report.Columns, ", "))
	fmt.Printf("Rows compared: %d, cells checked: %d, cells skipped: %d\n",
		report.RowsCompared, report.CellsChecked, report.CellsSkipped)

	if report.Pass {
		fmt.Println("OK: no discrepancies found")
	} else {
		verificationPassed = false
		fmt.Printf("FAIL: %d discrepancies\n", len(report.Discrepancies))
		for _, d := range report.Discrepancies {
			fmt.Printf("  [%s] %s\n", d.Reason, d.Description)
		}
	}

	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, report.Discrepancies); err != nil {
			return fmt.Errorf("write report file: %w", err)
		}
		fmt.Printf("CSV mismatch report written to %s\n", outputFlag)
	}

	return nil
}

func parseSelection(columns string) domain.ColumnSelection {
	var names []string
	for _, c := range strings.Split(columns, ",") {
		if c = strings.TrimSpace(c); c != "" {
			names = append(names, c)
		}
	}
	if len(names) == 0 {
		return domain.AllNumericColumns()
	}
	return domain.ExplicitColumns(names...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	if !verificationPassed {
		os.Exit(1)
	}
}
