package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pricingtool/logging"
	"pricingtool/services"
)

// Export formats accepted by "ledger export".
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// NewLedgerCommand returns the "ledger" command group.
func NewLedgerCommand(ledger LedgerFunc, currency string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Manage saved projects",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.AddCommand(newLedgerListCommand(ledger, currency))
	cmd.AddCommand(newLedgerAddCommand(ledger))
	cmd.AddCommand(newLedgerExportCommand(ledger, currency))
	return cmd
}

func newLedgerListCommand(ledger LedgerFunc, currency string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved projects in the order they were saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := ledger().LoadAll()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No historical data found.")
				return nil
			}

			fmt.Fprintf(out, "%-30s %-25s %15s\n", services.LedgerHeader[0], services.LedgerHeader[1], services.LedgerHeader[2])
			for _, r := range records {
				fmt.Fprintf(out, "%-30s %-25s %15s\n", r.ProjectName, r.ClientName, services.FormatMoney(r.TotalCost, currency))
			}
			total := services.HistoryExport{Records: records}.GrandTotal()
			fmt.Fprintf(out, "%d projects, total %s\n", len(records), services.FormatMoney(total, currency))
			return nil
		},
	}
}

func newLedgerAddCommand(ledger LedgerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "add <project> <client> <total>",
		Short: "Save a project to the ledger",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := strconv.ParseFloat(strings.TrimSpace(args[2]), 64)
			if err != nil {
				return fmt.Errorf("invalid total %q: %w", args[2], err)
			}

			record := services.ProjectRecord{
				ProjectName: strings.TrimSpace(args[0]),
				ClientName:  strings.TrimSpace(args[1]),
				TotalCost:   total,
			}
			l := ledger()
			if err := l.Append(record); err != nil {
				return err
			}

			logging.Info("ledger: project saved", zap.String("path", l.Path()), zap.String("project", record.ProjectName))
			fmt.Fprintln(cmd.OutOrStdout(), "Project saved successfully!")
			return nil
		},
	}
}

func newLedgerExportCommand(ledger LedgerFunc, currency string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <dest>",
		Short: "Write a snapshot of the ledger to a file",
		Long: `Write a snapshot of the saved projects to dest. The format defaults to
the file extension and falls back to CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := args[0]
			exportFormat := strings.ToLower(format)
			if exportFormat == "" {
				exportFormat = exportFormatFor(dest)
			}

			l := ledger()
			records, err := l.LoadAll()
			if err != nil {
				return err
			}

			switch exportFormat {
			case FormatCSV:
				err = l.ExportCopy(records, dest)
			case FormatXLSX:
				err = exportExcel(records, dest, currency)
			default:
				return fmt.Errorf("unknown export format %q (use %s or %s)", exportFormat, FormatCSV, FormatXLSX)
			}
			if err != nil {
				return err
			}

			logging.Info("ledger: exported", zap.String("dest", dest), zap.String("format", exportFormat), zap.Int("records", len(records)))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d projects to %s\n", len(records), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "export format (csv, xlsx)")
	return cmd
}

func exportFormatFor(dest string) string {
	if strings.EqualFold(filepath.Ext(dest), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

func exportExcel(records []services.ProjectRecord, dest, currency string) error {
	data, err := services.GenerateHistoryExcel(services.HistoryExport{
		Title:         "Saved Projects",
		GeneratedDate: time.Now().Format("02 Jan 2006"),
		Currency:      currency,
		Records:       records,
	})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	return os.WriteFile(dest, data, 0o644)
}
