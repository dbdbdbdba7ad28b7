package caltrack

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data to a JSON backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := strings.TrimSpace(exportOut)
		if out == "" {
			out = store.ExportFilename(time.Now())
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			raw, err := st.ExportJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("app.exported", out))
			return nil
		})
	},
}

var importIn string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace all data with a JSON backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := strings.TrimSpace(importIn)
		if in == "" {
			return fmt.Errorf("--in is required")
		}
		raw, err := os.ReadFile(in)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			if !st.ImportData(raw) {
				return errors.New(tr.T("app.import_invalid"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("app.imported", in))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default caltrack-backup-<date>.json)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file")
	_ = importCmd.MarkFlagRequired("in")
}
