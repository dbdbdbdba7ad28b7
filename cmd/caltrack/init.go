package caltrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/app"
	"github.com/Alex2003763/caltrack/internal/db"
	"github.com/Alex2003763/caltrack/internal/i18n"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local caltrack database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}

		// No store exists yet, so the language comes from the device locale.
		logger := newLogger()
		defer func() { _ = logger.Sync() }()
		tr, err := i18n.New(i18n.DetectLanguage(), logger)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tr.T("app.initialized", path))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
