package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data and catalog integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			report := store.Diagnose(st.State())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duplicate entry ids: %d\n", report.DuplicateEntryIDs)
			fmt.Fprintf(out, "Negative values: %d\n", report.NegativeValues)
			fmt.Fprintf(out, "Invalid meals: %d\n", report.InvalidMeals)
			fmt.Fprintf(out, "Invalid chat roles: %d\n", report.InvalidChatRoles)

			catalogs, err := i18n.Validate()
			if err != nil {
				return err
			}
			if len(catalogs.MissingKeys) > 0 {
				fmt.Fprintf(out, "Missing zh-TW keys: %s\n", strings.Join(catalogs.MissingKeys, ", "))
			}
			if len(catalogs.ExtraKeys) > 0 {
				fmt.Fprintf(out, "Extra zh-TW keys: %s\n", strings.Join(catalogs.ExtraKeys, ", "))
			}
			if len(catalogs.EmptyKeys) > 0 {
				fmt.Fprintf(out, "Empty catalog keys: %s\n", strings.Join(catalogs.EmptyKeys, ", "))
			}

			if !report.Clean() || !catalogs.InSync() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
