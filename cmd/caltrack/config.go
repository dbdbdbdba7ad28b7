package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage caltrack settings",
}

var (
	cfgAPIKey   string
	cfgAIModel  string
	cfgLanguage string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("language") {
			lang := strings.TrimSpace(cfgLanguage)
			if lang != i18n.LangEN && lang != i18n.LangZhTW {
				return fmt.Errorf("invalid --language %q (use en or zh-TW)", cfgLanguage)
			}
		}
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			updates := 0
			if cmd.Flags().Changed("api-key") {
				key := strings.TrimSpace(cfgAPIKey)
				if key == "" {
					st.SetAPIKey(nil)
				} else {
					st.SetAPIKey(&key)
				}
				updates++
			}
			if cmd.Flags().Changed("model") {
				st.SetAIModel(strings.TrimSpace(cfgAIModel))
				updates++
			}
			if cmd.Flags().Changed("language") {
				st.SetLanguage(strings.TrimSpace(cfgLanguage))
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one of --api-key, --model, --language")
			}
			fmt.Fprintln(cmd.OutOrStdout(), tr.T("config.updated", updates))
			return nil
		})
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			state := st.State()
			apiKey := "-"
			if state.APIKey != nil && *state.APIKey != "" {
				apiKey = maskKey(*state.APIKey)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			fmt.Fprintf(cmd.OutOrStdout(), "api-key\t%s\n", apiKey)
			fmt.Fprintf(cmd.OutOrStdout(), "model\t%s\n", state.AIModel)
			fmt.Fprintf(cmd.OutOrStdout(), "language\t%s\n", state.Language)
			return nil
		})
	},
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configShowCmd)

	configSetCmd.Flags().StringVar(&cfgAPIKey, "api-key", "", "Gemini API key (empty clears it)")
	configSetCmd.Flags().StringVar(&cfgAIModel, "model", "", "Gemini model identifier")
	configSetCmd.Flags().StringVar(&cfgLanguage, "language", "", "Interface language (en or zh-TW)")
}
