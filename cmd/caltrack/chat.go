package caltrack

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alex2003763/caltrack/internal/i18n"
	"github.com/Alex2003763/caltrack/internal/model"
	"github.com/Alex2003763/caltrack/internal/store"
)

var chatClear bool

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the assistant for nutrition and exercise advice",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store, tr *i18n.Translator) error {
			if chatClear {
				st.ClearChatHistory()
				fmt.Fprintln(cmd.OutOrStdout(), tr.T("assistant.history_cleared"))
				return nil
			}
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("message is required (or use --clear)")
			}
			message := strings.TrimSpace(args[0])

			state := st.State()
			client, err := newAssistantClient(cmd, st)
			if err != nil {
				return assistantError(tr, err)
			}
			reply, err := client.Chat(cmd.Context(), state.ChatHistory, message)
			if err != nil {
				return assistantError(tr, err)
			}

			st.SetChatHistory(append(state.ChatHistory,
				model.ChatMessage{Role: model.RoleUser, Text: message},
				model.ChatMessage{Role: model.RoleModel, Text: reply},
			))
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatClear, "clear", false, "Clear the chat history")
}
