package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/apmshow/apm-chatbot/internal/engine"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long:  `Opens an interactive prompt against the local engine and FAQ file. Type "exit" or press Ctrl-C to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := loadConfigAndStore()
		if err != nil {
			return err
		}
		eng := buildEngine(cfg)

		fmt.Println("apmchat interactive chat (exit to quit)")

		for {
			prompt := promptui.Prompt{Label: "شما"}
			message, err := prompt.Run()
			if err != nil {
				if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
					return nil
				}
				return fmt.Errorf("reading input: %w", err)
			}
			if message == "exit" || message == "quit" {
				return nil
			}

			reply := eng.Respond(message, store.Snapshot())
			if eng.CheckHumanRequest(message) {
				reply.Reply = eng.Handoff()
				reply.Confidence = 1.0
				reply.Source = engine.SourceInstagram
			}

			fmt.Printf("بات: %s\n", reply.Reply)
			fmt.Printf("     [%s, %.2f]\n", reply.Source, reply.Confidence)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
