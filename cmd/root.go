package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "apmchat",
	Short: "Persian support chatbot for the APM shop",
	Long: `apmchat answers customer messages with a lexicon-based classifier and
a similarity-matched FAQ, exposed over HTTP, a websocket widget channel,
an interactive terminal chat and MCP.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".apmchat.yml", "config file path")
}
