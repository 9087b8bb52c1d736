package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/apmshow/apm-chatbot/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing chat and FAQ tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := loadConfigAndStore()
		if err != nil {
			return err
		}
		eng := buildEngine(cfg)

		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "apmchat MCP server started on stdio (faq entries=%d)\n", store.Count())

		srv := mcpserver.NewServer(eng, store)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
