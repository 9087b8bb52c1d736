package main

import (
	"os"

	"github.com/apmshow/apm-chatbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
