package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard interactively builds a configuration, starting from defaults.
func RunWizard() (*Config, error) {
	cfg := DefaultConfig()

	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	faqPrompt := promptui.Prompt{
		Label:   "FAQ JSON file",
		Default: cfg.FAQFile,
	}
	if cfg.FAQFile, err = faqPrompt.Run(); err != nil {
		return nil, fmt.Errorf("faq file: %w", err)
	}

	staticPrompt := promptui.Prompt{
		Label:   "Static files directory",
		Default: cfg.StaticDir,
	}
	if cfg.StaticDir, err = staticPrompt.Run(); err != nil {
		return nil, fmt.Errorf("static dir: %w", err)
	}

	handlePrompt := promptui.Prompt{
		Label:   "Instagram handle for operator hand-off",
		Default: cfg.InstagramHandle,
		Validate: func(s string) error {
			if !strings.HasPrefix(s, "@") {
				return fmt.Errorf("handle must start with @")
			}
			return nil
		},
	}
	if cfg.InstagramHandle, err = handlePrompt.Run(); err != nil {
		return nil, fmt.Errorf("instagram handle: %w", err)
	}

	corsPrompt := promptui.Select{
		Label: "Allow all CORS origins",
		Items: []string{"yes", "no"},
	}
	_, corsStr, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}
	cfg.AllowAllOrigins = corsStr == "yes"

	return cfg, nil
}
