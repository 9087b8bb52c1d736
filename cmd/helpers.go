package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/apmshow/apm-chatbot/internal/config"
	"github.com/apmshow/apm-chatbot/internal/engine"
	"github.com/apmshow/apm-chatbot/internal/faqstore"
)

// buildEngine creates the chatbot engine from config and ingests the
// training text (configured file, or the embedded default).
func buildEngine(cfg *config.Config) *engine.Engine {
	eng := engine.New()
	eng.SetInstagramHandle(cfg.InstagramHandle)

	text := config.DefaultTrainingText
	if cfg.TrainingFile != "" {
		data, err := os.ReadFile(cfg.TrainingFile)
		if err != nil {
			log.Printf("training file %s: %v (using embedded text)", cfg.TrainingFile, err)
		} else {
			text = string(data)
		}
	}

	added := eng.TrainFromText(text)
	log.Printf("ingested %d training facts", added)

	return eng
}

// loadConfigAndStore loads config, validates it and opens the FAQ store.
func loadConfigAndStore() (*config.Config, *faqstore.Store, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	store := faqstore.Open(cfg.FAQFile)
	log.Printf("loaded %d FAQ entries from %s", store.Count(), cfg.FAQFile)

	return cfg, store, nil
}
