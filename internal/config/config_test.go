package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ".apmchat.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Port)
	}
	if cfg.FAQFile != "static/faq.json" {
		t.Errorf("default faq_file = %q", cfg.FAQFile)
	}
	if cfg.InstagramHandle != "@apmshow_" {
		t.Errorf("default instagram_handle = %q", cfg.InstagramHandle)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".apmchat.yml")
	yaml := `
port: 9090
service_name: test chatbot
faq_file: data/faq.json
allow_all_origins: false
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if cfg.ServiceName != "test chatbot" {
		t.Errorf("service_name = %q", cfg.ServiceName)
	}
	if cfg.FAQFile != "data/faq.json" {
		t.Errorf("faq_file = %q", cfg.FAQFile)
	}
	if cfg.AllowAllOrigins {
		t.Error("allow_all_origins should be false")
	}
	// Untouched fields keep their defaults.
	if cfg.StaticDir != "static" {
		t.Errorf("static_dir = %q, want default", cfg.StaticDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("APMCHAT_PORT", "7070")
	t.Setenv("APMCHAT_SERVICE_NAME", "env chatbot")

	cfg, err := Load(filepath.Join(t.TempDir(), ".apmchat.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Port)
	}
	if cfg.ServiceName != "env chatbot" {
		t.Errorf("service_name = %q, want env override", cfg.ServiceName)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".apmchat.yml")

	cfg := DefaultConfig()
	cfg.Port = 1234
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Port != 1234 {
		t.Errorf("round-tripped port = %d, want 1234", loaded.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	bad := DefaultConfig()
	bad.Port = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	bad = DefaultConfig()
	bad.InstagramHandle = "apmshow_"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for handle without @")
	}

	bad = DefaultConfig()
	bad.FAQFile = ""
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty faq_file")
	}
}
