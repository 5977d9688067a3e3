package main

import (
	"reflect"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := loadConfig()
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.OpenAIBaseURL != "https://api.openai.com/v1" || cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("unexpected OpenAI defaults: %q %q", cfg.OpenAIBaseURL, cfg.OpenAIModel)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("expected CORS origins [*], got %v", cfg.CORSOrigins)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://fitcalc.example ,")

	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	want := []string{"http://localhost:5173", "https://fitcalc.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("expected CORS origins %v, got %v", want, cfg.CORSOrigins)
	}
}

// TestNewHandler_NoKey: without an API key the advice endpoint is disabled
// but the handler is still usable.
func TestNewHandler_NoKey(t *testing.T) {
	h := newHandler(config{})
	if h.advisor != nil {
		t.Error("expected no advisor without an API key")
	}
	if h.today == nil {
		t.Error("expected a default clock")
	}
}
