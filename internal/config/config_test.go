package config

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadAppliesDefaults(t *testing.T) {
	v := viper.New()
	if err := Load(context.Background(), v); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := v.GetString("genai.model"); got != "gemini-2.0-flash" {
		t.Fatalf("genai.model default: got %q", got)
	}
	if got := v.GetString("tone.default"); got != "professional" {
		t.Fatalf("tone.default: got %q", got)
	}
	if got := v.GetInt("genai.max_retries"); got != 3 {
		t.Fatalf("genai.max_retries: got %d", got)
	}
	if v.GetString("data_dir") == "" {
		t.Fatal("data_dir must never be empty after Load")
	}
}

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	applyDefaults(v)
	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "")
	v.Set("tone.default", "sarcastic")
	v.Set("genai.base_url", "not a url")
	v.Set("genai.model", "")
	v.Set("genai.max_retries", -1)
	v.Set("preview.word_wrap", 5)
	v.Set("serve.refresh_seconds", -2)
	v.Set("snapshots.enabled", true)
	v.Set("snapshots.keep", 0)

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}

	msg := err.Error()
	expected := []string{
		"data_dir is required",
		"is not a known tone",
		"genai.base_url has invalid url",
		"genai.model is required",
		"genai.max_retries must not be negative",
		"preview.word_wrap must be at least 20",
		"serve.refresh_seconds must not be negative",
		"snapshots.keep must be greater than 0",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	for _, want := range []string{
		"[genai]",
		`model = "gemini-2.0-flash"`,
		"[tone]",
		`default = "professional"`,
		"[snapshots]",
		"keep = 50",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered TOML missing %q:\n%s", want, out)
		}
	}
}

func TestResolveDBPath(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "/tmp/inkdraft-test")
	if got := ResolveDBPath(v); got != "/tmp/inkdraft-test/inkdraft.db" {
		t.Fatalf("got %q", got)
	}
}
