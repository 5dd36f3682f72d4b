package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// CheckConfigValidity inspects the merged configuration and returns one
// error aggregating every problem found, or nil.
func CheckConfigValidity(v *viper.Viper) error {
	var problems []string

	if strings.TrimSpace(v.GetString("data_dir")) == "" {
		problems = append(problems, "data_dir is required")
	}

	switch v.GetString("tone.default") {
	case "professional", "casual", "academic", "persuasive", "witty":
	default:
		problems = append(problems, fmt.Sprintf("tone.default %q is not a known tone", v.GetString("tone.default")))
	}

	if raw := strings.TrimSpace(v.GetString("genai.base_url")); raw == "" {
		problems = append(problems, "genai.base_url is required")
	} else if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("genai.base_url has invalid url %q", raw))
	}
	if strings.TrimSpace(v.GetString("genai.model")) == "" {
		problems = append(problems, "genai.model is required")
	}
	if v.GetInt("genai.max_retries") < 0 {
		problems = append(problems, "genai.max_retries must not be negative")
	}

	if v.GetInt("preview.word_wrap") < 20 {
		problems = append(problems, "preview.word_wrap must be at least 20")
	}
	if v.GetInt("serve.refresh_seconds") < 0 {
		problems = append(problems, "serve.refresh_seconds must not be negative")
	}
	if v.GetBool("snapshots.enabled") && v.GetInt("snapshots.keep") <= 0 {
		problems = append(problems, "snapshots.keep must be greater than 0")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
}
