package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTemplate is used when no prompt config file is present.
const DefaultTemplate = `You are preparing an answer for a small-screen mobile client.
Answer the request below, then reply with a single JSON object of this exact shape:
{"summary_points": ["short bullet", "..."], "detailed_flow": "one short explanatory paragraph", "code_snippets": ["optional code"], "confidence": 0.9}
Keep summary_points to at most 5 short bullets. Omit code_snippets unless code is genuinely part of the answer. Do not add any text outside the JSON object.

Request:
{{.Prompt}}`

func LoadPromptConfig() (*PromptConfig, error) {
	path := os.Getenv("PROMPT_CONFIG_PATH")
	if path == "" {
		path = "configs/prompt.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &PromptConfig{Template: DefaultTemplate}, nil
		}
		return nil, err
	}

	var cfg PromptConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *PromptConfig) {
	if cfg.Template == "" {
		cfg.Template = DefaultTemplate
	}
}
