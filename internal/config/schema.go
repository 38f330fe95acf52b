package config

// PromptConfig controls how user prompts are wrapped before they reach the
// model. The template must instruct the model to answer as JSON matching the
// mobile summary shape; the formatter falls back to heuristics when it
// doesn't.
type PromptConfig struct {
	Template string `yaml:"template"`
}
