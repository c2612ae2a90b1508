package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

// ErrMissingCredential means the selected backend has no credential configured.
var ErrMissingCredential = errors.New("missing API credential")

type Config struct {
	Detail              string        `flag:"detail" env:"SUMMARIZE_DETAIL" hcl:"detail" default:"medium" usage:"summary detail level: brief, medium or detailed"`
	Model               string        `flag:"model" env:"SUMMARIZE_MODEL" hcl:"model" default:"gpt-4o-mini" usage:"model identifier to request"`
	CheckConfig         bool          `flag:"check-config" env:"SUMMARIZE_CHECK_CONFIG" hcl:"check_config" usage:"report credential configuration and exit"`
	AIType              string        `flag:"ai-type" env:"SUMMARIZE_AI_TYPE" hcl:"ai_type" default:"openai" usage:"summary backend: openai or ollama"`
	AIBaseURL           string        `flag:"ai-base-url" env:"SUMMARIZE_AI_BASE_URL" hcl:"ai_base_url" usage:"backend endpoint override (host for ollama, URL for openai)"`
	AIKey               string        `flag:"ai-key" env:"OPENAI_API_KEY" hcl:"ai_key" usage:"API credential for the openai backend"`
	AITimeout           time.Duration `flag:"ai-timeout" env:"SUMMARIZE_AI_TIMEOUT" hcl:"ai_timeout" default:"5m" usage:"request timeout for the model call"`
	MaxInputChars       int           `flag:"max-input-chars" env:"SUMMARIZE_MAX_INPUT_CHARS" hcl:"max_input_chars" default:"100000" usage:"extracted text longer than this is truncated"`
	OutputFileThreshold int           `flag:"output-file-threshold" env:"SUMMARIZE_OUTPUT_FILE_THRESHOLD" hcl:"output_file_threshold" default:"8000" usage:"summaries longer than this are written to a file"`
	OutputDir           string        `flag:"output-dir" env:"SUMMARIZE_OUTPUT_DIR" hcl:"output_dir" usage:"directory for long summary files (default: next to the input)"`
}

// Load layers defaults, HCL config files, environment variables and flags.
// It returns the remaining positional arguments after flag parsing.
func Load(args []string) (Config, []string, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		Files: []string{"./summarize.hcl", "$HOME/.config/summarize/config.hcl"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	flagSet := loader.Flags()
	if err := flagSet.Parse(args); err != nil {
		return cfg, nil, err
	}
	if err := loader.Load(); err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, flagSet.Args(), nil
}

// ValidateBackend checks that the selected backend can actually be called.
// This runs before any file is read so a missing credential fails fast.
func (c Config) ValidateBackend() error {
	switch c.AIType {
	case "ollama":
		if c.AIBaseURL == "" {
			return fmt.Errorf("ai-base-url is required when ai-type is %q", c.AIType)
		}
	case "openai":
		if c.AIKey == "" {
			return fmt.Errorf("%w: set the OPENAI_API_KEY environment variable", ErrMissingCredential)
		}
	default:
		return fmt.Errorf("unknown ai-type %q (expected openai or ollama)", c.AIType)
	}
	return nil
}
