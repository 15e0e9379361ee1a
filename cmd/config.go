package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quotewiz/internal/gateway"
	"quotewiz/internal/llm"
	"quotewiz/internal/store"
)

var (
	configFile  string
	llmProvider string
	llmProfile  string
	apiKey      string
	verbose     bool
)

// addProviderFlags registers the flags shared by every command that
// talks to a provider.
func addProviderFlags(c *cobra.Command) {
	c.Flags().StringVar(&configFile, "config", "", "Config file path (default ~/.quotewiz.yaml)")
	c.Flags().StringVar(&llmProvider, "provider", "", "Provider (openai/anthropic, default auto-detect)")
	c.Flags().StringVar(&llmProfile, "profile", "", "Model profile (designer/fast/quality)")
	c.Flags().StringVar(&apiKey, "api-key", "", "Provider API key (default from environment)")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

// configFileData mirrors ~/.quotewiz.yaml.
type configFileData struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Profile  string `yaml:"profile"`
}

// loadConfig resolves provider settings: flags beat the config file,
// the config file beats the profile saved by setup, and the
// environment fills whatever is left.
func loadConfig(c *cobra.Command, st *store.Store) (llm.Config, error) {
	cfg := llm.Config{
		Provider: llmProvider,
		APIKey:   apiKey,
		Profile:  llmProfile,
	}

	configPath := configFile
	if configPath == "" {
		if _, err := os.Stat(".quotewiz.yaml"); err == nil {
			configPath = ".quotewiz.yaml"
		} else if home, err := os.UserHomeDir(); err == nil {
			homePath := filepath.Join(home, ".quotewiz.yaml")
			if _, err := os.Stat(homePath); err == nil {
				configPath = homePath
			}
		}
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		var fileCfg configFileData
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}

		if !c.Flags().Changed("provider") && fileCfg.Provider != "" {
			cfg.Provider = fileCfg.Provider
		}
		if !c.Flags().Changed("api-key") && fileCfg.APIKey != "" {
			cfg.APIKey = fileCfg.APIKey
		}
		if !c.Flags().Changed("profile") && fileCfg.Profile != "" {
			cfg.Profile = fileCfg.Profile
		}
	}

	if cfg.Profile == "" {
		cfg.Profile = st.LoadProfileOverride()
	}

	return cfg, nil
}

// newLogger builds the CLI logger. Serve replaces this with a plain
// JSON logger.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// buildGateways constructs the generation and advisory gateways on one
// shared throttle.
func buildGateways(cfg llm.Config, logger zerolog.Logger) (*gateway.Generator, *gateway.Assistant, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	throttle := llm.NewThrottle(llm.MinCallInterval)
	session := llm.NewSession(llm.DefaultAssistLimit)
	profile := llm.ProfileByName(cfg.Profile)
	logger.Debug().Str("provider", client.Name()).Str("profile", profile.Name).Msg("provider ready")

	generator := gateway.NewGenerator(client, throttle, profile, logger)
	assistant := gateway.NewAssistant(client, throttle, session, profile, logger)
	return generator, assistant, nil
}

// buildServerGateways is the serve variant: the advisory budget is
// scoped per client session instead of per process, so one chatty
// client cannot drain the allowance for everyone else.
func buildServerGateways(cfg llm.Config, logger zerolog.Logger) (*gateway.Generator, *gateway.AssistantPool, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}

	throttle := llm.NewThrottle(llm.MinCallInterval)
	profile := llm.ProfileByName(cfg.Profile)
	logger.Debug().Str("provider", client.Name()).Str("profile", profile.Name).Msg("provider ready")

	generator := gateway.NewGenerator(client, throttle, profile, logger)
	sessions := llm.NewSessionPool(llm.DefaultAssistLimit, llm.DefaultSessionTTL)
	assistant := gateway.NewAssistantPool(client, throttle, sessions, profile, logger)
	return generator, assistant, nil
}
