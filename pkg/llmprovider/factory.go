package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"adhd-task-assistant/config"
	"adhd-task-assistant/pkg/gemini"
	"adhd-task-assistant/pkg/log"
	"adhd-task-assistant/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending). Disabled providers and
// providers without an API key are skipped.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	for _, p := range enabledProviders {
		if p.APIKey == "" {
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: provider %s has no API key, skipping", p.Name)
			continue
		}
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

// NewManagerFromConfig parses the durations in cfg and builds a Manager.
func NewManagerFromConfig(cfg config.LLMConfig, providers []Provider, l log.Logger) *Manager {
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, 0),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}, l)
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	httpClient := &http.Client{Timeout: parseDuration(cfg.Timeout, openaicompat.DefaultTimeout)}

	if strings.EqualFold(cfg.Name, gemini.ProviderName) {
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil
	}

	client, err := openaicompat.New(openaicompat.Config{
		Provider:   cfg.Name,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewOpenAICompatAdapter(client), nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
