package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Automator wires configuration, randomness, and the external clients
// together and drives one full publishing run.
type Automator struct {
	cfg        Config
	rand       Rand
	httpClient *http.Client
	openai     *openai.Client
	now        func() time.Time
}

// Option customizes an Automator; used by tests to inject deterministic
// randomness and a fixed clock.
type Option func(*Automator)

// WithRand replaces the randomness source.
func WithRand(r Rand) Option {
	return func(a *Automator) { a.rand = r }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(a *Automator) { a.now = now }
}

// NewAutomator constructs the pipeline. The completion client honors
// cfg.OpenAIBaseURL when set so tests can point it at a local server.
func NewAutomator(cfg Config, opts ...Option) *Automator {
	clientCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	a := &Automator{
		cfg:  cfg,
		rand: NewRand(),
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		openai: openai.NewClientWithConfig(clientCfg),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes one full pipeline pass: create a page, maybe rewrite the
// stylesheet, rebuild the index, publish. Each step is fail-fast; a failure
// partway through leaves whatever the earlier steps already wrote.
func (a *Automator) Run(ctx context.Context) error {
	filename, err := a.CreatePage(ctx)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	log.Printf("created %s", filename)

	restyled, err := a.MaybeRestyle()
	if err != nil {
		return fmt.Errorf("update styles: %w", err)
	}
	if restyled {
		log.Printf("rewrote %s", stylesheetName)
	}

	if err := a.RebuildIndex(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}
	log.Printf("rebuilt %s", indexName)

	if err := a.Publish(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	log.Printf("pushed to %s/%s", a.cfg.Remote, a.cfg.Branch)

	return nil
}
