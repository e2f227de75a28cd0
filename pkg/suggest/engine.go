package suggest

import (
	"context"
	"fmt"

	"github.com/vmorelle/ghostline/internal/cache"
	"github.com/vmorelle/ghostline/internal/llm"
	"github.com/vmorelle/ghostline/internal/logger"
	"github.com/vmorelle/ghostline/internal/prompt"
	"github.com/vmorelle/ghostline/internal/safety"
	"github.com/vmorelle/ghostline/internal/sanitizer"
	"github.com/vmorelle/ghostline/internal/timing"
	"github.com/vmorelle/ghostline/pkg/config"
)

// Engine is the production Backend: it sanitizes the request, renders
// prompts, calls the model, screens the result for dangerous commands and
// caches what it saw.
type Engine struct {
	cfg    *config.Config
	client llm.Client
	cache  *cache.Cache
	log    *logger.Logger
}

// NewEngine builds a backend from configuration, constructing the model
// client the config selects.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build model client: %w", err)
	}
	return NewEngineWithClient(cfg, client, log), nil
}

// NewEngineWithClient builds a backend around an existing model client.
func NewEngineWithClient(cfg *config.Config, client llm.Client, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.New(cfg.Log.Level, nil)
	}
	return &Engine{
		cfg:    cfg,
		client: client,
		cache:  cache.New(cache.DefaultCapacity),
		log:    log,
	}
}

// Suggest implements Backend.
func (e *Engine) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	timer := timing.NewTimer()

	key := cache.Key(req.Buffer, req.CWD, req.SessionID)
	if entry, found := e.cache.Get(key); found {
		e.log.Debug().Str("session", req.SessionID).Bool("cached", true).Msg("completion served from cache")
		return &Suggestion{Command: entry.Suggestion, Warning: entry.Warning}, nil
	}

	buffer := req.Buffer
	cwd := req.CWD
	if e.cfg.Privacy.Sanitize {
		var applied []string
		buffer, applied = sanitizer.Sanitize(buffer, e.cfg.Privacy.CustomPatterns)
		cwd, _ = sanitizer.Sanitize(cwd, e.cfg.Privacy.CustomPatterns)
		if len(applied) > 0 {
			e.log.Debug().Int("redactions", len(applied)).Msg("sanitized prompt material")
		}
	}
	timer.Mark("sanitize")

	var files []string
	if e.cfg.Context.IncludeCwdListing {
		files = prompt.ListDir(req.CWD, e.cfg.Context.MaxFilesInListing)
	}

	user, err := prompt.Render(prompt.Data{
		Buffer:    buffer,
		Cursor:    req.Cursor,
		CWD:       cwd,
		SessionID: req.SessionID,
		Files:     files,
	})
	if err != nil {
		return nil, err
	}
	system := e.cfg.SystemPrompt
	if system == "" {
		system = prompt.DefaultSystemPrompt
	}
	timer.Mark("prompt")

	raw, err := e.client.Complete(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	timer.Mark("llm")

	command := llm.ParseCommand(raw, req.Buffer)

	var warning string
	if e.cfg.Privacy.BlockDangerous {
		warning, _ = safety.Check(command, e.cfg.Privacy.CustomBlocked)
	}
	timer.Mark("safety")

	e.cache.Set(key, cache.Entry{Suggestion: command, Warning: warning})

	e.log.Debug().
		Str("session", req.SessionID).
		Str("timing", timer.Summary()).
		Bool("warned", warning != "").
		Msg("completion done")

	return &Suggestion{Command: command, Warning: warning}, nil
}
