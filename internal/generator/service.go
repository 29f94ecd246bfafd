// Package generator orchestrates a full idea-generation run: resolve
// preferences, build the prompt, invoke the model, and normalize the reply.
package generator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ideaforge/internal/llm"
	"ideaforge/internal/normalize"
	"ideaforge/internal/prefs"
	"ideaforge/internal/prompt"
	"ideaforge/internal/types"
)

// Result carries the outcome of one generation run.
type Result struct {
	RunID  string
	Model  string
	Ideas  []types.Idea
	Prompt prompt.Spec
}

// Service wires the generation pipeline together. Persistence of the
// resulting ideas is the caller's concern; the service only updates usage
// counters.
type Service struct {
	adapter  *llm.Adapter
	prefs    *prefs.PreferencesRepository
	stats    *prefs.StatsRepository
	defaults *types.GenerationPreferences
	logger   *zap.Logger
}

// NewService creates a generation service. defaults is the configured
// lowest-precedence preference layer and may be nil. The stats repository may
// be nil, in which case counters are not tracked.
func NewService(adapter *llm.Adapter, preferences *prefs.PreferencesRepository, stats *prefs.StatsRepository, defaults *types.GenerationPreferences, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{adapter: adapter, prefs: preferences, stats: stats, defaults: defaults, logger: logger}
}

// Generate runs the pipeline once. An empty component selection fails before
// any preference or network I/O. Stored preferences lose to explicit request
// overrides, and unset fields fall to the documented defaults.
func (s *Service) Generate(ctx context.Context, req types.GenerationRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.prefs.Load()
	if err != nil {
		s.logger.Warn("failed to load stored preferences, continuing with defaults", zap.Error(err))
		stored = nil
	}
	resolved := prefs.Resolve(s.defaults, stored, &req.Preferences)

	spec := prompt.Build(req.Components, resolved)

	runID := uuid.NewString()
	s.logger.Info("starting generation run",
		zap.String("run_id", runID),
		zap.String("model", req.ModelID),
		zap.Int("components", len(req.Components)),
		zap.Int("count", resolved.Count))

	raw, err := s.adapter.Invoke(ctx, spec, req.ModelID)
	if err != nil {
		return nil, err
	}

	modelID := req.ModelID
	if modelID == "" {
		modelID = llm.DefaultModelID
	}
	ideas, err := normalize.Batch(raw, resolved.SkillLevel, resolved.Theme, modelID, runID)
	if err != nil {
		return nil, fmt.Errorf("generation run %s: %w", runID, err)
	}

	if s.stats != nil {
		if err := s.stats.AddIdeasGenerated(len(ideas)); err != nil {
			s.logger.Warn("failed to update usage stats", zap.Error(err))
		}
	}

	s.logger.Info("generation run complete",
		zap.String("run_id", runID),
		zap.Int("ideas", len(ideas)))

	return &Result{RunID: runID, Model: modelID, Ideas: ideas, Prompt: spec}, nil
}

// TestConnection verifies the configured backend responds at all.
func (s *Service) TestConnection(ctx context.Context) error {
	return s.adapter.TestConnection(ctx)
}
