package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ideaforge/internal/prompt"
)

// Adapter validates the model selection against the catalog and delegates the
// completion to the configured client. One attempt per call; the caller owns
// any retry policy.
type Adapter struct {
	client Client
	logger *zap.Logger
}

// NewAdapter creates an adapter over the given client.
func NewAdapter(client Client, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{client: client, logger: logger}
}

// Invoke sends the prompt to the named model and returns the raw textual
// output. An id outside the static catalog fails with KindUnknownModel before
// any network activity.
func (a *Adapter) Invoke(ctx context.Context, spec prompt.Spec, modelID string) (string, error) {
	if modelID == "" {
		modelID = DefaultModelID
	}
	model, err := Lookup(modelID)
	if err != nil {
		return "", err
	}

	start := time.Now()
	a.logger.Debug("invoking model",
		zap.String("model", model.ID),
		zap.Int("system_len", len(spec.System)),
		zap.Int("user_len", len(spec.User)))

	raw, err := a.client.Complete(ctx, model.ID, spec.System, spec.User)
	if err != nil {
		a.logger.Warn("model invocation failed",
			zap.String("model", model.ID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", err
	}

	a.logger.Info("model invocation completed",
		zap.String("model", model.ID),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(raw)))
	return raw, nil
}

// TestConnection performs a minimal round trip against the default model and
// reports whether the backend is reachable with the current credential.
func (a *Adapter) TestConnection(ctx context.Context) error {
	_, err := a.client.Complete(ctx, DefaultModelID,
		"",
		`Hello! Please respond with just "Connection successful" to test the API.`)
	return err
}
