// Package llm sends constructed prompts to a completion backend and returns
// the raw textual output. Two backends sit behind one contract: a direct
// OpenRouter endpoint and a backend proxy; the choice is configuration. No
// JSON interpretation happens here, that is the normalizer's job, and no
// retries happen here, retry policy belongs to the caller.
package llm

import "context"

// Client is the completion contract shared by both invocation paths.
// A successful call returns the unparsed text body exactly as received.
// Failures are *APIError values. Single attempt, no retry.
type Client interface {
	Complete(ctx context.Context, model, system, user string) (string, error)
}

const (
	// Completion parameters tuned for creative but schema-conformant output.
	defaultMaxTokens   = 4000
	defaultTemperature = 0.8

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 10 * 1024 * 1024
)
