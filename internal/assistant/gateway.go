// Package assistant holds the conversational layer: the Gateway port to
// the hosted model, the prompt builder, and the chat service that owns
// the transcript. No retrieval or ranking happens locally; the remote
// model answers against the full serialized item snapshot.
package assistant

import (
	"context"
	"fmt"

	"finmind/internal/core"
)

// FallbackReply is shown whenever the gateway fails. The failure never
// propagates past the service as a raw fault.
const FallbackReply = "Sorry, I encountered an error checking your financial data."

// Gateway answers a natural-language query against a snapshot of the
// item collection. voiceMode only changes the requested answer style.
type Gateway interface {
	Ask(ctx context.Context, query string, snapshot []core.FinancialItem, voiceMode bool) (string, error)
}

// GatewayError wraps a network or API failure from the remote model.
type GatewayError struct {
	Err error
}

func (e *GatewayError) Error() string { return fmt.Sprintf("assistant gateway: %v", e.Err) }

func (e *GatewayError) Unwrap() error { return e.Err }
