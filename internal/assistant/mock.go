package assistant

import (
	"context"
	"fmt"

	"finmind/internal/core"
)

// MockGateway is a deterministic Gateway for tests and offline runs. It
// records the last request and can be primed to fail.
type MockGateway struct {
	Reply string
	Err   error

	LastQuery     string
	LastSnapshot  []core.FinancialItem
	LastVoiceMode bool
	Calls         int
}

var _ Gateway = (*MockGateway)(nil)

func (m *MockGateway) Ask(_ context.Context, query string, snapshot []core.FinancialItem, voiceMode bool) (string, error) {
	m.Calls++
	m.LastQuery = query
	m.LastSnapshot = snapshot
	m.LastVoiceMode = voiceMode

	if m.Err != nil {
		return "", &GatewayError{Err: m.Err}
	}
	if m.Reply != "" {
		return m.Reply, nil
	}
	return fmt.Sprintf("You asked: %q. You have %d tracked items.", query, len(snapshot)), nil
}
