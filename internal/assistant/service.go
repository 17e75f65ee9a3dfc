package assistant

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"finmind/internal/store"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	greeting = "Hello! I am FinMind. Ask me about your dues, upcoming payments, or a financial summary."
)

// ErrBusy is returned while a previous request is still in flight; the
// conversation allows a single outstanding gateway call.
var ErrBusy = errors.New("a request is already in flight")

// ChatMessage is one transcript entry.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Service owns the chat transcript and mediates between the Item Store
// and the Gateway. Gateway failures are converted into exactly one
// fallback assistant message; the item collection is never touched.
type Service struct {
	gateway Gateway
	items   store.Store

	mu         sync.Mutex
	transcript []ChatMessage
	inFlight   bool
}

func NewService(gateway Gateway, items store.Store) *Service {
	s := &Service{gateway: gateway, items: items}
	s.transcript = []ChatMessage{newMessage(RoleAssistant, greeting)}
	return s
}

// Transcript returns a copy of the conversation so far.
func (s *Service) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatMessage(nil), s.transcript...)
}

// Send submits a user query and returns the assistant's reply. Only one
// call may be outstanding at a time; concurrent submissions get ErrBusy.
func (s *Service) Send(ctx context.Context, query string, voiceMode bool) (ChatMessage, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ChatMessage{}, ErrBusy
	}
	s.inFlight = true
	s.transcript = append(s.transcript, newMessage(RoleUser, query))
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	snapshot, err := s.items.List(ctx)
	if err != nil {
		// Without a snapshot there is nothing to answer against; treat
		// it like a gateway failure and fall back.
		slog.ErrorContext(ctx, "Failed to snapshot items for assistant", "error", err)
		return s.appendReply(FallbackReply), nil
	}

	reply, err := s.gateway.Ask(ctx, query, snapshot, voiceMode)
	if err != nil {
		var gerr *GatewayError
		if errors.As(err, &gerr) {
			slog.WarnContext(ctx, "Assistant gateway failed, using fallback",
				"error", err, "voice_mode", voiceMode)
			return s.appendReply(FallbackReply), nil
		}
		return ChatMessage{}, err
	}

	return s.appendReply(reply), nil
}

func (s *Service) appendReply(content string) ChatMessage {
	msg := newMessage(RoleAssistant, content)
	s.mu.Lock()
	s.transcript = append(s.transcript, msg)
	s.mu.Unlock()
	return msg
}

func newMessage(role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
