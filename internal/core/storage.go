package core

import "context"

// ConversationRepository stores session-scoped conversation history.
// Appending to an unknown id creates the conversation rather than
// failing; Clear empties the turn list but keeps the id.
type ConversationRepository interface {
	Create(ctx context.Context) (string, error)
	Append(ctx context.Context, conversationID string, turn Turn) error
	Clear(ctx context.Context, conversationID string) error

	// History returns up to limit turns, most recent first.
	History(ctx context.Context, conversationID string, limit int) ([]Turn, error)
}
