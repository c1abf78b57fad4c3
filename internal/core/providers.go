package core

import "context"

// RetrievalBackend is the remote query API the dispatcher calls.
type RetrievalBackend interface {
	Query(ctx context.Context, query, collection string) (*RetrievalResponse, error)
	Conversation(ctx context.Context, query, conversationID, collection string) (*RetrievalResponse, error)
	Health(ctx context.Context) (*Health, error)
}

// Synthesizer produces a stand-in response when no backend is available.
// Demo mode only.
type Synthesizer interface {
	Synthesize(query, collection string) *RetrievalResponse
}
