package explorer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nathadriele/creditlens/internal/config"
	"github.com/nathadriele/creditlens/internal/core"
	"github.com/nathadriele/creditlens/internal/storage/cache"
	"github.com/nathadriele/creditlens/pkg/log"
)

// Request carries one user question and its dispatch options.
type Request struct {
	Query           string
	Collection      string
	UseConversation bool
	TopK            int
	EnableCaching   bool
	ConversationID  string
}

// Explorer dispatches policy questions to the retrieval backend and
// records the exchange in the session's conversation history.
//
// Failure handling is a two-path contract: with DemoMode on, backend
// failures are replaced by a synthesized answer; with DemoMode off they
// surface as ErrRetrievalUnavailable and nothing is fabricated or
// recorded.
type Explorer struct {
	cfg     *config.AppConfig
	backend core.RetrievalBackend
	synth   core.Synthesizer
	repo    core.ConversationRepository
	cache   *cache.Responses
	now     func() time.Time
}

func New(
	cfg *config.AppConfig,
	backend core.RetrievalBackend,
	synth core.Synthesizer,
	repo core.ConversationRepository,
	responses *cache.Responses,
) *Explorer {
	return &Explorer{
		cfg:     cfg,
		backend: backend,
		synth:   synth,
		repo:    repo,
		cache:   responses,
		now:     time.Now,
	}
}

func (e *Explorer) Answer(ctx context.Context, req Request) (*core.RetrievalResponse, error) {
	logger := log.FromCtx(ctx)

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, &core.ValidationError{Reason: "empty query"}
	}

	collection := req.Collection
	if collection == "" {
		collection = e.cfg.DefaultCollection
	}

	key := cache.Key(collection, query)
	if req.EnableCaching && e.cache != nil {
		if resp, ok := e.cache.Get(key); ok {
			logger.Debug().Str("collection", collection).Msg("query served from cache")
			e.record(ctx, req.ConversationID, query, resp)
			return resp, nil
		}
	}

	resp, err := e.dispatch(ctx, req, query, collection)
	switch {
	case err == nil:
		if req.EnableCaching && e.cache != nil {
			e.cache.Set(key, resp)
		}
	case !core.IsBackendFailure(err):
		return nil, err
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		// An aborted request is not a backend outage; never synthesize
		// an answer the user cancelled.
		return nil, err
	case !e.cfg.DemoMode:
		logger.Warn().Err(err).Str("collection", collection).Msg("backend unavailable")
		return nil, fmt.Errorf("%w: %v", core.ErrRetrievalUnavailable, err)
	default:
		// Synthesized answers are never cached.
		logger.Info().Err(err).Str("collection", collection).Msg("backend unavailable, synthesizing demo answer")
		resp = e.synth.Synthesize(query, collection)
	}

	e.record(ctx, req.ConversationID, query, resp)
	return resp, nil
}

func (e *Explorer) dispatch(ctx context.Context, req Request, query, collection string) (*core.RetrievalResponse, error) {
	if req.UseConversation && req.ConversationID != "" {
		return e.backend.Conversation(ctx, query, req.ConversationID, collection)
	}
	return e.backend.Query(ctx, query, collection)
}

// record appends a turn when a conversation is active. Recording never
// fails a successful answer.
func (e *Explorer) record(ctx context.Context, conversationID, query string, resp *core.RetrievalResponse) {
	if conversationID == "" {
		return
	}

	turn := core.Turn{
		ID:        uuid.NewString(),
		Timestamp: e.now(),
		Query:     query,
		Response:  *resp,
	}
	if err := e.repo.Append(ctx, conversationID, turn); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("conversation", conversationID).Msg("failed to record turn")
	}
}

func (e *Explorer) StartConversation(ctx context.Context) (string, error) {
	return e.repo.Create(ctx)
}

func (e *Explorer) ClearConversation(ctx context.Context, conversationID string) error {
	return e.repo.Clear(ctx, conversationID)
}

func (e *Explorer) History(ctx context.Context, conversationID string) ([]core.Turn, error) {
	return e.repo.History(ctx, conversationID, e.cfg.HistoryLimit)
}

// Health reports backend health directly, bypassing demo-mode fallback.
func (e *Explorer) Health(ctx context.Context) (*core.Health, error) {
	return e.backend.Health(ctx)
}
