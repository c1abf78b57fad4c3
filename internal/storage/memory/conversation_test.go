package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nathadriele/creditlens/internal/core"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func turn(n int) core.Turn {
	return core.Turn{
		ID:        fmt.Sprintf("turn-%d", n),
		Timestamp: time.Date(2025, 1, 15, 10, 30, n, 0, time.UTC),
		Query:     fmt.Sprintf("question %d", n),
		Response:  core.RetrievalResponse{Answer: fmt.Sprintf("answer %d", n)},
	}
}

func TestCreate_NewConversationIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(fixedClock())

	id, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "conv_20250115_103000" {
		t.Errorf("unexpected id %q", id)
	}

	turns, err := store.History(ctx, id, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected empty history, got %d turns", len(turns))
	}
}

func TestCreate_SameSecondIdsStayDistinct(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(fixedClock())

	first, _ := store.Create(ctx)
	second, _ := store.Create(ctx)
	third, _ := store.Create(ctx)

	if first == second || second == third || first == third {
		t.Errorf("ids collide: %q %q %q", first, second, third)
	}
}

func TestHistory_NewestFirstBounded(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(fixedClock())

	id, _ := store.Create(ctx)
	for i := 1; i <= 7; i++ {
		if err := store.Append(ctx, id, turn(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	turns, err := store.History(ctx, id, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 5 {
		t.Fatalf("expected 5 turns, got %d", len(turns))
	}
	for i, want := range []string{"turn-7", "turn-6", "turn-5", "turn-4", "turn-3"} {
		if turns[i].ID != want {
			t.Errorf("turns[%d] = %q, want %q", i, turns[i].ID, want)
		}
	}
}

func TestHistory_LimitLargerThanTurns(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(fixedClock())

	id, _ := store.Create(ctx)
	store.Append(ctx, id, turn(1))
	store.Append(ctx, id, turn(2))

	turns, _ := store.History(ctx, id, 10)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].ID != "turn-2" {
		t.Errorf("expected newest first, got %q", turns[0].ID)
	}
}

func TestAppend_ImplicitlyCreatesConversation(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(fixedClock())

	if err := store.Append(ctx, "conv_unknown", turn(1)); err != nil {
		t.Fatalf("append should tolerate unknown ids: %v", err)
	}

	turns, _ := store.History(ctx, "conv_unknown", 5)
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
}

func TestClear_KeepsConversationId(t *testing.T) {
	ctx := context.Background()
	store := NewStoreWithClock(fixedClock())

	id, _ := store.Create(ctx)
	store.Append(ctx, id, turn(1))
	store.Append(ctx, id, turn(2))

	if err := store.Clear(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	turns, _ := store.History(ctx, id, 5)
	if len(turns) != 0 {
		t.Fatalf("expected empty history after clear, got %d", len(turns))
	}

	// The id still exists: a same-second Create must pick a suffixed id.
	next, _ := store.Create(ctx)
	if next == id {
		t.Errorf("cleared id %q was reissued", id)
	}

	// And appending to the cleared conversation keeps working.
	store.Append(ctx, id, turn(3))
	turns, _ = store.History(ctx, id, 5)
	if len(turns) != 1 || turns[0].ID != "turn-3" {
		t.Errorf("append after clear failed: %v", turns)
	}
}

func TestHistory_UnknownIdIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	turns, err := store.History(ctx, "conv_never_seen", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected empty history, got %d", len(turns))
	}
}
