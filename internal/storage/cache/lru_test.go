package cache

import (
	"testing"
	"time"

	"github.com/nathadriele/creditlens/internal/core"
)

func resp(answer string) *core.RetrievalResponse {
	return &core.RetrievalResponse{Answer: answer, Confidence: 0.9}
}

func TestResponses_SetGet(t *testing.T) {
	c := NewResponses(4, time.Minute)

	key := Key("credit_policies", "minimum credit score?")
	if _, ok := c.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Set(key, resp("650"))
	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Answer != "650" {
		t.Errorf("got %q, want %q", got.Answer, "650")
	}
}

func TestResponses_KeyIncludesCollection(t *testing.T) {
	c := NewResponses(4, time.Minute)

	c.Set(Key("credit_policies", "q"), resp("a"))
	if _, ok := c.Get(Key("risk_guidelines", "q")); ok {
		t.Error("same query in another collection must miss")
	}
}

func TestResponses_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewResponses(2, time.Minute)

	c.Set("a", resp("1"))
	c.Set("b", resp("2"))
	c.Get("a") // refresh a, making b the eviction candidate
	c.Set("c", resp("3"))

	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("expected a to survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to be present")
	}
}

func TestResponses_TTLExpiry(t *testing.T) {
	c := NewResponses(4, time.Nanosecond)

	c.Set("a", resp("1"))
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Error("expected expired entry to miss")
	}
}

func TestResponses_ZeroTTLNeverExpires(t *testing.T) {
	c := NewResponses(4, 0)

	c.Set("a", resp("1"))
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("a"); !ok {
		t.Error("expected entry without TTL to survive")
	}
}

func TestResponses_Purge(t *testing.T) {
	c := NewResponses(4, time.Minute)

	c.Set("a", resp("1"))
	c.Set("b", resp("2"))
	c.Purge()

	if _, ok := c.Get("a"); ok {
		t.Error("expected purge to drop entries")
	}
}
