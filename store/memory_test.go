package store

import (
	"context"
	"testing"

	"maskle/game"
)

func testSession(id string) *game.Session {
	return &game.Session{
		ID:               id,
		Seed:             "seed-" + id,
		CharacterID:      "nova",
		AskedQuestionIDs: []string{"q1"},
		Turns: []game.TurnLog{
			{ID: "t1", QuestionID: "q1", AnswerChoice: 1, AnswerText: "clean"},
		},
		TotalQuestions: 5,
		Status:         game.StatusInProgress,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	memory := NewMemoryStore()
	ctx := context.Background()

	if _, err := memory.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	session := testSession("s1")
	if err := memory.Create(ctx, session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	loaded, err := memory.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.ID != "s1" || loaded.Seed != "seed-s1" {
		t.Fatalf("loaded wrong session: %+v", loaded)
	}

	loaded.Status = game.StatusEnded
	if err := memory.Update(ctx, loaded); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	reloaded, err := memory.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get after update failed: %v", err)
	}
	if reloaded.Status != game.StatusEnded {
		t.Fatalf("update not visible: %+v", reloaded)
	}
}

// TestMemoryStoreIsolatesCallers ensures mutations on a returned session
// never touch the stored copy until Update is called.
func TestMemoryStoreIsolatesCallers(t *testing.T) {
	memory := NewMemoryStore()
	ctx := context.Background()

	original := testSession("s2")
	if err := memory.Create(ctx, original); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutating the session we handed in must not affect the store.
	original.AskedQuestionIDs[0] = "mutated"
	original.Turns[0].AnswerText = "mutated"

	loaded, err := memory.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.AskedQuestionIDs[0] == "mutated" || loaded.Turns[0].AnswerText == "mutated" {
		t.Fatalf("store aliases caller state: %+v", loaded)
	}

	// And mutating what we read back must not affect later reads.
	loaded.Suspicion = 99
	fresh, err := memory.Get(ctx, "s2")
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if fresh.Suspicion == 99 {
		t.Fatal("store aliases returned state")
	}
}
