package core

import (
	"testing"
)

// TestNewSpaceIDUniqueness tests that NewSpaceID generates unique identifiers
func TestNewSpaceIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[SpaceID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewSpaceID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestSpaceIDString tests SpaceID string conversion
func TestSpaceIDString(t *testing.T) {
	id := SpaceID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestMangledDeterminism tests that mangling is a pure function of (id, token)
func TestMangledDeterminism(t *testing.T) {
	id := NewSpaceID()
	token := NewMangleToken()

	first := id.Mangled(token)
	second := id.Mangled(token)
	if first != second {
		t.Errorf("Mangling with the same token diverged: %s vs %s", first, second)
	}
	if first == id {
		t.Error("Mangling must change the identity")
	}

	other := id.Mangled(NewMangleToken())
	if other == first {
		t.Error("Different tokens must produce different identities")
	}
}

// TestMangledSeparatesFamilies tests that two ids stay distinct under one token
func TestMangledSeparatesFamilies(t *testing.T) {
	token := NewMangleToken()
	a := NewSpaceID().Mangled(token)
	b := NewSpaceID().Mangled(token)
	if a == b {
		t.Error("Distinct ids must remain distinct after mangling")
	}
}
