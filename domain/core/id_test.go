package core

import (
	"testing"

	"github.com/google/uuid"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 1000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}
}

// TestNewRunIDIsUUID checks run IDs are parseable UUIDs
func TestNewRunIDIsUUID(t *testing.T) {
	id := NewRunID()
	if _, err := uuid.Parse(id.String()); err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", id, err)
	}
}

func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

func TestParseRunID(t *testing.T) {
	tests := []struct {
		input    string
		expected RunID
		hasError bool
	}{
		{"run-1", RunID("run-1"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tt := range tests {
		result, err := ParseRunID(tt.input)
		if tt.hasError && err == nil {
			t.Errorf("ParseRunID(%q) expected error", tt.input)
		}
		if !tt.hasError && err != nil {
			t.Errorf("ParseRunID(%q) unexpected error: %v", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("ParseRunID(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestParseScenarioKey(t *testing.T) {
	tests := []struct {
		input    string
		expected ScenarioKey
		hasError bool
	}{
		{"logistics", ScenarioKey("logistics"), false},
		{"  Delivery ", ScenarioKey("delivery"), false},
		{"", "", true},
	}

	for _, tt := range tests {
		result, err := ParseScenarioKey(tt.input)
		if (err != nil) != tt.hasError {
			t.Errorf("ParseScenarioKey(%q) error = %v, wantErr %v", tt.input, err, tt.hasError)
		}
		if result != tt.expected {
			t.Errorf("ParseScenarioKey(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
