package scenario

import (
	"errors"
	"testing"
)

func populated() *Scenario {
	return &Scenario{
		ID:            "scn-1",
		Name:          "Test",
		Type:          TypeStrategic,
		HorizonMonths: 6,
		Status:        StatusDraft,
		Decisions: []Decision{
			{ID: "d1", Name: "d1", Options: []Option{{ID: "o1", Name: "o1"}}},
		},
	}
}

func TestLifecycle_HappyPath(t *testing.T) {
	s := populated()

	if err := s.MarkReady(); err != nil {
		t.Fatalf("MarkReady() error: %v", err)
	}
	if err := s.Begin(); err != nil {
		t.Fatalf("Begin() error: %v", err)
	}
	if err := s.Complete(); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", s.Status)
	}
}

func TestLifecycle_FailedRunStaysNonCompleted(t *testing.T) {
	s := populated()
	_ = s.MarkReady()
	_ = s.Begin()

	if err := s.Fail(); err != nil {
		t.Fatalf("Fail() error: %v", err)
	}
	if s.Status == StatusCompleted {
		t.Error("Failed scenario must not be completed")
	}

	// A failed scenario can be re-armed for another run.
	if err := s.MarkReady(); err != nil {
		t.Errorf("MarkReady() after failure error: %v", err)
	}
}

func TestLifecycle_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		move func(*Scenario) error
	}{
		{"CompleteFromDraft", func(s *Scenario) error { return s.Complete() }},
		{"BeginFromDraft", func(s *Scenario) error { return s.Begin() }},
		{"FailFromDraft", func(s *Scenario) error { return s.Fail() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.move(populated())
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestMarkReady_RequiresContent(t *testing.T) {
	s := &Scenario{ID: "empty", HorizonMonths: 6, Status: StatusDraft}
	if err := s.MarkReady(); !errors.Is(err, ErrInvalidScenario) {
		t.Errorf("Expected ErrInvalidScenario for empty scenario, got %v", err)
	}
}
