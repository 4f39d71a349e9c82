package scenario

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a lifecycle move is not allowed from
// the scenario's current status.
var ErrInvalidTransition = errors.New("invalid scenario status transition")

// transitions enumerates the allowed lifecycle moves:
// draft -> ready -> running -> completed | failed, with failed/completed
// scenarios allowed back to ready for a re-run.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusReady},
	StatusReady:     {StatusRunning},
	StatusRunning:   {StatusCompleted, StatusFailed},
	StatusCompleted: {StatusReady},
	StatusFailed:    {StatusReady},
}

func (s *Scenario) transition(to Status) error {
	from := s.Status
	if from == "" {
		from = StatusDraft
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			s.Status = to
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// MarkReady moves a populated draft to ready. A scenario with neither
// decisions nor assumptions has nothing to simulate and stays in draft.
func (s *Scenario) MarkReady() error {
	if len(s.Decisions) == 0 && len(s.Assumptions) == 0 {
		return fmt.Errorf("%w: scenario %s has no decisions or assumptions", ErrInvalidScenario, s.ID)
	}
	return s.transition(StatusReady)
}

// Begin moves a ready scenario to running.
func (s *Scenario) Begin() error {
	return s.transition(StatusRunning)
}

// Complete marks a running scenario as completed.
func (s *Scenario) Complete() error {
	return s.transition(StatusCompleted)
}

// Fail marks a running scenario as failed.
func (s *Scenario) Fail() error {
	return s.transition(StatusFailed)
}
