package scenario

import (
	"errors"
	"testing"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr bool
	}{
		{"Valid", func(s *Scenario) {}, false},
		{"MissingID", func(s *Scenario) { s.ID = "" }, true},
		{"ZeroHorizon", func(s *Scenario) { s.HorizonMonths = 0 }, true},
		{"DecisionWithoutOptions", func(s *Scenario) { s.Decisions[0].Options = nil }, true},
		{"UnknownSelectedOption", func(s *Scenario) { s.Decisions[0].SelectedOption = "ghost" }, true},
		{"NegativeObjectiveWeight", func(s *Scenario) {
			s.Objectives = []Objective{{ID: "o", Metric: "m", Target: 1, Weight: -1}}
		}, true},
		{"ConfidenceOutOfRange", func(s *Scenario) {
			s.Assumptions = []Assumption{{ID: "a", Variable: "x", Confidence: 1.5}}
		}, true},
		{"UniformMaxBelowMin", func(s *Scenario) {
			s.Assumptions = []Assumption{{
				ID: "a", Variable: "x",
				Distribution: Distribution{Kind: DistUniform, Min: 10, Max: 5},
			}}
		}, true},
		{"NegativeExponentialMean", func(s *Scenario) {
			m := -1.0
			s.Assumptions = []Assumption{{
				ID: "a", Variable: "x",
				Distribution: Distribution{Kind: DistExponential, Mean: &m},
			}}
		}, true},
		{"RiskProbabilityOutOfRange", func(s *Scenario) {
			s.Decisions[0].Options[0].Risks = []Risk{{Probability: 2, Impact: 0.5}}
		}, true},
		{"UnknownDistributionKindAccepted", func(s *Scenario) {
			s.Assumptions = []Assumption{{
				ID: "a", Variable: "x",
				Distribution: Distribution{Kind: "weibull"},
			}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := populated()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrInvalidScenario) {
				t.Errorf("Error must wrap ErrInvalidScenario, got %v", err)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	valid := `{
		"id": "scn-1",
		"name": "Growth plan",
		"type": "growth",
		"horizon_months": 12,
		"decisions": [{
			"id": "d1",
			"name": "Invest",
			"options": [
				{"id": "A", "name": "A", "costs": {"upfront": 1000}, "benefits": {"revenue": 2000}},
				{"id": "B", "name": "B", "costs": {"upfront": 500}, "benefits": {"revenue": 800}}
			]
		}],
		"assumptions": [{
			"id": "a1",
			"variable": "x",
			"base_value": 5,
			"distribution": {"kind": "uniform", "min": 0, "max": 10}
		}],
		"objectives": [{"id": "o1", "metric": "revenue", "target": 1500, "weight": 1}]
	}`

	s, err := ParseDocument([]byte(valid))
	if err != nil {
		t.Fatalf("ParseDocument() error: %v", err)
	}
	if s.Status != StatusDraft {
		t.Errorf("Status defaults to draft, got %s", s.Status)
	}
	if len(s.Decisions) != 1 || len(s.Decisions[0].Options) != 2 {
		t.Errorf("Decisions not decoded: %+v", s.Decisions)
	}
	if s.Assumptions[0].Distribution.Kind != DistUniform {
		t.Errorf("Distribution kind = %s, want uniform", s.Assumptions[0].Distribution.Kind)
	}
}

func TestParseDocument_Rejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"NotJSON", `{"id": `},
		{"MissingRequired", `{"name": "no id", "type": "growth", "horizon_months": 6}`},
		{"BadType", `{"id": "s", "name": "n", "type": "sideways", "horizon_months": 6}`},
		{"BadDistributionKind", `{
			"id": "s", "name": "n", "type": "growth", "horizon_months": 6,
			"assumptions": [{"id": "a", "variable": "x", "base_value": 1,
				"distribution": {"kind": "cauchy"}}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidScenario) {
				t.Errorf("Expected ErrInvalidScenario, got %v", err)
			}
		})
	}
}
