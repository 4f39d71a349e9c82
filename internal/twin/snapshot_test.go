package twin

import "testing"

func TestClone_Isolation(t *testing.T) {
	original := &Snapshot{
		ID:          "snap-1",
		Metrics:     map[string]float64{"revenue": 1000, "churn": 0.05},
		Departments: []Department{{Name: "Sales", Headcount: 5, Budget: 10000}},
		Risks:       []string{"key client concentration"},
	}

	clone := original.Clone()
	clone.Metrics["revenue"] = 9999
	clone.Departments[0].Budget = 0
	clone.Risks[0] = "mutated"

	if original.Metrics["revenue"] != 1000 {
		t.Errorf("Clone mutation leaked into original metrics")
	}
	if original.Departments[0].Budget != 10000 {
		t.Errorf("Clone mutation leaked into original departments")
	}
	if original.Risks[0] != "key client concentration" {
		t.Errorf("Clone mutation leaked into original risks")
	}
}

func TestClone_Nil(t *testing.T) {
	var s *Snapshot
	if s.Clone() != nil {
		t.Error("Cloning a nil snapshot must return nil")
	}
}

func TestMetricAndDepartment(t *testing.T) {
	s := &Snapshot{
		Metrics:     map[string]float64{"revenue": 500},
		Departments: []Department{{Name: "Ops", Budget: 100}, {Name: "R&D", Budget: 300}},
	}

	if got := s.Metric("revenue", 0); got != 500 {
		t.Errorf("Metric() = %v, want 500", got)
	}
	if got := s.Metric("missing", 42); got != 42 {
		t.Errorf("Metric() fallback = %v, want 42", got)
	}

	if d, ok := s.Department("R&D"); !ok || d.Budget != 300 {
		t.Errorf("Department() = %+v/%v, want R&D with budget 300", d, ok)
	}
	if _, ok := s.Department("ghost"); ok {
		t.Error("Unknown department must not be found")
	}

	if got := s.TotalBudget(); got != 400 {
		t.Errorf("TotalBudget() = %v, want 400", got)
	}
}
