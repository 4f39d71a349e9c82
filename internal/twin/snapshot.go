// Package twin defines the business snapshot value types consumed by the
// simulation and impact engines. Snapshots are produced by an external
// digital-twin collaborator; the engines only ever read them, and every
// simulation iteration works on its own Clone.
package twin

import "time"

// Department describes one organizational unit of the snapshot.
type Department struct {
	Name      string  `json:"name"`
	Headcount int     `json:"headcount"`
	Budget    float64 `json:"budget"`
}

// Snapshot is an immutable capture of the business at a point in time.
type Snapshot struct {
	ID            string             `json:"id"`
	Metrics       map[string]float64 `json:"metrics"`
	Departments   []Department       `json:"departments,omitempty"`
	Health        float64            `json:"health"`
	Risks         []string           `json:"risks,omitempty"`
	Opportunities []string           `json:"opportunities,omitempty"`
	CapturedAt    time.Time          `json:"captured_at,omitempty"`
}

// Clone returns a deep copy of the snapshot. Each simulation iteration
// mutates its own clone, so the original is never shared across goroutines.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	c := &Snapshot{
		ID:         s.ID,
		Health:     s.Health,
		CapturedAt: s.CapturedAt,
	}

	c.Metrics = make(map[string]float64, len(s.Metrics))
	for k, v := range s.Metrics {
		c.Metrics[k] = v
	}

	if len(s.Departments) > 0 {
		c.Departments = make([]Department, len(s.Departments))
		copy(c.Departments, s.Departments)
	}
	if len(s.Risks) > 0 {
		c.Risks = append([]string(nil), s.Risks...)
	}
	if len(s.Opportunities) > 0 {
		c.Opportunities = append([]string(nil), s.Opportunities...)
	}

	return c
}

// Metric returns the named metric, or fallback when it is absent.
func (s *Snapshot) Metric(name string, fallback float64) float64 {
	if v, ok := s.Metrics[name]; ok {
		return v
	}
	return fallback
}

// Department finds an organizational unit by name.
func (s *Snapshot) Department(name string) (Department, bool) {
	for _, d := range s.Departments {
		if d.Name == name {
			return d, true
		}
	}
	return Department{}, false
}

// TotalBudget sums the budgets of all departments.
func (s *Snapshot) TotalBudget() float64 {
	var total float64
	for _, d := range s.Departments {
		total += d.Budget
	}
	return total
}
