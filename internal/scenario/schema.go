package scenario

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// Scenario documents may be authored by hand or generated by an external
// text-to-structure collaborator. Either way the document is untrusted and is
// checked against this schema before the engine accepts it.
var documentSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"id", "name", "type", "horizon_months"},
	Properties: map[string]*jsonschema.Schema{
		"id":             {Type: "string"},
		"name":           {Type: "string"},
		"type":           {Type: "string", Enum: []any{"strategic", "operational", "financial", "market", "risk", "growth"}},
		"horizon_months": {Type: "integer"},
		"status":         {Type: "string", Enum: []any{"draft", "ready", "running", "completed", "failed"}},
		"decisions": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"id", "name", "options"},
				Properties: map[string]*jsonschema.Schema{
					"id":              {Type: "string"},
					"name":            {Type: "string"},
					"category":        {Type: "string"},
					"depends_on":      {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					"selected_option": {Type: "string"},
					"options": {
						Type: "array",
						Items: &jsonschema.Schema{
							Type:     "object",
							Required: []string{"id", "name"},
							Properties: map[string]*jsonschema.Schema{
								"id":                     {Type: "string"},
								"name":                   {Type: "string"},
								"costs":                  {Type: "object"},
								"benefits":               {Type: "object"},
								"risks":                  {Type: "array"},
								"prerequisites":          {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
								"time_to_implement_days": {Type: "integer"},
							},
						},
					},
				},
			},
		},
		"assumptions": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"id", "variable", "base_value"},
				Properties: map[string]*jsonschema.Schema{
					"id":         {Type: "string"},
					"name":       {Type: "string"},
					"variable":   {Type: "string"},
					"base_value": {Type: "number"},
					"confidence": {Type: "number"},
					"distribution": {
						Type: "object",
						Properties: map[string]*jsonschema.Schema{
							"kind":        {Type: "string", Enum: []any{"normal", "uniform", "triangular", "exponential"}},
							"mean":        {Type: "number"},
							"std_dev":     {Type: "number"},
							"min":         {Type: "number"},
							"max":         {Type: "number"},
							"most_likely": {Type: "number"},
						},
					},
				},
			},
		},
		"constraints": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"id", "type", "limit"},
				Properties: map[string]*jsonschema.Schema{
					"id":    {Type: "string"},
					"name":  {Type: "string"},
					"type":  {Type: "string", Enum: []any{"budget", "resource", "time", "regulatory", "technical"}},
					"limit": {Type: "number"},
					"unit":  {Type: "string"},
					"hard":  {Type: "boolean"},
				},
			},
		},
		"objectives": {
			Type: "array",
			Items: &jsonschema.Schema{
				Type:     "object",
				Required: []string{"id", "metric", "target"},
				Properties: map[string]*jsonschema.Schema{
					"id":       {Type: "string"},
					"name":     {Type: "string"},
					"metric":   {Type: "string"},
					"target":   {Type: "number"},
					"weight":   {Type: "number"},
					"minimize": {Type: "boolean"},
				},
			},
		},
	},
}

var resolveDocumentSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return documentSchema.Resolve(nil)
})

// ParseDocument validates raw JSON against the scenario schema and decodes it.
// Schema violations and structural-validation failures both surface as
// ErrInvalidScenario so callers have a single precondition error to test for.
func ParseDocument(data []byte) (*Scenario, error) {
	resolved, err := resolveDocumentSchema()
	if err != nil {
		return nil, fmt.Errorf("resolve scenario schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := resolved.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.Status == "" {
		s.Status = StatusDraft
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
