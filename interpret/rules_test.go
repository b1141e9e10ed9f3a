package interpret

import (
	"context"
	"testing"
)

func TestRulesInterpret(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		material   string
		workType   string
		identifier string
		period     string
		specs      map[string]string
	}{
		{
			name:     "material only",
			query:    "cement rate",
			material: "cement",
			period:   PeriodCurrent,
		},
		{
			name:       "labeled identifier",
			query:      "rate of item no 12",
			identifier: "12",
			period:     PeriodCurrent,
		},
		{
			name:       "sr no identifier",
			query:      "sr. no. 7 price",
			identifier: "7",
			period:     PeriodCurrent,
		},
		{
			name:       "leading identifier",
			query:      "12. cement bag",
			material:   "cement",
			identifier: "12",
			period:     PeriodCurrent,
		},
		{
			name:       "trailing identifier",
			query:      "show me item 5",
			identifier: "5",
			period:     PeriodCurrent,
		},
		{
			name:     "prior period",
			query:    "previous rate of steel",
			material: "steel",
			period:   PeriodPrior,
		},
		{
			name:     "last year period",
			query:    "sand rate last year",
			material: "sand",
			period:   PeriodPrior,
		},
		{
			name:     "work type",
			query:    "plastering work charges",
			material: "plaster",
			workType: "plastering",
			period:   PeriodCurrent,
		},
		{
			name:     "size spec",
			query:    "pipe 100 mm dia",
			material: "pipe",
			period:   PeriodCurrent,
			specs:    map[string]string{"size": "100mm"},
		},
		{
			name:     "thickness spec",
			query:    "plaster 20mm thick",
			material: "plaster",
			workType: "plastering",
			period:   PeriodCurrent,
			specs:    map[string]string{"thickness": "20mm"},
		},
	}

	rules := NewRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rules.Interpret(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Interpret: %v", err)
			}
			if got.Material != tt.material {
				t.Errorf("material = %q, want %q", got.Material, tt.material)
			}
			if got.WorkType != tt.workType {
				t.Errorf("work type = %q, want %q", got.WorkType, tt.workType)
			}
			if got.Identifier != tt.identifier {
				t.Errorf("identifier = %q, want %q", got.Identifier, tt.identifier)
			}
			if got.Period != tt.period {
				t.Errorf("period = %q, want %q", got.Period, tt.period)
			}
			if got.Intent != "rate" {
				t.Errorf("intent = %q, want rate", got.Intent)
			}
			for key, want := range tt.specs {
				if got.Specifications[key] != want {
					t.Errorf("spec %q = %q, want %q", key, got.Specifications[key], want)
				}
			}
		})
	}
}

func TestRulesInterpretEmptyQuery(t *testing.T) {
	got, err := NewRules().Interpret(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if got.Material != "" || got.Identifier != "" {
		t.Errorf("empty query should extract nothing, got %+v", got)
	}
	if got.Period != PeriodCurrent {
		t.Errorf("period = %q, want current default", got.Period)
	}
}
