package interpret

import (
	"context"
	"regexp"
	"strings"
)

// knownMaterials are matched in order; the first hit wins.
var knownMaterials = []string{
	"cement", "steel", "sand", "aggregate", "brick", "paint",
	"plaster", "concrete", "pipe", "acetylene", "labour", "labor",
	"carpenter", "mason", "fitter", "transport",
}

// workTypeKeywords maps a work type to the query terms that indicate it.
var workTypeKeywords = []struct {
	workType string
	terms    []string
}{
	{"plastering", []string{"plaster", "plastering", "pointing"}},
	{"concrete", []string{"concrete", "rcc", "pcc"}},
	{"excavation", []string{"excavation", "earth work"}},
	{"transport", []string{"transport", "transportation"}},
}

var (
	sizePattern      = regexp.MustCompile(`(\d+)\s*mm`)
	thicknessPattern = regexp.MustCompile(`(\d+)\s*mm\s*thick`)

	// identifierPatterns are tried in order; the first match wins.
	identifierPatterns = []*regexp.Regexp{
		regexp.MustCompile(`item\s*(?:no\.?|number)?\s*(\d+)`),
		regexp.MustCompile(`sr\.?\s*no\.?\s*(\d+)`),
		regexp.MustCompile(`^(\d+)[.\s]`),
		regexp.MustCompile(`\s(\d+)$`),
	}
)

// Rules is a regex-based interpreter. It never fails and serves as the
// fallback when no model-backed interpreter is configured.
type Rules struct{}

// NewRules returns the rule-based interpreter.
func NewRules() Rules {
	return Rules{}
}

// Interpret extracts material, work type, specifications, identifier, and
// period from a query using fixed patterns.
func (Rules) Interpret(ctx context.Context, query string) (*Interpretation, error) {
	lower := strings.ToLower(strings.TrimSpace(query))

	result := &Interpretation{
		Specifications: make(map[string]string),
		Period:         PeriodCurrent,
		Intent:         "rate",
	}

	for _, material := range knownMaterials {
		if strings.Contains(lower, material) {
			result.Material = material
			break
		}
	}

	for _, wt := range workTypeKeywords {
		for _, term := range wt.terms {
			if strings.Contains(lower, term) {
				result.WorkType = wt.workType
				break
			}
		}
		if result.WorkType != "" {
			break
		}
	}

	if m := thicknessPattern.FindStringSubmatch(lower); m != nil {
		result.Specifications["thickness"] = m[1] + "mm"
	} else if m := sizePattern.FindStringSubmatch(lower); m != nil {
		result.Specifications["size"] = m[1] + "mm"
	}

	for _, pattern := range identifierPatterns {
		if m := pattern.FindStringSubmatch(lower); m != nil {
			result.Identifier = m[1]
			break
		}
	}

	if strings.Contains(lower, "prior") || strings.Contains(lower, "previous") || strings.Contains(lower, "last year") {
		result.Period = PeriodPrior
	}

	return result, nil
}
