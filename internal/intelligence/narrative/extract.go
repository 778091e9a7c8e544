package narrative

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
)

// degradedMechanismLimit caps how much raw model text is surfaced when the
// response could not be parsed as JSON.
const degradedMechanismLimit = 500

// extractJSON strips markdown code fences that models wrap around JSON
// despite being told not to.
func extractJSON(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// parseExplanation parses model output into an Explanation.  Unparsable
// output degrades to a record that carries the raw text instead of failing,
// so a malformed model response never breaks an analysis.
func parseExplanation(raw string) *candidate.Explanation {
	var exp candidate.Explanation
	if err := json.Unmarshal([]byte(extractJSON(raw)), &exp); err == nil {
		return &exp
	}
	return &candidate.Explanation{
		Summary:           "AI Analysis generated but format was unstructured.",
		Mechanism:         truncate(raw, degradedMechanismLimit),
		SafetyAnalysis:    "Please check the Radar Chart for safety details.",
		ClinicalPotential: "Manual Review Required",
		Conclusion:        "Parsing Error",
	}
}

// parseOptimization parses model output into an Optimization, degrading to a
// fixed record on malformed output.
func parseOptimization(raw string) *Optimization {
	var opt Optimization
	if err := json.Unmarshal([]byte(extractJSON(raw)), &opt); err == nil {
		return &opt
	}
	return &Optimization{
		OriginalFlaw:    "Error",
		Suggestion:      "Manual",
		OptimizedSMILES: "",
		Reasoning:       "Parse Error",
	}
}

// truncate cuts s to at most limit bytes without splitting a multi-byte rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
