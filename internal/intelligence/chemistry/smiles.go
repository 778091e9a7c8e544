package chemistry

import (
	"regexp"
	"strings"
)

// smilesCharsRe matches the SMILES character set (organic subset atoms,
// brackets, bonds, ring closures, stereo marks).  It is a syntactic screen,
// not a valence check: chemistry-level validation happens at featurization.
var smilesCharsRe = regexp.MustCompile(`^[A-Za-z0-9@+\-\[\]\(\)=#$/\\%.*:]+$`)

// LooksLikeSMILES reports whether the input is plausibly a raw SMILES string
// rather than a drug name.  Names contain spaces or characters outside the
// SMILES alphabet; bare dictionary words like "aspirin" are caught later when
// the dictionary lookup is tried first.
func LooksLikeSMILES(input string) bool {
	s := strings.TrimSpace(input)
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, " \t") {
		return false
	}
	return smilesCharsRe.MatchString(s)
}

// NormalizeInput trims whitespace from user-supplied structure input.
func NormalizeInput(input string) string {
	return strings.TrimSpace(input)
}
