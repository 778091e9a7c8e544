package candidate

import (
	"fmt"
	"strconv"
	"time"
)

// DisplayName decides what to call a manually submitted candidate.  When the
// raw input text already equals the canonical SMILES, the user typed a bare
// structure and gets a synthesized label; otherwise the input was a common
// name (e.g. "Aspirin") and is kept as-is.
func DisplayName(input, canonicalSMILES string, now time.Time) string {
	if input == canonicalSMILES {
		ts := strconv.FormatInt(now.Unix(), 10)
		return "Custom Ligand " + ts[len(ts)-4:]
	}
	return input
}

// UploadName synthesizes a placeholder name for row i of an uploaded file
// that carries no name column.
func UploadName(i int) string {
	return fmt.Sprintf("Drug_%d", i)
}
