package triage

import (
	"encoding/csv"
	"io"
	"path/filepath"
	"strings"

	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/pkg/errors"
)

// ParseUpload reads an uploaded candidate file into a candidate list.
// CSV files are comma-delimited, TXT files tab-delimited; any other extension
// is rejected.  Column headers are matched case-insensitively after trimming.
// A missing "name" column gets per-row synthesized names; a missing "smiles"
// column is an error.
func ParseUpload(filename string, r io.Reader) ([]candidate.Candidate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		reader.Comma = ','
	case ".txt":
		reader.Comma = '\t'
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedFormat, "Invalid format. Only .csv or .txt allowed.")
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Newf(errors.ErrCodeUnsupportedFormat, "Failed to process file: %v", err).WithCause(err)
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyUpload, "Failed to process file: file is empty")
	}

	header := records[0]
	smilesIdx, nameIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "smiles":
			smilesIdx = i
		case "name":
			nameIdx = i
		}
	}
	if smilesIdx < 0 {
		return nil, errors.New(errors.ErrCodeMissingColumn, "Column 'smiles' not found!")
	}

	rows := records[1:]
	candidates := make([]candidate.Candidate, 0, len(rows))
	for i, row := range rows {
		c := candidate.Candidate{}
		if smilesIdx < len(row) {
			c.SMILES = strings.TrimSpace(row[smilesIdx])
		}
		if nameIdx >= 0 && nameIdx < len(row) && strings.TrimSpace(row[nameIdx]) != "" {
			c.Name = strings.TrimSpace(row[nameIdx])
		} else {
			c.Name = candidate.UploadName(i)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
