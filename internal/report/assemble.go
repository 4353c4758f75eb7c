package report

import (
	"encoding/json"
	"fmt"
	"time"

	"qrap/pkg/types"
)

// Assemble merges the validated form, the stored photo paths and the raw
// sorting-data field into one persistence-ready row. The clock is passed in
// so the submission timestamp stays testable.
func Assemble(kind Kind, f Form, photos []string, sortingData string, now time.Time) *types.Report {
	r := &types.Report{
		Numero:           f.Numero,
		Description:      f.Description,
		Date:             f.Date,
		Time:             NormalizeTime(f.Time),
		SimilarIssues:    listBlob(f.SimilarIssues),
		Name:             f.Name,
		Location:         f.Location,
		AlertContacts:    f.AlertContacts,
		ImmediateActions: listBlob(f.ImmediateActions),
		SortingData:      objectBlob(sortingData),
		SubmissionTime:   now,
		Photos:           photos,
	}

	if r.AlertContacts == nil {
		r.AlertContacts = []string{}
	}
	if r.Photos == nil {
		r.Photos = []string{}
	}

	if f.Combien != nil {
		combien := fmt.Sprint(f.Combien)
		r.Combien = &combien
	}

	// The breakdown table has no securisation column; leave it nil so the
	// store never binds it.
	if kind.HasSecurisation() {
		securisation := f.Securisation
		r.Securisation = &securisation
	}

	return r
}

func listBlob(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "[]"
	}
	return string(raw)
}

// objectBlob keeps well-formed sorting data verbatim and falls back to an
// empty object for absent or malformed input.
func objectBlob(raw string) string {
	if raw == "" || !json.Valid([]byte(raw)) {
		return "{}"
	}
	return raw
}
