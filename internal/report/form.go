package report

import "encoding/json"

// Form is the caller-supplied report payload, decoded from the JSON-encoded
// multipart field. Combien is declared loose because clients send it as
// either text or a number.
type Form struct {
	Numero           string          `json:"numero"`
	Description      string          `json:"description"`
	Date             string          `json:"date"`
	Time             string          `json:"time"`
	SimilarIssues    json.RawMessage `json:"similarIssues"`
	ImmediateActions json.RawMessage `json:"immediateActions"`
	AlertContacts    []string        `json:"alertContacts"`
	Combien          any             `json:"combien"`
	Name             string          `json:"name"`
	Location         string          `json:"location"`
	Securisation     string          `json:"securisation"`
}

// DecodeForm parses the raw form field. Absent or malformed input decodes as
// an empty form, which then fails required-field validation instead of
// erroring here.
func DecodeForm(raw string) Form {
	var f Form
	if raw == "" {
		return f
	}
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return Form{}
	}
	return f
}
