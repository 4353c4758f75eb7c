package types

import "time"

// Report is one stored incident row. The safety and breakdown tables share
// this shape; Securisation only exists on the safety table and stays nil for
// breakdown rows.
type Report struct {
	ID               int64     `db:"id" json:"id"`
	Numero           string    `db:"numero" json:"numero"`
	Description      string    `db:"description" json:"description"`
	Date             string    `db:"date" json:"date"`
	Time             string    `db:"time" json:"time"`
	SimilarIssues    string    `db:"similar_issues" json:"similarIssues"`
	Combien          *string   `db:"combien" json:"combien"`
	Name             string    `db:"name" json:"name"`
	Location         string    `db:"location" json:"location"`
	AlertContacts    []string  `db:"alert_contacts" json:"alertContacts"`
	Securisation     *string   `db:"securisation" json:"securisation,omitempty"`
	ImmediateActions string    `db:"immediate_actions" json:"immediateActions"`
	SortingData      string    `db:"sorting_data" json:"sortingData"`
	SubmissionTime   time.Time `db:"submission_time" json:"submissionTime"`
	Photos           []string  `db:"photos" json:"photos"`
}
