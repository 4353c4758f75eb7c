package report

// Kind selects the report variant. The two tables have the same shape except
// the safety table carries a securisation column.
type Kind string

const (
	KindSafety    Kind = "safety"
	KindBreakdown Kind = "breakdown"
)

func (k Kind) Table() string {
	if k == KindBreakdown {
		return "form_data_machine_breakdown"
	}
	return "form_data_security"
}

// FilePrefix is the first segment of stored photo filenames.
func (k Kind) FilePrefix() string {
	if k == KindBreakdown {
		return "breakdown"
	}
	return "security"
}

// FormField names the multipart field carrying the JSON-encoded form.
func (k Kind) FormField() string {
	if k == KindBreakdown {
		return "formDataMachineBreakdown"
	}
	return "formDataSecurity"
}

func (k Kind) HasSecurisation() bool { return k == KindSafety }
