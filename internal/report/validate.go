package report

import "qrap/pkg/types"

// Validate enforces required-field presence. It runs before any file is
// renamed or any statement reaches the store.
func Validate(f Form) error {
	if f.Numero == "" || f.Description == "" {
		return &types.ValidationError{Message: "fields 'numero' and 'description' are required"}
	}
	return nil
}
