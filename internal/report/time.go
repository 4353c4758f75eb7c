package report

// NormalizeTime widens HH:MM to HH:MM:SS. Anything that is not exactly five
// characters passes through untouched; there is no parsing or range check.
func NormalizeTime(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}
