package upload

import "strings"

// Characters that are unsafe in filenames on at least one supported
// platform. They are removed outright, not replaced.
const unsafeChars = `<>:"/\|?*`

func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) {
			return -1
		}
		return r
	}, s)
}
