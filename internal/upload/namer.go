package upload

import (
	"fmt"
	"path"
	"path/filepath"
)

// DestinationName computes the stored filename for one uploaded photo. Slot
// is the zero-based position in submission order, so the first file becomes
// photo1. The extension is taken verbatim from the uploaded filename; the
// description is sanitized for filename use only.
func DestinationName(prefix, numero, description string, slot int, original string) string {
	return fmt.Sprintf("%s.%s.%s.photo%d%s",
		prefix, numero, Sanitize(description), slot+1, filepath.Ext(original))
}

// DestinationPath joins the uploads directory and a filename with forward
// slashes so stored paths read the same on every platform.
func DestinationPath(dir, name string) string {
	return path.Join(filepath.ToSlash(dir), name)
}
