package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"qrap/internal/utils"
	"qrap/pkg/types"
)

// Processor owns the uploads directory. Incoming photos land there under a
// unique temporary name and are renamed into place once the whole set is
// known, so naming stays a pure computation and the move is the only effect.
type Processor struct {
	Dir string
}

func NewProcessor(dir string) *Processor {
	return &Processor{Dir: dir}
}

// EnsureDir creates the uploads directory if it does not exist yet.
func (p *Processor) EnsureDir() error {
	return os.MkdirAll(p.Dir, 0o755)
}

// SaveTemp writes one uploaded file under a temporary name and returns its
// path.
func (p *Processor) SaveTemp(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", &types.AttachmentError{Path: fh.Filename, Err: err}
	}
	defer src.Close()

	tmp := filepath.Join(p.Dir, fmt.Sprintf("%s-%s", utils.NanoIDSize(12), filepath.Base(fh.Filename)))

	dst, err := os.Create(tmp)
	if err != nil {
		return "", &types.AttachmentError{Path: tmp, Err: err}
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(tmp)
		return "", &types.AttachmentError{Path: tmp, Err: err}
	}

	return tmp, nil
}

// Process moves saved temp files to their computed destinations and returns
// the stored paths in submission order. A failed rename fails the whole set;
// no partial result is returned.
func (p *Processor) Process(tmpPaths, originals []string, prefix, numero, description string) ([]string, error) {
	stored := make([]string, 0, len(tmpPaths))
	for i, tmp := range tmpPaths {
		name := DestinationName(prefix, numero, description, i, originals[i])
		if err := os.Rename(tmp, filepath.Join(p.Dir, name)); err != nil {
			return nil, &types.AttachmentError{Path: name, Err: err}
		}
		stored = append(stored, DestinationPath(p.Dir, name))
	}
	return stored, nil
}
