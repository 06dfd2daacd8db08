package sink

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// OpenFile opens filename for appending, creating it and its directory
// if needed, and returns it as a sink. Lines go straight to the file;
// there is no buffering and no rotation.
func OpenFile(filename string) (*Writer, error) {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "sink: create log directory")
		}
	}

	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "sink: open log file")
	}

	s := NewWriter(filename, f)
	if info, err := f.Stat(); err == nil {
		s.written = info.Size()
	}
	return s, nil
}
