package arena

import (
	"io"

	"github.com/cockroachdb/errors"
)

var _ io.WriterTo = (*Arena)(nil)

// WriteTo writes the used region [0, Used()) of the arena to w.
func (a *Arena) WriteTo(w io.Writer) (int64, error) {
	if a.Released() {
		return 0, ErrReleased
	}
	n, err := w.Write(a.buf[:a.used])
	if err != nil {
		return int64(n), errors.Wrapf(err, "arena: write %d bytes", a.used)
	}
	return int64(n), nil
}
