// Package transcript is the boundary to the host chat transcript. The
// summary of a concluded encounter is delivered here, attributed to the
// configured narrator identity.
package transcript

//go:generate mockgen -destination=mock/mock_injector.go -package=transcriptmock github.com/riftline/encounter-engine/internal/clients/transcript Injector

import (
	"context"
	"fmt"
	"io"

	"github.com/riftline/encounter-engine/internal/errors"
)

// Injector appends generated text to the host conversation as a named speaker
type Injector interface {
	SendAs(ctx context.Context, speaker, text string) error
}

// Writer implements Injector against any io.Writer. It is the wiring used by
// the CLI harness, where the "transcript" is a stream.
type Writer struct {
	Out io.Writer
}

// NewWriter creates a writer-backed injector
func NewWriter(out io.Writer) *Writer {
	return &Writer{Out: out}
}

// SendAs writes the text prefixed by the speaker name
func (w *Writer) SendAs(_ context.Context, speaker, text string) error {
	if w.Out == nil {
		return errors.FailedPrecondition("no output stream configured")
	}
	if _, err := fmt.Fprintf(w.Out, "%s: %s\n", speaker, text); err != nil {
		return errors.Wrap(err, "failed to write to transcript")
	}
	return nil
}
