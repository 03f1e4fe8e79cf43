// Package export delivers drag payloads to the host canvas. The outbound
// contract is a single string per started drag: no envelope, no metadata,
// no accept negotiation.
package export

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// Sink receives the payload of a started drag gesture.
type Sink interface {
	Export(payload string) error
}

// WriterSink writes each exported payload as one line.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Export(payload string) error {
	_, err := fmt.Fprintln(s.W, payload)
	return err
}

// ClipboardSink places the payload on the system clipboard so any host
// application can accept the drop.
type ClipboardSink struct{}

func (ClipboardSink) Export(payload string) error {
	return clipboard.WriteAll(payload)
}
