package workout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownEncoding is returned for an unsupported output encoding
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encoder writes reports to an underlying writer
type Encoder interface {
	Encode(r *Report) error
}

type textEncoder struct {
	w io.Writer
}

func (e *textEncoder) Encode(r *Report) error {
	_, err := fmt.Fprintln(e.w, FormatReport(r))
	return err
}

type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) Encode(r *Report) error {
	return e.enc.Encode(r)
}

// NewEncoder returns an encoder for `encoding`, either "text" or "json"
func NewEncoder(w io.Writer, encoding string) (Encoder, error) {
	switch encoding {
	case "text":
		return &textEncoder{w: w}, nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonEncoder{enc: enc}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
}
