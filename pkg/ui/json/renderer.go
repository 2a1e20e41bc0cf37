// Package json encodes results as indented JSON for other programs
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/style"
)

// Renderer writes one JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

type errorOutput struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type messageOutput struct {
	Message string `json:"message"`
}

// New creates a JSON renderer writing to output
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes result as is
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError encodes the message, code and details of err
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorOutput{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage encodes msg without its markup
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(messageOutput{Message: style.Strip(msg)})
}
