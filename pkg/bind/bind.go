// Package bind decodes the {"data": {...}} request envelope.
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shashiranjanraj/grubdash/pkg/httperr"
	"github.com/shashiranjanraj/grubdash/pkg/validate"
)

// MaxBodyBytes caps every decoded body. The kernel sets it from
// http.max_body_bytes at boot.
var MaxBodyBytes int64 = 4 << 20

type envelope struct {
	Data any `json:"data"`
}

// Envelope decodes r.Body and returns the object under "data".
//
// An empty body, a missing "data" key or a "data" value that is not an
// object all yield empty Fields, so field rules report the missing field.
// Malformed JSON is a 400 and an oversized body a 413.
func Envelope(r *http.Request) (validate.Fields, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return validate.Fields{}, nil
	}
	r.Body = http.MaxBytesReader(nil, r.Body, MaxBodyBytes)

	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return validate.Fields{}, nil
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, httperr.TooLarge(maxErr.Limit)
		}
		return nil, &httperr.Error{
			Kind:    httperr.KindValidation,
			Status:  http.StatusBadRequest,
			Message: "invalid JSON: " + err.Error(),
			Err:     err,
		}
	}

	data, ok := env.Data.(map[string]any)
	if !ok {
		return validate.Fields{}, nil
	}
	return validate.Fields(data), nil
}
