package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// validatable is implemented by the request types in internal/types.
type validatable interface {
	Validate() error
}

// decodeRequest reads a size-limited JSON body into req and validates it.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) error {
	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return &ErrPayloadTooLarge{Limit: maxErr.Limit}
		}
		return &ErrBadRequest{Cause: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return &ErrBadRequest{Cause: errors.New("body must contain a single JSON object")}
	}
	if err := req.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

// checkDocumentSize rejects a document longer than the per-document upload limit.
func (s *Server) checkDocumentSize(field, text string) error {
	if int64(len(text)) > s.maxUploadBytes {
		return &ErrDocumentTooLarge{Field: field, Size: len(text), Limit: s.maxUploadBytes}
	}
	return nil
}
