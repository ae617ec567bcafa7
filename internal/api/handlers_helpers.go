// Wayfinder - Landmark Check-in and Leaderboard Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/middleware"
	"github.com/tomtom215/wayfinder/internal/models"
	"github.com/tomtom215/wayfinder/internal/state"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// maxBodyBytes caps request bodies; both request types are tiny.
const maxBodyBytes = 64 << 10

var errTrailingData = errors.New("trailing data after JSON body")

// sanitizeLogValue escapes control characters so user input cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes an ErrorResponse. err, when set, is logged and never
// sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondJSON(w, status, models.ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(r.Context()),
	})
}

// storeErrorKind classifies store errors for the response and for metrics.
func storeErrorKind(err error) (status int, code, message, kind string) {
	switch {
	case errors.Is(err, state.ErrInvalidInput):
		return http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "invalid_input"
	case errors.Is(err, state.ErrAlreadyExists):
		return http.StatusConflict, "USER_EXISTS", "User exists", "already_exists"
	case errors.Is(err, state.ErrUserNotFound):
		return http.StatusNotFound, "USER_NOT_FOUND", "User not found", "user_not_found"
	case errors.Is(err, state.ErrLandmarkNotFound):
		return http.StatusNotFound, "LANDMARK_NOT_FOUND", "Landmark not found", "landmark_not_found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "internal"
	}
}

// respondStoreError maps a store error to its HTTP response.
func respondStoreError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status, code, message, kind := storeErrorKind(err)
	metrics.RecordStoreError(operation, kind)

	if status == http.StatusInternalServerError {
		respondError(w, r, status, code, message, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("operation", operation).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("store rejected request")
	respondError(w, r, status, code, message, nil)
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure
// it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if err == nil {
		// Anything after the object, even another object, is malformed.
		var extra json.RawMessage
		if trailErr := dec.Decode(&extra); !errors.Is(trailErr, io.EOF) {
			err = errTrailingData
		}
	}
	if err != nil {
		message := "Invalid JSON body"
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			message = "Request body is required"
		case errors.As(err, &maxErr):
			message = "Request body too large"
		}
		respondError(w, r, http.StatusBadRequest, "BAD_REQUEST", message, nil)
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		apiErr := verr.ToAPIError()
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:     apiErr.Message,
			Code:      apiErr.Code,
			RequestID: middleware.GetRequestID(r.Context()),
			Details:   apiErr.Details,
		})
		return false
	}
	return true
}
