package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/KirkDiggler/taixiu/internal/engine"
	"github.com/KirkDiggler/taixiu/internal/services/game"
)

const maxBodyBytes = 1 << 16

// decode reads a JSON body. An empty body decodes to the zero value.
func decode[T any](body io.Reader) (T, error) {
	var payload T

	decoder := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		return payload, fmt.Errorf("invalid request body: %w", err)
	}
	return payload, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor maps service errors onto HTTP statuses
func statusFor(err error) (int, ErrorResponse) {
	var rejection *engine.Rejection
	if errors.As(err, &rejection) {
		return http.StatusConflict, ErrorResponse{
			Reason:  string(rejection.Reason),
			Message: rejection.Message,
		}
	}

	var engineErr engine.EngineError
	if errors.As(err, &engineErr) {
		switch engineErr {
		case engine.ErrRollInProgress, engine.ErrLoanNotEligible:
			return http.StatusConflict, ErrorResponse{Reason: string(engineErr)}
		case engine.ErrInvalidSide:
			return http.StatusBadRequest, ErrorResponse{Reason: string(engineErr)}
		}
	}

	var gameErr game.GameError
	if errors.As(err, &gameErr) {
		switch gameErr {
		case game.ErrSessionNotFound:
			return http.StatusNotFound, ErrorResponse{Reason: string(gameErr)}
		case game.ErrMissingSessionID:
			return http.StatusBadRequest, ErrorResponse{Reason: string(gameErr)}
		case game.ErrServiceClosed:
			return http.StatusServiceUnavailable, ErrorResponse{Reason: string(gameErr)}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{Reason: "internal error"}
}
