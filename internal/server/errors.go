package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/render"

	"DaxBoard/internal/dashboard"
	"DaxBoard/internal/provider"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// renderError maps pipeline failures onto HTTP statuses: rejected
// configuration is the client's fault, missing provider data is not
// found, anything else is an upstream failure.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var cfgErr *dashboard.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, errorResponse{Error: cfgErr.Reason, Field: cfgErr.Field})
	case errors.Is(err, provider.ErrNoData):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled):
		// Client went away; the cycle's results are discarded.
	default:
		log.Printf("[WARN] render cycle failed: %v", err)
		render.Status(r, http.StatusBadGateway)
		render.JSON(w, r, errorResponse{Error: err.Error()})
	}
}
