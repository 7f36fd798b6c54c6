// Package respond writes the JSON envelope used by all HTTP handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

type response struct {
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a 200 response with the given payload.
func OK(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{Data: data})
}

// Created writes a 201 response with the given payload.
func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, response{Data: data})
}

// Fail writes an error response with the given status code.
func Fail(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, response{Error: err.Error()})
}

// FailWithData writes an error response carrying a payload, e.g. the
// conflicting bookings on a 409.
func FailWithData(w http.ResponseWriter, code int, err error, data interface{}) {
	writeJSON(w, code, response{Error: err.Error(), Data: data})
}
