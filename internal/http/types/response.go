// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// Response is the JSON envelope of successful API calls.
type Response struct {
	Data    any         `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(
		w,
		status,
		ErrorResponse{
			Status:  status,
			Message: message,
		},
	)
}

func WriteData(w http.ResponseWriter, status int, message string, data any, meta *Pagination) {
	WriteJSON(
		w,
		status,
		Response{
			Data:    data,
			Message: message,
			Status:  status,
			Meta:    meta,
		},
	)
}
