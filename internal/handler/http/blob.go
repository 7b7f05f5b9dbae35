// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-cloud-vault/internal/logger"
	"github.com/MKhiriev/go-cloud-vault/internal/utils"
	"github.com/MKhiriev/go-cloud-vault/models"
)

// pullBlob returns the caller's blob. A vault that was never written is not
// an error: the response carries empty contents and an empty hash.
func (h *Handler) pullBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.pullBlob").Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	blob, err := h.repo.GetBlob(r.Context(), identity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pullBlob").Msg("error reading blob")
		http.Error(w, "error reading blob", statusFromError(err))
		return
	}

	writeBlobResponse(w, r, blob)
}

// pushBlob stores the caller's blob conditionally on the version hash named
// in the request. The stored bytes are echoed back so the client can verify
// the server accepted them unmodified.
func (h *Handler) pushBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.pushBlob").Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.PushBlobRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.pushBlob").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if len(request.Value) == 0 {
		log.Warn().Str("func", "*Handler.pushBlob").Msg("empty blob value in push request")
		http.Error(w, "empty blob value", http.StatusBadRequest)
		return
	}

	blob, err := h.repo.PutBlob(r.Context(), identity, request.Meta, request.Value, request.PreviousHash)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushBlob").Msg("error storing blob")
		http.Error(w, "error storing blob", statusFromError(err))
		return
	}

	writeBlobResponse(w, r, blob)
}

// resetBlob unconditionally clears the caller's blob and answers with the
// fresh empty state.
func (h *Handler) resetBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.resetBlob").Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	blob, err := h.repo.ResetBlob(r.Context(), identity)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resetBlob").Msg("error resetting blob")
		http.Error(w, "error resetting blob", statusFromError(err))
		return
	}

	writeBlobResponse(w, r, blob)
}

func writeBlobResponse(w http.ResponseWriter, r *http.Request, blob models.Blob) {
	w.Header().Set("Content-Type", "application/json")

	response := models.BlobResponse{
		Meta:  blob.Meta,
		Value: blob.Value,
		Hash:  blob.Hash,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeBlobResponse").Msg("error encoding blob response")
	}
}
