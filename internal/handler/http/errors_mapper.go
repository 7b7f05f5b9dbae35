package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cloud-vault/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrVersionConflict: http.StatusConflict,
	store.ErrBlobNotSaved:    http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
