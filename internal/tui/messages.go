package tui

import (
	"github.com/MKhiriev/go-cloud-vault/internal/service"
	"github.com/MKhiriev/go-cloud-vault/models"
)

type vaultOpenedMsg struct {
	cache service.EntryCache
	err   error
}

type entriesLoadedMsg struct {
	entries []models.Entry
	err     error
}

type syncDoneMsg struct {
	err error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type rotateDoneMsg struct {
	err error
}
