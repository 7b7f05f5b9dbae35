package models

import "time"

// Entry is a single named secret held in the vault snapshot. Data is an opaque
// payload; Meta is free-form application metadata attached to the entry.
//
// CreatedAt equals UpdatedAt when the entry is first stored; UpdatedAt advances
// on every successful update while CreatedAt never changes.
type Entry struct {
	Name      string            `json:"name"`
	Data      []byte            `json:"data"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// EntryRequest describes one entry to be created by a store operation.
type EntryRequest struct {
	Name string
	Data []byte
	Meta map[string]string
}
