package service

import "errors"

var (
	// ErrEmptyRecipients is returned when the resolved recipient public-key
	// set is empty. Checked before any network call.
	ErrEmptyRecipients = errors.New("recipient public key set is empty")

	// ErrTamperedServerResponse is returned when a push response does not
	// echo the pushed bytes, or a reset response is non-empty.
	ErrTamperedServerResponse = errors.New("tampered server response")

	// ErrCloudStorageOutOfSync is returned by cache operations attempted
	// before any successful sync.
	ErrCloudStorageOutOfSync = errors.New("cloud storage is out of sync")

	// ErrEntryNotFound is returned when a named entry is absent from the
	// local snapshot.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrEntryAlreadyExists is returned by store operations when the name is
	// already taken; in-place modification is reserved for Update.
	ErrEntryAlreadyExists = errors.New("entry already exists")

	// ErrInvalidEntry is returned when an entry request is malformed
	// (e.g. an empty name).
	ErrInvalidEntry = errors.New("invalid entry provided")
)
