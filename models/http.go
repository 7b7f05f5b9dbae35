package models

// PushBlobRequest is the body of a conditional blob write. PreviousHash empty
// means "unconditional first write": the server accepts it only when no blob
// exists yet for the identity.
type PushBlobRequest struct {
	Meta         []byte `json:"meta"`
	Value        []byte `json:"value"`
	PreviousHash string `json:"previous_hash,omitempty"`
}

// BlobResponse is returned by every blob endpoint. On push the server echoes
// the accepted meta/value bytes verbatim so the client can verify them; on
// reset both are empty and only Hash carries the fresh version token.
type BlobResponse struct {
	Meta  []byte `json:"meta"`
	Value []byte `json:"value"`
	Hash  string `json:"hash"`
}
