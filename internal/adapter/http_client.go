package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cloud-vault/models"
)

// HTTPClientConfig configures the HTTP blob store client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRemoteStore struct {
	client *resty.Client
}

// NewHTTPRemoteStore constructs a [RemoteStore] over the blob server's REST
// API. The base URL defaults to localhost and the timeout to 15 seconds.
func NewHTTPRemoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteStore{client: cli}
}

func (h *httpRemoteStore) Push(ctx context.Context, meta, value []byte, previousHash string, token models.Token) (models.EncryptedValue, error) {
	body := models.PushBlobRequest{Meta: meta, Value: value, PreviousHash: previousHash}

	resp, err := h.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/api/blob")
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedValue{}, err
	}

	return decodeBlobResponse(resp.Body())
}

func (h *httpRemoteStore) Pull(ctx context.Context, token models.Token) (models.EncryptedValue, error) {
	resp, err := h.request(ctx, token).Get("/api/blob")
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedValue{}, err
	}

	return decodeBlobResponse(resp.Body())
}

func (h *httpRemoteStore) Reset(ctx context.Context, token models.Token) (models.EncryptedValue, error) {
	resp, err := h.request(ctx, token).Delete("/api/blob")
	if err != nil {
		return models.EncryptedValue{}, fmt.Errorf("reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedValue{}, err
	}

	return decodeBlobResponse(resp.Body())
}

func (h *httpRemoteStore) request(ctx context.Context, token models.Token) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token.String())
}

func decodeBlobResponse(body []byte) (models.EncryptedValue, error) {
	var blob models.BlobResponse
	if err := json.Unmarshal(body, &blob); err != nil {
		return models.EncryptedValue{}, fmt.Errorf("decode blob response: %w", err)
	}
	return models.EncryptedValue{Meta: blob.Meta, Value: blob.Value, Hash: blob.Hash}, nil
}
