package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/common"
)

const DEFAULT_REMOTE_TIMEOUT = 10 * time.Second

// RemoteConnector talks to another explorer server's /api/storage endpoints, so several explorer
// processes can share one server backend.
type RemoteConnector struct {
	baseURL string
	client  *http.Client
}

type saveMetadataRequest struct {
	ABI  json.RawMessage `json:"abi"`
	Name string          `json:"name"`
}

func NewRemoteConnector(cfg *config.RemoteConfig) (*RemoteConnector, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("remote storage url is not set")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid remote storage url: %w", err)
	}
	timeout := DEFAULT_REMOTE_TIMEOUT
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Millisecond
	}
	return &RemoteConnector{
		baseURL: strings.TrimRight(cfg.URL, "/") + "/api/storage",
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (r *RemoteConnector) GetMetadata(ctx context.Context, address string) (*common.ContractMetadata, error) {
	var record common.ContractMetadata
	found, err := r.do(ctx, http.MethodGet, "/abis/"+address, nil, &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func (r *RemoteConnector) PutMetadata(ctx context.Context, record *common.ContractMetadata) error {
	_, err := r.do(ctx, http.MethodPost, "/abis/"+record.Address, saveMetadataRequest{ABI: record.ABI, Name: record.Name}, nil)
	return err
}

func (r *RemoteConnector) ListMetadata(ctx context.Context) ([]common.ContractMetadata, error) {
	records := []common.ContractMetadata{}
	if _, err := r.do(ctx, http.MethodGet, "/contracts/verified", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *RemoteConnector) ClearMetadata(ctx context.Context) error {
	_, err := r.do(ctx, http.MethodPost, "/clear", nil, nil)
	return err
}

func (r *RemoteConnector) Close() error {
	r.client.CloseIdleConnections()
	return nil
}

// do performs one request. A 404 reports found=false without error.
func (r *RemoteConnector) do(ctx context.Context, method string, path string, body interface{}, out interface{}) (found bool, err error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return false, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("remote storage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return false, fmt.Errorf("remote storage %s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(message)))
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("failed to decode remote storage response: %w", err)
		}
	}
	return true, nil
}
