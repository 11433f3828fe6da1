package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/application/backup"
)

var _ backup.CloudBackup = (*HTTPBackup)(nil)

// HTTPBackup empuja y recupera snapshots JSON contra un endpoint de respaldo
// remoto autenticado por API key.
type HTTPBackup struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPBackup(endpoint, apiKey string) *HTTPBackup {
	return &HTTPBackup{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// Push envía el snapshot completo por POST.
func (b *HTTPBackup) Push(ctx context.Context, snapshot *backup.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push snapshot: estado %d", resp.StatusCode)
	}
	return nil
}

// Pull recupera el último snapshot remoto.
func (b *HTTPBackup) Pull(ctx context.Context) (*backup.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build pull request: %w", err)
	}
	req.Header.Set("X-API-Key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pull snapshot: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pull snapshot: estado %d", resp.StatusCode)
	}
	var snapshot backup.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}
