package domain

import (
	"encoding/json"
	"time"
)

// CatalogPeriodKey é a chave de snapshot do catálogo de produtos, que
// não depende de período
const CatalogPeriodKey = "catalog"

// SnapshotEntry representa a carga bruta de um recurso remoto para uma
// janela de período, armazenada como cache com validade limitada.
// Somente registros brutos são armazenados; agregados derivados nunca são.
type SnapshotEntry struct {
	ID        int64           `json:"id"`
	Resource  string          `json:"resource"`
	PeriodKey string          `json:"period_key"`
	Payload   json.RawMessage `json:"payload"`
	FetchedAt time.Time       `json:"fetched_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsFresh indica se o snapshot ainda está dentro da validade
func (s *SnapshotEntry) IsFresh(ttl time.Duration, now time.Time) bool {
	if s == nil {
		return false
	}
	return now.Sub(s.FetchedAt) < ttl
}

// Status possíveis de uma execução de sincronização
const (
	SyncStatusRunning = "running"
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

// SyncRun registra uma execução de sincronização de snapshots, manual ou
// agendada, para auditoria e para o endpoint de status
type SyncRun struct {
	ID         string     `json:"id"`
	Job        string     `json:"job"`
	PeriodKey  string     `json:"period_key"`
	Status     string     `json:"status"`
	Records    int        `json:"records"`
	Error      *string    `json:"error,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}
