package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	snapshotsTable = "snapshots s"
)

type SnapshotRepository interface {
	Get(resource, periodKey string) (*domain.SnapshotEntry, error)
	SaveOrUpdate(entry *domain.SnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Get(resource, periodKey string) (*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("s.id, s.resource, s.period_key, s.payload, s.fetched_at, s.created_at, s.updated_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"s.resource": resource, "s.period_key": periodKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

func (r *snapshotRepository) SaveOrUpdate(entry *domain.SnapshotEntry) error {
	query := squirrel.StatementBuilder.
		Insert("snapshots").
		Columns("resource", "period_key", "payload", "fetched_at").
		Values(
			entry.Resource,
			entry.PeriodKey,
			[]byte(entry.Payload),
			entry.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (resource, period_key) DO UPDATE SET
				payload = EXCLUDED.payload,
				fetched_at = EXCLUDED.fetched_at,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("snapshots").
		Where(squirrel.Lt{"fetched_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *snapshotRepository) scanSnapshot(row *sql.Row) (*domain.SnapshotEntry, error) {
	entry := &domain.SnapshotEntry{}
	var payload []byte

	err := row.Scan(
		&entry.ID,
		&entry.Resource,
		&entry.PeriodKey,
		&payload,
		&entry.FetchedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Payload = payload

	return entry, nil
}
