package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	syncRunsTable = "sync_runs sr"
)

type SyncRunRepository interface {
	Save(run *domain.SyncRun) error
	Update(run *domain.SyncRun) error
	ListRecent(limit uint64) ([]*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn *postgres.Connection
}

func NewSyncRunRepository(conn *postgres.Connection) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) Save(run *domain.SyncRun) error {
	query := squirrel.StatementBuilder.
		Insert("sync_runs").
		Columns("id", "job", "period_key", "status", "records", "error", "started_at", "finished_at").
		Values(
			run.ID,
			run.Job,
			run.PeriodKey,
			run.Status,
			run.Records,
			run.Error,
			run.StartedAt,
			run.FinishedAt,
		).
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

func (r *syncRunRepository) Update(run *domain.SyncRun) error {
	query, args, err := squirrel.StatementBuilder.
		Update("sync_runs").
		Set("status", run.Status).
		Set("records", run.Records).
		Set("error", run.Error).
		Set("finished_at", run.FinishedAt).
		Where(squirrel.Eq{"id": run.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *syncRunRepository) ListRecent(limit uint64) ([]*domain.SyncRun, error) {
	query, args, err := squirrel.
		Select("sr.id, sr.job, sr.period_key, sr.status, sr.records, sr.error, sr.started_at, sr.finished_at").
		From(syncRunsTable).
		OrderBy("sr.started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.SyncRun, 0)
	for rows.Next() {
		run := &domain.SyncRun{}
		err := rows.Scan(
			&run.ID,
			&run.Job,
			&run.PeriodKey,
			&run.Status,
			&run.Records,
			&run.Error,
			&run.StartedAt,
			&run.FinishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sync run: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}
