package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/entity"
	"github.com/pr-poehali-dev/stock-management-excel/internal/domain/repository"
)

var _ repository.WriteoffActRepository = (*WriteoffActRepo)(nil)

// WriteoffActRepo implements the write-off act persistence on PostgreSQL.
// Line items live in one JSONB column, order preserved.
type WriteoffActRepo struct {
	q Querier
}

// NewWriteoffActRepository builds the adapter. Pass a pool or a tx.
func NewWriteoffActRepository(q Querier) *WriteoffActRepo {
	return &WriteoffActRepo{q: q}
}

// Create persists an act and fills in the generated id and created_at.
func (r *WriteoffActRepo) Create(ctx context.Context, act *entity.WriteoffAct) error {
	items, err := json.Marshal(act.Items)
	if err != nil {
		return fmt.Errorf("marshal act items: %w", err)
	}
	query := `
		INSERT INTO writeoff_acts (act_number, act_date, responsible_person, reason, items, created_by, is_draft)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err = r.q.QueryRow(ctx, query,
		act.ActNumber, act.ActDate, act.ResponsiblePerson, act.Reason, items, act.CreatedBy, act.IsDraft,
	).Scan(&act.ID, &act.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert writeoff act: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no act matches.
func (r *WriteoffActRepo) GetByID(ctx context.Context, id int64) (*entity.WriteoffAct, error) {
	query := `
		SELECT id, act_number, act_date, responsible_person, reason, items, created_by, is_draft, created_at
		FROM writeoff_acts WHERE id = $1`
	act, err := scanAct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get writeoff act: %w", err)
	}
	return act, nil
}

// List returns all acts ordered by act_date, then created_at, newest first.
func (r *WriteoffActRepo) List(ctx context.Context) ([]*entity.WriteoffAct, error) {
	query := `
		SELECT id, act_number, act_date, responsible_person, reason, items, created_by, is_draft, created_at
		FROM writeoff_acts
		ORDER BY act_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list writeoff acts: %w", err)
	}
	defer rows.Close()
	var list []*entity.WriteoffAct
	for rows.Next() {
		act, err := scanAct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan writeoff act: %w", err)
		}
		list = append(list, act)
	}
	return list, rows.Err()
}

// Delete removes an act by id.
func (r *WriteoffActRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM writeoff_acts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete writeoff act: %w", err)
	}
	return nil
}

func scanAct(row pgx.Row) (*entity.WriteoffAct, error) {
	var a entity.WriteoffAct
	var items []byte
	if err := row.Scan(
		&a.ID, &a.ActNumber, &a.ActDate, &a.ResponsiblePerson, &a.Reason,
		&items, &a.CreatedBy, &a.IsDraft, &a.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &a.Items); err != nil {
			return nil, fmt.Errorf("unmarshal act items: %w", err)
		}
	}
	if a.Items == nil {
		a.Items = []entity.WriteoffActItem{}
	}
	return &a, nil
}
