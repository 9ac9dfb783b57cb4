package audit_repo

import (
	"context"
	"time"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table = "audit_log"

	colID        = "id"
	colAccountID = "account_id"
	colAction    = "action"
	colDetails   = "details"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewAuditRepository(dbc *pgxpool.Pool) repository.AuditRepository {
	return &repo{
		dbc: dbc,
	}
}

// Append - добавляет запись аудита и обрезает журнал аккаунта
// до model.MaxAuditEntries последних записей
func (r *repo) Append(ctx context.Context, accountID int, action, details string) error {
	// Формируем запрос на вставку
	query := sq.Insert(table).
		Columns(colID, colAccountID, colAction, colDetails, colCreatedAt).
		Values(uuid.NewString(), accountID, action, details, time.Now()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Удаляем все, что вышло за предел вместимости журнала
	trimQuery := sq.Delete(table).
		Where(sq.Eq{colAccountID: accountID}).
		Where(sq.Expr(
			colID+" NOT IN (SELECT "+colID+" FROM "+table+
				" WHERE "+colAccountID+" = ? ORDER BY "+colCreatedAt+" DESC LIMIT ?)",
			accountID, model.MaxAuditEntries,
		)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = trimQuery.ToSql()
	if err != nil {
		return err
	}

	_, err = r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// List - возвращает записи аудита аккаунта, новые первыми
func (r *repo) List(ctx context.Context, accountID int, limit int) ([]model.AuditEntry, error) {
	if limit <= 0 || limit > model.MaxAuditEntries {
		limit = model.MaxAuditEntries
	}

	// Формируем запрос
	query := sq.Select(colID, colAccountID, colAction, colDetails, colCreatedAt).
		From(table).
		Where(sq.Eq{colAccountID: accountID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.AuditEntry
	for rows.Next() {
		var entry model.AuditEntry
		if err := rows.Scan(&entry.ID, &entry.AccountID, &entry.Action, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
