package account_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table = "accounts"

	colID             = "id"
	colUsername       = "username"
	colPasswordHash   = "password_hash"
	colRegularBalance = "regular_balance"
	colPremiumBalance = "premium_balance"
	colVIPStatus      = "vip_status"
	colVIPExpiry      = "vip_expiry"
	colOpenedCases    = "opened_cases"
	colIsBanned       = "is_banned"
	colBanReason      = "ban_reason"
	colBanExpiry      = "ban_expiry"
	colIsMuted        = "is_muted"
	colMuteReason     = "mute_reason"
	colMuteExpiry     = "mute_expiry"
	colVIPStash       = "vip_stash"
	colVIPHistory     = "vip_activation_history"
	colCreatedAt      = "created_at"
	colLastLogin      = "last_login"
)

var allColumns = []string{
	colID, colUsername, colPasswordHash,
	colRegularBalance, colPremiumBalance,
	colVIPStatus, colVIPExpiry, colOpenedCases,
	colIsBanned, colBanReason, colBanExpiry,
	colIsMuted, colMuteReason, colMuteExpiry,
	colVIPStash, colVIPHistory,
	colCreatedAt, colLastLogin,
}

type repo struct {
	dbc *pgxpool.Pool
}

func NewAccountRepository(dbc *pgxpool.Pool) repository.AccountRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateAccount - создает новый аккаунт в БД.
// Возвращает ID созданного аккаунта
func (r *repo) CreateAccount(ctx context.Context, account *model.Account) (int, error) {
	stashJSON, historyJSON, err := marshalVipState(account)
	if err != nil {
		return 0, err
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUsername, colPasswordHash,
			colRegularBalance, colPremiumBalance,
			colVIPStatus, colVIPExpiry, colOpenedCases,
			colIsBanned, colBanReason, colBanExpiry,
			colIsMuted, colMuteReason, colMuteExpiry,
			colVIPStash, colVIPHistory,
			colCreatedAt, colLastLogin).
		Values(account.Username, account.PasswordHash,
			account.RegularBalance, account.PremiumBalance,
			string(account.Status), account.VIPExpiry, account.OpenedCases,
			account.IsBanned, account.BanReason, account.BanExpiry,
			account.IsMuted, account.MuteReason, account.MuteExpiry,
			stashJSON, historyJSON,
			account.CreatedAt, account.LastLogin).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetAccount - возвращает аккаунт по его ID
func (r *repo) GetAccount(ctx context.Context, id int) (*model.Account, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.getOne(ctx, query)
}

// GetAccountByUsername - возвращает аккаунт по имени пользователя
func (r *repo) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	// Формируем запрос
	query := sq.Select(allColumns...).
		From(table).
		Where(sq.Expr("LOWER("+colUsername+") = LOWER(?)", username)).
		PlaceholderFormat(sq.Dollar)

	return r.getOne(ctx, query)
}

// UpdateAccount - сохраняет все изменяемые поля аккаунта
func (r *repo) UpdateAccount(ctx context.Context, account *model.Account) error {
	stashJSON, historyJSON, err := marshalVipState(account)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Update(table).
		Set(colUsername, account.Username).
		Set(colPasswordHash, account.PasswordHash).
		Set(colRegularBalance, account.RegularBalance).
		Set(colPremiumBalance, account.PremiumBalance).
		Set(colVIPStatus, string(account.Status)).
		Set(colVIPExpiry, account.VIPExpiry).
		Set(colOpenedCases, account.OpenedCases).
		Set(colIsBanned, account.IsBanned).
		Set(colBanReason, account.BanReason).
		Set(colBanExpiry, account.BanExpiry).
		Set(colIsMuted, account.IsMuted).
		Set(colMuteReason, account.MuteReason).
		Set(colMuteExpiry, account.MuteExpiry).
		Set(colVIPStash, stashJSON).
		Set(colVIPHistory, historyJSON).
		Set(colLastLogin, account.LastLogin).
		Where(sq.Eq{colID: account.ID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.dbc.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}

// ListAccountIDs - возвращает ID всех аккаунтов для обхода свипером
func (r *repo) ListAccountIDs(ctx context.Context) ([]int, error) {
	// Формируем запрос
	query := sq.Select(colID).
		From(table).
		OrderBy(colID).
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

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *repo) getOne(ctx context.Context, query sq.SelectBuilder) (*model.Account, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		account     model.Account
		status      string
		stashJSON   []byte
		historyJSON []byte
	)
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(
		&account.ID, &account.Username, &account.PasswordHash,
		&account.RegularBalance, &account.PremiumBalance,
		&status, &account.VIPExpiry, &account.OpenedCases,
		&account.IsBanned, &account.BanReason, &account.BanExpiry,
		&account.IsMuted, &account.MuteReason, &account.MuteExpiry,
		&stashJSON, &historyJSON,
		&account.CreatedAt, &account.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	account.Status = model.VIPStatus(status)
	if err := json.Unmarshal(stashJSON, &account.VipStash); err != nil {
		return nil, fmt.Errorf("invalid vip stash data: %w", err)
	}
	if err := json.Unmarshal(historyJSON, &account.VipActivationHistory); err != nil {
		return nil, fmt.Errorf("invalid vip history data: %w", err)
	}

	return &account, nil
}

// marshalVipState сериализует запас и историю активаций для jsonb колонок
func marshalVipState(account *model.Account) ([]byte, []byte, error) {
	stash := account.VipStash
	if stash == nil {
		stash = []model.VipStashItem{}
	}
	history := account.VipActivationHistory
	if history == nil {
		history = []model.VipActivationEntry{}
	}

	stashJSON, err := json.Marshal(stash)
	if err != nil {
		return nil, nil, err
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, nil, err
	}
	return stashJSON, historyJSON, nil
}
