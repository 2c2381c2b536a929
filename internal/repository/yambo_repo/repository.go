package yambo_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yambo_backend/internal/model"
	"yambo_backend/internal/repository"
	repoModel "yambo_backend/internal/repository/yambo_repo/model"
)

const (
	table        = "yambo_game_state"
	colUserID    = "user_id"
	colDice      = "dice"
	colHolds     = "holds"
	colRollCount = "roll_count"
	colMaxRolls  = "max_rolls"
	colCells     = "cells"
	colScratched = "scratched"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewYamboRepository(dbc *pgxpool.Pool) repository.YamboRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetGameState loads the player's persisted table.
// Returns nil without error when the player has no game yet.
func (r *repo) GetGameState(ctx context.Context, userID int) (*model.GameState, error) {
	query := sq.Select(colDice, colHolds, colRollCount, colMaxRolls, colCells, colScratched).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stored repoModel.GameState
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(
		&stored.Dice,
		&stored.Holds,
		&stored.RollCount,
		&stored.MaxRolls,
		&stored.Cells,
		&stored.Scratched,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return stored.ToDomain()
}

// UpsertGameState writes the player's table, inserting the row on first
// save when the update does not match.
func (r *repo) UpsertGameState(ctx context.Context, userID int, state model.GameState) error {
	stored, err := repoModel.FromDomain(state)
	if err != nil {
		return err
	}

	query := sq.Update(table).
		Set(colDice, stored.Dice).
		Set(colHolds, stored.Holds).
		Set(colRollCount, stored.RollCount).
		Set(colMaxRolls, stored.MaxRolls).
		Set(colCells, stored.Cells).
		Set(colScratched, stored.Scratched).
		Where(sq.Eq{colUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return r.insert(ctx, userID, stored, "")
	}
	return nil
}

// CreateGameState inserts a fresh table for the player, keeping any
// existing row untouched.
func (r *repo) CreateGameState(ctx context.Context, userID int, state model.GameState) error {
	stored, err := repoModel.FromDomain(state)
	if err != nil {
		return err
	}
	return r.insert(ctx, userID, stored, "ON CONFLICT ("+colUserID+") DO NOTHING")
}

func (r *repo) insert(ctx context.Context, userID int, stored *repoModel.GameState, suffix string) error {
	query := sq.Insert(table).
		Columns(colUserID, colDice, colHolds, colRollCount, colMaxRolls, colCells, colScratched).
		Values(userID, stored.Dice, stored.Holds, stored.RollCount, stored.MaxRolls, stored.Cells, stored.Scratched).
		PlaceholderFormat(sq.Dollar)
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}
