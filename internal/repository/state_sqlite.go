package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type sqliteState struct {
	conn *sql.DB
}

// NewSQLiteStateRepository - expects the board_state table created by storage.Storage.Init.
func NewSQLiteStateRepository(conn *sql.DB) StateRepository {
	return &sqliteState{
		conn: conn,
	}
}

func (that *sqliteState) Load(ctx context.Context) (string, error) {
	query := `SELECT cells FROM board_state WHERE id = 1`

	var cells string

	err := that.conn.QueryRowContext(ctx, query).Scan(&cells)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperror.ErrStateNotFound
	}
	if err != nil {
		return "", fmt.Errorf("can't load state: %w", err)
	}

	return cells, nil
}

func (that *sqliteState) Save(ctx context.Context, state string) error {
	query := `INSERT INTO board_state (id, cells, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET cells = excluded.cells, updated_at = excluded.updated_at`

	_, err := that.conn.ExecContext(ctx, query, state, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("can't save state: %w", err)
	}

	return nil
}
