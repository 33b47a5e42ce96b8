package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const stateFileMode = 0o644

type fileState struct {
	path string
}

// NewFileStateRepository - stores the board as a plain 9 byte file, no trailing newline.
func NewFileStateRepository(path string) StateRepository {
	return &fileState{
		path: path,
	}
}

func (that *fileState) Load(_ context.Context) (string, error) {
	file, err := os.Open(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", apperror.ErrStateNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to open state file: %w", err)
	}
	defer file.Close()

	// read one byte more than needed so an oversized file is noticed by the board parser
	data, err := io.ReadAll(io.LimitReader(file, entity.StateLength+1))
	if err != nil {
		return "", fmt.Errorf("failed to read state file: %w", err)
	}

	return string(data), nil
}

func (that *fileState) Save(_ context.Context, state string) error {
	file, err := os.OpenFile(that.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stateFileMode)
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}

	if _, err = io.WriteString(file, state); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}

	return nil
}
