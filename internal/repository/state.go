package repository

import (
	"context"
)

// StateRepository keeps the serialized board between runs.
// Load returns apperror.ErrStateNotFound when nothing was saved yet.
type StateRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, state string) error
}
