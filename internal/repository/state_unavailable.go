package repository

import (
	"context"
	"fmt"
)

type unavailableState struct {
	cause error
}

// NewUnavailableStateRepository - stands in for a backend that could not be opened.
// Every call fails with the original cause, so the game starts fresh and keeps running.
func NewUnavailableStateRepository(cause error) StateRepository {
	return &unavailableState{
		cause: cause,
	}
}

func (that *unavailableState) Load(_ context.Context) (string, error) {
	return "", fmt.Errorf("storage unavailable: %w", that.cause)
}

func (that *unavailableState) Save(_ context.Context, _ string) error {
	return fmt.Errorf("storage unavailable: %w", that.cause)
}
