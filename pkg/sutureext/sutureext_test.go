package sutureext

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thejerf/suture/v4"
)

func TestSanitizeError(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, SanitizeError(ctx, nil))

	errBoom := errors.New("boom")
	assert.Equal(t, errBoom, SanitizeError(ctx, errBoom))

	err := SanitizeError(ctx, fmt.Errorf("read: %w", context.Canceled))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, context.Canceled)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, SanitizeError(canceled, errBoom), context.Canceled)
}

func TestIsShutdown(t *testing.T) {
	assert.True(t, IsShutdown(nil))
	assert.True(t, IsShutdown(context.Canceled))
	assert.True(t, IsShutdown(fmt.Errorf("quit: %w", suture.ErrTerminateSupervisorTree)))
	assert.False(t, IsShutdown(errors.New("boom")))
}
