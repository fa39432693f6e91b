package voice

import (
	"context"
	"testing"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_ReturnsLocalizedTerm(t *testing.T) {
	ctx := context.Background()

	got, err := Simulate(ctx, domain.LangRU, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "смартфон", got)

	got, err = Simulate(ctx, domain.LangEN, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "smartphone", got)
}

func TestSimulate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, domain.LangRU, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}
