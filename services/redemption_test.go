package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionStoreRoundTrip(t *testing.T) {
	rs := newTestRedemption(t)
	ctx := context.Background()

	got, err := rs.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	require.NoError(t, rs.Set(ctx, 7, 120))
	got, err = rs.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(120), got)

	// markers are per user
	got, err = rs.Get(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	require.NoError(t, rs.Clear(ctx, 7))
	got, err = rs.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}

func TestMaxRedeemablePoints(t *testing.T) {
	cases := []struct {
		name    string
		balance int64
		total   int64
		want    int64
	}{
		{"balance below cap", 120, 2500, 120},
		{"balance above cap", 500, 2500, 250},
		{"exact cover", 500, 5000, 500},
		{"empty cart", 500, 0, 0},
		{"no points", 0, 5000, 0},
		{"sub-dime cart", 42, 9, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, maxRedeemablePoints(tc.balance, tc.total))
		})
	}
}
