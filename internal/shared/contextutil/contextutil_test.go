package contextutil_test

import (
	"context"
	"testing"

	"clarityflow/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "", contextutil.GetRequestID(context.Background()))
}

func TestUserIDRoundTrip(t *testing.T) {
	ctx := contextutil.WithUserID(context.Background(), "u-1")
	assert.Equal(t, "u-1", contextutil.GetUserID(ctx))
	assert.Equal(t, "", contextutil.GetUserID(context.Background()))
}

func TestGetLoggerFallbacks(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	fallback := zap.NewNop().Named("fallback")

	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))

	// Tanpa logger di context, fallback yang dipakai.
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))

	// Tanpa fallback pun tidak boleh nil supaya caller tidak panic.
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}
