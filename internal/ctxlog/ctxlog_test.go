package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("hello", "depth", 2)
	assert.Contains(t, buf.String(), "depth=2")

	assert.NotNil(t, FromContext(context.Background()))
	FromContext(context.Background()).Info("dropped")
}
