package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewTextLogger(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "loading session", "key", "token")
	log.Info(ctx, "signed in", "user_id", "u-1")
	log.Warn(ctx, "stored value unreadable", "key", "token")
	log.Error(ctx, "watch failed", "attempt", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "level=DEBUG")
	assert.Contains(t, lines[1], "user_id=u-1")
	assert.Contains(t, lines[2], "level=WARN")
	assert.Contains(t, lines[3], "attempt=3")
}

func TestJSONLogger_LevelAndWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelInfo).With("module", "grpc_server")
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "Starting gRPC server", "address", ":50051")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), buf.String())
	assert.Equal(t, "Starting gRPC server", rec["msg"])
	assert.Equal(t, "grpc_server", rec["module"])
	assert.Equal(t, ":50051", rec["address"])
}

func TestLogger_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelInfo).With("secret", "k3y")

	log.Info(context.Background(), "sign in",
		"password", "hunter2",
		"Password_Hash", "$argon2id$...",
		slog.Group("req", slog.String("passphrase", "p"), slog.String("email", "bob@example.org")),
	)

	out := buf.String()
	for _, leaked := range []string{"k3y", "hunter2", "$argon2id$", `"p"`} {
		assert.NotContains(t, out, leaked)
	}
	assert.Contains(t, out, "bob@example.org")
	assert.Equal(t, 4, strings.Count(out, Redacted))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().With("module", "x").Error(context.Background(), "dropped", "password", "x")
	})
}
