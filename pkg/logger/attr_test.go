package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestFormAttrs(t *testing.T) {
	assert.Equal(t, "form", logger.Form("signup").Key)
	assert.Equal(t, "signup", logger.Form("signup").Value.String())
	assert.Equal(t, "field", logger.Field("email").Key)
	assert.Equal(t, "instance_id", logger.Instance("abc").Key)
	assert.True(t, logger.Instance(nil).Equal(slog.Attr{}))
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "component", logger.Component("signup").Key)
	assert.Equal(t, "event", logger.Event("blur").Key)
}
