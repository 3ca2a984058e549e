package narrative

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWithoutAPIKeyDisablesSummaries(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := New(context.Background(), "", "gemini-3-flash-preview", logger)

	text := s.Summarize(context.Background(), "Alisson Becker", nil, ScoutFacts{})
	assert.Equal(t, MsgDisabled, text)
}
