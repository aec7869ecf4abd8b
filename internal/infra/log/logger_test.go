package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"bvs/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, slog.LevelInfo, false)

	logger.Debug("hidden")
	logger.Info("agreement created", slog.String("agreementID", "a-1"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "agreement created", entry["msg"])
	assert.Equal(t, "a-1", entry["agreementID"])
}

func TestNewRotator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bvs.log")
	rotator := newRotator(config.LogFile{Path: path, MaxSizeMB: 5, MaxBackups: 2, MaxAgeDays: 3, Compress: true})
	t.Cleanup(func() { _ = rotator.Close() })

	_, err := rotator.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, 5, rotator.MaxSize)
}
