package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "console info", cfg: Config{Level: "info", Format: "console"}},
		{name: "json warn", cfg: Config{Level: "warn", Format: "json"}},
		{name: "debug uses development config", cfg: Config{Level: "debug", Format: "console"}},
		{name: "unknown level falls back to info", cfg: Config{Level: "bogus", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}
