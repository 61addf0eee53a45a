package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "prod"} {
		t.Run(env, func(t *testing.T) {
			l, err := New("predictor-api", env)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.Equal(t, env == "local", l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
