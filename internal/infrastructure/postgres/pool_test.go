package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/pkg/logger"
)

func TestTraceLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, traceLevel("debug"))
	assert.Equal(t, tracelog.LogLevelNone, traceLevel("none"))
	assert.Equal(t, tracelog.LogLevelWarn, traceLevel(""))
	assert.Equal(t, tracelog.LogLevelWarn, traceLevel("ruido"))
}

func TestQueryLogger_EscribeEnZerolog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf})

	queryLogger(log).Log(context.Background(), tracelog.LogLevelWarn, "Query", map[string]any{
		"sql": "SELECT 1",
	})

	var ev map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev))
	assert.Equal(t, "warn", ev["level"])
	assert.Equal(t, "pgx", ev["component"])
	assert.Equal(t, "SELECT 1", ev["sql"])
	assert.Equal(t, "Query", ev["message"])
}
