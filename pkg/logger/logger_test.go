package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-ledger/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.FromWriter(&buf).Component("alert_engine")
	log.Info().Str("alert_type", "LOW_STOCK").Msg("alerta creada")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "alert_engine", line["component"])
	assert.Equal(t, "LOW_STOCK", line["alert_type"])
	assert.Equal(t, "alerta creada", line["message"])
}

func TestComponent_LoggerNil(t *testing.T) {
	var log *logger.Logger
	assert.NotPanics(t, func() {
		log.Component("x").Info().Msg("descartado")
	})
}
