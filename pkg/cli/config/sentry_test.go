package config_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/reldash/pkg/cli/config"
	"github.com/m-mizutani/reldash/pkg/utils/logging"
)

func TestSentry_ConfigureDisabled(t *testing.T) {
	cfg := &config.Sentry{}
	flush, err := cfg.Configure(context.Background())
	gt.NoError(t, err)
	flush()
}

func TestSentry_ConfigureInvalidDSN(t *testing.T) {
	cfg := &config.Sentry{DSN: "not a dsn"}
	_, err := cfg.Configure(context.Background())
	gt.Error(t, err)
}

func TestSentry_Flags(t *testing.T) {
	cfg := &config.Sentry{}
	gt.A(t, cfg.Flags()).Length(2)
}

func TestSentry_ConfigureRedactsDSN(t *testing.T) {
	var buf bytes.Buffer
	logger, err := (&config.Logger{Level: "info", JSON: true, Output: &buf}).Configure()
	gt.NoError(t, err)
	ctx := logging.With(context.Background(), logger)

	flush, err := (&config.Sentry{DSN: testDSN, Env: "staging"}).Configure(ctx)
	gt.NoError(t, err)
	flush()

	out := buf.String()
	gt.S(t, out).Contains("Sentry is enabled")
	gt.S(t, out).Contains("staging")
	gt.B(t, strings.Contains(out, "0123456789abcdef")).False()
}
