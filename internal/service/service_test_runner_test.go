package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/meow/internal/app"
	"github.com/MKhiriev/meow/internal/logger"
	"github.com/MKhiriev/meow/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTests_AlwaysPasses(t *testing.T) {
	for _, debug := range []bool{false, true} {
		var out bytes.Buffer
		r := NewTestRunner(&out, logger.Nop())

		err := r.RunTests(context.Background(), debug)

		require.NoError(t, err, "debug=%v", debug)
		assert.Equal(t, app.MsgAllTestsPassed+"\n", out.String())
	}
}

func TestRunTests_DebugLogsSteps(t *testing.T) {
	var out, diag bytes.Buffer
	// verbosity 0: debug entries appear only because of the debug flag
	r := NewTestRunner(&out, logger.NewLogger("test", "run", &diag, 0))

	require.NoError(t, r.RunTests(context.Background(), true))

	logs := diag.String()
	assert.Contains(t, logs, "starting tests")
	assert.Contains(t, logs, "running test: config validation")
	assert.Contains(t, logs, "running test: filesystem check")
	assert.NotContains(t, out.String(), "config validation", "diagnostics must not reach stdout")
}

func TestRunTests_NoDebugIsSilent(t *testing.T) {
	var out, diag bytes.Buffer
	r := NewTestRunner(&out, logger.NewLogger("test", "run", &diag, 0))

	require.NoError(t, r.RunTests(context.Background(), false))

	assert.Empty(t, diag.String())
	assert.Equal(t, app.MsgAllTestsPassed+"\n", out.String())
}

func TestNewServices_WiresAll(t *testing.T) {
	var out bytes.Buffer

	services := NewServices(store.NewStorages(), &out, logger.Nop())

	require.NotNil(t, services)
	assert.NotNil(t, services.FileProcessor)
	assert.NotNil(t, services.TestRunner)
}

func TestNewServices_ChildLoggersKeepRunFields(t *testing.T) {
	var out, diag bytes.Buffer
	services := NewServices(store.NewStorages(), &out, logger.NewLogger("meow", "run-42", &diag, 0))

	require.NoError(t, services.TestRunner.RunTests(context.Background(), true))

	logs := diag.String()
	assert.Contains(t, logs, "role=meow")
	assert.Contains(t, logs, "run_id=run-42")
	assert.Contains(t, logs, "running test: config validation")
}
