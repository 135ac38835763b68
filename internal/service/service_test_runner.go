package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/meow/internal/app"
	"github.com/MKhiriev/meow/internal/logger"
)

// selfCheckSteps are the named steps announced by the test runner.
var selfCheckSteps = []string{
	"config validation",
	"filesystem check",
}

type testRunner struct {
	out io.Writer

	logger *logger.Logger
}

func NewTestRunner(out io.Writer, logger *logger.Logger) TestRunner {
	return &testRunner{
		out:    out,
		logger: logger,
	}
}

// RunTests announces each self-check step and reports the result.
//
// The steps are placeholders: nothing is executed and the failure count
// stays at zero, so the run always succeeds. With debug set, the start and
// every step are logged at debug level regardless of the configured
// verbosity.
func (r *testRunner) RunTests(ctx context.Context, debug bool) error {
	log := r.logger
	if debug {
		log = log.WithDebug()
		log.Debug().Msg("starting tests")
	}

	var failed uint32
	for i, step := range selfCheckSteps {
		if debug {
			log.Debug().Int("test", i+1).Msgf("running test: %s", step)
		}
	}

	if failed > 0 {
		return app.TestFailed(app.MsgSomeTestsFailed, failed)
	}

	fmt.Fprintln(r.out, app.MsgAllTestsPassed)
	return nil
}
