package prover

import (
	"time"

	"github.com/consensys/gnark/logger"
)

// Stage times one named step of the pipeline (a circuit build, a prove
// call, a verify call) and logs it at debug level via gnark's own logger
// package -- a thin zerolog wrapper -- mirroring the
// logger.Logger().With()...Logger() / log.Debug().Dur("took", ...).Msg(...)
// pattern the reference r1cs solver uses around its own timed sections.
// Per spec.md §7, this logging is structured and debug-level only, never
// user-facing; errors are still returned normally to the caller.
func Stage(kind Kind, step string, fn func() error) error {
	log := logger.Logger().With().Str("kind", string(kind)).Str("step", step).Logger()
	start := time.Now()
	err := fn()
	if err != nil {
		log.Debug().Err(err).Dur("took", time.Since(start)).Msg("stage failed")
		return err
	}
	log.Debug().Dur("took", time.Since(start)).Msg("stage done")
	return nil
}
