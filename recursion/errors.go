package recursion

import "errors"

var (
	// ErrConfigMismatch is spec error kind 4: the prover and a recursive
	// verifier built their circuits under incompatible configurations
	// (wire counts, ZK toggle). Fatal.
	ErrConfigMismatch = errors.New("battlezip: recursive verifier and prover built under incompatible configs")

	// ErrRecursiveVerificationFailed is error kind 2: a supplied sub-proof
	// does not verify against its claimed verifying key. Fatal; do not
	// retry.
	ErrRecursiveVerificationFailed = errors.New("battlezip: recursive verification failed")
)
