// Package prover orchestrates the full state-channel pipeline: building and
// caching every circuit kind's common data, scheduling independent builds,
// running the open/increment/close sequence, serializing proof artifacts,
// and logging a timing tree -- the "off-circuit helpers" and "shared state"
// spec.md §5 and §6 describe, sitting above circuits/board, circuits/shot
// and circuits/channel.
package prover

import (
	"github.com/nume-crypto/battlezip/circuits/board"
	"github.com/nume-crypto/battlezip/circuits/channel"
	"github.com/nume-crypto/battlezip/circuits/shot"
	"github.com/nume-crypto/battlezip/gadgets"
	"github.com/nume-crypto/battlezip/recursion"
)

// Kind names one of the eight circuit shapes common data may be cached
// under (spec.md §5's "Shared state" list, with ChannelIncrement split into
// its first-increment and later-increment forms).
type Kind string

const (
	KindBoardInner        Kind = "board.inner"
	KindBoardOuter        Kind = "board.outer"
	KindShotInner         Kind = "shot.inner"
	KindShotOuter         Kind = "shot.outer"
	KindChannelOpen       Kind = "channel.open"
	KindChannelOpenIncr   Kind = "channel.open_increment"
	KindChannelIncrement  Kind = "channel.increment"
	KindChannelClose      Kind = "channel.close"
)

// Cache holds every circuit kind's CommonData for one game, built once via
// Build and shared read-only by every Prove* call for the life of that
// game -- spec.md §5: "a deterministic function of the circuit layout and
// may be cached and shared across provers for the same game".
type Cache struct {
	Board   *board.Circuit
	Shot    *shot.Circuit
	Open    *recursion.CommonData
	OpenIncr *recursion.CommonData
	Incr    *recursion.CommonData
	Close   *recursion.CommonData
}

// Get returns the CommonData registered under kind, or nil if it has not
// been built yet.
func (c *Cache) Get(kind Kind) *recursion.CommonData {
	if (kind == KindBoardInner || kind == KindBoardOuter) && c.Board == nil ||
		(kind == KindShotInner || kind == KindShotOuter) && c.Shot == nil {
		return nil
	}
	switch kind {
	case KindBoardInner:
		return c.Board.Inner
	case KindBoardOuter:
		return c.Board.Outer
	case KindShotInner:
		return c.Shot.Inner
	case KindShotOuter:
		return c.Shot.Outer
	case KindChannelOpen:
		return c.Open
	case KindChannelOpenIncr:
		return c.OpenIncr
	case KindChannelIncrement:
		return c.Incr
	case KindChannelClose:
		return c.Close
	default:
		return nil
	}
}

// gadgetsConfigFor reports the Config a given circuit kind is built under;
// every channel-layer circuit (Open/Increment/Close) uses the outer
// (ZK-blinded, standard-width) config since they only recursively verify
// already-ZK-blinded board/shot proofs and never perform random access
// themselves.
func gadgetsConfigFor(kind Kind) gadgets.Config {
	switch kind {
	case KindBoardInner, KindShotInner:
		return gadgets.InnerConfig()
	default:
		return gadgets.OuterConfig()
	}
}
