// Command battlezip-demo exercises the full open -> increments -> close
// pipeline against spec.md scenario D's fixed boards and hit sequence. It
// is an ambient demo entrypoint, not part of the core: none of the
// teacher's own packages ship a cmd/, but std/backend are plainly meant to
// be driven by one, and this is what drives circuits/board, circuits/shot,
// circuits/channel and prover end to end outside of a test binary.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/google/pprof/profile"

	"github.com/nume-crypto/battlezip/battleship"
	"github.com/nume-crypto/battlezip/prover"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "battlezip-demo:", err)
		os.Exit(1)
	}
}

// startProfiling begins a CPU profile captured via runtime/pprof (the
// stdlib side that can actually sample a running process) into an
// in-memory buffer. The returned stop func parses the captured bytes with
// google/pprof's own profile.Parse -- the format decoder the pack's
// go.mod already depends on -- and writes the result to path, reporting
// sample and duration totals instead of leaving the profile opaque.
func startProfiling(path string) (stop func() error, err error) {
	var buf bytes.Buffer
	if err := pprof.StartCPUProfile(&buf); err != nil {
		return nil, fmt.Errorf("starting pprof: %w", err)
	}
	return func() error {
		pprof.StopCPUProfile()
		p, err := profile.Parse(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return fmt.Errorf("parsing captured profile: %w", err)
		}
		fmt.Printf("captured %d samples over %v\n", len(p.Sample), p.DurationNanos)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating pprof output: %w", err)
		}
		defer f.Close()
		return p.Write(f)
	}, nil
}

func run() error {
	pprofPath := flag.String("pprof", "", "write a CPU profile of the prove pipeline to this path")
	flag.Parse()

	if *pprofPath != "" {
		stop, err := startProfiling(*pprofPath)
		if err != nil {
			return err
		}
		defer func() {
			if stopErr := stop(); stopErr != nil {
				fmt.Fprintln(os.Stderr, "battlezip-demo: writing profile:", stopErr)
			}
		}()
	}

	host := battleship.NewBoard(
		battleship.NewShip(3, 4, false, battleship.CarrierLength),
		battleship.NewShip(9, 6, true, battleship.BattleshipLength),
		battleship.NewShip(0, 0, false, battleship.CruiserLength),
		battleship.NewShip(0, 6, false, battleship.SubmarineLength),
		battleship.NewShip(6, 1, true, battleship.DestroyerLength),
	)
	guest := battleship.NewBoard(
		battleship.NewShip(3, 3, true, battleship.CarrierLength),
		battleship.NewShip(5, 4, false, battleship.BattleshipLength),
		battleship.NewShip(0, 1, false, battleship.CruiserLength),
		battleship.NewShip(0, 5, true, battleship.SubmarineLength),
		battleship.NewShip(6, 1, false, battleship.DestroyerLength),
	)

	fmt.Println("host board:")
	fmt.Print(host.String())
	fmt.Println("guest board:")
	fmt.Print(guest.String())

	fmt.Println("compiling circuits and running trusted setup...")
	cache, err := prover.Build()
	if err != nil {
		return fmt.Errorf("building common data: %w", err)
	}

	game := prover.NewGame(cache, host, guest)

	hits := [][2]uint8{
		{0, 0}, {1, 0}, {2, 0}, {6, 1}, {6, 2},
		{3, 4}, {4, 4}, {5, 4}, {6, 4}, {7, 4},
		{0, 6}, {1, 6}, {2, 6}, {9, 6}, {9, 7}, {9, 8}, {9, 9},
	}

	fmt.Println("opening channel...")
	if err := game.Open(hits[0][0], hits[0][1]); err != nil {
		return fmt.Errorf("open: %w", err)
	}

	// Every increment flips the targeted board, so each host-board hit is
	// followed by a shot at guestMiss, an empty cell of the guest board.
	guestMiss := [2]uint8{9, 0}
	for i := 1; i < len(hits); i++ {
		fmt.Printf("hit %d/%d...\n", i, len(hits))
		if err := game.Increment(guestMiss[0], guestMiss[1]); err != nil {
			return fmt.Errorf("increment %d: %w", 2*i-1, err)
		}
		if err := game.Increment(hits[i][0], hits[i][1]); err != nil {
			return fmt.Errorf("increment %d: %w", 2*i, err)
		}
	}
	if err := game.Increment(0, 0); err != nil {
		return fmt.Errorf("final increment: %w", err)
	}

	fmt.Println("closing channel...")
	out, err := game.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	fmt.Printf("winner commitment: %v\n", out.WinnerCommitment)
	fmt.Printf("loser commitment:  %v\n", out.LoserCommitment)
	return nil
}
