package prover

import (
	"github.com/nume-crypto/battlezip/circuits/board"
	"github.com/nume-crypto/battlezip/circuits/channel"
	"github.com/nume-crypto/battlezip/circuits/shot"
	"github.com/nume-crypto/battlezip/recursion"
)

// Build compiles and runs trusted setup for all eight circuit kinds once,
// scheduling the independent board/shot builds concurrently (they share no
// dependency) and chaining the channel-layer builds after them in the
// order each one's placeholder proof/VK/witness fields require -- the
// dependency order spec.md §2's component table lists leaves-first.
func Build() (*Cache, error) {
	s, err := newSchedule([]Task{
		{
			Kind: KindBoardOuter, // stands in for the whole board.Circuit bundle
			Build: func(map[Kind]any) (any, error) {
				var c *board.Circuit
				err := Stage(KindBoardOuter, "build", func() error {
					var buildErr error
					c, buildErr = board.Build()
					return buildErr
				})
				return c, err
			},
		},
		{
			Kind: KindShotOuter, // stands in for the whole shot.Circuit bundle
			Build: func(map[Kind]any) (any, error) {
				var c *shot.Circuit
				err := Stage(KindShotOuter, "build", func() error {
					var buildErr error
					c, buildErr = shot.Build()
					return buildErr
				})
				return c, err
			},
		},
		{
			Kind: KindChannelOpen,
			Deps: []Kind{KindBoardOuter},
			Build: func(resolved map[Kind]any) (any, error) {
				b := resolved[KindBoardOuter].(*board.Circuit)
				placeholder := &channel.OpenCircuit{
					HostProof:   recursion.PlaceholderProof(b.Outer),
					HostVK:      recursion.PlaceholderVerifyingKey(b.Outer),
					HostPublic:  recursion.PlaceholderPublicWitness(b.Outer),
					GuestProof:  recursion.PlaceholderProof(b.Outer),
					GuestVK:     recursion.PlaceholderVerifyingKey(b.Outer),
					GuestPublic: recursion.PlaceholderPublicWitness(b.Outer),
				}
				var cd *recursion.CommonData
				err := Stage(KindChannelOpen, "build", func() error {
					var buildErr error
					cd, buildErr = recursion.Build(placeholder, gadgetsConfigFor(KindChannelOpen))
					return buildErr
				})
				return cd, err
			},
		},
		{
			Kind: KindChannelOpenIncr,
			Deps: []Kind{KindChannelOpen, KindShotOuter},
			Build: func(resolved map[Kind]any) (any, error) {
				open := resolved[KindChannelOpen].(*recursion.CommonData)
				sh := resolved[KindShotOuter].(*shot.Circuit)
				placeholder := &channel.OpenIncrementCircuit{
					OpenProof:  recursion.PlaceholderProof(open),
					OpenVK:     recursion.PlaceholderVerifyingKey(open),
					OpenPublic: recursion.PlaceholderPublicWitness(open),
					ShotProof:  recursion.PlaceholderProof(sh.Outer),
					ShotVK:     recursion.PlaceholderVerifyingKey(sh.Outer),
					ShotPublic: recursion.PlaceholderPublicWitness(sh.Outer),
				}
				var cd *recursion.CommonData
				err := Stage(KindChannelOpenIncr, "build", func() error {
					var buildErr error
					cd, buildErr = recursion.Build(placeholder, gadgetsConfigFor(KindChannelOpenIncr))
					return buildErr
				})
				return cd, err
			},
		},
		{
			Kind: KindChannelIncrement,
			Deps: []Kind{KindChannelOpenIncr, KindShotOuter},
			Build: func(resolved map[Kind]any) (any, error) {
				// sized from OpenIncrement's CommonData: both it and a
				// prior Increment publish the same 12-element GameTargets
				// shape, and gnark's in-circuit verifier treats the
				// verifying key as witness data, so one IncrementCircuit
				// compiles once and recursively verifies either shape.
				prev := resolved[KindChannelOpenIncr].(*recursion.CommonData)
				sh := resolved[KindShotOuter].(*shot.Circuit)
				placeholder := &channel.IncrementCircuit{
					PrevProof:  recursion.PlaceholderProof(prev),
					PrevVK:     recursion.PlaceholderVerifyingKey(prev),
					PrevPublic: recursion.PlaceholderPublicWitness(prev),
					ShotProof:  recursion.PlaceholderProof(sh.Outer),
					ShotVK:     recursion.PlaceholderVerifyingKey(sh.Outer),
					ShotPublic: recursion.PlaceholderPublicWitness(sh.Outer),
				}
				var cd *recursion.CommonData
				err := Stage(KindChannelIncrement, "build", func() error {
					var buildErr error
					cd, buildErr = recursion.Build(placeholder, gadgetsConfigFor(KindChannelIncrement))
					return buildErr
				})
				return cd, err
			},
		},
		{
			Kind: KindChannelClose,
			Deps: []Kind{KindChannelIncrement},
			Build: func(resolved map[Kind]any) (any, error) {
				incr := resolved[KindChannelIncrement].(*recursion.CommonData)
				placeholder := &channel.CloseCircuit{
					FinalProof:  recursion.PlaceholderProof(incr),
					FinalVK:     recursion.PlaceholderVerifyingKey(incr),
					FinalPublic: recursion.PlaceholderPublicWitness(incr),
				}
				var cd *recursion.CommonData
				err := Stage(KindChannelClose, "build", func() error {
					var buildErr error
					cd, buildErr = recursion.Build(placeholder, gadgetsConfigFor(KindChannelClose))
					return buildErr
				})
				return cd, err
			},
		},
	})
	if err != nil {
		return nil, err
	}

	results, err := s.run()
	if err != nil {
		return nil, err
	}

	return &Cache{
		Board:    results[KindBoardOuter].(*board.Circuit),
		Shot:     results[KindShotOuter].(*shot.Circuit),
		Open:     results[KindChannelOpen].(*recursion.CommonData),
		OpenIncr: results[KindChannelOpenIncr].(*recursion.CommonData),
		Incr:     results[KindChannelIncrement].(*recursion.CommonData),
		Close:    results[KindChannelClose].(*recursion.CommonData),
	}, nil
}
