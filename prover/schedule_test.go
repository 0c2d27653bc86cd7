package prover

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleLevelsRespectDependencies(t *testing.T) {
	assert := require.New(t)

	s, err := newSchedule([]Task{
		{Kind: "board", Build: func(map[Kind]any) (any, error) { return "board", nil }},
		{Kind: "shot", Build: func(map[Kind]any) (any, error) { return "shot", nil }},
		{Kind: "open", Deps: []Kind{"board"}, Build: func(map[Kind]any) (any, error) { return "open", nil }},
		{Kind: "openIncr", Deps: []Kind{"open", "shot"}, Build: func(map[Kind]any) (any, error) { return "openIncr", nil }},
		{Kind: "incr", Deps: []Kind{"openIncr", "shot"}, Build: func(map[Kind]any) (any, error) { return "incr", nil }},
		{Kind: "close", Deps: []Kind{"incr"}, Build: func(map[Kind]any) (any, error) { return "close", nil }},
	})
	assert.NoError(err)

	levels, err := s.levels()
	assert.NoError(err)
	assert.Equal([]Kind{"board", "shot"}, levels[0])
	assert.Equal([]Kind{"open"}, levels[1])
	assert.Equal([]Kind{"openIncr"}, levels[2])
	assert.Equal([]Kind{"incr"}, levels[3])
	assert.Equal([]Kind{"close"}, levels[4])
}

func TestScheduleRunResolvesAllTasks(t *testing.T) {
	assert := require.New(t)

	s, err := newSchedule([]Task{
		{Kind: "a", Build: func(map[Kind]any) (any, error) { return 1, nil }},
		{Kind: "b", Deps: []Kind{"a"}, Build: func(resolved map[Kind]any) (any, error) {
			return resolved["a"].(int) + 1, nil
		}},
	})
	assert.NoError(err)

	results, err := s.run()
	assert.NoError(err)
	assert.Equal(1, results["a"])
	assert.Equal(2, results["b"])
}

func TestScheduleDetectsUnknownDependency(t *testing.T) {
	assert := require.New(t)

	_, err := newSchedule([]Task{
		{Kind: "a", Deps: []Kind{"missing"}, Build: func(map[Kind]any) (any, error) { return nil, nil }},
	})
	assert.Error(err)
}

func TestScheduleDetectsCycle(t *testing.T) {
	assert := require.New(t)

	s, err := newSchedule([]Task{
		{Kind: "a", Deps: []Kind{"b"}, Build: func(map[Kind]any) (any, error) { return nil, nil }},
		{Kind: "b", Deps: []Kind{"a"}, Build: func(map[Kind]any) (any, error) { return nil, nil }},
	})
	assert.NoError(err)

	_, err = s.levels()
	assert.Error(err)
}
