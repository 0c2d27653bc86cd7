package prover

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// Task is one buildable unit in the common-data build graph: a circuit
// kind, the kinds it depends on, and the function that builds it once its
// dependencies' results are available.
type Task struct {
	Kind    Kind
	Deps    []Kind
	Build   func(resolved map[Kind]any) (any, error)
}

// schedule is a small adaptation of a level-based dependency scheduler: it
// groups tasks into levels such that every task's dependencies are fully
// resolved by the end of the previous level, then runs each level's tasks
// concurrently. The Build graph here is tiny and static (the six circuit
// kinds Build assembles), so this trades the original's lock-free
// worker-pool machinery (sized for graphs with many thousands of nodes,
// built once per witness solve) for a plain goroutine-per-task fan-out
// sized to runtime.NumCPU, which is all a six-node graph needs -- but it
// keeps the same two-pass shape: compute levels from the dependency
// adjacency, then execute level by level.
type schedule struct {
	tasks map[Kind]Task
}

func newSchedule(tasks []Task) (*schedule, error) {
	s := &schedule{tasks: make(map[Kind]Task, len(tasks))}
	for _, t := range tasks {
		if _, dup := s.tasks[t.Kind]; dup {
			return nil, fmt.Errorf("prover: duplicate task kind %q", t.Kind)
		}
		s.tasks[t.Kind] = t
	}
	for _, t := range tasks {
		for _, d := range t.Deps {
			if _, ok := s.tasks[d]; !ok {
				return nil, fmt.Errorf("prover: task %q depends on unknown kind %q", t.Kind, d)
			}
		}
	}
	return s, nil
}

// levels groups task kinds so that every dependency of a kind in level l
// appears in some level < l.
func (s *schedule) levels() ([][]Kind, error) {
	remaining := make(map[Kind][]Kind, len(s.tasks))
	for k, t := range s.tasks {
		remaining[k] = append([]Kind{}, t.Deps...)
	}

	var levels [][]Kind
	done := make(map[Kind]bool, len(s.tasks))

	for len(done) < len(s.tasks) {
		var level []Kind
		for k, deps := range remaining {
			if done[k] {
				continue
			}
			ready := true
			for _, d := range deps {
				if !done[d] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, k)
			}
		}
		if len(level) == 0 {
			return nil, fmt.Errorf("prover: dependency cycle among circuit kinds")
		}
		sort.Slice(level, func(i, j int) bool { return level[i] < level[j] })
		levels = append(levels, level)
		for _, k := range level {
			done[k] = true
		}
	}
	return levels, nil
}

// run executes every task, level by level, with the tasks inside a level
// run concurrently (bounded by runtime.NumCPU, since each task is a
// CPU-heavy circuit compile + Groth16 setup). Results are threaded forward
// so a later level's tasks can read their dependencies' output.
func (s *schedule) run() (map[Kind]any, error) {
	levels, err := s.levels()
	if err != nil {
		return nil, err
	}

	resolved := make(map[Kind]any, len(s.tasks))
	var mu sync.Mutex

	sem := make(chan struct{}, runtime.NumCPU())
	for _, level := range levels {
		var wg sync.WaitGroup
		errCh := make(chan error, len(level))

		for _, kind := range level {
			task := s.tasks[kind]
			wg.Add(1)
			sem <- struct{}{}
			go func(task Task) {
				defer wg.Done()
				defer func() { <-sem }()

				mu.Lock()
				snapshot := make(map[Kind]any, len(resolved))
				for k, v := range resolved {
					snapshot[k] = v
				}
				mu.Unlock()

				result, err := task.Build(snapshot)
				if err != nil {
					errCh <- fmt.Errorf("prover: building %q: %w", task.Kind, err)
					return
				}
				mu.Lock()
				resolved[task.Kind] = result
				mu.Unlock()
			}(task)
		}

		wg.Wait()
		close(errCh)
		for err := range errCh {
			return nil, err
		}
	}
	return resolved, nil
}
