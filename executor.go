// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langdetect

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Executor abstracts "run per-language scoring concurrently". Score runs
// fn(i) for every i in [0, n), fans out up to the executor's configured
// parallelism, and returns results in a slice indexed by i -- result
// collection order is always deterministic regardless of which goroutine
// finishes first. If any fn call returns an error, Score returns that
// error (the first one observed); other in-flight calls are allowed to
// finish but their results are discarded.
//
// The default implementation is an errgroup bounded by a semaphore sized
// to GOMAXPROCS, one task per candidate language.
type Executor interface {
	Score(n int, fn func(i int) (float64, error)) ([]float64, error)
}

// poolExecutor is the default Executor: an errgroup.Group gated by a
// semaphore.Weighted of the given width. Width 1 makes execution strictly
// sequential in task order, which is what the single-threaded-determinism
// tests exercise.
type poolExecutor struct {
	width int64
}

// NewPoolExecutor returns an Executor that runs up to width tasks
// concurrently. width <= 0 is treated as 1 (sequential).
func NewPoolExecutor(width int) Executor {
	if width <= 0 {
		width = 1
	}
	return &poolExecutor{width: int64(width)}
}

// NewDefaultExecutor sizes the pool to the process's available CPU
// parallelism. init.go calls maxprocs.Set at process startup so
// runtime.GOMAXPROCS(0) already reflects any container CPU quota by the
// time this runs, rather than the host's full core count.
func NewDefaultExecutor() Executor {
	return NewPoolExecutor(runtime.GOMAXPROCS(0))
}

func (p *poolExecutor) Score(n int, fn func(i int) (float64, error)) ([]float64, error) {
	if n == 0 {
		return nil, nil
	}

	results := make([]float64, n)
	sem := semaphore.NewWeighted(p.width)
	g, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < n; i++ {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			v, err := fn(i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
