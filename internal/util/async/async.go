package async

import (
	"context"
	"fmt"
	"sync"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel executes tasks with at most limit running at once and returns
// the first error encountered. A limit <= 0 runs every task concurrently.
// The function waits for all started tasks to complete. Once ctx is done, no
// new tasks are started and the context error is reported.
//
// Example:
//
//	tasks := make([]Task, len(files))
//	for i, f := range files {
//	    tasks[i] = Task{Name: f.rel, Func: func(context.Context) error {
//	        sums[i], err = digest.File(f.abs)
//	        return err
//	    }}
//	}
//	if err := RunParallel(ctx, tasks, runtime.GOMAXPROCS(0)); err != nil {
//	    return err
//	}
func RunParallel(ctx context.Context, tasks []Task, limit int) error {
	if len(tasks) == 0 {
		return nil
	}
	if limit <= 0 || limit > len(tasks) {
		limit = len(tasks)
	}

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		firstError error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstError == nil {
			firstError = err
		}
	}

	sem := make(chan struct{}, limit)
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			record(err)
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := task.Func(ctx); err != nil {
				record(fmt.Errorf("failed to run %s: %w", task.Name, err))
			}
		}()
	}

	wg.Wait()
	return firstError
}
