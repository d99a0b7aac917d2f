// Package async provides bounded parallel task execution with error
// collection.
//
// [RunParallel] runs independent tasks on at most a fixed number of
// goroutines and reports the first failure by task name. The packaging
// engine uses it to hash payload files concurrently; callers write results
// into pre-sized slices by index so output order never depends on which
// task finishes first.
package async
