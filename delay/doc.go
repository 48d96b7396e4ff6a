// Package delay simulates units of work that sleep for a random time and
// collects them concurrently.
//
// WaitRandom is a single delay task: it samples d uniformly from
// [0, maxDelay), sleeps d units and returns d. WaitN and TaskWaitN launch n
// such tasks at once and return the sampled delays in the order the tasks
// finished, so shorter delays tend to come first:
//
//	delays, err := delay.WaitN(ctx, 5, 10, delay.WithUnit(time.Millisecond))
//	// e.g. [0.8 2.3 4.1 6.7 9.2]
//
// WaitN runs the tasks on a pool.WorkerPool sized to n. TaskWaitN starts each
// task as a pool.Future and drains them with pool.AsCompleted.
package delay
