// Package workspace allocates and recycles the backing memory a solver
// worker needs for its bucket sort layers.
//
// Backing memory is the scarce resource of a solve: it is allocated once and
// reused across attempts. A [Set] holds everything one worker needs (two key
// memories and two value memories, used alternately by successive layers). A
// [Pool] hands sets out to workers, charges their size against a
// resource.Controller memory budget, and takes them back when the attempt is
// over. [Run] drives many independent attempts in parallel, one set per
// worker.
//
//	pool := workspace.NewPool[uint8, uint16](2048, 48,
//	    workspace.WithResourceController(rc))
//	defer pool.Close()
//
//	err := workspace.Run(ctx, pool, attempts, func(ctx context.Context, attempt int, set *workspace.Set[uint8, uint16]) error {
//	    arr := bucketarray.NewKeyValue[uint8, uint32](set.Keys[0], set.Values[0])
//	    defer arr.Release()
//	    ...
//	})
package workspace
