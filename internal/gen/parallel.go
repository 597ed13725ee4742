package gen

import "golang.org/x/sync/errgroup"

// forEachRow runs fn for every row in [0, h) on at most workers goroutines
// and waits for all of them. The first error is returned.
func forEachRow(h, workers int, fn func(y int) error) error {
	if workers <= 1 || h <= 1 {
		for y := 0; y < h; y++ {
			if err := fn(y); err != nil {
				return err
			}
		}
		return nil
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < h; y++ {
		g.Go(func() error { return fn(y) })
	}
	return g.Wait()
}
