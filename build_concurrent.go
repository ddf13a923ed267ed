package lampshade

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildConcurrent is Build with the shell and transition rows computed by up to
// workers goroutines. Every row is written to the slots Build would use, so the
// result is identical to Build(p). If workers < 1 runtime.NumCPU() is used.
// It returns ctx.Err() if ctx is done before all rows are written.
func BuildConcurrent(ctx context.Context, p Params, workers int) (Mesh, error) {
	p = p.Derive()
	if p.Detail < 1 {
		return Mesh{}, ctx.Err()
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	m := newMesh(p.Detail)
	shell, bottomCap, transition, side, mountCap := m.Regions[0], m.Regions[1], m.Regions[2], m.Regions[3], m.Regions[4]

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < p.Detail; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m.putRow(shell, p, i, shellCell)
			m.putRow(transition, p, i, transitionCell)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Mesh{}, err
	}
	m.putBottomCap(bottomCap, p)
	m.putMountSide(side, p)
	m.putMountCap(mountCap, p)
	return m, nil
}
