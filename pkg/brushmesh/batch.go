package brushmesh

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DegenerateSolidsError lists the solids of a batch that produced no geometry.
// It does not invalidate the other meshes of the batch.
type DegenerateSolidsError struct {
	Indices []int
}

func (e DegenerateSolidsError) Error() string {
	idx := make([]string, len(e.Indices))
	for i, v := range e.Indices {
		idx[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("solids without geometry: (%s)", strings.Join(idx, ", "))
}

// BuildAll builds the meshes of many solids concurrently, one task per solid,
// using at most opts.Workers goroutines. meshes[i] belongs to solids[i].
//
// If some solids yield an empty mesh the full result is still returned,
// together with a DegenerateSolidsError. If ctx is cancelled the returned
// error wraps ctx.Err() and the meshes are nil.
func BuildAll(ctx context.Context, solids []Solid, opts Options) ([]*Mesh, error) {
	opts = opts.withDefaults()

	meshes := make([]*Mesh, len(solids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range solids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			meshes[i] = Build(solids[i], opts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to build solids")
	}

	var degenerate []int

	for i, m := range meshes {
		if m.IsEmpty() {
			degenerate = append(degenerate, i)
		}
	}

	if len(degenerate) > 0 {
		return meshes, DegenerateSolidsError{Indices: degenerate}
	}

	return meshes, nil
}
