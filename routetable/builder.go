package routetable

import (
	"context"
	"fmt"

	"github.com/forestrie/go-meshlabel/label"
	"golang.org/x/sync/errgroup"
)

// Request asks for the label of one path.
type Request struct {
	ID   string
	Hops []label.PathHop
}

// Route is a built path. A route whose spliced label overflowed keeps
// label.ErrorLabel as its Label and has Usable false.
type Route struct {
	ID     string
	Label  string
	Hops   []string
	Usable bool
}

// Builder computes labels for many paths at once.
type Builder struct {
	opts Options
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{opts: Options{Workers: DefaultWorkers}}
	for _, o := range opts {
		o(&b.opts)
	}
	return b
}

// Build computes a route for every request and returns them as a Table in
// request order.
//
// Overflow is not a failure: the route is kept and marked unusable. Any other
// build failure aborts the whole build and is returned with the request id.
func (b *Builder) Build(ctx context.Context, reqs []Request) (*Table, error) {
	seen := make(map[string]struct{}, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	routes := make([]Route, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.Workers)
	for i := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			route, err := buildRoute(reqs[i])
			if err != nil {
				return err
			}
			routes[i] = route
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	unusable := 0
	for _, r := range routes {
		if !r.Usable {
			unusable++
			b.infof("route %s overflowed: %d hops %v", r.ID, len(r.Hops), r.Hops)
		}
	}
	b.infof("built %d routes, %d unusable", len(routes), unusable)

	return newTable(routes), nil
}

func buildRoute(req Request) (Route, error) {
	p, err := label.BuildLabel(req.Hops)
	if err != nil {
		return Route{}, fmt.Errorf("route %s: %w", req.ID, err)
	}
	return Route{
		ID:     req.ID,
		Label:  p.Label,
		Hops:   p.Hops,
		Usable: p.Label != label.ErrorLabel.String(),
	}, nil
}

func (b *Builder) infof(format string, args ...any) {
	if b.opts.Log == nil {
		return
	}
	b.opts.Log.Infof(format, args...)
}
