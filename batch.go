package unfold

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DecodeAll unfolds every element of srcs with [Decode], running up to limit
// decodes at a time (no limit when limit <= 0). The result at index i belongs
// to srcs[i].
//
// If ctx is cancelled no further decodes are started and the context error is
// returned.
func DecodeAll(ctx context.Context, srcs [][]byte, limit int) ([][]byte, error) {
	out := make([][]byte, len(srcs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, src := range srcs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Decode(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
