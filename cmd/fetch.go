package cmd

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/scripture/bible"
)

// fetchFunc retrieves one resource by ID
type fetchFunc func(ctx context.Context, id string) (bible.Response, error)

// fetchAll runs fetch for every ID with at most limit requests in flight.
// Results keep the order of ids. The first failure cancels the rest.
func fetchAll(ctx context.Context, ids []string, limit int, fetch fetchFunc) ([]bible.Response, error) {
	results := make([]bible.Response, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, id := range ids {
		g.Go(func() error {
			resp, err := fetch(ctx, id)
			if err != nil {
				logger.Debug().Err(err).Str("id", id).Msg("Fetch failed")
				return err
			}
			// Each goroutine owns its slot
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// printAll prints one or several single-resource responses. Several
// responses are printed as a JSON array in JSON mode.
func printAll(responses []bible.Response) error {
	if len(responses) == 1 || out.table {
		for i, resp := range responses {
			if i > 0 {
				fmt.Fprintln(out.writer)
			}
			if err := out.Object(resp); err != nil {
				return err
			}
		}
		return nil
	}
	return out.JSON(responses)
}
