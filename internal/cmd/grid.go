package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/reinfolib/reinfolib-cli/internal/agentfmt"
	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/dryrun"
	"github.com/reinfolib/reinfolib-cli/internal/iocontext"
)

// defaultGridConcurrency bounds concurrent tile fetches. The client never
// retries, so a modest fan-out keeps grid pulls under the rate limit.
const defaultGridConcurrency = 4

// tileResult is the outcome of fetching one tile of a grid.
type tileResult[T any] struct {
	Tile     api.Tile
	Features []api.Feature[T]
	Err      error
}

// fetchTileGrid fetches every tile concurrently with bounded parallelism.
// Results come back indexed by input position, so output order matches the
// requested grid regardless of completion order. Individual tile failures
// are recorded, not fatal.
func fetchTileGrid[T any](
	ctx context.Context,
	tiles []api.Tile,
	concurrency int64,
	fetch func(ctx context.Context, t api.Tile) ([]api.Feature[T], error),
) []tileResult[T] {
	if concurrency <= 0 {
		concurrency = defaultGridConcurrency
	}

	sem := semaphore.NewWeighted(concurrency)
	results := make([]tileResult[T], len(tiles))

	g, ctx := errgroup.WithContext(ctx)
	for i, t := range tiles {
		i, t := i, t

		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = tileResult[T]{Tile: t, Err: err}
				return nil
			}
			defer sem.Release(1)

			if err := ctx.Err(); err != nil {
				results[i] = tileResult[T]{Tile: t, Err: err}
				return nil
			}

			features, err := fetch(ctx, t)
			results[i] = tileResult[T]{Tile: t, Features: features, Err: err}
			return nil // don't fail the group on individual errors
		})
	}
	_ = g.Wait()

	return results
}

// collectFeatures flattens grid results in tile order, joining per-tile
// failures into one error. Features from successful tiles survive even when
// some tiles failed; the caller decides whether to surface partial output.
func collectFeatures[T any](results []tileResult[T]) ([]api.Feature[T], error) {
	var features []api.Feature[T]
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("tile %s: %w", tileString(r.Tile), r.Err))
			continue
		}
		features = append(features, r.Features...)
	}
	return features, errors.Join(errs...)
}

// featureRenderer renders features as a text table. A nil renderer falls
// back to the generic geometry/properties table.
type featureRenderer[T any] func(cmd *cobra.Command, features []api.Feature[T]) error

// runFeatureFetch is the shared driver of every GeoJSON tile command:
// resolve the tile address, honor --dry-run, fan out over the grid, and
// print in the selected output mode.
func runFeatureFetch[T any](
	cmd *cobra.Command,
	tf *tileFlags,
	endpoint string,
	render featureRenderer[T],
	fetch func(ctx context.Context, t api.Tile) ([]api.Feature[T], error),
) error {
	tiles, err := tf.resolve(cmd)
	if err != nil {
		return err
	}

	if done, err := maybeDryRun(cmd, featureFetchPreview(endpoint, tiles)); done {
		return err
	}

	results := fetchTileGrid(cmdContext(cmd), tiles, int64(tf.Concurrency), fetch)
	features, err := collectFeatures(results)
	if err != nil {
		return err
	}

	if isAgent(cmd) {
		kind := agentfmt.KindFromCommandPath(cmd.CommandPath())
		return printJSON(cmd, agentfmt.FeatureList(kind, features))
	}
	if isJSON(cmd) {
		return printJSON(cmd, map[string]any{
			"items": features,
			"count": len(features),
			"tiles": len(tiles),
		})
	}

	if len(features) == 0 {
		printIfNotQuiet(cmd, "No features found.\n")
		return nil
	}
	if render != nil {
		return render(cmd, features)
	}
	return renderFeatureTable(cmd, results)
}

func featureFetchPreview(endpoint string, tiles []api.Tile) *dryrun.Preview {
	details := map[string]any{
		"endpoint": endpoint,
		"tiles":    len(tiles),
	}
	if info, ok := api.Endpoint(endpoint); ok {
		details["path"] = info.Path
	}
	if len(tiles) == 1 {
		details["tile"] = tileString(tiles[0])
	} else if len(tiles) > 1 {
		details["first"] = tileString(tiles[0])
		details["last"] = tileString(tiles[len(tiles)-1])
	}
	return &dryrun.Preview{
		Operation:   "GET",
		Resource:    endpoint,
		Description: "Fetch GeoJSON features",
		Details:     details,
	}
}

// renderFeatureTable prints the generic tile/geometry/properties view used
// by layers without a dedicated renderer. Properties print as compact JSON.
func renderFeatureTable[T any](cmd *cobra.Command, results []tileResult[T]) error {
	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "TILE\tGEOMETRY\tPROPERTIES")
	for _, r := range results {
		for _, f := range r.Features {
			props, err := json.Marshal(f.Properties)
			if err != nil {
				props = []byte("{}")
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", tileString(r.Tile), f.Geometry.Type, props)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	total := 0
	for _, r := range results {
		total += len(r.Features)
	}
	ioStreams := iocontext.GetIO(cmd.Context())
	if !flags.Quiet {
		_, _ = fmt.Fprintf(ioStreams.ErrOut, "%d features from %d tiles\n", total, len(results))
	}
	return nil
}
