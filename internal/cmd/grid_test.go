package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

type gridProps struct {
	Label string `json:"label"`
}

func gridTiles(n int) []api.Tile {
	tiles := make([]api.Tile, n)
	for i := range tiles {
		tiles[i] = api.Tile{Z: 11, X: 1800 + i, Y: 806}
	}
	return tiles
}

func labeledFeature(label string) api.Feature[gridProps] {
	return api.Feature[gridProps]{
		Type:       "Feature",
		Properties: gridProps{Label: label},
	}
}

func TestFetchTileGrid_PreservesInputOrder(t *testing.T) {
	tiles := gridTiles(8)

	// Delay the earlier tiles so completion order differs from input order.
	var started sync.WaitGroup
	started.Add(len(tiles))
	release := make(chan struct{})

	results := make(chan []tileResult[gridProps], 1)
	go func() {
		results <- fetchTileGrid(context.Background(), tiles, int64(len(tiles)), func(ctx context.Context, tl api.Tile) ([]api.Feature[gridProps], error) {
			started.Done()
			if tl.X%2 == 0 {
				<-release
			}
			return []api.Feature[gridProps]{labeledFeature(tileString(tl))}, nil
		})
	}()

	started.Wait()
	close(release)
	got := <-results

	if len(got) != len(tiles) {
		t.Fatalf("expected %d results, got %d", len(tiles), len(got))
	}
	for i, r := range got {
		if r.Tile != tiles[i] {
			t.Errorf("result %d is for tile %s, want %s", i, tileString(r.Tile), tileString(tiles[i]))
		}
		if r.Err != nil {
			t.Errorf("result %d unexpected error: %v", i, r.Err)
		}
		if want := tileString(tiles[i]); len(r.Features) != 1 || r.Features[0].Properties.Label != want {
			t.Errorf("result %d has wrong features: %+v", i, r.Features)
		}
	}
}

func TestFetchTileGrid_BoundsConcurrency(t *testing.T) {
	tiles := gridTiles(12)

	var inflight, peak atomic.Int64
	results := fetchTileGrid(context.Background(), tiles, 3, func(ctx context.Context, tl api.Tile) ([]api.Feature[gridProps], error) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer inflight.Add(-1)
		return nil, nil
	})

	if len(results) != len(tiles) {
		t.Fatalf("expected %d results, got %d", len(tiles), len(results))
	}
	if p := peak.Load(); p > 3 {
		t.Errorf("concurrency peaked at %d, want <= 3", p)
	}
}

func TestFetchTileGrid_RecordsIndividualErrors(t *testing.T) {
	tiles := gridTiles(4)

	results := fetchTileGrid(context.Background(), tiles, 2, func(ctx context.Context, tl api.Tile) ([]api.Feature[gridProps], error) {
		if tl.X == 1801 {
			return nil, fmt.Errorf("boom")
		}
		return []api.Feature[gridProps]{labeledFeature(tileString(tl))}, nil
	})

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			if r.Tile.X != 1801 {
				t.Errorf("unexpected tile failed: %s", tileString(r.Tile))
			}
		}
	}
	if failed != 1 {
		t.Errorf("expected exactly 1 failed tile, got %d", failed)
	}
}

func TestCollectFeatures_FlattensInOrder(t *testing.T) {
	results := []tileResult[gridProps]{
		{Tile: api.Tile{Z: 11, X: 1, Y: 1}, Features: []api.Feature[gridProps]{labeledFeature("a"), labeledFeature("b")}},
		{Tile: api.Tile{Z: 11, X: 2, Y: 1}, Features: []api.Feature[gridProps]{labeledFeature("c")}},
	}

	features, err := collectFeatures(results)
	if err != nil {
		t.Fatalf("collectFeatures failed: %v", err)
	}
	labels := make([]string, len(features))
	for i, f := range features {
		labels[i] = f.Properties.Label
	}
	if got := strings.Join(labels, ""); got != "abc" {
		t.Errorf("features out of order: %s", got)
	}
}

func TestCollectFeatures_JoinsTileErrors(t *testing.T) {
	errA := errors.New("upstream sad")
	errB := errors.New("also sad")
	results := []tileResult[gridProps]{
		{Tile: api.Tile{Z: 11, X: 1, Y: 2}, Err: errA},
		{Tile: api.Tile{Z: 11, X: 3, Y: 4}, Features: []api.Feature[gridProps]{labeledFeature("ok")}},
		{Tile: api.Tile{Z: 11, X: 5, Y: 6}, Err: errB},
	}

	features, err := collectFeatures(results)
	if err == nil {
		t.Fatal("expected joined error")
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("joined error should wrap both tile errors: %v", err)
	}
	if !strings.Contains(err.Error(), "tile 11/1/2") || !strings.Contains(err.Error(), "tile 11/5/6") {
		t.Errorf("error should name the failing tiles: %v", err)
	}
	// Successful tiles still contribute features.
	if len(features) != 1 || features[0].Properties.Label != "ok" {
		t.Errorf("surviving features wrong: %+v", features)
	}
}

func TestFetchTileGrid_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := fetchTileGrid(ctx, gridTiles(3), 1, func(ctx context.Context, tl api.Tile) ([]api.Feature[gridProps], error) {
		return nil, ctx.Err()
	})

	for _, r := range results {
		if r.Err == nil {
			t.Errorf("tile %s should have failed on cancelled context", tileString(r.Tile))
		}
	}
}
