package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reinfolib/reinfolib-cli/internal/api"
	"github.com/reinfolib/reinfolib-cli/internal/tile"
)

// maxGridTiles bounds a single grid fetch. The upstream rate-limits
// aggressively, so a runaway range should fail before any request is made.
const maxGridTiles = 256

// tileFlags holds the tile addressing flags shared by every tile command.
// Three addressing forms are accepted, in precedence order:
//
//	--tile z/x/y                 one tile
//	--lat/--lon (with --z)       the tile containing a coordinate
//	--z with --x/--y ranges      a grid, e.g. --x 7270:7273 --y 3222
type tileFlags struct {
	Z           int
	X           string
	Y           string
	TileRef     string
	Lat         float64
	Lon         float64
	Concurrency int
}

func addTileFlags(cmd *cobra.Command, tf *tileFlags) {
	cmd.Flags().IntVar(&tf.Z, "z", 0, "Zoom level")
	cmd.Flags().StringVar(&tf.X, "x", "", "Tile column, or inclusive range like 7270:7273")
	cmd.Flags().StringVar(&tf.Y, "y", "", "Tile row, or inclusive range like 3222:3225")
	cmd.Flags().StringVar(&tf.TileRef, "tile", "", "Tile reference as z/x/y, e.g. 11/1819/806")
	cmd.Flags().Float64Var(&tf.Lat, "lat", 0, "Latitude; picks the tile containing the coordinate")
	cmd.Flags().Float64Var(&tf.Lon, "lon", 0, "Longitude; picks the tile containing the coordinate")
	cmd.Flags().IntVar(&tf.Concurrency, "concurrency", defaultGridConcurrency, "Concurrent tile fetches for grid ranges")
	flagAlias(cmd.Flags(), "tile", "t")
	flagAlias(cmd.Flags(), "concurrency", "cc")
}

// resolve expands the tile flags into the addressed tiles, row-major
// (y outer, x inner), without issuing any request.
func (tf *tileFlags) resolve(cmd *cobra.Command) ([]api.Tile, error) {
	switch {
	case tf.TileRef != "":
		if anyFlagChanged(cmd, "x", "y", "lat", "lon") {
			return nil, fmt.Errorf("--tile cannot be combined with --x/--y or --lat/--lon")
		}
		ref, err := tile.Parse(tf.TileRef)
		if err != nil {
			return nil, err
		}
		if flagOrAliasChanged(cmd, "z") && tf.Z != ref.Z {
			return nil, fmt.Errorf("--z %d conflicts with --tile %s", tf.Z, tf.TileRef)
		}
		return []api.Tile{{Z: ref.Z, X: ref.X, Y: ref.Y}}, nil

	case anyFlagChanged(cmd, "lat", "lon"):
		if !anyFlagChanged(cmd, "lat") || !anyFlagChanged(cmd, "lon") {
			return nil, fmt.Errorf("--lat and --lon must be given together")
		}
		if anyFlagChanged(cmd, "x", "y") {
			return nil, fmt.Errorf("--lat/--lon cannot be combined with --x/--y")
		}
		if !flagOrAliasChanged(cmd, "z") {
			return nil, fmt.Errorf("--lat/--lon requires --z")
		}
		ref, err := tile.FromLatLon(tf.Lat, tf.Lon, tf.Z)
		if err != nil {
			return nil, err
		}
		return []api.Tile{{Z: ref.Z, X: ref.X, Y: ref.Y}}, nil

	default:
		if !flagOrAliasChanged(cmd, "z") || tf.X == "" || tf.Y == "" {
			return nil, fmt.Errorf("tile address required: use --tile z/x/y, --lat/--lon with --z, or --z/--x/--y")
		}
		xr, err := tile.ParseRange(tf.X)
		if err != nil {
			return nil, fmt.Errorf("invalid --x: %w", err)
		}
		yr, err := tile.ParseRange(tf.Y)
		if err != nil {
			return nil, fmt.Errorf("invalid --y: %w", err)
		}
		if total := xr.Count() * yr.Count(); total > maxGridTiles {
			return nil, fmt.Errorf("tile grid of %d tiles exceeds the limit of %d; narrow the ranges", total, maxGridTiles)
		}
		tiles := make([]api.Tile, 0, xr.Count()*yr.Count())
		for _, y := range yr.Values() {
			for _, x := range xr.Values() {
				ref := tile.Ref{Z: tf.Z, X: x, Y: y}
				if err := ref.Validate(); err != nil {
					return nil, err
				}
				tiles = append(tiles, api.Tile{Z: ref.Z, X: ref.X, Y: ref.Y})
			}
		}
		return tiles, nil
	}
}

func tileString(t api.Tile) string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}
