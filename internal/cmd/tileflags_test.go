package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

func resolveTileFlags(t *testing.T, args ...string) ([]api.Tile, error) {
	t.Helper()
	var tf tileFlags
	cmd := &cobra.Command{Use: "test"}
	addTileFlags(cmd, &tf)
	require.NoError(t, cmd.ParseFlags(args))
	return tf.resolve(cmd)
}

func TestTileFlagsResolve_SingleTile(t *testing.T) {
	tiles, err := resolveTileFlags(t, "--tile", "11/1819/806")
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, api.Tile{Z: 11, X: 1819, Y: 806}, tiles[0])
}

func TestTileFlagsResolve_TileAlias(t *testing.T) {
	tiles, err := resolveTileFlags(t, "--t", "13/7312/3008")
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, api.Tile{Z: 13, X: 7312, Y: 3008}, tiles[0])
}

func TestTileFlagsResolve_TileConflictsWithXY(t *testing.T) {
	_, err := resolveTileFlags(t, "--tile", "11/1819/806", "--x", "1819")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tile cannot be combined")
}

func TestTileFlagsResolve_TileZMismatch(t *testing.T) {
	_, err := resolveTileFlags(t, "--tile", "11/1819/806", "--z", "13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts with --tile")
}

func TestTileFlagsResolve_TileZAgreement(t *testing.T) {
	tiles, err := resolveTileFlags(t, "--tile", "11/1819/806", "--z", "11")
	require.NoError(t, err)
	require.Len(t, tiles, 1)
}

func TestTileFlagsResolve_LatLon(t *testing.T) {
	// Tokyo Station at zoom 11.
	tiles, err := resolveTileFlags(t, "--lat", "35.681", "--lon", "139.767", "--z", "11")
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, 11, tiles[0].Z)
	assert.Equal(t, 1819, tiles[0].X)
	assert.Equal(t, 806, tiles[0].Y)
}

func TestTileFlagsResolve_LatRequiresLon(t *testing.T) {
	_, err := resolveTileFlags(t, "--lat", "35.68", "--z", "11")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--lat and --lon must be given together")
}

func TestTileFlagsResolve_LatLonRequiresZ(t *testing.T) {
	_, err := resolveTileFlags(t, "--lat", "35.68", "--lon", "139.77")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --z")
}

func TestTileFlagsResolve_GridRowMajor(t *testing.T) {
	tiles, err := resolveTileFlags(t, "--z", "11", "--x", "10:11", "--y", "20:21")
	require.NoError(t, err)
	require.Len(t, tiles, 4)
	want := []api.Tile{
		{Z: 11, X: 10, Y: 20}, {Z: 11, X: 11, Y: 20},
		{Z: 11, X: 10, Y: 21}, {Z: 11, X: 11, Y: 21},
	}
	assert.Equal(t, want, tiles)
}

func TestTileFlagsResolve_GridTooLarge(t *testing.T) {
	_, err := resolveTileFlags(t, "--z", "11", "--x", "0:16", "--y", "0:16")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the limit")
}

func TestTileFlagsResolve_MissingAddress(t *testing.T) {
	_, err := resolveTileFlags(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tile address required")
}

func TestTileFlagsResolve_InvalidRange(t *testing.T) {
	_, err := resolveTileFlags(t, "--z", "11", "--x", "20:10", "--y", "5")
	require.Error(t, err)
}

func TestTileString(t *testing.T) {
	assert.Equal(t, "11/1819/806", tileString(api.Tile{Z: 11, X: 1819, Y: 806}))
}
