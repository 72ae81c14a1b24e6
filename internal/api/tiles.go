package api

import "context"

// Tile endpoints serve two encodings selected by response_format. The typed
// bindings pin geojson; PBF below exposes the binary form for callers that
// feed map renderers directly.
const (
	formatGeoJSON = "geojson"
	formatPBF     = "pbf"
)

// tileArgs encodes the coordinate triple plus the geojson selector, the
// argument base of every typed tile binding.
func tileArgs(t Tile) args {
	a := args{}
	t.coords(a)
	a.set("response_format", formatGeoJSON)
	return a
}

// TileOptions addresses one tile of any tile endpoint for a raw fetch.
// Extra carries endpoint-specific query parameters (from/to for
// transaction-points, year for valuation-points, area filters elsewhere);
// keys and values are validated against the endpoint table like any typed
// call.
type TileOptions struct {
	Tile  Tile
	Extra map[string]string
}

func (o TileOptions) args() args {
	a := args{}
	o.Tile.coords(a)
	a.set("response_format", formatPBF)
	for k, v := range o.Extra {
		a.set(k, v)
	}
	return a
}

// PBF fetches one binary vector tile from the named tile endpoint. The name
// is an endpoint table name such as "use-districts"; see Endpoints().
func (s TilesService) PBF(ctx context.Context, endpoint string, opts TileOptions) ([]byte, error) {
	return fetchPBF(ctx, s, endpoint, opts)
}

func fetchPBF(ctx context.Context, r Requester, endpoint string, opts TileOptions) ([]byte, error) {
	sp, ok := endpointByName(endpoint)
	if !ok {
		return nil, &InvalidParameterError{Endpoint: endpoint, Param: "endpoint", Value: endpoint, Reason: "unknown endpoint"}
	}
	if !sp.geo {
		return nil, &InvalidParameterError{Endpoint: endpoint, Param: "endpoint", Value: endpoint, Reason: "not a tile endpoint"}
	}
	return fetchTileRaw(ctx, r, sp, opts.args())
}
