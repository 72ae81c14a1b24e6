package api

import "encoding/json"

// Geometry is a GeoJSON geometry. Coordinates stay raw: the layers mix
// Point, MultiPolygon, and MultiLineString shapes, and most callers only
// relay them. Decode into the concrete shape for Type when you need the
// numbers.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Feature is one GeoJSON feature with typed properties.
type Feature[T any] struct {
	Type       string   `json:"type"`
	Geometry   Geometry `json:"geometry"`
	Properties T        `json:"properties"`
}

// FeatureCollection is the response shape of every tile endpoint when
// response_format=geojson.
type FeatureCollection[T any] struct {
	Type     string       `json:"type"`
	Name     string       `json:"name,omitempty"`
	Features []Feature[T] `json:"features"`
}

// Tile addresses one XYZ web-mercator tile. The upstream serves all GIS
// layers through this scheme; valid zoom ranges vary per endpoint and are
// declared in the endpoint table.
type Tile struct {
	Z int `json:"z"`
	X int `json:"x"`
	Y int `json:"y"`
}

func (t Tile) coords(a args) {
	a.setCoord("z", t.Z)
	a.setCoord("x", t.X)
	a.setCoord("y", t.Y)
}
