package api

import "context"

// NaturalPark is one 自然公園地域 polygon. The layer keeps GIS-era
// UPPERCASE keys.
type NaturalPark struct {
	ObjectID       FlexInt   `json:"OBJECTID"`
	PrefectureCode string    `json:"PREFEC_CD,omitempty"`
	DistrictCode   string    `json:"AREA_CD,omitempty"`
	CityName       string    `json:"CTV_NAME,omitempty"`
	FiscalYear     FlexInt   `json:"FIS_YEAR,omitempty"`
	ThemeNumber    FlexInt   `json:"THEMA_NO,omitempty"`
	LayerNumber    FlexInt   `json:"LAYER_NO,omitempty"`
	AreaSize       FlexInt   `json:"AREA_SIZE,omitempty"`
	InsideOutside  FlexInt   `json:"IOSIDE_DIV,omitempty"`
	Remark         string    `json:"REMARK_STR,omitempty"`
	ShapeLength    FlexFloat `json:"Shape_Leng,omitempty"`
	ShapeArea      FlexFloat `json:"Shape_Area,omitempty"`
	Name           string    `json:"OBJ_NAME_ja,omitempty"`
}

// NaturalParksOptions narrows the park layer by prefecture or Hokkaido
// subprefecture district.
type NaturalParksOptions struct {
	PrefectureCode string // comma-separated 1- or 2-digit codes
	DistrictCode   string // comma-separated 1- or 2-digit codes
}

func (o NaturalParksOptions) args(t Tile) args {
	a := tileArgs(t)
	a.set("prefectureCode", o.PrefectureCode)
	a.set("districtCode", o.DistrictCode)
	return a
}

// NaturalParks retrieves natural park areas for one tile, zoom 9-15.
func (s ParksService) NaturalParks(ctx context.Context, t Tile, opts NaturalParksOptions) ([]Feature[NaturalPark], error) {
	return listNaturalParks(ctx, s, t, opts)
}

func listNaturalParks(ctx context.Context, r Requester, t Tile, opts NaturalParksOptions) ([]Feature[NaturalPark], error) {
	return fetchFeatures[NaturalPark](ctx, r, mustEndpoint("natural-parks"), opts.args(t))
}
