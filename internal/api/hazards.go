package api

import "context"

// DisasterRiskArea is one 災害危険区域 polygon (A48 layer).
type DisasterRiskArea struct {
	Prefecture             string    `json:"A48_001,omitempty"`
	CityName               string    `json:"A48_002,omitempty"`
	AdministrativeAreaCode string    `json:"A48_003,omitempty"`
	DesignatorClass        FlexInt   `json:"A48_004,omitempty"`
	Name                   string    `json:"A48_005_ja,omitempty"`
	Address                string    `json:"A48_006,omitempty"`
	ReasonCode             FlexInt   `json:"A48_007,omitempty"`
	Reason                 string    `json:"A48_007_name_ja,omitempty"`
	ReasonDetail           string    `json:"A48_008_ja,omitempty"`
	NoticeDate             string    `json:"A48_009,omitempty"`
	NoticeNumber           string    `json:"A48_010,omitempty"`
	Ordinance              string    `json:"A48_011,omitempty"`
	Area                   FlexFloat `json:"A48_012,omitempty"`
	Scale                  string    `json:"A48_013,omitempty"`
	Note                   string    `json:"A48_014,omitempty"`
}

// HazardAreaOptions narrows a hazard layer to given municipalities.
type HazardAreaOptions struct {
	AdministrativeAreaCode string // comma-separated 5-digit codes
}

func (o HazardAreaOptions) args(t Tile) args {
	a := tileArgs(t)
	a.set("administrativeAreaCode", o.AdministrativeAreaCode)
	return a
}

// DisasterRiskAreas retrieves disaster risk areas for one tile, zoom 11-15.
func (s HazardsService) DisasterRiskAreas(ctx context.Context, t Tile, opts HazardAreaOptions) ([]Feature[DisasterRiskArea], error) {
	return listDisasterRiskAreas(ctx, s, t, opts)
}

func listDisasterRiskAreas(ctx context.Context, r Requester, t Tile, opts HazardAreaOptions) ([]Feature[DisasterRiskArea], error) {
	return fetchFeatures[DisasterRiskArea](ctx, r, mustEndpoint("disaster-risk-areas"), opts.args(t))
}

// EmbankmentArea is one large-scale filled land polygon.
type EmbankmentArea struct {
	Classification   string `json:"embankment_classification,omitempty"`
	PrefectureCode   string `json:"prefecture_code,omitempty"`
	PrefectureName   string `json:"prefecture_name,omitempty"`
	CityCode         string `json:"city_code,omitempty"`
	CityName         string `json:"city_name,omitempty"`
	EmbankmentNumber string `json:"embankment_number,omitempty"`
}

// EmbankmentAreas retrieves large-scale filled land areas for one tile,
// zoom 11-15.
func (s HazardsService) EmbankmentAreas(ctx context.Context, t Tile) ([]Feature[EmbankmentArea], error) {
	return listEmbankmentAreas(ctx, s, t)
}

func listEmbankmentAreas(ctx context.Context, r Requester, t Tile) ([]Feature[EmbankmentArea], error) {
	return fetchFeatures[EmbankmentArea](ctx, r, mustEndpoint("embankment-areas"), tileArgs(t))
}

// LandslideArea is one 地すべり防止地区 polygon.
type LandslideArea struct {
	PrefectureCode     string  `json:"prefecture_code,omitempty"`
	GroupCode          string  `json:"group_code,omitempty"`
	CityName           string  `json:"city_name,omitempty"`
	RegionName         string  `json:"region_name,omitempty"`
	Address            string  `json:"address,omitempty"`
	NoticeDate         string  `json:"notice_date,omitempty"`
	NoticeNumber       string  `json:"notice_number,omitempty"`
	Area               string  `json:"landslide_area,omitempty"`
	ChargeMinistryCode FlexInt `json:"charge_ministry_code,omitempty"`
	PrefectureName     string  `json:"prefecture_name,omitempty"`
	ChargeMinistryName string  `json:"charge_ministry_name,omitempty"`
}

// SlopeAreaOptions narrows a slope hazard layer by prefecture or
// municipality.
type SlopeAreaOptions struct {
	PrefectureCode         string // comma-separated 2-digit codes
	AdministrativeAreaCode string // comma-separated 5-digit codes
}

func (o SlopeAreaOptions) args(t Tile) args {
	a := tileArgs(t)
	a.set("prefectureCode", o.PrefectureCode)
	a.set("administrativeAreaCode", o.AdministrativeAreaCode)
	return a
}

// LandslideAreas retrieves landslide prevention districts for one tile,
// zoom 11-15.
func (s HazardsService) LandslideAreas(ctx context.Context, t Tile, opts SlopeAreaOptions) ([]Feature[LandslideArea], error) {
	return listLandslideAreas(ctx, s, t, opts)
}

func listLandslideAreas(ctx context.Context, r Requester, t Tile, opts SlopeAreaOptions) ([]Feature[LandslideArea], error) {
	return fetchFeatures[LandslideArea](ctx, r, mustEndpoint("landslide-areas"), opts.args(t))
}

// SteepSlopeArea is one 急傾斜地崩壊危険区域 polygon.
type SteepSlopeArea struct {
	PrefectureCode     string `json:"prefecture_code,omitempty"`
	GroupCode          string `json:"group_code,omitempty"`
	CityName           string `json:"city_name,omitempty"`
	RegionName         string `json:"region_name,omitempty"`
	Address            string `json:"address,omitempty"`
	PublicNoticeDate   string `json:"public_notice_date,omitempty"`
	PublicNoticeNumber string `json:"public_notice_number,omitempty"`
	Area               string `json:"landslide_area,omitempty"`
	PrefectureName     string `json:"prefecture_name,omitempty"`
}

// SteepSlopeAreas retrieves steep slope failure danger districts for one
// tile, zoom 11-15.
func (s HazardsService) SteepSlopeAreas(ctx context.Context, t Tile, opts SlopeAreaOptions) ([]Feature[SteepSlopeArea], error) {
	return listSteepSlopeAreas(ctx, s, t, opts)
}

func listSteepSlopeAreas(ctx context.Context, r Requester, t Tile, opts SlopeAreaOptions) ([]Feature[SteepSlopeArea], error) {
	return fetchFeatures[SteepSlopeArea](ctx, r, mustEndpoint("steep-slope-areas"), opts.args(t))
}
