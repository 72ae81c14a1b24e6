package api

import "context"

// TransactionPrice is one record from the transaction price search. The
// upstream serializes every value as a string; Flex types recover the
// numerics. Price fields are in yen, areas in square meters.
type TransactionPrice struct {
	Type             string    `json:"Type"`
	Region           string    `json:"Region,omitempty"`
	MunicipalityCode string    `json:"MunicipalityCode,omitempty"`
	Prefecture       string    `json:"Prefecture,omitempty"`
	Municipality     string    `json:"Municipality,omitempty"`
	DistrictName     string    `json:"DistrictName,omitempty"`
	TradePrice       FlexInt   `json:"TradePrice,omitempty"`
	PricePerUnit     FlexInt   `json:"PricePerUnit,omitempty"`
	FloorPlan        string    `json:"FloorPlan,omitempty"`
	Area             FlexFloat `json:"Area,omitempty"`
	UnitPrice        FlexFloat `json:"UnitPrice,omitempty"`
	LandShape        string    `json:"LandShape,omitempty"`
	Frontage         FlexFloat `json:"Frontage,omitempty"`
	TotalFloorArea   FlexFloat `json:"TotalFloorArea,omitempty"`
	BuildingYear     string    `json:"BuildingYear,omitempty"`
	Structure        string    `json:"Structure,omitempty"`
	Use              string    `json:"Use,omitempty"`
	Purpose          string    `json:"Purpose,omitempty"`
	Direction        string    `json:"Direction,omitempty"`
	Classification   string    `json:"Classification,omitempty"`
	Breadth          FlexFloat `json:"Breadth,omitempty"`
	CityPlanning     string    `json:"CityPlanning,omitempty"`
	CoverageRatio    FlexFloat `json:"CoverageRatio,omitempty"`
	FloorAreaRatio   FlexFloat `json:"FloorAreaRatio,omitempty"`
	Period           string    `json:"Period,omitempty"`
	Renovation       string    `json:"Renovation,omitempty"`
	Remarks          string    `json:"Remarks,omitempty"`
	PriceCategory    string    `json:"PriceCategory"`
}

// TransactionPricesOptions filters the transaction price search. Year is
// required; everything else narrows the result.
type TransactionPricesOptions struct {
	Year                int    // transaction year, 2005 or later
	Quarter             int    // 1-4
	Area                string // 2-digit prefecture code
	City                string // 5-digit municipality code
	Station             string // 6-digit station group code
	PriceClassification string // "01" transactions, "02" contract prices
	Language            string // "ja" (default) or "en"
}

func (o TransactionPricesOptions) args() args {
	a := args{}
	a.setInt("year", o.Year)
	a.setInt("quarter", o.Quarter)
	a.set("area", o.Area)
	a.set("city", o.City)
	a.set("station", o.Station)
	a.set("priceClassification", o.PriceClassification)
	a.set("language", o.Language)
	return a
}

// Transactions retrieves transaction and contract price records.
func (s PricesService) Transactions(ctx context.Context, opts TransactionPricesOptions) ([]TransactionPrice, error) {
	return listTransactionPrices(ctx, s, opts)
}

func listTransactionPrices(ctx context.Context, r Requester, opts TransactionPricesOptions) ([]TransactionPrice, error) {
	return fetchData[TransactionPrice](ctx, r, mustEndpoint("transaction-prices"), opts.args())
}

// AppraisalReport is one official land appraisal. The upstream keys these
// records in Japanese, space-separated by report section; the tags below
// carry those keys verbatim.
type AppraisalReport struct {
	PriceDate                   string    `json:"価格時点,omitempty"`
	StandardLotPrefectureCode   string    `json:"標準地番号 市区町村コード 県コード,omitempty"`
	StandardLotMunicipalityCode string    `json:"標準地番号 市区町村コード 市区町村コード,omitempty"`
	StandardLotAreaName         string    `json:"標準地番号 地域名,omitempty"`
	StandardLotUseCategory      string    `json:"標準地番号 用途区分,omitempty"`
	StandardLotSequence         string    `json:"標準地番号 連番,omitempty"`
	PricePerSquareMeter         FlexFloat `json:"1㎡当たりの価格,omitempty"`
	RoadsidePriceYear           FlexInt   `json:"路線価 年,omitempty"`
	RoadsidePrice               FlexFloat `json:"路線価 相続税路線価,omitempty"`
	RoadsideMultiplier          FlexFloat `json:"路線価 倍率,omitempty"`
	RoadsideMultiplierType      string    `json:"路線価 倍率種別,omitempty"`
	LotAddress                  string    `json:"標準地 所在地 所在地番,omitempty"`
	LotResidenceDisplay         string    `json:"標準地 所在地 住居表示,omitempty"`
	LotProvisionalNumber        string    `json:"標準地 所在地 仮換地番号,omitempty"`
	LotArea                     FlexFloat `json:"標準地 地積 地積,omitempty"`
	LotPrivateRoadArea          FlexFloat `json:"標準地 地積 内私道分,omitempty"`
	LotShape                    string    `json:"標準地 形状 形状,omitempty"`
	LotShapeFrontage            FlexFloat `json:"標準地 形状 形状比 間口,omitempty"`
	LotShapeDepth               FlexFloat `json:"標準地 形状 形状比 奥行,omitempty"`
	LotDirection                string    `json:"標準地 形状 方位,omitempty"`
	LotLevelness                string    `json:"標準地 形状 平坦,omitempty"`
	LotSlope                    FlexFloat `json:"標準地 形状 傾斜度,omitempty"`
	LandUseCurrent              string    `json:"標準地 土地利用の現況 現況,omitempty"`
	LandUseStructure            string    `json:"標準地 土地利用の現況 構造,omitempty"`
	LandUseFloorsAbove          FlexInt   `json:"標準地 土地利用の現況 地上階数,omitempty"`
	LandUseFloorsBelow          FlexInt   `json:"標準地 土地利用の現況 地下階数,omitempty"`
	SurroundingUse              string    `json:"標準地 周辺の利用状況,omitempty"`
	FrontRoadDirection          string    `json:"標準地 接面道路の状況 前面道路 方位,omitempty"`
	FrontRoadStationFront       string    `json:"標準地 接面道路の状況 前面道路 駅前区分,omitempty"`
	FrontRoadElevation          string    `json:"標準地 接面道路の状況 前面道路 高低位置,omitempty"`
	FrontRoadWidth              FlexFloat `json:"標準地 接面道路の状況 前面道路 道路幅員,omitempty"`
	FrontRoadPavement           string    `json:"標準地 接面道路の状況 前面道路 舗装状況,omitempty"`
	FrontRoadType               string    `json:"標準地 接面道路の状況 前面道路 道路種別,omitempty"`
	SideRoadDirection           string    `json:"標準地 接面道路の状況 側道方位,omitempty"`
	SideRoadContact             string    `json:"標準地 接面道路の状況 側道等接面状況,omitempty"`
	UtilityWater                FlexInt   `json:"標準地 供給処理施設 水道,omitempty"`
	UtilityGas                  FlexInt   `json:"標準地 供給処理施設 ガス,omitempty"`
	UtilitySewer                FlexInt   `json:"標準地 供給処理施設 下水道,omitempty"`
	TransitFacility             string    `json:"標準地 交通施設の状況 交通施設,omitempty"`
	TransitDistance             FlexFloat `json:"標準地 交通施設の状況 距離,omitempty"`
	TransitProximity            string    `json:"標準地 交通施設の状況 近接区分,omitempty"`
	RegulationAreaDivision      string    `json:"標準地 法令上の規制等 区域区分,omitempty"`
	RegulationUseDistrict       string    `json:"標準地 法令上の規制等 用途地域,omitempty"`
	RegulationCoverageRatio     FlexInt   `json:"標準地 法令上の規制等 指定建ぺい率,omitempty"`
	RegulationFloorAreaRatio    FlexInt   `json:"標準地 法令上の規制等 指定容積率,omitempty"`
	RegulationFireZone          string    `json:"標準地 法令上の規制等 防火地域,omitempty"`
	RegulationForestLaw         string    `json:"標準地 法令上の規制等 森林法,omitempty"`
	RegulationParkLaw           string    `json:"標準地 法令上の規制等 自然公園法,omitempty"`
	RegulationOtherZone1        string    `json:"標準地 法令上の規制等 その他 その他地域地区等1,omitempty"`
	RegulationOtherZone2        string    `json:"標準地 法令上の規制等 その他 その他地域地区等2,omitempty"`
	RegulationOtherZone3        string    `json:"標準地 法令上の規制等 その他 その他地域地区等3,omitempty"`
	HeightDistrict1Type         string    `json:"標準地 法令上の規制等 その他 高度地区1 種,omitempty"`
	HeightDistrict1Class        string    `json:"標準地 法令上の規制等 その他 高度地区1 高度区分,omitempty"`
	HeightDistrict1Height       FlexFloat `json:"標準地 法令上の規制等 その他 高度地区1 高度,omitempty"`
	HeightDistrict2Type         string    `json:"標準地 法令上の規制等 その他 高度地区2 種,omitempty"`
	HeightDistrict2Class        string    `json:"標準地 法令上の規制等 その他 高度地区2 高度区分,omitempty"`
	HeightDistrict2Height       FlexFloat `json:"標準地 法令上の規制等 その他 高度地区2 高度,omitempty"`
	RegulationBaseCoverage      FlexInt   `json:"標準地 法令上の規制等 基準建ぺい率,omitempty"`
	RegulationBaseFloorArea     FlexInt   `json:"標準地 法令上の規制等 基準容積率,omitempty"`
	NatureCode1                 string    `json:"標準地 法令上の規制等 自然環境等コード1,omitempty"`
	NatureCode2                 string    `json:"標準地 法令上の規制等 自然環境等コード2,omitempty"`
	NatureCode3                 string    `json:"標準地 法令上の規制等 自然環境等コード3,omitempty"`
	NatureNote                  string    `json:"標準地 法令上の規制等 自然環境等文言,omitempty"`
	ComparisonPrice             FlexFloat `json:"鑑定評価手法の適用 取引事例比較法比準価格,omitempty"`
	DeductionPrice              FlexFloat `json:"鑑定評価手法の適用 控除法 控除後価格,omitempty"`
	IncomePrice                 FlexFloat `json:"鑑定評価手法の適用 収益還元法 収益価格,omitempty"`
	CostPrice                   FlexFloat `json:"鑑定評価手法の適用 原価法 積算価格,omitempty"`
	DevelopmentPrice            FlexFloat `json:"鑑定評価手法の適用 開発法 開発法による価格,omitempty"`
	PublishedPrice              FlexFloat `json:"公示価格,omitempty"`
	ChangeRate                  FlexFloat `json:"変動率,omitempty"`
	Latitude                    FlexFloat `json:"位置座標 緯度,omitempty"`
	Longitude                   FlexFloat `json:"位置座標 経度,omitempty"`
}

// AppraisalReportsOptions selects one year, prefecture, and use division.
// All three are required upstream.
type AppraisalReportsOptions struct {
	Year     int    // valuation year
	Area     string // 2-digit prefecture code
	Division string // 2-digit use division, "00" residential through "07" forest
}

func (o AppraisalReportsOptions) args() args {
	a := args{}
	a.setInt("year", o.Year)
	a.set("area", o.Area)
	a.set("division", o.Division)
	return a
}

// AppraisalReports retrieves official land appraisal reports.
func (s PricesService) AppraisalReports(ctx context.Context, opts AppraisalReportsOptions) ([]AppraisalReport, error) {
	return listAppraisalReports(ctx, s, opts)
}

func listAppraisalReports(ctx context.Context, r Requester, opts AppraisalReportsOptions) ([]AppraisalReport, error) {
	return fetchData[AppraisalReport](ctx, r, mustEndpoint("appraisal-reports"), opts.args())
}

// TransactionPoint is the property set of one geocoded transaction. Keys
// prefixed u_ carry display-formatted values and stay strings.
type TransactionPoint struct {
	PointInTime             string `json:"point_in_time_name_ja,omitempty"`
	PriceCategory           string `json:"price_information_category_name_ja,omitempty"`
	Prefecture              string `json:"prefecture_name_ja,omitempty"`
	CityCode                string `json:"city_code,omitempty"`
	CityName                string `json:"city_name_ja,omitempty"`
	DistrictCode            string `json:"district_code,omitempty"`
	DistrictName            string `json:"district_name_ja,omitempty"`
	TransactionContents     string `json:"transaction_contents_name_ja,omitempty"`
	TradePriceTotal         string `json:"u_transaction_price_total_ja,omitempty"`
	TradePricePerSquare     string `json:"u_transaction_price_unit_price_square_meter_ja,omitempty"`
	UnitPricePerTsubo       string `json:"u_unit_price_per_tsubo_ja,omitempty"`
	Area                    string `json:"u_area_ja,omitempty"`
	LandShape               string `json:"land_shape_name_ja,omitempty"`
	Frontage                string `json:"u_land_frontage_ja,omitempty"`
	BuildingStructure       string `json:"building_structure_name_ja,omitempty"`
	FloorPlan               string `json:"floor_plan_name_ja,omitempty"`
	BuildingTotalFloorArea  string `json:"u_building_total_floor_area_ja,omitempty"`
	ConstructionYear        string `json:"u_construction_year_ja,omitempty"`
	FrontRoadAzimuth        string `json:"front_road_azimuth_name_ja,omitempty"`
	FrontRoadWidth          string `json:"u_front_road_width_ja,omitempty"`
	FrontRoadType           string `json:"front_road_type_name_ja,omitempty"`
	LandUse                 string `json:"land_use_name_ja,omitempty"`
	BuildingCoverageRatio   string `json:"u_building_coverage_ratio_ja,omitempty"`
	FloorAreaRatio          string `json:"u_floor_area_ratio_ja,omitempty"`
	FutureUsePurpose        string `json:"future_use_purpose_name_ja,omitempty"`
	RemarkRenovation        string `json:"remark_renovation_name_ja,omitempty"`
}

// TransactionPointsOptions selects the tile and quarter range for geocoded
// transaction prices. From and To are YYYYN quarter stamps, 20053 onward.
type TransactionPointsOptions struct {
	From                string // e.g. "20151" for 2015 Q1
	To                  string
	PriceClassification string // "01" transactions, "02" contract prices
	LandTypeCode        string // comma-separated 2-digit codes, e.g. "01,02"
}

func (o TransactionPointsOptions) args(t Tile) args {
	a := args{}
	t.coords(a)
	a.set("response_format", formatGeoJSON)
	a.set("from", o.From)
	a.set("to", o.To)
	a.set("priceClassification", o.PriceClassification)
	a.set("landTypeCode", o.LandTypeCode)
	return a
}

// TransactionPoints retrieves geocoded transaction prices for one tile,
// zoom 11-15.
func (s PricesService) TransactionPoints(ctx context.Context, t Tile, opts TransactionPointsOptions) ([]Feature[TransactionPoint], error) {
	return listTransactionPoints(ctx, s, t, opts)
}

func listTransactionPoints(ctx context.Context, r Requester, t Tile, opts TransactionPointsOptions) ([]Feature[TransactionPoint], error) {
	return fetchFeatures[TransactionPoint](ctx, r, mustEndpoint("transaction-points"), opts.args(t))
}

// ValuationPoint is the property set of one official land valuation point
// (公示価格 / 都道府県地価調査).
type ValuationPoint struct {
	PointID                FlexInt   `json:"point_id,omitempty"`
	TargetYear             string    `json:"target_year_name_ja,omitempty"`
	LandPriceType          FlexInt   `json:"land_price_type,omitempty"`
	DuplicationFlag        string    `json:"duplication_flag,omitempty"`
	PrefectureCode         string    `json:"prefecture_code,omitempty"`
	Prefecture             string    `json:"prefecture_name_ja,omitempty"`
	CityCode               string    `json:"city_code,omitempty"`
	UseCategory            string    `json:"use_category_name_ja,omitempty"`
	StandardLotNumber      string    `json:"standard_lot_number_ja,omitempty"`
	CityCountyName         string    `json:"city_county_name_ja,omitempty"`
	WardTownVillageName    string    `json:"ward_town_village_name_ja,omitempty"`
	PlaceName              string    `json:"place_name_ja,omitempty"`
	ResidenceDisplay       string    `json:"residence_display_name_ja,omitempty"`
	LocationNumber         string    `json:"location_number_ja,omitempty"`
	CurrentPrice           string    `json:"u_current_years_price_ja,omitempty"`
	LastYearPrice          FlexInt   `json:"last_years_price,omitempty"`
	YearOnYearChange       FlexFloat `json:"year_on_year_change_rate,omitempty"`
	Cadastral              string    `json:"u_cadastral_ja,omitempty"`
	FrontageRatio          FlexFloat `json:"frontage_ratio,omitempty"`
	DepthRatio             FlexFloat `json:"depth_ratio,omitempty"`
	BuildingStructure      string    `json:"building_structure_name_ja,omitempty"`
	GroundFloors           string    `json:"u_ground_hierarchy_ja,omitempty"`
	UndergroundFloors      string    `json:"u_underground_hierarchy_ja,omitempty"`
	FrontRoad              string    `json:"front_road_name_ja,omitempty"`
	FrontRoadAzimuth       string    `json:"front_road_azimuth_name_ja,omitempty"`
	FrontRoadWidth         FlexFloat `json:"front_road_width,omitempty"`
	FrontRoadPavement      string    `json:"front_road_pavement_condition,omitempty"`
	SideRoadAzimuth        string    `json:"side_road_azimuth_name_ja,omitempty"`
	SideRoad               string    `json:"side_road_name_ja,omitempty"`
	GasSupply              string    `json:"gas_supply_availability,omitempty"`
	WaterSupply            string    `json:"water_supply_availability,omitempty"`
	SewerSupply            string    `json:"sewer_supply_availability,omitempty"`
	NearestStation         string    `json:"nearest_station_name_ja,omitempty"`
	TransitProximity       string    `json:"proximity_to_transportation_facilities,omitempty"`
	DistanceToStation      string    `json:"u_road_distance_to_nearest_station_name_ja,omitempty"`
	UsageStatus            string    `json:"usage_status_name_ja,omitempty"`
	SurroundingUsage       string    `json:"current_usage_status_of_surrounding_land_name_ja,omitempty"`
	AreaDivision           string    `json:"area_division_name_ja,omitempty"`
	RegulationUseCategory  string    `json:"regulations_use_category_name_ja,omitempty"`
	RegulationHeight       string    `json:"regulations_altitude_district_name_ja,omitempty"`
	RegulationFireproof    string    `json:"regulations_fireproof_name_ja,omitempty"`
	RegulationCoverage     string    `json:"u_regulations_building_coverage_ratio_ja,omitempty"`
	RegulationFloorArea    string    `json:"u_regulations_floor_area_ratio_ja,omitempty"`
	RegulationForestLaw    string    `json:"regulations_forest_law_name_ja,omitempty"`
	RegulationParkLaw      string    `json:"regulations_park_law_name_ja,omitempty"`
	PauseFlag              FlexInt   `json:"pause_flag,omitempty"`
	UsageCategory          string    `json:"usage_category_name_ja,omitempty"`
	Location               string    `json:"location,omitempty"`
	Shape                  string    `json:"shape,omitempty"`
	FrontRoadCondition     string    `json:"front_road_condition,omitempty"`
	SideRoadCondition      string    `json:"side_road_condition,omitempty"`
	ParkForestLaw          string    `json:"park_forest_law,omitempty"`
}

// ValuationPointsOptions selects the tile and year for valuation points.
type ValuationPointsOptions struct {
	Year                int    // 1970-2024
	PriceClassification string // "0" both, "1" 公示価格, "2" 調査価格
	UseCategoryCode     string // comma-separated 2-digit codes
}

func (o ValuationPointsOptions) args(t Tile) args {
	a := args{}
	t.coords(a)
	a.set("response_format", formatGeoJSON)
	a.setInt("year", o.Year)
	a.set("priceClassification", o.PriceClassification)
	a.set("useCategoryCode", o.UseCategoryCode)
	return a
}

// ValuationPoints retrieves official land valuation points for one tile,
// zoom 13-15.
func (s PricesService) ValuationPoints(ctx context.Context, t Tile, opts ValuationPointsOptions) ([]Feature[ValuationPoint], error) {
	return listValuationPoints(ctx, s, t, opts)
}

func listValuationPoints(ctx context.Context, r Requester, t Tile, opts ValuationPointsOptions) ([]Feature[ValuationPoint], error) {
	return fetchFeatures[ValuationPoint](ctx, r, mustEndpoint("valuation-points"), opts.args(t))
}
