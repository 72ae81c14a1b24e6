package schema

func init() {
	registerTransactionPrice()
	registerMunicipality()
	registerAppraisalReport()
	registerTransactionPoint()
	registerValuationPoint()
	registerFeature()
}

func registerTransactionPrice() {
	Register("transaction-price", Object(
		"A real estate transaction or contract price record",
		map[string]*Schema{
			"Type": Enum("Transaction category",
				"宅地(土地)", "宅地(土地と建物)", "中古マンション等", "農地", "林地"),
			"Region":           String("District character (residential, commercial, ...)"),
			"MunicipalityCode": String("5-digit municipality code"),
			"Prefecture":       String("Prefecture name"),
			"Municipality":     String("Municipality name"),
			"DistrictName":     String("District name"),
			"TradePrice":       Int("Total transaction price in yen"),
			"PricePerUnit":     Int("Price per tsubo in yen"),
			"FloorPlan":        String("Floor plan (2LDK, 3DK, ...)"),
			"Area":             Number("Land or unit area in square meters"),
			"UnitPrice":        Number("Price per square meter in yen"),
			"LandShape":        String("Lot shape"),
			"Frontage":         Number("Road frontage in meters"),
			"TotalFloorArea":   Number("Building total floor area in square meters"),
			"BuildingYear":     String("Construction year of the building"),
			"Structure":        String("Building structure (RC, SRC, wood, ...)"),
			"Use":              String("Current building use"),
			"Purpose":          String("Buyer's intended purpose"),
			"Direction":        String("Front road azimuth"),
			"Classification":   String("Front road classification"),
			"Breadth":          Number("Front road width in meters"),
			"CityPlanning":     String("City planning use district"),
			"CoverageRatio":    Number("Designated building coverage ratio in percent"),
			"FloorAreaRatio":   Number("Designated floor area ratio in percent"),
			"Period":           String("Transaction period, e.g. 2015年第3四半期"),
			"Renovation":       String("Renovation status"),
			"Remarks":          String("Transaction remarks"),
			"PriceCategory":    String("Price information category name"),
		},
		"Type", "PriceCategory",
	))
}

func registerMunicipality() {
	Register("municipality", Object(
		"A city, ward, town, or village within a prefecture",
		map[string]*Schema{
			"id":   String("5-digit national local government code"),
			"name": String("Municipality name"),
		},
		"id", "name",
	))
}

func registerAppraisalReport() {
	Register("appraisal-report", Object(
		"An official land appraisal of one standard lot. Upstream keys are in Japanese; only the core fields are described here",
		map[string]*Schema{
			"価格時点":            String("Valuation date"),
			"標準地番号 地域名":       String("Standard lot area name"),
			"標準地番号 用途区分":      String("Standard lot use division"),
			"標準地番号 連番":        String("Standard lot sequence number"),
			"1㎡当たりの価格":        Number("Appraised price per square meter in yen"),
			"標準地 所在地 所在地番":    String("Lot address"),
			"標準地 地積 地積":       Number("Lot area in square meters"),
			"標準地 形状 形状":       String("Lot shape"),
			"標準地 土地利用の現況 現況":  String("Current land use"),
			"標準地 周辺の利用状況":     String("Surrounding land use"),
			"標準地 法令上の規制等 用途地域": String("Designated use district"),
			"公示価格":            Number("Published official land price in yen"),
			"変動率":             Number("Year-on-year change rate"),
			"位置座標 緯度":         Number("Latitude"),
			"位置座標 経度":         Number("Longitude"),
		},
		"価格時点",
	))
}

func registerTransactionPoint() {
	Register("transaction-point", Object(
		"Feature properties of one geocoded transaction price. u_-prefixed upstream keys carry display-formatted strings",
		map[string]*Schema{
			"point_in_time_name_ja":                  String("Transaction period"),
			"price_information_category_name_ja":     String("Price information category"),
			"prefecture_name_ja":                     String("Prefecture name"),
			"city_code":                              String("5-digit municipality code"),
			"city_name_ja":                           String("Municipality name"),
			"district_name_ja":                       String("District name"),
			"transaction_contents_name_ja":           String("Transaction contents"),
			"u_transaction_price_total_ja":           String("Total price, display formatted"),
			"u_transaction_price_unit_price_square_meter_ja": String("Price per square meter, display formatted"),
			"u_area_ja":                              String("Area, display formatted"),
			"land_shape_name_ja":                     String("Lot shape"),
			"building_structure_name_ja":             String("Building structure"),
			"floor_plan_name_ja":                     String("Floor plan"),
			"u_construction_year_ja":                 String("Construction year, display formatted"),
			"front_road_azimuth_name_ja":             String("Front road azimuth"),
			"front_road_type_name_ja":                String("Front road type"),
			"land_use_name_ja":                       String("City planning land use"),
			"u_building_coverage_ratio_ja":           String("Building coverage ratio, display formatted"),
			"u_floor_area_ratio_ja":                  String("Floor area ratio, display formatted"),
		},
	))
}

func registerValuationPoint() {
	Register("valuation-point", Object(
		"Feature properties of one official land valuation point",
		map[string]*Schema{
			"point_id":                 Int("Valuation point identifier"),
			"target_year_name_ja":      String("Valuation year"),
			"land_price_type":          Int("1 for 地価公示, 2 for 都道府県地価調査"),
			"duplication_flag":         String("Set when the point appears in both surveys"),
			"prefecture_code":          String("2-digit prefecture code"),
			"prefecture_name_ja":       String("Prefecture name"),
			"city_code":                String("5-digit municipality code"),
			"use_category_name_ja":     String("Use category (住宅地, 商業地, ...)"),
			"standard_lot_number_ja":   String("Standard lot number"),
			"place_name_ja":            String("Place name"),
			"u_current_years_price_ja": String("Current year price, display formatted"),
			"last_years_price":         Int("Previous year price in yen per square meter"),
			"year_on_year_change_rate": Number("Price change rate over the previous year"),
			"u_cadastral_ja":           String("Lot area, display formatted"),
			"building_structure_name_ja": String("Building structure"),
			"front_road_name_ja":       String("Front road"),
			"front_road_width":         Number("Front road width in meters"),
			"nearest_station_name_ja":  String("Nearest station"),
			"usage_status_name_ja":     String("Current usage"),
			"area_division_name_ja":    String("City planning area division"),
		},
		"point_id",
	))
}

func registerFeature() {
	Register("feature", Object(
		"A GeoJSON feature as returned by the tile endpoints",
		map[string]*Schema{
			"type": Enum("GeoJSON object type", "Feature"),
			"geometry": Object("Feature geometry", map[string]*Schema{
				"type": Enum("Geometry type",
					"Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon"),
				"coordinates": Array(Number("Coordinate value"), "Nested coordinate arrays, shape depends on the geometry type"),
			}, "type", "coordinates"),
			"properties": Map("Layer-specific feature properties"),
		},
		"type", "geometry", "properties",
	))
}
