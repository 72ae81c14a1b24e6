package api

import "context"

// The city planning layers (区域区分, 用途地域, 立地適正化計画, 防火・準防火,
// 地区計画, 高度利用地区) share a decision-record vocabulary: who set the
// zone, when, and under which public notice.

// ZoneDivision is one 区域区分 polygon: urbanization promotion or control.
type ZoneDivision struct {
	Prefecture             string  `json:"prefecture,omitempty"`
	CityCode               string  `json:"city_code,omitempty"`
	CityName               string  `json:"city_name,omitempty"`
	KubunID                FlexInt `json:"kubun_id,omitempty"`
	DecisionDate           string  `json:"decision_date,omitempty"`
	DecisionClassification string  `json:"decision_classification,omitempty"`
	DecisionMaker          string  `json:"decision_maker,omitempty"`
	NoticeNumber           string  `json:"notice_number,omitempty"`
	AreaClassification     string  `json:"area_classification_ja,omitempty"`
	FirstDecisionDate      string  `json:"first_decision_date,omitempty"`
	NoticeNumberFirst      string  `json:"notice_number_s,omitempty"`
}

// ZoneDivisions retrieves city planning zone divisions for one tile,
// zoom 11-15.
func (s PlanningService) ZoneDivisions(ctx context.Context, t Tile) ([]Feature[ZoneDivision], error) {
	return listZoneDivisions(ctx, s, t)
}

func listZoneDivisions(ctx context.Context, r Requester, t Tile) ([]Feature[ZoneDivision], error) {
	return fetchFeatures[ZoneDivision](ctx, r, mustEndpoint("zone-divisions"), tileArgs(t))
}

// UseDistrict is one 用途地域 polygon with its permitted building ratios.
type UseDistrict struct {
	YoutoID                FlexInt `json:"youto_id,omitempty"`
	Prefecture             string  `json:"prefecture,omitempty"`
	CityCode               string  `json:"city_code,omitempty"`
	CityName               string  `json:"city_name,omitempty"`
	DecisionDate           string  `json:"decision_date,omitempty"`
	DecisionClassification string  `json:"decision_classification,omitempty"`
	DecisionMaker          string  `json:"decision_maker,omitempty"`
	NoticeNumber           string  `json:"notice_number,omitempty"`
	UseArea                string  `json:"use_area_ja,omitempty"`
	FloorAreaRatio         string  `json:"u_floor_area_ratio_ja,omitempty"`
	BuildingCoverageRatio  string  `json:"u_building_coverage_ratio_ja,omitempty"`
	FirstDecisionDate      string  `json:"first_decision_date,omitempty"`
	NoticeNumberFirst      string  `json:"notice_number_s,omitempty"`
}

// UseDistricts retrieves planning use districts for one tile, zoom 11-15.
func (s PlanningService) UseDistricts(ctx context.Context, t Tile) ([]Feature[UseDistrict], error) {
	return listUseDistricts(ctx, s, t)
}

func listUseDistricts(ctx context.Context, r Requester, t Tile) ([]Feature[UseDistrict], error) {
	return fetchFeatures[UseDistrict](ctx, r, mustEndpoint("use-districts"), tileArgs(t))
}

// LocationOptimizationArea is one 立地適正化計画 zone: a residence or urban
// function inducement area.
type LocationOptimizationArea struct {
	Prefecture             string  `json:"prefecture,omitempty"`
	CityCode               string  `json:"city_code,omitempty"`
	CityName               string  `json:"city_name,omitempty"`
	DecisionDate           string  `json:"decision_date,omitempty"`
	DecisionClassification string  `json:"decision_classification,omitempty"`
	DecisionMaker          string  `json:"decision_maker,omitempty"`
	NoticeNumber           string  `json:"notice_number,omitempty"`
	KubunID                FlexInt `json:"kubun_id,omitempty"`
	KubunName              string  `json:"kubun_name_ja,omitempty"`
	AreaClassification     string  `json:"area_classification_ja,omitempty"`
	FirstDecisionDate      string  `json:"first_decision_date,omitempty"`
	NoticeNumberFirst      string  `json:"notice_number_s,omitempty"`
}

// LocationOptimization retrieves location optimization plan areas for one
// tile, zoom 11-15.
func (s PlanningService) LocationOptimization(ctx context.Context, t Tile) ([]Feature[LocationOptimizationArea], error) {
	return listLocationOptimization(ctx, s, t)
}

func listLocationOptimization(ctx context.Context, r Requester, t Tile) ([]Feature[LocationOptimizationArea], error) {
	return fetchFeatures[LocationOptimizationArea](ctx, r, mustEndpoint("location-optimization"), tileArgs(t))
}

// FirePreventionArea is one 防火地域 or 準防火地域 polygon.
type FirePreventionArea struct {
	FirePrevention         string  `json:"fire_prevention_ja,omitempty"`
	KubunID                FlexInt `json:"kubun_id,omitempty"`
	Prefecture             string  `json:"prefecture,omitempty"`
	CityCode               string  `json:"city_code,omitempty"`
	CityName               string  `json:"city_name,omitempty"`
	DecisionDate           string  `json:"decision_date,omitempty"`
	DecisionClassification string  `json:"decision_classification,omitempty"`
	DecisionMaker          string  `json:"decision_maker,omitempty"`
	NoticeNumber           string  `json:"notice_number,omitempty"`
	FirstDecisionDate      string  `json:"first_decision_date,omitempty"`
	NoticeNumberFirst      string  `json:"notice_number_s,omitempty"`
}

// FirePreventionAreas retrieves fire prevention districts for one tile,
// zoom 11-15.
func (s PlanningService) FirePreventionAreas(ctx context.Context, t Tile) ([]Feature[FirePreventionArea], error) {
	return listFirePreventionAreas(ctx, s, t)
}

func listFirePreventionAreas(ctx context.Context, r Requester, t Tile) ([]Feature[FirePreventionArea], error) {
	return fetchFeatures[FirePreventionArea](ctx, r, mustEndpoint("fire-prevention"), tileArgs(t))
}

// DistrictPlan is one 地区計画 polygon.
type DistrictPlan struct {
	PlanName          string `json:"plan_name,omitempty"`
	PlanType          string `json:"plan_type_ja,omitempty"`
	KubunID           string `json:"kubun_id,omitempty"`
	GroupCode         string `json:"group_code,omitempty"`
	DecisionDate      string `json:"decision_date,omitempty"`
	DecisionType      string `json:"decision_type_ja,omitempty"`
	DecisionMaker     string `json:"decision_maker,omitempty"`
	NoticeNumber      string `json:"notice_number,omitempty"`
	Prefecture        string `json:"prefecture,omitempty"`
	CityName          string `json:"city_name,omitempty"`
	FirstDecisionDate string `json:"first_decision_date,omitempty"`
	NoticeNumberFirst string `json:"notice_number_s,omitempty"`
}

// DistrictPlans retrieves district planning areas for one tile, zoom 11-15.
func (s PlanningService) DistrictPlans(ctx context.Context, t Tile) ([]Feature[DistrictPlan], error) {
	return listDistrictPlans(ctx, s, t)
}

func listDistrictPlans(ctx context.Context, r Requester, t Tile) ([]Feature[DistrictPlan], error) {
	return fetchFeatures[DistrictPlan](ctx, r, mustEndpoint("district-plans"), tileArgs(t))
}

// HighUtilizationDistrict is one 高度利用地区 polygon.
type HighUtilizationDistrict struct {
	AdvancedName      string `json:"advanced_name,omitempty"`
	AdvancedType      string `json:"advanced_type_ja,omitempty"`
	KubunID           string `json:"kubun_id,omitempty"`
	GroupCode         string `json:"group_code,omitempty"`
	DecisionDate      string `json:"decision_date,omitempty"`
	DecisionType      string `json:"decision_type_ja,omitempty"`
	DecisionMaker     string `json:"decision_maker,omitempty"`
	NoticeNumber      string `json:"notice_number,omitempty"`
	Prefecture        string `json:"prefecture,omitempty"`
	CityName          string `json:"city_name,omitempty"`
	FirstDecisionDate string `json:"first_decision_date,omitempty"`
	NoticeNumberFirst string `json:"notice_number_s,omitempty"`
}

// HighUtilizationDistricts retrieves high-level land utilization districts
// for one tile, zoom 11-15.
func (s PlanningService) HighUtilizationDistricts(ctx context.Context, t Tile) ([]Feature[HighUtilizationDistrict], error) {
	return listHighUtilizationDistricts(ctx, s, t)
}

func listHighUtilizationDistricts(ctx context.Context, r Requester, t Tile) ([]Feature[HighUtilizationDistrict], error) {
	return fetchFeatures[HighUtilizationDistrict](ctx, r, mustEndpoint("high-utilization-districts"), tileArgs(t))
}
