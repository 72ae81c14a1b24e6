package api

import "context"

// ElementarySchoolDistrict is one 小学校区 polygon from the national land
// survey (A27 layer).
type ElementarySchoolDistrict struct {
	AdministrativeAreaCode string `json:"A27_001,omitempty"`
	Operator               string `json:"A27_002,omitempty"`
	SchoolCode             string `json:"A27_003,omitempty"`
	Name                   string `json:"A27_004_ja,omitempty"`
	Address                string `json:"A27_005,omitempty"`
}

// SchoolDistrictsOptions narrows a district layer to given municipalities.
type SchoolDistrictsOptions struct {
	AdministrativeAreaCode string // comma-separated 5-digit codes
}

func (o SchoolDistrictsOptions) args(t Tile) args {
	a := tileArgs(t)
	a.set("administrativeAreaCode", o.AdministrativeAreaCode)
	return a
}

// ElementaryDistricts retrieves elementary school districts for one tile,
// zoom 11-15.
func (s SchoolsService) ElementaryDistricts(ctx context.Context, t Tile, opts SchoolDistrictsOptions) ([]Feature[ElementarySchoolDistrict], error) {
	return listElementaryDistricts(ctx, s, t, opts)
}

func listElementaryDistricts(ctx context.Context, r Requester, t Tile, opts SchoolDistrictsOptions) ([]Feature[ElementarySchoolDistrict], error) {
	return fetchFeatures[ElementarySchoolDistrict](ctx, r, mustEndpoint("elementary-school-districts"), opts.args(t))
}

// JuniorHighSchoolDistrict is one 中学校区 polygon (A32 layer).
type JuniorHighSchoolDistrict struct {
	AdministrativeAreaCode string `json:"A32_001,omitempty"`
	Operator               string `json:"A32_002,omitempty"`
	SchoolCode             string `json:"A32_003,omitempty"`
	Name                   string `json:"A32_004_ja,omitempty"`
	Address                string `json:"A32_005,omitempty"`
}

// JuniorHighDistricts retrieves junior high school districts for one tile,
// zoom 11-15.
func (s SchoolsService) JuniorHighDistricts(ctx context.Context, t Tile, opts SchoolDistrictsOptions) ([]Feature[JuniorHighSchoolDistrict], error) {
	return listJuniorHighDistricts(ctx, s, t, opts)
}

func listJuniorHighDistricts(ctx context.Context, r Requester, t Tile, opts SchoolDistrictsOptions) ([]Feature[JuniorHighSchoolDistrict], error) {
	return fetchFeatures[JuniorHighSchoolDistrict](ctx, r, mustEndpoint("junior-high-school-districts"), opts.args(t))
}

// School is one school location point (P29 layer).
type School struct {
	AdministrativeAreaCode string  `json:"P29_001,omitempty"`
	SchoolCode             string  `json:"P29_002,omitempty"`
	ClassCode              FlexInt `json:"P29_003,omitempty"`
	ClassName              string  `json:"P29_003_name_ja,omitempty"`
	Name                   string  `json:"P29_004_ja,omitempty"`
	Address                string  `json:"P29_005_ja,omitempty"`
	AdministratorCode      FlexInt `json:"P29_006,omitempty"`
	CloseClass             FlexInt `json:"P29_007,omitempty"`
	CampusCode             string  `json:"P29_008,omitempty"`
	Remark                 string  `json:"P29_009_ja,omitempty"`
}

// List retrieves school locations for one tile, zoom 13-15.
func (s SchoolsService) List(ctx context.Context, t Tile) ([]Feature[School], error) {
	return listSchools(ctx, s, t)
}

func listSchools(ctx context.Context, r Requester, t Tile) ([]Feature[School], error) {
	return fetchFeatures[School](ctx, r, mustEndpoint("schools"), tileArgs(t))
}

// Preschool is one kindergarten, certified child center, or nursery point.
// Kindergartens carry the school* fields, nurseries the welfare* codes.
type Preschool struct {
	AdministrativeAreaCode string  `json:"administrativeAreaCode,omitempty"`
	Name                   string  `json:"preSchoolName_ja,omitempty"`
	SchoolCode             string  `json:"schoolCode,omitempty"`
	ClassCode              FlexInt `json:"schoolClassCode,omitempty"`
	ClassName              string  `json:"schoolClassCode_name_ja,omitempty"`
	Address                string  `json:"location_ja,omitempty"`
	AdministratorCode      FlexInt `json:"administratorCode,omitempty"`
	CloseSchoolCode        FlexInt `json:"closeSchoolCode,omitempty"`

	WelfareClassCode       FlexInt `json:"welfareFacilityClassCode,omitempty"`
	WelfareMiddleClassCode FlexInt `json:"welfareFacilityMiddleClassCode,omitempty"`
	WelfareMinorClassCode  FlexInt `json:"welfareFacilityMinorClassCode,omitempty"`
}

// Preschools retrieves preschool and nursery locations for one tile,
// zoom 13-15.
func (s SchoolsService) Preschools(ctx context.Context, t Tile) ([]Feature[Preschool], error) {
	return listPreschools(ctx, s, t)
}

func listPreschools(ctx context.Context, r Requester, t Tile) ([]Feature[Preschool], error) {
	return fetchFeatures[Preschool](ctx, r, mustEndpoint("preschools"), tileArgs(t))
}
