package api

import "context"

// MedicalFacility is one hospital or clinic point (P04 layer).
type MedicalFacility struct {
	ClassCode        FlexInt `json:"P04_001,omitempty"`
	ClassName        string  `json:"P04_001_name_ja,omitempty"`
	Name             string  `json:"P04_002_ja,omitempty"`
	Address          string  `json:"P04_003_ja,omitempty"`
	Department1      string  `json:"P04_004,omitempty"`
	Department2      string  `json:"P04_005,omitempty"`
	Department3      string  `json:"P04_006,omitempty"`
	FounderClass     FlexInt `json:"P04_007,omitempty"`
	BedCount         FlexInt `json:"P04_008,omitempty"`
	EmergencyNotice  FlexInt `json:"P04_009,omitempty"`
	DisasterBase     FlexInt `json:"P04_010,omitempty"`
	Departments      string  `json:"medical_subject_ja,omitempty"`
}

// Medical retrieves medical facility locations for one tile, zoom 13-15.
func (s FacilitiesService) Medical(ctx context.Context, t Tile) ([]Feature[MedicalFacility], error) {
	return listMedicalFacilities(ctx, s, t)
}

func listMedicalFacilities(ctx context.Context, r Requester, t Tile) ([]Feature[MedicalFacility], error) {
	return fetchFeatures[MedicalFacility](ctx, r, mustEndpoint("medical-facilities"), tileArgs(t))
}

// WelfareFacility is one welfare facility point (P14 layer).
type WelfareFacility struct {
	Prefecture             string  `json:"P14_001,omitempty"`
	CityName               string  `json:"P14_002,omitempty"`
	AdministrativeAreaCode string  `json:"P14_003,omitempty"`
	Address                string  `json:"P14_004_ja,omitempty"`
	ClassCode              string  `json:"P14_005,omitempty"`
	ClassName              string  `json:"P14_005_name_ja,omitempty"`
	MiddleClassCode        string  `json:"P14_006,omitempty"`
	MiddleClassName        string  `json:"P14_006_name_ja,omitempty"`
	MinorClassCode         string  `json:"P14_007,omitempty"`
	Name                   string  `json:"P14_008_ja,omitempty"`
	AdministratorCode      FlexInt `json:"P14_009,omitempty"`
	AccuracyCode           FlexInt `json:"P14_010,omitempty"`
}

// WelfareOptions narrows the welfare layer by municipality and class.
type WelfareOptions struct {
	AdministrativeAreaCode string // comma-separated 5-digit codes
	ClassCode              string // comma-separated 2-digit major class codes
	MiddleClassCode        string // comma-separated 4-digit middle class codes
	MinorClassCode         string // comma-separated 6-digit minor class codes
}

func (o WelfareOptions) args(t Tile) args {
	a := tileArgs(t)
	a.set("administrativeAreaCode", o.AdministrativeAreaCode)
	a.set("welfareFacilityClassCode", o.ClassCode)
	a.set("welfareFacilityMiddleClassCode", o.MiddleClassCode)
	a.set("welfareFacilityMinorClassCode", o.MinorClassCode)
	return a
}

// Welfare retrieves welfare facility locations for one tile, zoom 13-15.
func (s FacilitiesService) Welfare(ctx context.Context, t Tile, opts WelfareOptions) ([]Feature[WelfareFacility], error) {
	return listWelfareFacilities(ctx, s, t, opts)
}

func listWelfareFacilities(ctx context.Context, r Requester, t Tile, opts WelfareOptions) ([]Feature[WelfareFacility], error) {
	return fetchFeatures[WelfareFacility](ctx, r, mustEndpoint("welfare-facilities"), opts.args(t))
}

// Library is one library point (P27 layer).
type Library struct {
	AdministrativeAreaCode string  `json:"P27_001,omitempty"`
	FacilityClassCode      string  `json:"P27_002,omitempty"`
	MinorClassCode         string  `json:"P27_003,omitempty"`
	MinorClassName         string  `json:"P27_003_name_ja,omitempty"`
	CultureClassCode       string  `json:"P27_004,omitempty"`
	CultureClassName       string  `json:"P27_004_name_ja,omitempty"`
	Name                   string  `json:"P27_005_ja,omitempty"`
	Address                string  `json:"P27_006_ja,omitempty"`
	AdministratorCode      FlexInt `json:"P27_007,omitempty"`
	Floors                 FlexInt `json:"P27_008,omitempty"`
	BuiltYear              FlexInt `json:"P27_009,omitempty"`
}

// FacilityAreaOptions narrows a facility layer to given municipalities.
type FacilityAreaOptions struct {
	AdministrativeAreaCode string // comma-separated 5-digit codes
}

func (o FacilityAreaOptions) args(t Tile) args {
	a := tileArgs(t)
	a.set("administrativeAreaCode", o.AdministrativeAreaCode)
	return a
}

// Libraries retrieves library locations for one tile, zoom 13-15.
func (s FacilitiesService) Libraries(ctx context.Context, t Tile, opts FacilityAreaOptions) ([]Feature[Library], error) {
	return listLibraries(ctx, s, t, opts)
}

func listLibraries(ctx context.Context, r Requester, t Tile, opts FacilityAreaOptions) ([]Feature[Library], error) {
	return fetchFeatures[Library](ctx, r, mustEndpoint("libraries"), opts.args(t))
}

// TownHall is one municipal office or branch point (P05 layer).
type TownHall struct {
	AdministrativeAreaCode string `json:"P05_001,omitempty"`
	ClassCode              string `json:"P05_002,omitempty"`
	ClassName              string `json:"P05_002_name_ja,omitempty"`
	Name                   string `json:"P05_003_ja,omitempty"`
	Address                string `json:"P05_004_ja,omitempty"`
}

// TownHalls retrieves town hall locations for one tile, zoom 13-15.
func (s FacilitiesService) TownHalls(ctx context.Context, t Tile, opts FacilityAreaOptions) ([]Feature[TownHall], error) {
	return listTownHalls(ctx, s, t, opts)
}

func listTownHalls(ctx context.Context, r Requester, t Tile, opts FacilityAreaOptions) ([]Feature[TownHall], error) {
	return fetchFeatures[TownHall](ctx, r, mustEndpoint("town-halls"), opts.args(t))
}
