package api

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
)

// PopulationMesh is one 500m projection mesh cell. The upstream names its
// yearly series by vintage (PTN_2030, PT0_2040, RTC_2050, ...), so only the
// mesh identity is fixed; the series stay keyed in Series.
type PopulationMesh struct {
	MeshID   FlexInt
	CityCode FlexInt
	Series   map[string]json.RawMessage
}

func (m *PopulationMesh) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["MESH_ID"]; ok {
		if err := json.Unmarshal(v, &m.MeshID); err != nil {
			return err
		}
		delete(raw, "MESH_ID")
	}
	if v, ok := raw["SHICODE"]; ok {
		if err := json.Unmarshal(v, &m.CityCode); err != nil {
			return err
		}
		delete(raw, "SHICODE")
	}
	m.Series = raw
	return nil
}

func (m PopulationMesh) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.Series)+2)
	for k, v := range m.Series {
		out[k] = v
	}
	id, err := json.Marshal(m.MeshID)
	if err != nil {
		return nil, err
	}
	out["MESH_ID"] = id
	code, err := json.Marshal(m.CityCode)
	if err != nil {
		return nil, err
	}
	out["SHICODE"] = code
	return json.Marshal(out)
}

// Value returns one series value as a float, such as Value("PTN_2040") for
// the total 2040 projection. The bool is false when the key is absent or
// not numeric.
func (m PopulationMesh) Value(key string) (float64, bool) {
	raw, ok := m.Series[key]
	if !ok {
		return 0, false
	}
	var f FlexFloat
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return float64(f), true
}

// Years lists the projection vintages present in the mesh, ascending,
// derived from the PTN_* keys.
func (m PopulationMesh) Years() []string {
	var years []string
	for k := range m.Series {
		if rest, ok := strings.CutPrefix(k, "PTN_"); ok {
			years = append(years, rest)
		}
	}
	sort.Strings(years)
	return years
}

// FuturePopulation retrieves population projection meshes for one tile,
// zoom 11-15.
func (s DemographicsService) FuturePopulation(ctx context.Context, t Tile) ([]Feature[PopulationMesh], error) {
	return listFuturePopulation(ctx, s, t)
}

func listFuturePopulation(ctx context.Context, r Requester, t Tile) ([]Feature[PopulationMesh], error) {
	return fetchFeatures[PopulationMesh](ctx, r, mustEndpoint("future-population"), tileArgs(t))
}

// StationPassengers is one station point from the S12 ridership survey.
// Each survey year carries a duplication code, a data-availability code, a
// remark, and the boarding count.
type StationPassengers struct {
	Name         string `json:"S12_001_ja,omitempty"`
	StationCode  string `json:"S12_001c,omitempty"`
	Operator     string `json:"S12_002_ja,omitempty"`
	Line         string `json:"S12_003_ja,omitempty"`
	RailwayClass string `json:"S12_004,omitempty"`

	OperatorClass string  `json:"S12_005,omitempty"`
	Dup2011       FlexInt `json:"S12_006,omitempty"`
	Has2011       FlexInt `json:"S12_007,omitempty"`
	Remark2011    string  `json:"S12_008,omitempty"`
	Count2011     FlexInt `json:"S12_009,omitempty"`

	Dup2012    FlexInt `json:"S12_010,omitempty"`
	Has2012    FlexInt `json:"S12_011,omitempty"`
	Remark2012 string  `json:"S12_012,omitempty"`
	Count2012  FlexInt `json:"S12_013,omitempty"`

	Dup2013    FlexInt `json:"S12_014,omitempty"`
	Has2013    FlexInt `json:"S12_015,omitempty"`
	Remark2013 string  `json:"S12_016,omitempty"`
	Count2013  FlexInt `json:"S12_017,omitempty"`

	Dup2014    FlexInt `json:"S12_018,omitempty"`
	Has2014    FlexInt `json:"S12_019,omitempty"`
	Remark2014 string  `json:"S12_020,omitempty"`
	Count2014  FlexInt `json:"S12_021,omitempty"`

	Dup2015    FlexInt `json:"S12_022,omitempty"`
	Has2015    FlexInt `json:"S12_023,omitempty"`
	Remark2015 string  `json:"S12_024,omitempty"`
	Count2015  FlexInt `json:"S12_025,omitempty"`

	Dup2016    FlexInt `json:"S12_026,omitempty"`
	Has2016    FlexInt `json:"S12_027,omitempty"`
	Remark2016 string  `json:"S12_028,omitempty"`
	Count2016  FlexInt `json:"S12_029,omitempty"`

	Dup2017    FlexInt `json:"S12_030,omitempty"`
	Has2017    FlexInt `json:"S12_031,omitempty"`
	Remark2017 string  `json:"S12_032,omitempty"`
	Count2017  FlexInt `json:"S12_033,omitempty"`

	Dup2018    FlexInt `json:"S12_034,omitempty"`
	Has2018    FlexInt `json:"S12_035,omitempty"`
	Remark2018 string  `json:"S12_036,omitempty"`
	Count2018  FlexInt `json:"S12_037,omitempty"`

	Dup2019    FlexInt `json:"S12_038,omitempty"`
	Has2019    FlexInt `json:"S12_039,omitempty"`
	Remark2019 string  `json:"S12_040,omitempty"`
	Count2019  FlexInt `json:"S12_041,omitempty"`

	Dup2020    FlexInt `json:"S12_042,omitempty"`
	Has2020    FlexInt `json:"S12_043,omitempty"`
	Remark2020 string  `json:"S12_044,omitempty"`
	Count2020  FlexInt `json:"S12_045,omitempty"`

	Dup2021    FlexInt `json:"S12_046,omitempty"`
	Has2021    FlexInt `json:"S12_047,omitempty"`
	Remark2021 string  `json:"S12_048,omitempty"`
	Count2021  FlexInt `json:"S12_049,omitempty"`

	Dup2022    FlexInt `json:"S12_050,omitempty"`
	Has2022    FlexInt `json:"S12_051,omitempty"`
	Remark2022 string  `json:"S12_052,omitempty"`
	Count2022  FlexInt `json:"S12_053,omitempty"`
}

// ridershipYear pairs one survey year with its availability and count.
type ridershipYear struct {
	year  int
	has   FlexInt
	count FlexInt
}

func (p StationPassengers) series() []ridershipYear {
	return []ridershipYear{
		{2011, p.Has2011, p.Count2011},
		{2012, p.Has2012, p.Count2012},
		{2013, p.Has2013, p.Count2013},
		{2014, p.Has2014, p.Count2014},
		{2015, p.Has2015, p.Count2015},
		{2016, p.Has2016, p.Count2016},
		{2017, p.Has2017, p.Count2017},
		{2018, p.Has2018, p.Count2018},
		{2019, p.Has2019, p.Count2019},
		{2020, p.Has2020, p.Count2020},
		{2021, p.Has2021, p.Count2021},
		{2022, p.Has2022, p.Count2022},
	}
}

// Ridership returns the boarding count for one survey year. The bool is
// false outside 2011-2022 or when the survey marks the year as missing.
func (p StationPassengers) Ridership(year int) (int, bool) {
	for _, s := range p.series() {
		if s.year == year {
			// Availability code 1 means the survey has data for the year.
			if s.has != 1 {
				return 0, false
			}
			return int(s.count), true
		}
	}
	return 0, false
}

// LatestRidership returns the most recent surveyed boarding count.
func (p StationPassengers) LatestRidership() (year, count int, ok bool) {
	series := p.series()
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].has == 1 {
			return series[i].year, int(series[i].count), true
		}
	}
	return 0, 0, false
}

// StationPassengers retrieves station ridership points for one tile,
// zoom 11-15.
func (s DemographicsService) StationPassengers(ctx context.Context, t Tile) ([]Feature[StationPassengers], error) {
	return listStationPassengers(ctx, s, t)
}

func listStationPassengers(ctx context.Context, r Requester, t Tile) ([]Feature[StationPassengers], error) {
	return fetchFeatures[StationPassengers](ctx, r, mustEndpoint("station-passengers"), tileArgs(t))
}
