package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Every upstream operation is declared once in the endpoint table below and
// executed by the generic fetchers at the bottom of this file. Endpoint
// methods elsewhere in the package are one-line bindings over the two.

// checkFunc validates one encoded parameter value. A nil check accepts any
// non-empty value. The returned string is the constraint description used in
// InvalidParameterError; empty means the value passed.
type checkFunc func(value string) string

// paramSpec declares one query parameter of an endpoint.
type paramSpec struct {
	key      string
	required bool
	check    checkFunc
	desc     string
}

// endpointSpec declares one upstream endpoint: its path segment, whether it
// returns a feature collection, and the parameters it accepts.
type endpointSpec struct {
	id      string // upstream path segment, e.g. "XIT001"
	name    string // stable name used in errors and discovery output
	summary string
	geo     bool
	params  []paramSpec
}

// args carries encoded parameter values keyed by query key. Builders omit
// keys whose inputs were not supplied so required-parameter checks can fire.
type args map[string]string

func (a args) set(key, value string) {
	if value != "" {
		a[key] = value
	}
}

// setInt encodes a positive integer, treating zero as "not supplied".
func (a args) setInt(key string, value int) {
	if value != 0 {
		a[key] = strconv.Itoa(value)
	}
}

// setCoord always encodes: zero is a legal tile coordinate.
func (a args) setCoord(key string, value int) {
	a[key] = strconv.Itoa(value)
}

// buildQuery validates caller arguments against the spec, in declaration
// order, and encodes them. It returns a typed parameter error before any
// request is issued; a partially valid argument set never reaches the wire.
func (sp endpointSpec) buildQuery(a args) (url.Values, error) {
	q := url.Values{}
	known := make(map[string]bool, len(sp.params))
	for _, p := range sp.params {
		known[p.key] = true
		value, ok := a[p.key]
		if !ok {
			if p.required {
				return nil, &MissingParameterError{Endpoint: sp.name, Param: p.key}
			}
			continue
		}
		if p.check != nil {
			if reason := p.check(value); reason != "" {
				return nil, &InvalidParameterError{Endpoint: sp.name, Param: p.key, Value: value, Reason: reason}
			}
		}
		q.Set(p.key, value)
	}
	for key := range a {
		if !known[key] {
			return nil, &InvalidParameterError{Endpoint: sp.name, Param: key, Value: a[key], Reason: "unknown parameter"}
		}
	}
	return q, nil
}

// Parameter codecs. Each returns the violated constraint, or "" on success.

func nonNegativeInt(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return "must be a non-negative integer"
	}
	return ""
}

func intRange(min, max int) checkFunc {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil || n < min || n > max {
			return fmt.Sprintf("must be between %d and %d", min, max)
		}
		return ""
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func digits(n int) checkFunc {
	return func(value string) string {
		if len(value) != n || !allDigits(value) {
			return fmt.Sprintf("must be a %d-digit code", n)
		}
		return ""
	}
}

// csvDigits accepts one or more codes of min..max digits, comma separated,
// the form the national land survey layers use for area filters.
func csvDigits(min, max int) checkFunc {
	return func(value string) string {
		constraint := fmt.Sprintf("must be a comma-separated list of %d-digit codes", min)
		if min != max {
			constraint = fmt.Sprintf("must be a comma-separated list of %d- to %d-digit codes", min, max)
		}
		for _, part := range strings.Split(value, ",") {
			if len(part) < min || len(part) > max || !allDigits(part) {
				return constraint
			}
		}
		return ""
	}
}

func yearFrom(min int) checkFunc {
	return func(value string) string {
		n, err := strconv.Atoi(value)
		if err != nil || len(value) != 4 || n < min {
			return fmt.Sprintf("must be a 4-digit year, %d or later", min)
		}
		return ""
	}
}

// period validates YYYYN quarter stamps: a 4-digit year followed by a
// quarter digit 1-4. Transaction periods start at 20053 (2005 Q3).
func period(value string) string {
	const constraint = "must be YYYYN with quarter 1-4, 20053 or later"
	if len(value) != 5 || !allDigits(value) {
		return constraint
	}
	quarter := value[4] - '0'
	if quarter < 1 || quarter > 4 {
		return constraint
	}
	if value < "20053" {
		return constraint
	}
	return ""
}

func oneOf(choices ...string) checkFunc {
	return func(value string) string {
		for _, c := range choices {
			if value == c {
				return ""
			}
		}
		return fmt.Sprintf("must be one of: %s", strings.Join(choices, ", "))
	}
}

// tileParams declares the z/x/y triple shared by every tile endpoint plus
// the response format selector. Builders always encode the coordinates, so
// a zero zoom surfaces as an out-of-range value rather than silently
// requesting world-scale tiles.
func tileParams(minZoom, maxZoom int, extra ...paramSpec) []paramSpec {
	params := []paramSpec{
		{key: "response_format", required: true, check: oneOf("geojson", "pbf"), desc: "response format"},
		{key: "z", required: true, check: intRange(minZoom, maxZoom), desc: fmt.Sprintf("zoom level (%d-%d)", minZoom, maxZoom)},
		{key: "x", required: true, check: nonNegativeInt, desc: "tile column"},
		{key: "y", required: true, check: nonNegativeInt, desc: "tile row"},
	}
	return append(params, extra...)
}

var endpointTable = []endpointSpec{
	{
		id: "XIT001", name: "transaction-prices",
		summary: "Real estate transaction prices and contract prices",
		params: []paramSpec{
			{key: "year", required: true, check: yearFrom(2005), desc: "transaction year"},
			{key: "quarter", check: intRange(1, 4), desc: "transaction quarter"},
			{key: "area", check: digits(2), desc: "prefecture code"},
			{key: "city", check: digits(5), desc: "municipality code"},
			{key: "station", check: digits(6), desc: "station group code"},
			{key: "priceClassification", check: digits(2), desc: "price category code"},
			{key: "language", check: oneOf("ja", "en"), desc: "output language"},
		},
	},
	{
		id: "XIT002", name: "municipalities",
		summary: "Municipalities within a prefecture",
		params: []paramSpec{
			{key: "area", required: true, check: digits(2), desc: "prefecture code"},
			{key: "language", check: oneOf("ja", "en"), desc: "output language"},
		},
	},
	{
		id: "XCT001", name: "appraisal-reports",
		summary: "Real estate appraisal reports",
		params: []paramSpec{
			{key: "year", required: true, check: yearFrom(1970), desc: "valuation year"},
			{key: "area", required: true, check: digits(2), desc: "prefecture code"},
			{key: "division", required: true, check: digits(2), desc: "use division code"},
		},
	},
	{
		id: "XPT001", name: "transaction-points",
		summary: "Transaction price points by tile",
		geo:     true,
		params: tileParams(11, 15,
			paramSpec{key: "from", required: true, check: period, desc: "period from (YYYYN)"},
			paramSpec{key: "to", required: true, check: period, desc: "period to (YYYYN)"},
			paramSpec{key: "priceClassification", check: digits(2), desc: "price category code"},
			paramSpec{key: "landTypeCode", check: csvDigits(2, 2), desc: "land type codes"},
		),
	},
	{
		id: "XPT002", name: "valuation-points",
		summary: "Official land valuation points by tile",
		geo:     true,
		params: tileParams(13, 15,
			paramSpec{key: "year", required: true, check: intRange(1970, 2024), desc: "valuation year"},
			paramSpec{key: "priceClassification", check: digits(1), desc: "valuation category code"},
			paramSpec{key: "useCategoryCode", check: csvDigits(2, 2), desc: "use category codes"},
		),
	},
	{
		id: "XKT001", name: "zone-divisions",
		summary: "City planning zone divisions by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT002", name: "use-districts",
		summary: "City planning use districts by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT003", name: "location-optimization",
		summary: "Location optimization plan areas by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT004", name: "elementary-school-districts",
		summary: "Elementary school districts by tile",
		geo:     true,
		params: tileParams(11, 15,
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT005", name: "junior-high-school-districts",
		summary: "Junior high school districts by tile",
		geo:     true,
		params: tileParams(11, 15,
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT006", name: "schools",
		summary: "School locations by tile",
		geo:     true, params: tileParams(13, 15),
	},
	{
		id: "XKT007", name: "preschools",
		summary: "Preschool and nursery locations by tile",
		geo:     true, params: tileParams(13, 15),
	},
	{
		id: "XKT010", name: "medical-facilities",
		summary: "Medical facility locations by tile",
		geo:     true, params: tileParams(13, 15),
	},
	{
		id: "XKT011", name: "welfare-facilities",
		summary: "Welfare facility locations by tile",
		geo:     true,
		params: tileParams(13, 15,
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
			paramSpec{key: "welfareFacilityClassCode", check: csvDigits(2, 2), desc: "major class codes"},
			paramSpec{key: "welfareFacilityMiddleClassCode", check: csvDigits(4, 4), desc: "middle class codes"},
			paramSpec{key: "welfareFacilityMinorClassCode", check: csvDigits(6, 6), desc: "minor class codes"},
		),
	},
	{
		id: "XKT013", name: "future-population",
		summary: "Future population projection mesh by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT014", name: "fire-prevention",
		summary: "Fire prevention areas by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT015", name: "station-passengers",
		summary: "Station passenger counts by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT016", name: "disaster-risk-areas",
		summary: "Disaster risk areas by tile",
		geo:     true,
		params: tileParams(11, 15,
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT017", name: "libraries",
		summary: "Library locations by tile",
		geo:     true,
		params: tileParams(13, 15,
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT018", name: "town-halls",
		summary: "Town hall and branch office locations by tile",
		geo:     true,
		params: tileParams(13, 15,
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT019", name: "natural-parks",
		summary: "Natural park areas by tile",
		geo:     true,
		params: tileParams(9, 15,
			paramSpec{key: "prefectureCode", check: csvDigits(1, 2), desc: "prefecture codes"},
			paramSpec{key: "districtCode", check: csvDigits(1, 2), desc: "subprefecture district codes"},
		),
	},
	{
		id: "XKT020", name: "embankment-areas",
		summary: "Large-scale filled land areas by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT021", name: "landslide-areas",
		summary: "Landslide prevention districts by tile",
		geo:     true,
		params: tileParams(11, 15,
			paramSpec{key: "prefectureCode", check: csvDigits(2, 2), desc: "prefecture codes"},
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT022", name: "steep-slope-areas",
		summary: "Steep slope failure danger districts by tile",
		geo:     true,
		params: tileParams(11, 15,
			paramSpec{key: "prefectureCode", check: csvDigits(2, 2), desc: "prefecture codes"},
			paramSpec{key: "administrativeAreaCode", check: csvDigits(5, 5), desc: "administrative area codes"},
		),
	},
	{
		id: "XKT023", name: "district-plans",
		summary: "District planning areas by tile",
		geo:     true, params: tileParams(11, 15),
	},
	{
		id: "XKT024", name: "high-utilization-districts",
		summary: "High-level land utilization districts by tile",
		geo:     true, params: tileParams(11, 15),
	},
}

var endpointsByName = func() map[string]endpointSpec {
	m := make(map[string]endpointSpec, len(endpointTable))
	for _, sp := range endpointTable {
		m[sp.name] = sp
	}
	return m
}()

func endpointByName(name string) (endpointSpec, bool) {
	sp, ok := endpointsByName[name]
	return sp, ok
}

// mustEndpoint resolves a table entry the bindings declare statically.
// A miss is a programmer error, not a runtime condition.
func mustEndpoint(name string) endpointSpec {
	sp, ok := endpointsByName[name]
	if !ok {
		panic(fmt.Sprintf("api: unknown endpoint %q", name))
	}
	return sp
}

// ParamInfo describes one parameter for discovery tooling.
type ParamInfo struct {
	Key         string `json:"key"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// EndpointInfo is the read-only view of an endpoint table entry.
type EndpointInfo struct {
	Name    string      `json:"name"`
	ID      string      `json:"id"`
	Path    string      `json:"path"`
	Summary string      `json:"summary"`
	Tile    bool        `json:"tile"`
	Params  []ParamInfo `json:"params"`
}

// Endpoints returns the full endpoint catalog in declaration order.
func Endpoints() []EndpointInfo {
	infos := make([]EndpointInfo, 0, len(endpointTable))
	for _, sp := range endpointTable {
		info := EndpointInfo{
			Name:    sp.name,
			ID:      sp.id,
			Path:    "/ex-api/external/" + sp.id,
			Summary: sp.summary,
			Tile:    sp.geo,
		}
		for _, p := range sp.params {
			info.Params = append(info.Params, ParamInfo{Key: p.key, Required: p.required, Description: p.desc})
		}
		infos = append(infos, info)
	}
	return infos
}

// Endpoint returns the catalog entry with the given name.
func Endpoint(name string) (EndpointInfo, bool) {
	sp, ok := endpointByName(name)
	if !ok {
		return EndpointInfo{}, false
	}
	for _, info := range Endpoints() {
		if info.Name == sp.name {
			return info, true
		}
	}
	return EndpointInfo{}, false
}

// dataEnvelope is the wrapper every tabular endpoint responds with.
type dataEnvelope[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
}

// fetchData validates, encodes, dispatches, and decodes one tabular call.
func fetchData[T any](ctx context.Context, r Requester, sp endpointSpec, a args) ([]T, error) {
	q, err := sp.buildQuery(a)
	if err != nil {
		return nil, err
	}
	u := r.externalPath(sp.id)
	var env dataEnvelope[T]
	if err := r.get(ctx, u, q, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, &DecodingError{URL: u, Field: "data"}
	}
	return env.Data, nil
}

// fetchFeatures is the GeoJSON counterpart of fetchData. Feature order is
// preserved exactly as the upstream returned it.
func fetchFeatures[T any](ctx context.Context, r Requester, sp endpointSpec, a args) ([]Feature[T], error) {
	q, err := sp.buildQuery(a)
	if err != nil {
		return nil, err
	}
	u := r.externalPath(sp.id)
	var fc FeatureCollection[T]
	if err := r.get(ctx, u, q, &fc); err != nil {
		return nil, err
	}
	if fc.Features == nil {
		return nil, &DecodingError{URL: u, Field: "features"}
	}
	return fc.Features, nil
}

// fetchTileRaw dispatches a tile request in binary vector tile form.
func fetchTileRaw(ctx context.Context, r Requester, sp endpointSpec, a args) ([]byte, error) {
	q, err := sp.buildQuery(a)
	if err != nil {
		return nil, err
	}
	return r.getRaw(ctx, r.externalPath(sp.id), q)
}
