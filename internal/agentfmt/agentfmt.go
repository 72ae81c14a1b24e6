package agentfmt

import (
	"strings"

	"github.com/reinfolib/reinfolib-cli/internal/api"
)

// Payload marks a value as already agent-formatted.
type Payload interface {
	AgentPayload() any
}

// TransactionSummary is a compact, agent-friendly view of a transaction
// price record. Prices are in yen, areas in square meters.
type TransactionSummary struct {
	Type         string  `json:"type"`
	Prefecture   string  `json:"prefecture,omitempty"`
	Municipality string  `json:"municipality,omitempty"`
	District     string  `json:"district,omitempty"`
	TradePrice   int     `json:"trade_price,omitempty"`
	UnitPrice    float64 `json:"unit_price,omitempty"`
	Area         float64 `json:"area,omitempty"`
	FloorPlan    string  `json:"floor_plan,omitempty"`
	BuildingYear string  `json:"building_year,omitempty"`
	Structure    string  `json:"structure,omitempty"`
	Period       string  `json:"period,omitempty"`
}

// AppraisalSummary is a compact view of one land appraisal report.
type AppraisalSummary struct {
	PriceDate      string  `json:"price_date,omitempty"`
	AreaName       string  `json:"area_name,omitempty"`
	UseCategory    string  `json:"use_category,omitempty"`
	Address        string  `json:"address,omitempty"`
	PricePerSqm    float64 `json:"price_per_sqm,omitempty"`
	PublishedPrice float64 `json:"published_price,omitempty"`
	ChangeRate     float64 `json:"change_rate,omitempty"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
}

// FeatureSummary flattens a GeoJSON feature to its geometry type and typed
// properties. Raw coordinates are dropped; agents working spatially should
// request JSON mode instead.
type FeatureSummary[T any] struct {
	GeometryType string `json:"geometry_type,omitempty"`
	Properties   T      `json:"properties"`
}

// ListEnvelope wraps list outputs.
type ListEnvelope struct {
	Kind    string         `json:"kind"`
	Items   any            `json:"items"`
	HasMore *bool          `json:"has_more,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ItemEnvelope wraps single-item outputs.
type ItemEnvelope struct {
	Kind string `json:"kind"`
	Item any    `json:"item"`
}

// DataEnvelope wraps untyped outputs.
type DataEnvelope struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// ErrorEnvelope wraps structured errors in agent mode.
type ErrorEnvelope struct {
	Kind  string               `json:"kind"`
	Error *api.StructuredError `json:"error"`
}

func (e ListEnvelope) AgentPayload() any  { return e }
func (e ItemEnvelope) AgentPayload() any  { return e }
func (e DataEnvelope) AgentPayload() any  { return e }
func (e ErrorEnvelope) AgentPayload() any { return e }

// KindFromCommandPath converts a cobra CommandPath to a dotted kind string.
func KindFromCommandPath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "reinfo ")
	parts := strings.Fields(path)
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, ".")
}

// Transform wraps known API types into agent-friendly structures.
func Transform(kind string, v any) any {
	if payload, ok := v.(Payload); ok {
		return payload.AgentPayload()
	}

	switch val := v.(type) {
	case api.StructuredError:
		return ErrorEnvelope{Kind: kind, Error: &val}
	case *api.StructuredError:
		return ErrorEnvelope{Kind: kind, Error: val}
	case api.TransactionPrice:
		return ItemEnvelope{Kind: kind, Item: TransactionSummaryFromRecord(val)}
	case *api.TransactionPrice:
		if val == nil {
			return ItemEnvelope{Kind: kind, Item: nil}
		}
		return ItemEnvelope{Kind: kind, Item: TransactionSummaryFromRecord(*val)}
	case []api.TransactionPrice:
		return ListEnvelope{Kind: kind, Items: TransactionSummaries(val)}
	case api.AppraisalReport:
		return ItemEnvelope{Kind: kind, Item: AppraisalSummaryFromReport(val)}
	case *api.AppraisalReport:
		if val == nil {
			return ItemEnvelope{Kind: kind, Item: nil}
		}
		return ItemEnvelope{Kind: kind, Item: AppraisalSummaryFromReport(*val)}
	case []api.AppraisalReport:
		return ListEnvelope{Kind: kind, Items: AppraisalSummaries(val)}
	case []api.Municipality:
		return ListEnvelope{Kind: kind, Items: val}
	default:
		return DataEnvelope{Kind: kind, Data: v}
	}
}

// TransformListItems converts list item slices to agent summaries when supported.
func TransformListItems(items any) any {
	switch val := items.(type) {
	case []api.TransactionPrice:
		return TransactionSummaries(val)
	case []api.AppraisalReport:
		return AppraisalSummaries(val)
	default:
		return items
	}
}

// FeatureList builds a list envelope of flattened features. Generic feature
// slices cannot ride through Transform's type switch, so tile commands wrap
// their results here before output.
func FeatureList[T any](kind string, features []api.Feature[T]) ListEnvelope {
	return ListEnvelope{Kind: kind, Items: FeatureSummaries(features)}
}

func FeatureSummaries[T any](features []api.Feature[T]) []FeatureSummary[T] {
	if len(features) == 0 {
		return nil
	}
	out := make([]FeatureSummary[T], 0, len(features))
	for _, f := range features {
		out = append(out, FeatureSummary[T]{
			GeometryType: f.Geometry.Type,
			Properties:   f.Properties,
		})
	}
	return out
}

func TransactionSummaries(records []api.TransactionPrice) []TransactionSummary {
	if len(records) == 0 {
		return nil
	}
	out := make([]TransactionSummary, 0, len(records))
	for _, rec := range records {
		out = append(out, TransactionSummaryFromRecord(rec))
	}
	return out
}

func TransactionSummaryFromRecord(rec api.TransactionPrice) TransactionSummary {
	return TransactionSummary{
		Type:         rec.Type,
		Prefecture:   rec.Prefecture,
		Municipality: rec.Municipality,
		District:     rec.DistrictName,
		TradePrice:   rec.TradePrice.Int(),
		UnitPrice:    rec.UnitPrice.Float(),
		Area:         rec.Area.Float(),
		FloorPlan:    rec.FloorPlan,
		BuildingYear: rec.BuildingYear,
		Structure:    rec.Structure,
		Period:       rec.Period,
	}
}

func AppraisalSummaries(reports []api.AppraisalReport) []AppraisalSummary {
	if len(reports) == 0 {
		return nil
	}
	out := make([]AppraisalSummary, 0, len(reports))
	for _, rep := range reports {
		out = append(out, AppraisalSummaryFromReport(rep))
	}
	return out
}

func AppraisalSummaryFromReport(rep api.AppraisalReport) AppraisalSummary {
	return AppraisalSummary{
		PriceDate:      rep.PriceDate,
		AreaName:       rep.StandardLotAreaName,
		UseCategory:    rep.StandardLotUseCategory,
		Address:        rep.LotAddress,
		PricePerSqm:    rep.PricePerSquareMeter.Float(),
		PublishedPrice: rep.PublishedPrice.Float(),
		ChangeRate:     rep.ChangeRate.Float(),
		Latitude:       rep.Latitude.Float(),
		Longitude:      rep.Longitude.Float(),
	}
}
