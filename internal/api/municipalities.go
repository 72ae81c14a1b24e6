package api

import "context"

// Municipality is one city, ward, town, or village. Code is the 5-digit
// national local government code.
type Municipality struct {
	Code string `json:"id"`
	Name string `json:"name"`
}

// MunicipalitiesOptions selects the prefecture to list.
type MunicipalitiesOptions struct {
	Area     string // 2-digit prefecture code, required
	Language string // "ja" (default) or "en"
}

func (o MunicipalitiesOptions) args() args {
	a := args{}
	a.set("area", o.Area)
	a.set("language", o.Language)
	return a
}

// List retrieves the municipalities of one prefecture.
func (s MunicipalitiesService) List(ctx context.Context, opts MunicipalitiesOptions) ([]Municipality, error) {
	return listMunicipalities(ctx, s, opts)
}

func listMunicipalities(ctx context.Context, r Requester, opts MunicipalitiesOptions) ([]Municipality, error) {
	return fetchData[Municipality](ctx, r, mustEndpoint("municipalities"), opts.args())
}
