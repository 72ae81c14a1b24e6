package api

// Service accessors group Client methods by upstream data domain. Each
// service embeds *Client, so accessors are free to construct on every call.

type PricesService struct{ *Client }

type MunicipalitiesService struct{ *Client }

type PlanningService struct{ *Client }

type SchoolsService struct{ *Client }

type FacilitiesService struct{ *Client }

type DemographicsService struct{ *Client }

type HazardsService struct{ *Client }

type ParksService struct{ *Client }

type TilesService struct{ *Client }

func (c *Client) Prices() PricesService {
	return PricesService{c}
}

func (c *Client) Municipalities() MunicipalitiesService {
	return MunicipalitiesService{c}
}

func (c *Client) Planning() PlanningService {
	return PlanningService{c}
}

func (c *Client) Schools() SchoolsService {
	return SchoolsService{c}
}

func (c *Client) Facilities() FacilitiesService {
	return FacilitiesService{c}
}

func (c *Client) Demographics() DemographicsService {
	return DemographicsService{c}
}

func (c *Client) Hazards() HazardsService {
	return HazardsService{c}
}

func (c *Client) Parks() ParksService {
	return ParksService{c}
}

func (c *Client) Tiles() TilesService {
	return TilesService{c}
}
