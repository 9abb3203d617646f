package shipping

// costRequest is the RajaOngkir starter cost request body. Origin and
// destination are provider city ids, weight is grams.
type costRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Weight      int    `json:"weight"`
	Courier     string `json:"courier"`
}

// CostOption is a single tariff row within a courier service.
type CostOption struct {
	Value int    `json:"value"`
	Etd   string `json:"etd"`
}

// Service is one service class offered by a courier for the route.
type Service struct {
	Service     string       `json:"service"`
	Description string       `json:"description"`
	Cost        []CostOption `json:"cost"`
}

// Courier groups the service classes of one courier.
type Courier struct {
	Code  string    `json:"code"`
	Costs []Service `json:"costs"`
}

// Result is the normalized tariff table for one route and weight.
// OriginCity and DestCity are the provider's canonical city names, which
// may differ in casing from the names the user typed.
type Result struct {
	OriginCity string    `json:"origin_city"`
	DestCity   string    `json:"dest_city"`
	Couriers   []Courier `json:"couriers"`
}

// costResponse is the RajaOngkir envelope the adapter consumes.
type costResponse struct {
	RajaOngkir struct {
		Query struct {
			OriginDetails struct {
				CityName string `json:"city_name"`
			} `json:"origin_details"`
			DestinationDetails struct {
				CityName string `json:"city_name"`
			} `json:"destination_details"`
		} `json:"query"`
		Status struct {
			Code        int    `json:"code"`
			Description string `json:"description"`
		} `json:"status"`
		Results []struct {
			Code  string `json:"code"`
			Costs []struct {
				Service     string `json:"service"`
				Description string `json:"description"`
				Cost        []struct {
					Value int    `json:"value"`
					Etd   string `json:"etd"`
				} `json:"cost"`
			} `json:"costs"`
		} `json:"results"`
	} `json:"rajaongkir"`
}
