package places

// Place is one normalized nearby-venue result. Distance is meters from
// the request coordinate.
type Place struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

// searchResponse is the subset of the Foursquare v3 place-search payload
// the adapter consumes.
type searchResponse struct {
	Results []struct {
		Name     string `json:"name"`
		Distance int    `json:"distance"`
		Location struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"location"`
		Categories []struct {
			Name string `json:"name"`
		} `json:"categories"`
	} `json:"results"`
}
