package weather

// Observation is the normalized current-conditions snapshot the renderer
// consumes. Temp is rounded to the nearest degree.
type Observation struct {
	City      string  `json:"city"`
	Temp      int     `json:"temp"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	Wind      float64 `json:"wind"`
}

// currentResponse is the subset of the OpenWeather current-weather payload
// the adapter consumes.
type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}
