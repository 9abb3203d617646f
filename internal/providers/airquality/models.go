package airquality

// Reading is the normalized air-quality sample for one coordinate.
type Reading struct {
	AQI       int    `json:"aqi"`
	Level     string `json:"aqi_level"`
	Pollutant string `json:"pollutant"`
}

// feedResponse is the subset of the WAQI geo-feed payload the adapter
// consumes. Status must be "ok" for the data block to be trusted.
type feedResponse struct {
	Status string `json:"status"`
	Data   struct {
		AQI               int    `json:"aqi"`
		DominantPollutant string `json:"dominantPollutant"`
	} `json:"data"`
}
