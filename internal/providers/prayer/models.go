package prayer

// Names is the fixed set of prayer names, in the scan order the renderer
// uses for single-prayer answers.
var Names = []string{"subuh", "dzuhur", "ashar", "maghrib", "isya"}

// Schedule is the normalized daily prayer schedule for one location.
type Schedule struct {
	City  string            `json:"city"`
	Date  string            `json:"date"`
	Times map[string]string `json:"times"`
}

// timingsResponse is the subset of the Al-Adhan timings payload the
// adapter consumes. Downstream code never touches the raw payload.
type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
		Date struct {
			Readable string `json:"readable"`
		} `json:"date"`
		Meta struct {
			Timezone string `json:"timezone"`
		} `json:"meta"`
	} `json:"data"`
}
