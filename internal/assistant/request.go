package assistant

import "net/http"

// Location is a geolocation fix supplied by the caller. Zero values are
// legitimate coordinates; absence is expressed by a nil pointer on the
// request, never by (0, 0).
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Request is the classified inbound request. Intent stays a raw string
// here so the dispatcher owns the unknown-intent rejection.
type Request struct {
	Intent   string    `json:"intent"`
	Location *Location `json:"location,omitempty"`
	Message  string    `json:"message"`
}

// Status is the terminal state of one dispatched request.
type Status int

const (
	// StatusDone covers every rendered outcome, including recoverable
	// failures whose apology text is the response.
	StatusDone Status = iota
	// StatusRejected marks an unrecognized intent.
	StatusRejected
	// StatusInternalError marks an unanticipated fault caught at the
	// dispatcher boundary.
	StatusInternalError
)

// HTTPStatus maps the terminal state onto the transport status code.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusRejected:
		return http.StatusBadRequest
	case StatusInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// Reply is the dispatcher's rendered outcome.
type Reply struct {
	Text   string
	Status Status
}
