package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// ShippingQuery is the parsed shipping-cost request. Origin and
// Destination are raw city names, not yet resolved to provider ids.
type ShippingQuery struct {
	Origin      string
	Destination string
	WeightGrams int
}

var (
	// "gram" must precede "g" in the alternation or "500 gram" would
	// match as "500 g" and leave "ram" behind.
	weightPattern = regexp.MustCompile(`(\d+)\s*(kg|gram|g)`)

	// Route forms: "dari jakarta ke surabaya", "jakarta ke surabaya",
	// "jakarta-surabaya". First match wins.
	routePattern = regexp.MustCompile(`(?:dari\s+)?([a-z]+)(?:\s+ke\s+|\s*-\s*)([a-z]+)`)

	// Fallback for bare "ongkir jkt sby" phrasing.
	simpleRoutePattern = regexp.MustCompile(`ongkir\s+([a-z]+)\s+([a-z]+)`)
)

// ExtractShippingQuery pulls origin, destination, and weight out of free
// text. It never fails: anything the text does not specify keeps the
// Jakarta-to-Surabaya 1 kg defaults.
func ExtractShippingQuery(message string) ShippingQuery {
	lower := strings.ToLower(message)

	query := ShippingQuery{
		Origin:      "jakarta",
		Destination: "surabaya",
		WeightGrams: 1000,
	}

	if m := weightPattern.FindStringSubmatch(lower); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			if m[2] == "kg" {
				query.WeightGrams = n * 1000
			} else {
				query.WeightGrams = n
			}
		}
	}

	if m := routePattern.FindStringSubmatch(lower); m != nil {
		query.Origin = m[1]
		query.Destination = m[2]
	} else if m := simpleRoutePattern.FindStringSubmatch(lower); m != nil {
		query.Origin = m[1]
		query.Destination = m[2]
	}

	return query
}
