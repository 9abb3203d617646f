package assistant

// Intent is the closed set of request categories the dispatcher routes.
type Intent string

const (
	IntentPrayer  Intent = "prayer"
	IntentWeather Intent = "weather"
	IntentKuliner Intent = "kuliner"
	IntentWisata  Intent = "wisata"
	IntentMasjid  Intent = "masjid"
	IntentOngkir  Intent = "ongkir"
)

// ParseIntent maps the wire intent string onto the closed enum.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentPrayer, IntentWeather, IntentKuliner, IntentWisata, IntentMasjid, IntentOngkir:
		return Intent(s), true
	default:
		return "", false
	}
}

// RequiresLocation reports whether the intent cannot be answered without
// a geolocation. Shipping works from the message text alone.
func (i Intent) RequiresLocation() bool {
	switch i {
	case IntentPrayer, IntentWeather, IntentKuliner, IntentWisata, IntentMasjid:
		return true
	default:
		return false
	}
}

// IsPlaces reports whether the intent is one of the place-search
// categories backed by the places adapter.
func (i Intent) IsPlaces() bool {
	switch i {
	case IntentKuliner, IntentWisata, IntentMasjid:
		return true
	default:
		return false
	}
}
