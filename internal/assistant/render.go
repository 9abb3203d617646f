package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"siska-gateway/internal/providers/places"
	"siska-gateway/internal/providers/prayer"
)

// Renderers are pure text builders: no I/O, no logging. The Indonesian
// reply strings are part of the product contract, so they are spelled
// out verbatim here and nowhere else.

const (
	prayerFailureText  = "Maaf, saya gagal mengambil jadwal sholat untuk lokasi Anda. Pastikan GPS aktif dan coba lagi."
	weatherFailureText = "Maaf, saya gagal mengambil data cuaca untuk lokasi Anda. Pastikan GPS aktif dan coba lagi."
	aqiMissingText     = "Data kualitas udara (AQI) tidak tersedia untuk lokasi ini."
)

// RenderPrayer answers either a single prayer time or the full schedule.
// If the request message names one of the five prayers, the first match
// in canonical order wins and only that time is rendered.
func RenderPrayer(schedule *prayer.Schedule, message string) string {
	if schedule == nil {
		return prayerFailureText
	}

	lower := strings.ToLower(message)
	for _, name := range prayer.Names {
		if strings.Contains(lower, name) {
			return fmt.Sprintf("Tentu, waktu **%s** untuk **%s** hari ini adalah pukul **%s**. (Data Live)",
				name, schedule.City, schedule.Times[name])
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tentu! Berikut jadwal sholat untuk **%s** hari ini (%s) dari API Al-Adhan (Live):\n\n",
		schedule.City, schedule.Date)
	fmt.Fprintf(&b, "• Subuh: **%s**\n", schedule.Times["subuh"])
	fmt.Fprintf(&b, "• Dzuhur: **%s**\n", schedule.Times["dzuhur"])
	fmt.Fprintf(&b, "• Ashar: **%s**\n", schedule.Times["ashar"])
	fmt.Fprintf(&b, "• Maghrib: **%s**\n", schedule.Times["maghrib"])
	fmt.Fprintf(&b, "• Isya: **%s**\n", schedule.Times["isya"])
	return b.String()
}

// RenderWeather renders the joined weather and air-quality outcome. The
// AQI clause is appended even when the weather half failed, so a working
// AQI feed is never hidden behind the weather apology.
func RenderWeather(bundle WeatherBundle) string {
	aqiClause := aqiMissingText
	if bundle.AQI != nil {
		if bundle.AQI.AQI > 100 {
			aqiClause = fmt.Sprintf("Kualitas udara (%d) **%s**. Sebaiknya kurangi aktivitas di luar ruangan atau gunakan masker.",
				bundle.AQI.AQI, bundle.AQI.Level)
		} else {
			aqiClause = fmt.Sprintf("Kualitas udara (%d) **Baik**. Aman untuk beraktivitas di luar.",
				bundle.AQI.AQI)
		}
	}

	if bundle.Weather == nil {
		if bundle.AQI == nil {
			return weatherFailureText
		}
		return weatherFailureText + "\n\n" + aqiClause
	}

	return fmt.Sprintf("Tentu! Berdasarkan lokasi Anda di **%s** (dari API OpenWeather/AQI Live):\n\n• **Cuaca**: %d°C, %s\n• **Kelembapan**: %d%%\n• **Angin**: %s m/s\n\n%s",
		bundle.Weather.City,
		bundle.Weather.Temp,
		bundle.Weather.Condition,
		bundle.Weather.Humidity,
		strconv.FormatFloat(bundle.Weather.Wind, 'f', -1, 64),
		aqiClause)
}

// RenderPlaces lists up to five nearby venues for the given category.
func RenderPlaces(entries []places.Place, category Intent) string {
	if len(entries) == 0 {
		return fmt.Sprintf("Maaf, saya tidak menemukan %s terdekat di lokasi Anda saat ini. (Live Foursquare)", category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tentu! Berikut 5 rekomendasi **%s terdekat** dari lokasi Anda (Data Live Foursquare):\n\n", category)
	for _, entry := range entries {
		fmt.Fprintf(&b, "• **%s** (~%dm)\n  *%s | %s*\n", entry.Name, entry.Distance, entry.Type, entry.Address)
	}
	return b.String()
}

// RenderShipping lists the flattened offers cheapest first under a header
// naming the provider's canonical city labels and the weight in kg.
func RenderShipping(originCity, destCity string, weightGrams int, offers []ShippingOffer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tentu! Berikut hasil cek ongkir **%s** ke **%s** (%s kg) dari API RajaOngkir (Live):\n\n",
		originCity, destCity, formatWeightKg(weightGrams))
	for _, offer := range offers {
		fmt.Fprintf(&b, "• **%s (%s)**: Rp %s (Est. %s hari)\n",
			offer.Courier, offer.Service, formatRupiah(offer.Cost), offer.Etd)
	}
	return b.String()
}

// formatWeightKg renders grams as kilograms without trailing zeros:
// 2000 -> "2", 1500 -> "1.5".
func formatWeightKg(grams int) string {
	return strconv.FormatFloat(float64(grams)/1000, 'f', -1, 64)
}

// formatRupiah groups thousands with "." in the Indonesian style:
// 1250000 -> "1.250.000".
func formatRupiah(value int) string {
	digits := strconv.Itoa(value)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}
