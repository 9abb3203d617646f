package assistant

import (
	"context"
	"fmt"
	"time"

	"siska-gateway/internal/common/errors"
	"siska-gateway/internal/common/logger"
	"siska-gateway/internal/common/metrics"
	"siska-gateway/internal/providers/places"
	"siska-gateway/internal/providers/prayer"
	"siska-gateway/internal/providers/shipping"
)

const (
	unknownIntentText = "Niat (intent) tidak dikenali oleh server proxy."
	internalErrorText = "Terjadi kesalahan internal pada server."
)

// Adapter surfaces the dispatcher depends on. The concrete provider
// clients satisfy these; tests substitute stubs.
type PrayerFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*prayer.Schedule, error)
}

type PlaceSearcher interface {
	Search(ctx context.Context, lat, lon float64, kind string) ([]places.Place, error)
}

type ShippingQuoter interface {
	Quote(ctx context.Context, originID, destID string, weightGrams int) (*shipping.Result, error)
}

type CityResolver interface {
	Resolve(name string) (string, bool)
}

// Dependencies bundles everything a Dispatcher needs.
type Dependencies struct {
	Prayer   PrayerFetcher
	Weather  WeatherFetcher
	AQI      AQIFetcher
	Places   PlaceSearcher
	Shipping ShippingQuoter
	Cities   CityResolver
	Logger   logger.Logger
}

// Dispatcher routes a classified request through the extractor, resolver,
// adapter, aggregator, and renderer chain for its intent.
type Dispatcher struct {
	deps Dependencies
}

func NewDispatcher(deps Dependencies) *Dispatcher {
	return &Dispatcher{deps: deps}
}

// Dispatch runs the full pipeline for one request. Recoverable failures
// come back as StatusDone with apology text; only an unrecognized intent
// or an unanticipated panic changes the status.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (reply Reply) {
	start := time.Now()

	intent, known := ParseIntent(req.Intent)
	if !known {
		d.deps.Logger.Warn("unrecognized intent", map[string]interface{}{
			"intent": req.Intent,
		})
		metrics.IntentRequestsTotal.WithLabelValues(req.Intent, "rejected").Inc()
		return Reply{Text: unknownIntentText, Status: StatusRejected}
	}

	defer func() {
		metrics.IntentDuration.WithLabelValues(string(intent)).Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			d.deps.Logger.Error("panic in intent pipeline", map[string]interface{}{
				"intent": string(intent),
				"panic":  fmt.Sprintf("%v", r),
			})
			metrics.IntentRequestsTotal.WithLabelValues(string(intent), "error").Inc()
			reply = Reply{Text: internalErrorText, Status: StatusInternalError}
			return
		}
		metrics.IntentRequestsTotal.WithLabelValues(string(intent), "done").Inc()
	}()

	if intent.RequiresLocation() && req.Location == nil {
		d.deps.Logger.Info("request missing location", map[string]interface{}{
			"intent": string(intent),
		})
		return Reply{Text: errors.NewInputMissing(string(intent)).Reply, Status: StatusDone}
	}

	switch {
	case intent == IntentPrayer:
		return Reply{Text: d.handlePrayer(ctx, req), Status: StatusDone}
	case intent == IntentWeather:
		return Reply{Text: d.handleWeather(ctx, req), Status: StatusDone}
	case intent.IsPlaces():
		return Reply{Text: d.handlePlaces(ctx, req, intent), Status: StatusDone}
	default:
		return Reply{Text: d.handleShipping(ctx, req), Status: StatusDone}
	}
}

func (d *Dispatcher) handlePrayer(ctx context.Context, req Request) string {
	schedule, err := d.deps.Prayer.Fetch(ctx, req.Location.Lat, req.Location.Lon)
	if err != nil {
		schedule = nil
	}
	return RenderPrayer(schedule, req.Message)
}

func (d *Dispatcher) handleWeather(ctx context.Context, req Request) string {
	bundle := FetchWeatherBundle(ctx, d.deps.Weather, d.deps.AQI, req.Location.Lat, req.Location.Lon)
	return RenderWeather(bundle)
}

func (d *Dispatcher) handlePlaces(ctx context.Context, req Request, intent Intent) string {
	entries, err := d.deps.Places.Search(ctx, req.Location.Lat, req.Location.Lon, string(intent))
	if err != nil {
		entries = nil
	}
	return RenderPlaces(entries, intent)
}

func (d *Dispatcher) handleShipping(ctx context.Context, req Request) string {
	query := ExtractShippingQuery(req.Message)

	originID, originOK := d.deps.Cities.Resolve(query.Origin)
	destID, destOK := d.deps.Cities.Resolve(query.Destination)
	if !originOK || !destOK {
		// Name the origin whenever it is the unresolved side; the
		// destination is only named when the origin resolved.
		unknown := query.Origin
		if originOK {
			unknown = query.Destination
		}
		return errors.NewCityUnresolved(unknown).Reply
	}

	result, err := d.deps.Shipping.Quote(ctx, originID, destID, query.WeightGrams)
	if err != nil {
		if text := errors.ReplyText(err); text != "" {
			return text
		}
		return "Gagal terhubung ke API RajaOngkir."
	}

	if len(result.Couriers) == 0 || len(result.Couriers[0].Costs) == 0 {
		return errors.NewEmptyResult("rajaongkir",
			fmt.Sprintf("Maaf, tidak ditemukan layanan kurir untuk rute %s ke %s.",
				result.OriginCity, result.DestCity)).Reply
	}

	offers := FlattenOffers(result)
	if len(offers) == 0 {
		return errors.NewEmptyResult("rajaongkir",
			fmt.Sprintf("Maaf, tidak ditemukan layanan untuk rute %s ke %s.",
				result.OriginCity, result.DestCity)).Reply
	}

	return RenderShipping(result.OriginCity, result.DestCity, query.WeightGrams, offers)
}
