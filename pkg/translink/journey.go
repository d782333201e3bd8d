package translink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// tripRequest is built once per GetJourneysBetween call and read-only after
// that. The coordinates double as fallbacks for legs without stop ids.
type tripRequest struct {
	StartLat float64
	StartLng float64
	DestLat  float64
	DestLng  float64
	TimeMode int
	At       string
	WalkMax  int
}

// GetJourneysBetween plans a public transit journey between two points.
//
// mode is one of "after", "before", "first" or "last"; at is a Unix timestamp
// in seconds that the mode qualifies; walkMax is the maximum walking distance
// in metres.
//
// Upstream calls run strictly in sequence: geocode origin, geocode
// destination, plan, then an origin/destination stop lookup per leg in leg
// order. The OPIA service rate limits per key, so this deliberately never
// fans out.
//
// A geocode miss on either endpoint returns ErrNoJourney without making any
// further upstream calls. Only the first itinerary offered by the planner is
// normalized; the rest are discarded.
func (c *Client) GetJourneysBetween(ctx context.Context, startLat, startLng, destLat, destLng string, mode string, at int64, walkMax int) (*Journey, error) {
	timeMode, err := timeModeFor(mode)
	if err != nil {
		return nil, err
	}

	trip := tripRequest{
		TimeMode: timeMode,
		At:       formatPlanTime(time.Unix(at, 0)),
		WalkMax:  walkMax,
	}

	if trip.StartLat, err = parseCoordinate("start latitude", startLat); err != nil {
		return nil, err
	}
	if trip.StartLng, err = parseCoordinate("start longitude", startLng); err != nil {
		return nil, err
	}
	if trip.DestLat, err = parseCoordinate("destination latitude", destLat); err != nil {
		return nil, err
	}
	if trip.DestLng, err = parseCoordinate("destination longitude", destLng); err != nil {
		return nil, err
	}

	startLoc, err := c.suggestLocation(ctx, startLat, startLng)
	if err != nil {
		return nil, err
	}
	if startLoc == "" {
		return nil, ErrNoJourney
	}

	destLoc, err := c.suggestLocation(ctx, destLat, destLng)
	if err != nil {
		return nil, err
	}
	if destLoc == "" {
		return nil, ErrNoJourney
	}

	plan, err := c.planTrip(ctx, startLoc, destLoc, trip)
	if err != nil {
		return nil, err
	}

	if len(plan.TravelOptions.Itineraries) == 0 {
		return nil, fmt.Errorf("%w: no itineraries in plan", ErrMalformedResponse)
	}

	return c.normalizeItinerary(ctx, trip, plan.TravelOptions.Itineraries[0])
}

func timeModeFor(mode string) (int, error) {
	switch mode {
	case "after":
		return TimeModeLeaveAfter, nil
	case "before":
		return TimeModeArriveBefore, nil
	case "first":
		return TimeModeFirstServices, nil
	case "last":
		return TimeModeLastServices, nil
	default:
		return 0, fmt.Errorf("translink: unknown time mode %q", mode)
	}
}

func parseCoordinate(name string, value string) (float64, error) {
	coordinate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("translink: %s %q is not a decimal degree", name, value)
	}
	return coordinate, nil
}

// suggestLocation geocodes a coordinate pair to an OPIA location id. An empty
// suggestion list resolves to "" with no error - that is the "nothing here"
// outcome, not a failure.
func (c *Client) suggestLocation(ctx context.Context, lat string, lng string) (string, error) {
	cacheKey := fmt.Sprintf("suggest/%s,%s", lat, lng)
	if cached, found := c.cacheGet(ctx, cacheKey); found {
		return cached, nil
	}

	requestURL := fmt.Sprintf("%slocation/rest/suggest?input=%s%%2C%s&filter=0&maxResults=1&api_key=%s",
		c.config.Endpoint, lat, lng, c.config.APIKey)

	var response SuggestResponse
	if err := c.getJSON(ctx, "suggest", requestURL, &response); err != nil {
		return "", err
	}

	if len(response.Suggestions) == 0 {
		return "", nil
	}

	locationID := response.Suggestions[0].ID
	c.cacheSet(ctx, cacheKey, locationID)

	return locationID, nil
}

func (c *Client) planTrip(ctx context.Context, startLoc string, destLoc string, trip tripRequest) (*PlanResponse, error) {
	requestURL := fmt.Sprintf("%stravel/rest/plan/%s/%s?timeMode=%d&at=%s&walkSpeed=%d&maximumWalkingDistanceM=%d&api_key=%s",
		c.config.Endpoint,
		url.PathEscape(startLoc), url.PathEscape(destLoc),
		trip.TimeMode, url.QueryEscape(trip.At),
		defaultWalkSpeed, trip.WalkMax,
		c.config.APIKey)

	var response PlanResponse
	if err := c.getJSON(ctx, "plan", requestURL, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// normalizeItinerary walks the itinerary's legs in order, resolving each
// leg's endpoints, then derives the itinerary totals from the legs.
func (c *Client) normalizeItinerary(ctx context.Context, trip tripRequest, itinerary PlanItinerary) (*Journey, error) {
	startTime, err := parseDotNetTime(itinerary.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseDotNetTime(itinerary.EndTime)
	if err != nil {
		return nil, err
	}

	journey := &Journey{
		StartTime:  startTime,
		EndTime:    endTime,
		TotalZones: itinerary.Fare.TotalZones,
		Legs:       []JourneyLeg{},
	}

	for _, planLeg := range itinerary.Legs {
		origin, err := c.stopLocation(ctx, planLeg.FromStopID, trip.StartLat, trip.StartLng)
		if err != nil {
			return nil, err
		}

		destination, err := c.stopLocation(ctx, planLeg.ToStopID, trip.DestLat, trip.DestLng)
		if err != nil {
			return nil, err
		}

		departureTime, err := parseDotNetTime(planLeg.DepartureTime)
		if err != nil {
			return nil, err
		}

		leg := JourneyLeg{
			StartDescription: origin.Description,
			StartLat:         origin.Position.Lat,
			StartLng:         origin.Position.Lng,
			DestDescription:  destination.Description,
			DestLat:          destination.Position.Lat,
			DestLng:          destination.Position.Lng,

			DepartureTime: departureTime,
			Duration:      planLeg.DurationMins,
			Polyline:      planLeg.Polyline,
			TravelMode:    planLeg.TravelMode,
		}

		if planLeg.TravelMode == TravelModeWalk {
			leg.TotalWalkDistance = planLeg.DistanceM
		}

		journey.Legs = append(journey.Legs, leg)
	}

	for _, leg := range journey.Legs {
		journey.WalkingDistance += leg.TotalWalkDistance
		journey.Duration += leg.Duration
	}

	return journey, nil
}

// stopLocation resolves a stop id to its parent location. Legs that begin or
// end away from a stop (a walk at either end of the trip) have no stop id;
// those synthesize a location at the trip's own endpoint with no description.
func (c *Client) stopLocation(ctx context.Context, stopID string, fallbackLat float64, fallbackLng float64) (StopLocation, error) {
	if stopID == "" {
		return StopLocation{
			Position: Position{
				Lat: fallbackLat,
				Lng: fallbackLng,
			},
		}, nil
	}

	cacheKey := fmt.Sprintf("stop/%s", stopID)
	if cached, found := c.cacheGet(ctx, cacheKey); found {
		var location StopLocation
		if err := json.Unmarshal([]byte(cached), &location); err == nil {
			return location, nil
		}
	}

	requestURL := fmt.Sprintf("%slocation/rest/stops?ids=%s&api_key=%s",
		c.config.Endpoint, url.QueryEscape(stopID), c.config.APIKey)

	var response StopsResponse
	if err := c.getJSON(ctx, "stops", requestURL, &response); err != nil {
		return StopLocation{}, err
	}

	if len(response.Stops) == 0 {
		return StopLocation{}, fmt.Errorf("%w: no stops for id %s", ErrMalformedResponse, stopID)
	}

	location := response.Stops[0].ParentLocation

	if locationJSON, err := json.Marshal(location); err == nil {
		c.cacheSet(ctx, cacheKey, string(locationJSON))
	}

	return location, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) (string, bool) {
	if c.config.StopCache == nil {
		return "", false
	}
	return c.config.StopCache.Get(ctx, key)
}

func (c *Client) cacheSet(ctx context.Context, key string, value string) {
	if c.config.StopCache != nil {
		c.config.StopCache.Set(ctx, key, value)
	}
}
