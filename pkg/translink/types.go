package translink

// OPIA time mode values for the plan call.
const (
	TimeModeLeaveAfter    = 0
	TimeModeArriveBefore  = 1
	TimeModeFirstServices = 2
	TimeModeLastServices  = 3
)

// OPIA travel modes. These are bit flags upstream but each leg only ever
// carries a single one.
const (
	TravelModeBus   = 2
	TravelModeFerry = 4
	TravelModeTrain = 8
	TravelModeWalk  = 16
	TravelModeTram  = 32
)

const defaultWalkSpeed = 1

// SuggestResponse is the body of location/rest/suggest.
type SuggestResponse struct {
	Suggestions []Suggestion
}

type Suggestion struct {
	ID string `json:"Id"`
}

// PlanResponse is the body of travel/rest/plan.
type PlanResponse struct {
	TravelOptions TravelOptions
}

type TravelOptions struct {
	Itineraries []PlanItinerary
}

type PlanItinerary struct {
	StartTime string
	EndTime   string
	Fare      Fare
	Legs      []PlanLeg
}

type Fare struct {
	TotalZones int
}

type PlanLeg struct {
	FromStopID    string `json:"FromStopId"`
	ToStopID      string `json:"ToStopId"`
	TravelMode    int
	DistanceM     float64
	DepartureTime string
	DurationMins  int
	Polyline      string
}

// StopsResponse is the body of location/rest/stops.
type StopsResponse struct {
	Stops []StopRecord
}

type StopRecord struct {
	ParentLocation StopLocation
}

type StopLocation struct {
	Description *string
	Position    Position
}

type Position struct {
	Lat float64
	Lng float64
}

// Journey is the normalized itinerary handed back to the route layer and
// eventually rendered onto the meme canvas. WalkingDistance and Duration are
// always recomputed as sums over the legs, never set directly.
type Journey struct {
	StartTime       int64        `json:"startTime"`
	EndTime         int64        `json:"endTime"`
	TotalZones      int          `json:"totalZones"`
	WalkingDistance float64      `json:"walkingDistance"`
	Duration        int          `json:"duration"`
	Legs            []JourneyLeg `json:"legs"`
}

// JourneyLeg is one continuous segment of a Journey using a single travel
// mode. Leg order matches the order of the upstream itinerary exactly.
type JourneyLeg struct {
	StartDescription *string `json:"startDesc"`
	StartLat         float64 `json:"startLat"`
	StartLng         float64 `json:"startLng"`
	DestDescription  *string `json:"destDesc"`
	DestLat          float64 `json:"destLat"`
	DestLng          float64 `json:"destLng"`

	// TotalWalkDistance is the leg distance for Walk legs and exactly 0 for
	// every other travel mode.
	TotalWalkDistance float64 `json:"totalWalkDistance"`

	DepartureTime int64  `json:"departureTime"`
	Duration      int    `json:"duration"`
	Polyline      string `json:"polyline"`
	TravelMode    int    `json:"travelMode"`
}
