package meme

import "time"

// Template is a background image plus default captions that the client
// offers as a starting point for a meme.
type Template struct {
	PrimaryIdentifier string `json:"id" bson:"primaryidentifier"`

	Name     string `json:"name"`
	ImageURL string `json:"imageUrl" bson:"imageurl"`

	TopCaption    string `json:"topCaption" bson:"topcaption"`
	BottomCaption string `json:"bottomCaption" bson:"bottomcaption"`

	CreationDateTime time.Time `json:"creationDateTime" bson:"creationdatetime"`
}

// Details records a meme the client generated: the template it used, the
// final captions and a summary of the journey it is mocking.
type Details struct {
	TemplateID string `json:"templateId" bson:"templateid"`

	TopCaption    string `json:"topCaption" bson:"topcaption"`
	BottomCaption string `json:"bottomCaption" bson:"bottomcaption"`

	Journey JourneySummary `json:"journey"`

	CreationDateTime time.Time `json:"creationDateTime" bson:"creationdatetime"`
}

// JourneySummary is the slice of a planned journey worth keeping with a
// meme - enough to recreate the caption, not the whole itinerary.
type JourneySummary struct {
	StartTime       int64   `json:"startTime" bson:"starttime"`
	EndTime         int64   `json:"endTime" bson:"endtime"`
	Duration        int     `json:"duration"`
	WalkingDistance float64 `json:"walkingDistance" bson:"walkingdistance"`
	TotalZones      int     `json:"totalZones" bson:"totalzones"`
}
