package meme

import "time"

// Image is a rendered meme uploaded by the client, stored as base64 and
// served back by link.
type Image struct {
	Link string `json:"link"`

	ContentType string `json:"contentType" bson:"contenttype"`
	Data        string `json:"data"`

	CreationDateTime time.Time `json:"creationDateTime" bson:"creationdatetime"`
}
