package meme

import "time"

// User holds the contact details a visitor leaves when sharing a meme.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	ModificationDateTime time.Time `json:"modificationDateTime" bson:"modificationdatetime"`
}
