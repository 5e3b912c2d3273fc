package nerdz

import (
	"time"
)

// User is the model for the relation users
type User struct {
	Counter     uint64 `igor:"primary_key"`
	Last        time.Time
	NotifyStory []byte
	Private     bool
	Lang        string // interface language
	Username    string
	Password    string `sql:"default:encode(digest('', 'SHA1'), 'HEX')"`
	Email       string
	Gender      bool
	BirthDate   time.Time
	BoardLang   string
	Timezone    string
	Viewonline  bool
	RegistrationTime time.Time
	// Relations
	Profile Profile `sql:"-"`
}
