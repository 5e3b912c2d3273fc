package a

type User struct {
	ID uint64 // want `field ID has no json tag`

	Username string `sql:"unique"` // want `field Username has no json tag`

	Email string `json:"email"`

	password string

	URL, Alt string // want `field URL has no json tag` `field Alt has no json tag`

	Raw string "xml:\"raw\"" // want `field Raw has no json tag`

	Skipped string `json:"-"`

	Empty int `` // want `field Empty has no json tag`

	Embedded
}

type Embedded struct {
	Count int // want `field Count has no json tag`
}

func (u *User) Name() string {
	return u.Username + u.password
}
