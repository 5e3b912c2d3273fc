package nerdz

// Post is a message of a board
type Post struct {
	Hpid    uint64
	From    uint64
	To      uint64
	Pid     uint64
	Message string
	IP      string // author address
}

// TableName returns the table name associated with the structure
func (Post) TableName() string {
	return "posts"
}

func (p *Post) ID() uint64 {
	ret := p.Hpid
	returnValue := ret
	return returnValue
}
