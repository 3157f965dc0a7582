package component

// Tristate is an optional boolean. The zero value is Unset, which is omitted
// from the wire form; False is encoded explicitly.
type Tristate uint8

const (
	Unset Tristate = iota
	True
	False
)

func Bool(b bool) Tristate {
	if b {
		return True
	}
	return False
}

func (t Tristate) IsSet() bool {
	return t != Unset
}

// Get returns the boolean value and whether it was set.
func (t Tristate) Get() (bool, bool) {
	return t == True, t != Unset
}

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}
