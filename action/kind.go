package action

import "strings"

// Kind names one of the operations a player can choose.
type Kind int

const (
	KindUnknown Kind = iota
	KindMenu
	KindPlace
	KindFind
	KindRemove
	KindDisplay
	KindList
	KindCreate
	KindExit
)

var verbs = map[string]Kind{
	"MENU":    KindMenu,
	"PLACE":   KindPlace,
	"FIND":    KindFind,
	"REMOVE":  KindRemove,
	"DISPLAY": KindDisplay,
	"LIST":    KindList,
	"CREATE":  KindCreate,
	"EXIT":    KindExit,
}

// ParseKind maps a typed verb to its Kind, ignoring case and surrounding
// spaces. Anything unrecognised yields KindUnknown.
func ParseKind(verb string) Kind {
	if k, ok := verbs[strings.ToUpper(strings.TrimSpace(verb))]; ok {
		return k
	}
	return KindUnknown
}

func (k Kind) String() string {
	for verb, kind := range verbs {
		if kind == k {
			return verb
		}
	}
	return "UNKNOWN"
}
