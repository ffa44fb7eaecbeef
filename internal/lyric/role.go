package lyric

import "strings"

// semantic category of an ASS Name (role) field
type RoleCategory int

const (
	// primary/left singer; also covers a missing or empty role tag
	RolePrimary RoleCategory = iota
	// duet/right singer
	RoleDuet
	// background vocal; alignment resolved from the previous line
	RoleBackground
	// any other non-empty tag
	RoleOther
)

// LYS alignment/background property codes.
const (
	PropertyUnset       = 0
	PropertyLeft        = 1
	PropertyRight       = 2
	PropertyNoBackLeft  = 4
	PropertyNoBackRight = 5
	PropertyBackUnset   = 6
	PropertyBackLeft    = 7
	PropertyBackRight   = 8
)

// ClassifyRole maps a role tag to its category. Only the first
// whitespace-delimited token is considered, so trailing annotations
// ("左 itunes:song-part=1") don't affect the result. The second return
// is true when the tag is not one of the recognized conventions; that
// is a warning condition, never an error.
func ClassifyRole(role string) (RoleCategory, bool) {
	trimmed := strings.TrimSpace(role)
	if trimmed == "" {
		return RolePrimary, false
	}

	first := strings.Fields(trimmed)[0]

	switch first {
	case "左", "v1", "合", "v1000":
		return RolePrimary, false
	case "右", "v2", "x-duet", "x-anti":
		return RoleDuet, false
	case "背", "x-bg":
		return RoleBackground, false
	}
	return RoleOther, true
}

// propertyInference resolves the LYS property code for each emitted
// line. It is sequential state: a run of consecutive background lines
// inherits the property of the first non-background predecessor.
type propertyInference struct {
	last int
}

func newPropertyInference() *propertyInference {
	return &propertyInference{last: PropertyUnset}
}

// next computes the property for a line with category cur whose
// predecessor has category prev (RoleOther when there is no
// predecessor). The result becomes the new inherited state.
func (p *propertyInference) next(cur, prev RoleCategory) int {
	var property int
	switch cur {
	case RolePrimary:
		property = PropertyNoBackLeft
	case RoleDuet:
		property = PropertyNoBackRight
	case RoleBackground:
		switch prev {
		case RolePrimary:
			property = PropertyBackLeft
		case RoleDuet:
			property = PropertyBackRight
		case RoleBackground:
			property = p.last
		default:
			property = PropertyBackUnset
		}
	default:
		property = PropertyUnset
	}
	p.last = property
	return property
}

// RoleForProperty maps an LYS property code back to the ASS Name field
// written on LYS→ASS conversion.
func RoleForProperty(property int) string {
	switch property {
	case PropertyLeft, PropertyNoBackLeft, PropertyBackLeft:
		return "左"
	case PropertyRight, PropertyNoBackRight, PropertyBackRight:
		return "右"
	case PropertyBackUnset:
		return "背"
	}
	return ""
}
