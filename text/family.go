package text

import "github.com/go-text/typesetting/fontscan"

// Generic identifies one of the CSS generic font families.
type Generic int

const (
	// NotGeneric marks a named family.
	NotGeneric Generic = iota
	Serif
	SansSerif
	Cursive
	Fantasy
	Monospace
)

// String returns the name accepted by ParseFamily for g.
func (g Generic) String() string {
	switch g {
	case Serif:
		return "Serif"
	case SansSerif:
		return "SansSerif"
	case Cursive:
		return "Cursive"
	case Fantasy:
		return "Fantasy"
	case Monospace:
		return "Monospace"
	default:
		return "NotGeneric"
	}
}

// css returns the fontscan query name for g.
func (g Generic) css() string {
	switch g {
	case Serif:
		return fontscan.Serif
	case SansSerif:
		return fontscan.SansSerif
	case Cursive:
		return fontscan.Cursive
	case Fantasy:
		return fontscan.Fantasy
	case Monospace:
		return fontscan.Monospace
	default:
		return ""
	}
}

// Family is either a generic family or a specific family name.
// The zero value is a named family with an empty name.
type Family struct {
	generic Generic
	name    string
}

// Named returns a family that refers to a specific font by name.
// The name is kept verbatim.
func Named(name string) Family {
	return Family{name: name}
}

// GenericFamily returns the family for a generic class.
func GenericFamily(g Generic) Family {
	return Family{generic: g}
}

// ParseFamily maps a user supplied font name to a Family.
//
// The names Serif, SansSerif, Cursive, Fantasy and Monospace select the
// corresponding generic family. Matching is exact and case-sensitive;
// every other string, including the empty string, is a named family.
func ParseFamily(name string) Family {
	switch name {
	case "Serif":
		return GenericFamily(Serif)
	case "SansSerif":
		return GenericFamily(SansSerif)
	case "Cursive":
		return GenericFamily(Cursive)
	case "Fantasy":
		return GenericFamily(Fantasy)
	case "Monospace":
		return GenericFamily(Monospace)
	default:
		return Named(name)
	}
}

// Generic reports the generic class of f, or NotGeneric for named families.
func (f Family) Generic() Generic { return f.generic }

// IsGeneric reports whether f is a generic family.
func (f Family) IsGeneric() bool { return f.generic != NotGeneric }

// Name returns the family name carried by a named family.
func (f Family) Name() string { return f.name }

func (f Family) String() string {
	if f.IsGeneric() {
		return f.generic.String()
	}
	return f.name
}

// query returns the family list passed to fontscan.
func (f Family) query() string {
	if f.IsGeneric() {
		return f.generic.css()
	}
	return f.name
}
