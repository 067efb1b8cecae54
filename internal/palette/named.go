package palette

import "strings"

var (
	Black     = FromU8(0, 0, 0)
	White     = FromU8(255, 255, 255)
	Red       = FromU8(255, 0, 0)
	Green     = FromU8(0, 255, 0)
	Blue      = FromU8(0, 0, 255)
	Yellow    = FromU8(255, 255, 0)
	Cyan      = FromU8(0, 255, 255)
	Magenta   = FromU8(255, 0, 255)
	Pink      = FromU8(255, 192, 203)
	Orange    = FromU8(255, 165, 0)
	Purple    = FromU8(128, 0, 128)
	Brown     = FromU8(165, 42, 42)
	Navy      = FromU8(0, 0, 128)
	Grey      = FromU8(128, 128, 128)
	DarkGrey  = FromU8(64, 64, 64)
	LightGrey = FromU8(211, 211, 211)

	// Transparent is fully see-through black.
	Transparent = RGBA{}
)

var named = map[string]RGBA{
	"black":      Black,
	"white":      White,
	"red":        Red,
	"green":      Green,
	"blue":       Blue,
	"yellow":     Yellow,
	"cyan":       Cyan,
	"magenta":    Magenta,
	"pink":       Pink,
	"orange":     Orange,
	"purple":     Purple,
	"brown":      Brown,
	"navy":       Navy,
	"grey":       Grey,
	"gray":       Grey,
	"dark_grey":  DarkGrey,
	"dark_gray":  DarkGrey,
	"light_grey": LightGrey,
	"light_gray": LightGrey,
}

// Named looks up a color by name, case-insensitively. Names starting with '#' are parsed as hex.
func Named(name string) (RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, "#") {
		c, err := Hex(name)
		return c, err == nil
	}
	c, ok := named[name]
	return c, ok
}
