package banner

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	MarkerColor ColorAttr = iota
	TitleColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			MarkerColor: color.RGB(74, 92, 138).SprintfFunc(),
			TitleColor:  color.CyanString,
		},
	}
}

// colorDefault is Sprintf-shaped like the color sprint funcs, so the
// fallback path renders the same text the colored path would.
func colorDefault(v string, args ...any) string {
	if len(args) == 0 {
		return v
	}
	return fmt.Sprintf(v, args...)
}

// Color renders s with the sprint func for a.  The banner text is passed
// as an argument, not as the format, since marker runs contain '%'.
func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)("%s", s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		f = c.Default
	}
	if f == nil {
		f = colorDefault
	}
	return f
}
