package banner

import (
	"fmt"
	"io"
	"strings"
)

// tab expansion is a literal substitution, not column aware
const tabSpaces = 8

// Normalize returns the spaced form of a title: uppercased, tabs
// expanded to 8 spaces, a space inserted after every character, and
// trailing whitespace removed.  The spaced form is what gets centered
// between the box borders.
func Normalize(title string) string {
	s := strings.ToUpper(title)
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabSpaces))
	var b strings.Builder
	b.Grow(2 * len(s))
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// TitleLine centers spaced between two marker characters in a line of
// exactly width characters.  When the free space is odd the extra
// column goes to the left margin.
func TitleLine(spaced string, width int, marker byte) (string, error) {
	left, right, err := margins(spaced, width)
	if err != nil {
		return "", err
	}
	return string(marker) +
		strings.Repeat(" ", left) +
		spaced +
		strings.Repeat(" ", right) +
		string(marker), nil
}

func margins(spaced string, width int) (left, right int, err error) {
	extra := width - len(spaced)
	right = floorDiv(extra-2, 2)
	if right < 0 {
		return 0, 0, fmt.Errorf("%w: width %d cannot hold %q", ErrFit, width, spaced)
	}
	return right + extra%2, right, nil
}

// floorDiv divides toward negative infinity.  Go's "/" truncates toward
// zero, which would accept titles one column past the fit boundary.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Encode writes the banner for title to w: pad full lines, rank hollow
// lines, the centered title line, rank hollow lines, pad full lines,
// each terminated by a newline.
func Encode(title string, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	if es.width < 1 || es.rank < 0 || es.pad < 0 {
		return fmt.Errorf("%w: width=%d rank=%d pad=%d",
			ErrBadParams, es.width, es.rank, es.pad)
	}
	spaced := Normalize(title)
	left, right, err := margins(spaced, es.width)
	if err != nil {
		return err
	}
	full := es.fullLine()
	hollow := es.hollowLine()
	title = es.titleLine(spaced, left, right)
	for i := 0; i < es.pad; i++ {
		if err := writeString(w, full); err != nil {
			return err
		}
	}
	for i := 0; i < es.rank; i++ {
		if err := writeString(w, hollow); err != nil {
			return err
		}
	}
	if err := writeString(w, title); err != nil {
		return err
	}
	for i := 0; i < es.rank; i++ {
		if err := writeString(w, hollow); err != nil {
			return err
		}
	}
	for i := 0; i < es.pad; i++ {
		if err := writeString(w, full); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) fullLine() string {
	line := strings.Repeat(string(es.marker), es.width)
	return es.color(MarkerColor, line) + "\n"
}

func (es *EncState) hollowLine() string {
	m := es.color(MarkerColor, string(es.marker))
	return m + strings.Repeat(" ", es.width-2) + m + "\n"
}

func (es *EncState) titleLine(spaced string, left, right int) string {
	m := es.color(MarkerColor, string(es.marker))
	return m +
		strings.Repeat(" ", left) +
		es.color(TitleColor, spaced) +
		strings.Repeat(" ", right) +
		m + "\n"
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
