package banner

const (
	DefaultWidth  = 80
	DefaultRank   = 2
	DefaultPad    = 1
	DefaultMarker = '%'
)

type EncState struct {
	width  int
	rank   int
	pad    int
	marker byte
	colors *Colors
}

type EncodeOption func(*EncState)

// Width sets the total line width in characters.
func Width(n int) EncodeOption {
	return func(es *EncState) { es.width = n }
}

// Rank sets the number of blank bordered lines above and below the
// title line.
func Rank(n int) EncodeOption {
	return func(es *EncState) { es.rank = n }
}

// Pad sets the number of fully filled lines at the very top and bottom.
func Pad(n int) EncodeOption {
	return func(es *EncState) { es.pad = n }
}

// Marker sets the character used to draw the box.
func Marker(c byte) EncodeOption {
	return func(es *EncState) { es.marker = c }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		width:  DefaultWidth,
		rank:   DefaultRank,
		pad:    DefaultPad,
		marker: DefaultMarker,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
