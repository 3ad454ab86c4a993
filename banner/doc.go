// Package banner renders a fixed-width comment banner around a title.
//
// # Usage
//
//	// Write a banner for "the end" to stdout with the defaults
//	// (width 80, rank 2, pad 1, '%' marker).
//	err := banner.Encode("the end", os.Stdout)
//
//	// Write a 21 column banner boxed with '#'.
//	err := banner.Encode("the end", os.Stdout,
//		banner.Width(21), banner.Marker('#'))
//
// The title is uppercased and letter-spaced, then centered between the
// box borders.  Every emitted line is exactly the requested width.
package banner
