package x11

import (
	"math"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/gridcalc/internal/widget"
)

// maxTextLen is the longest string a single ImageText8 request carries.
const maxTextLen = 255

// maxPointsPerRequest keeps PolyPoint requests well under the core protocol's
// 256KiB request limit (4 bytes per point).
const maxPointsPerRequest = 16384

func clampInt16(v int) int16 {
	switch {
	case v < math.MinInt16:
		return math.MinInt16
	case v > math.MaxInt16:
		return math.MaxInt16
	}
	return int16(v)
}

func clampUint16(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}

func truncateText(text string) string {
	if len(text) > maxTextLen {
		return text[:maxTextLen]
	}
	return text
}

func toWirePoints(points []widget.Position) []xproto.Point {
	out := make([]xproto.Point, len(points))
	for i, p := range points {
		out[i] = xproto.Point{X: clampInt16(p.X), Y: clampInt16(p.Y)}
	}
	return out
}

// chunkPoints splits points into request-sized batches.
func chunkPoints(points []xproto.Point, size int) [][]xproto.Point {
	var chunks [][]xproto.Point
	for len(points) > size {
		chunks = append(chunks, points[:size])
		points = points[size:]
	}
	if len(points) > 0 {
		chunks = append(chunks, points)
	}
	return chunks
}
