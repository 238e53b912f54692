// Package skintone classifies colors as human skin tones so that garment
// color statistics can exclude model skin, hair, and similar regions.
package skintone

import "image/color"

// Thresholds holds the color-space boxes used for skin classification.
//
// The YCrCb chroma box captures typical skin chroma independent of lighting
// (luma is unconstrained). The HSV box is OR-ed in to catch warm highlights
// the chroma box misses. This is a heuristic pre-filter, not a segmentation
// model; false negatives are acceptable.
type Thresholds struct {
	CrMin, CrMax float64 // Cr band, 8-bit scale
	CbMin, CbMax float64 // Cb band, 8-bit scale
	HueMax       float64 // upper hue bound, degrees
	SatMin       float64
	SatMax       float64
	ValMin       float64
	ValMax       float64
}

// DefaultThresholds returns the empirically chosen skin boxes:
// Cr in [133,173], Cb in [77,127]; hue <= 0.28 of the full circle with
// moderate saturation and value.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CrMin: 133, CrMax: 173,
		CbMin: 77, CbMax: 127,
		HueMax: 0.28 * 360,
		SatMin: 0.1, SatMax: 0.6,
		ValMin: 0.4, ValMax: 1.0,
	}
}

// IsSkin reports whether c falls inside either skin box. Deterministic for a
// given color.
func (t Thresholds) IsSkin(c color.Color) bool {
	red, green, blue := rgb8(c)
	return t.inChromaBox(red, green, blue) || t.inHSVBox(red, green, blue)
}

// IsSkinTone classifies c using the default thresholds.
func IsSkinTone(c color.Color) bool {
	return DefaultThresholds().IsSkin(c)
}

func (t Thresholds) inChromaBox(red, green, blue float64) bool {
	// BT.601 full-range transform.
	y := 0.299*red + 0.587*green + 0.114*blue
	cr := (red-y)*0.713 + 128
	cb := (blue-y)*0.564 + 128
	return cr >= t.CrMin && cr <= t.CrMax && cb >= t.CbMin && cb <= t.CbMax
}

func (t Thresholds) inHSVBox(red, green, blue float64) bool {
	h, s, v := rgbToHSV(red, green, blue)
	return h <= t.HueMax &&
		s >= t.SatMin && s <= t.SatMax &&
		v >= t.ValMin && v <= t.ValMax
}

// rgb8 converts a color.Color to 8-bit float components.
func rgb8(c color.Color) (float64, float64, float64) {
	r, g, b, _ := c.RGBA()
	return float64(r >> 8), float64(g >> 8), float64(b >> 8)
}

// rgbToHSV converts 8-bit RGB to hue in degrees [0,360) and saturation/value
// in [0,1].
func rgbToHSV(red, green, blue float64) (float64, float64, float64) {
	r := red / 255
	g := green / 255
	b := blue / 255

	maxC := r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	minC := r
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}

	v := maxC
	delta := maxC - minC
	if maxC == 0 || delta == 0 {
		return 0, 0, v
	}
	s := delta / maxC

	var h float64
	switch maxC {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}
