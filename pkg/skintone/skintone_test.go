package skintone

import (
	"image/color"
	"testing"
)

func TestIsSkinToneDetectsSkin(t *testing.T) {
	skin := []color.NRGBA{
		{R: 0xd9, G: 0xa7, B: 0x89, A: 255}, // light skin
		{R: 0xc6, G: 0x8e, B: 0x6f, A: 255}, // medium skin
		{R: 0x8d, G: 0x5a, B: 0x3c, A: 255}, // dark skin
	}

	for _, c := range skin {
		if !IsSkinTone(c) {
			t.Errorf("Expected %v to classify as skin", c)
		}
	}
}

func TestIsSkinToneRejectsNonSkin(t *testing.T) {
	nonSkin := []color.NRGBA{
		{R: 0, G: 0, B: 0, A: 255},       // black
		{R: 255, G: 255, B: 255, A: 255}, // white
		{R: 255, G: 0, B: 0, A: 255},     // pure red
		{R: 0, G: 255, B: 0, A: 255},     // pure green
		{R: 0, G: 0, B: 255, A: 255},     // pure blue
		{R: 0x33, G: 0x66, B: 0x99, A: 255},
		{R: 0x00, G: 0x66, B: 0x33, A: 255},
	}

	for _, c := range nonSkin {
		if IsSkinTone(c) {
			t.Errorf("Expected %v to classify as non-skin", c)
		}
	}
}

func TestThresholdsBoundaries(t *testing.T) {
	th := DefaultThresholds()

	if th.CrMin != 133 || th.CrMax != 173 {
		t.Errorf("Unexpected Cr range: [%g, %g]", th.CrMin, th.CrMax)
	}
	if th.CbMin != 77 || th.CbMax != 127 {
		t.Errorf("Unexpected Cb range: [%g, %g]", th.CbMin, th.CbMax)
	}
}

func TestCustomThresholdsDisableDetection(t *testing.T) {
	// A degenerate chroma box plus an impossible HSV window rejects everything.
	th := Thresholds{
		CrMin: 1, CrMax: 0,
		CbMin: 1, CbMax: 0,
		HueMax: -1,
		SatMin: 1, SatMax: 0,
		ValMin: 1, ValMax: 0,
	}

	if th.IsSkin(color.NRGBA{R: 0xd9, G: 0xa7, B: 0x89, A: 255}) {
		t.Error("Degenerate thresholds should never match")
	}
}

func TestGrayAxisIsNotSkin(t *testing.T) {
	// Neutral grays sit at Cr=Cb=128 and zero saturation, outside both boxes.
	for v := 0; v <= 255; v += 51 {
		c := color.NRGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 255}
		if IsSkinTone(c) {
			t.Errorf("Gray %d should not classify as skin", v)
		}
	}
}
