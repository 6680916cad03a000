// Copyright 2026 The Veil Authors
// SPDX-License-Identifier: MIT

// Package render is the terminal rendering sink: it paints masked spans so
// their text is unreadable while the document layout stays intact.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Style is the terminal analogue of an editor decoration resource:
// background color from the ColorSpec, foreground matched to it so the
// covered text is invisible, recreated whenever the configured color
// changes.
type Style struct {
	spec  string
	paint *color.Color
}

// themeColors maps the theme-color identifiers veil understands to
// terminal attributes. Unknown identifiers fall back to the default style.
var themeColors = map[string][2]color.Attribute{
	"editor.background":          {color.BgBlack, color.FgBlack},
	"editor.foreground":          {color.BgWhite, color.FgWhite},
	"editor.selectionBackground": {color.BgBlue, color.FgBlue},
	"editorWarning.foreground":   {color.BgYellow, color.FgYellow},
	"editorError.foreground":     {color.BgRed, color.FgRed},
	"editorInfo.foreground":      {color.BgCyan, color.FgCyan},
}

// NewStyle builds a style from a ColorSpec: a literal "#RRGGBB[AA]" string
// (leading "#") or a theme-color identifier. Malformed specs fall back to
// the default editor-background style rather than failing.
func NewStyle(spec string) *Style {
	s := &Style{spec: spec}
	if strings.HasPrefix(spec, "#") {
		if r, g, b, err := parseHex(spec); err == nil {
			bg, fg := nearestANSI(r, g, b)
			s.paint = color.New(bg, fg)
			return s
		}
		s.paint = defaultPaint()
		return s
	}
	if attrs, ok := themeColors[spec]; ok {
		s.paint = color.New(attrs[0], attrs[1])
		return s
	}
	s.paint = defaultPaint()
	return s
}

// Spec returns the ColorSpec the style was built from.
func (s *Style) Spec() string { return s.spec }

// Paint renders text in the mask style: same foreground and background, so
// the glyphs occupy their columns but read as a solid block.
func (s *Style) Paint(text string) string {
	return s.paint.Sprint(text)
}

func defaultPaint() *color.Color {
	attrs := themeColors["editor.background"]
	return color.New(attrs[0], attrs[1])
}

// parseHex parses "#RRGGBB" or "#RRGGBBAA". The alpha channel is accepted
// and discarded: terminals have no alpha.
func parseHex(spec string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(spec, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, 0, 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", spec)
	}
	parse := func(s string) (uint8, error) {
		v, err := strconv.ParseUint(s, 16, 8)
		return uint8(v), err
	}
	if r, err = parse(hex[0:2]); err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", spec, err)
	}
	if g, err = parse(hex[2:4]); err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", spec, err)
	}
	if b, err = parse(hex[4:6]); err != nil {
		return 0, 0, 0, fmt.Errorf("color %q: %w", spec, err)
	}
	return r, g, b, nil
}

// nearestANSI maps an RGB color to the closest of the eight base terminal
// colors, returning matching background and foreground attributes.
func nearestANSI(r, g, b uint8) (color.Attribute, color.Attribute) {
	palette := []struct {
		r, g, b uint8
		bg, fg  color.Attribute
	}{
		{0, 0, 0, color.BgBlack, color.FgBlack},
		{205, 0, 0, color.BgRed, color.FgRed},
		{0, 205, 0, color.BgGreen, color.FgGreen},
		{205, 205, 0, color.BgYellow, color.FgYellow},
		{0, 0, 238, color.BgBlue, color.FgBlue},
		{205, 0, 205, color.BgMagenta, color.FgMagenta},
		{0, 205, 205, color.BgCyan, color.FgCyan},
		{229, 229, 229, color.BgWhite, color.FgWhite},
	}
	best := 0
	bestDist := 1 << 30
	for i, p := range palette {
		dr, dg, db := int(r)-int(p.r), int(g)-int(p.g), int(b)-int(p.b)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return palette[best].bg, palette[best].fg
}
