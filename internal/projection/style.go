package projection

import (
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/templates"
	"github.com/jonathan/portfolio-builder/internal/types"
)

var (
	colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	fontPattern  = regexp.MustCompile(`^[A-Za-z0-9 ,\-]+$`)
)

var radii = map[types.BorderRadius]string{
	types.RadiusNone:   "0",
	types.RadiusSmall:  "0.25rem",
	types.RadiusMedium: "0.5rem",
	types.RadiusLarge:  "1rem",
}

// SafeColor returns c when it is a hex color, otherwise ""
func SafeColor(c string) string {
	c = strings.TrimSpace(c)
	if !colorPattern.MatchString(c) {
		return ""
	}
	return c
}

// SafeFont returns f when it only holds family names and separators, otherwise ""
func SafeFont(f string) string {
	f = strings.TrimSpace(f)
	if !fontPattern.MatchString(f) {
		return ""
	}
	return f
}

// SafeURL returns u when it is a web, mail, phone or fragment link, otherwise "".
// Relative paths are kept.
func SafeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	if i := strings.IndexByte(u, ':'); i >= 0 {
		if slash := strings.IndexAny(u, "/?#"); slash >= 0 && slash < i {
			return u
		}
		switch strings.ToLower(u[:i]) {
		case "http", "https", "mailto", "tel":
			return u
		}
		return ""
	}
	return u
}

// RadiusValue maps a border radius hint to a CSS length
func RadiusValue(r types.BorderRadius) string {
	if v, ok := radii[r]; ok {
		return v
	}
	return radii[types.RadiusMedium]
}

// buildStyles turns the design options a template honors into single CSS
// declarations. Anything that fails sanitising is dropped.
func buildStyles(honors templates.DesignSupport, opts types.DesignOptions) Styles {
	var s Styles
	if font := SafeFont(opts.FontFamily); font != "" {
		s.Page = "font-family: " + font
	}
	if honors.PrimaryColor {
		if c := SafeColor(opts.PrimaryColor); c != "" {
			s.Hero = "background-color: " + c
			s.Accent = "color: " + c
		}
	}
	if honors.BorderRadius {
		s.Card = "border-radius: " + RadiusValue(opts.BorderRadius)
	}
	return s
}
