package core

import "strings"

const (
	DefaultLogoDir = "logos"
	DefaultLogoExt = "svg"
)

// LogoPath returns the asset reference for a stock logo, e.g. logos/AAPL.svg.
// The symbol is used verbatim and the asset itself is never opened.
func LogoPath(dir, symbol, ext string) string {
	dir = strings.TrimRight(dir, "/")
	if dir == "" {
		dir = DefaultLogoDir
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = DefaultLogoExt
	}

	return dir + "/" + symbol + "." + ext
}
