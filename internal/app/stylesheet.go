package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// accentPalette holds the accent colors the stylesheet rotates through.
var accentPalette = []string{
	"#1a73e8", "#ea4335", "#34a853", "#fbbc05",
	"#0a66c2", "#00a0dc", "#313335",
	"#1da1f2", "#14171a", "#657786",
}

// MaybeRestyle rewrites the shared stylesheet with probability
// cfg.StyleProbability. Reports whether a rewrite happened.
func (a *Automator) MaybeRestyle() (bool, error) {
	if a.rand.Float64() >= a.cfg.StyleProbability {
		return false, nil
	}
	return true, a.Restyle()
}

// Restyle unconditionally overwrites style.css with the fixed layout rules
// and a randomly chosen accent color. Always a full overwrite; prior
// stylesheet state is discarded.
func (a *Automator) Restyle() error {
	accent := choose(a.rand, accentPalette)

	f, err := os.Create(filepath.Join(a.cfg.SiteDir, stylesheetName))
	if err != nil {
		return err
	}

	data := struct{ AccentColor string }{AccentColor: accent}
	if err := styleTemplate.ExecuteTemplate(f, "style.gotmpl", data); err != nil {
		f.Close()
		return fmt.Errorf("render stylesheet template: %w", err)
	}
	return f.Close()
}
