package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// PageMetadata is the structured record written alongside each generated
// page. The index rebuild still derives its state by re-parsing page markup;
// the sidecar exists so downstream tooling has a contract that does not
// depend on scraping meta tags out of the HTML.
type PageMetadata struct {
	Title     string    `yaml:"title"`
	Category  string    `yaml:"category"`
	Type      string    `yaml:"type"`
	Summary   string    `yaml:"summary"`
	CreatedAt time.Time `yaml:"created_at"`
}

func (a *Automator) writeMetadata(pageFilename string, meta PageMetadata) error {
	out, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	stem := strings.TrimSuffix(pageFilename, filepath.Ext(pageFilename))
	return os.WriteFile(filepath.Join(a.cfg.SiteDir, stem+".yaml"), out, 0o644)
}

// ReadMetadata loads the sidecar record for a page filename.
func (a *Automator) ReadMetadata(pageFilename string) (PageMetadata, error) {
	stem := strings.TrimSuffix(pageFilename, filepath.Ext(pageFilename))
	raw, err := os.ReadFile(filepath.Join(a.cfg.SiteDir, stem+".yaml"))
	if err != nil {
		return PageMetadata{}, err
	}

	var meta PageMetadata
	if err := yaml.Unmarshal(raw, &meta); err != nil {
		return PageMetadata{}, fmt.Errorf("decode metadata: %w", err)
	}
	return meta, nil
}
