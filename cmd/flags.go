package cmd

import (
	"os"
	"path/filepath"

	"github.com/itsmostafa/mdtoc/internal/config"
	"github.com/itsmostafa/mdtoc/internal/toc"
	"github.com/spf13/pflag"
)

var rootDir string
var documentFile string
var configFile string
var quiet bool

func bindDocumentFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&rootDir, "root", "r", ".", "Directory searched for the document and config file")

	// Document flag with env var fallback
	defaultFile := ""
	if envFile := os.Getenv("MDTOC_FILE"); envFile != "" {
		defaultFile = envFile
	}
	fs.StringVarP(&documentFile, "file", "f", defaultFile, "Document to update (skips Index.md/index.md discovery)")

	fs.StringVarP(&configFile, "config", "c", "", "YAML config file (default <root>/"+config.DefaultFileName+" if present)")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Suppress status output")
}

// docTarget is the resolved document and markers for one run.
type docTarget struct {
	Path    string
	Markers toc.Markers
}

// resolveTarget applies config, flag, env var and discovery in order.
func resolveTarget() (docTarget, error) {
	cfgPath, required := configFile, true
	if cfgPath == "" {
		cfgPath, required = filepath.Join(rootDir, config.DefaultFileName), false
	}

	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		return docTarget{}, err
	}

	path := documentFile
	if path == "" {
		path, err = toc.Locate(rootDir, cfg.Files)
		if err != nil {
			return docTarget{}, err
		}
	}

	return docTarget{Path: path, Markers: cfg.TOCMarkers()}, nil
}
