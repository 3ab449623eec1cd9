package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/itsmostafa/mdtoc/internal/toc"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !slices.Equal(cfg.Files, []string{"Index.md", "index.md"}) {
		t.Errorf("unexpected default files %v", cfg.Files)
	}
	if cfg.TOCMarkers() != toc.DefaultMarkers() {
		t.Errorf("unexpected default markers %+v", cfg.Markers)
	}

	// Mutating a config must not leak into the package defaults.
	cfg.Files[0] = "changed.md"
	if toc.DefaultFiles[0] != "Index.md" {
		t.Error("Default() shares its files slice with toc.DefaultFiles")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantErr     error
		wantFiles   []string
		wantMarkers toc.Markers
	}{
		{
			name:        "empty uses defaults",
			input:       "",
			wantFiles:   toc.DefaultFiles,
			wantMarkers: toc.DefaultMarkers(),
		},
		{
			name:        "files only",
			input:       "files: [README.md]\n",
			wantFiles:   []string{"README.md"},
			wantMarkers: toc.DefaultMarkers(),
		},
		{
			name:      "partial markers",
			input:     "markers:\n  start: \"<!-- toc -->\"\n",
			wantFiles: toc.DefaultFiles,
			wantMarkers: toc.Markers{
				Start: "<!-- toc -->",
				End:   toc.DefaultEndMarker,
			},
		},
		{
			name:    "unknown field rejected",
			input:   "depth: 6\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "malformed yaml",
			input:   "files: [unterminated\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "identical markers",
			input:   "markers:\n  start: \"<!-- x -->\"\n  end: \"<!-- x -->\"\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "blank file name",
			input:   "files: [\"  \"]\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(cfg.Files, tt.wantFiles) {
				t.Errorf("Files = %v, want %v", cfg.Files, tt.wantFiles)
			}
			if cfg.TOCMarkers() != tt.wantMarkers {
				t.Errorf("Markers = %+v, want %+v", cfg.TOCMarkers(), tt.wantMarkers)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Files = nil
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for empty files, got %v", err)
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("optional missing file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.TOCMarkers() != toc.DefaultMarkers() {
			t.Errorf("expected default markers, got %+v", cfg.Markers)
		}
	})

	t.Run("required missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), true)
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		if err := os.WriteFile(path, []byte("files:\n  - docs.md\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(cfg.Files, []string{"docs.md"}) {
			t.Errorf("Files = %v, want [docs.md]", cfg.Files)
		}
	})
}
