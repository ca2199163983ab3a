package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ventiq/ventiq-terminal/pkg/models"
)

const (
	VentiqDir       = ".ventiq"
	CatalogFile     = "catalog.yaml"
	ScreenshotsFile = "screenshots.yaml"
	SettingsFile    = "settings.yaml"
)

// ErrProjectExists is returned by InitProjectStructure when the project
// files are already present and force is not set
var ErrProjectExists = errors.New("project already initialized")

// catalogDocument is the on-disk shape of catalog.yaml
type catalogDocument struct {
	Tutorials []*models.Tutorial `yaml:"tutorials"`
}

// Bundle is a single-file export of the catalog and its screenshots
type Bundle struct {
	Tutorials   []*models.Tutorial      `yaml:"tutorials" json:"tutorials"`
	Screenshots *models.ScreenshotIndex `yaml:"screenshots" json:"screenshots"`
}

// InitProjectStructure creates the project directory under root and seeds
// it with the given catalog, screenshot index and default settings. It
// returns the files it wrote.
func InitProjectStructure(root string, catalog *models.Catalog, index *models.ScreenshotIndex, force bool) ([]string, error) {
	dir := filepath.Join(root, VentiqDir)

	if !force {
		if _, err := os.Stat(filepath.Join(dir, CatalogFile)); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrProjectExists, dir)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	written := []string{}

	catalogPath := filepath.Join(dir, CatalogFile)
	if err := WriteCatalog(catalogPath, catalog); err != nil {
		return written, err
	}
	written = append(written, catalogPath)

	screenshotsPath := filepath.Join(dir, ScreenshotsFile)
	if err := WriteScreenshotIndex(screenshotsPath, index); err != nil {
		return written, err
	}
	written = append(written, screenshotsPath)

	settingsPath := filepath.Join(dir, SettingsFile)
	if err := WriteSettings(settingsPath, models.DefaultSettings()); err != nil {
		return written, err
	}
	written = append(written, settingsPath)

	return written, nil
}

func ReadCatalog(path string) (*models.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML %s: %w", path, err)
	}

	catalog, err := models.NewCatalog(doc.Tutorials)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return catalog, nil
}

func WriteCatalog(path string, catalog *models.Catalog) error {
	return writeYAML(path, catalogDocument{Tutorials: catalog.Tutorials()}, "catalog")
}

func ReadScreenshotIndex(path string) (*models.ScreenshotIndex, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read screenshot index %s: %w", path, err)
	}

	var index models.ScreenshotIndex
	if err := yaml.Unmarshal(content, &index); err != nil {
		return nil, fmt.Errorf("failed to parse screenshot index YAML %s: %w", path, err)
	}
	if index.Files == nil {
		index.Files = map[string][]string{}
	}

	return &index, nil
}

func WriteScreenshotIndex(path string, index *models.ScreenshotIndex) error {
	return writeYAML(path, index, "screenshot index")
}

func ReadSettings(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	// Decode over the defaults so omitted fields, booleans included, keep them
	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	settings.ApplyDefaults()

	return settings, nil
}

func WriteSettings(path string, settings *models.Settings) error {
	return writeYAML(path, settings, "settings")
}

// WriteBundle writes the catalog and screenshot index to one YAML file
func WriteBundle(path string, catalog *models.Catalog, index *models.ScreenshotIndex) error {
	return writeYAML(path, Bundle{Tutorials: catalog.Tutorials(), Screenshots: index}, "bundle")
}

func writeYAML(path string, v interface{}, what string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", what, err)
		}
	}

	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s to YAML: %w", what, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s %s: %w", what, path, err)
	}

	return nil
}
