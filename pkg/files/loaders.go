package files

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// Source tells where loaded data came from
type Source string

const (
	SourceProject Source = "project"
	SourceBuiltin Source = "builtin"
)

// ProjectPath returns the path of a project file under root
func ProjectPath(root, name string) string {
	return filepath.Join(root, VentiqDir, name)
}

// LoadCatalog reads the project catalog under root, falling back to the
// built-in tutorials when the project has none. A catalog file that exists
// but cannot be parsed is an error.
func LoadCatalog(root string) (*models.Catalog, Source, error) {
	path := ProjectPath(root, CatalogFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return catalog.Builtin(), SourceBuiltin, nil
	}

	c, err := ReadCatalog(path)
	if err != nil {
		return nil, "", err
	}
	return c, SourceProject, nil
}

// LoadScreenshotIndex is the screenshot counterpart of LoadCatalog
func LoadScreenshotIndex(root string) (*models.ScreenshotIndex, Source, error) {
	path := ProjectPath(root, ScreenshotsFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return catalog.BuiltinScreenshots(), SourceBuiltin, nil
	}

	index, err := ReadScreenshotIndex(path)
	if err != nil {
		return nil, "", err
	}
	return index, SourceProject, nil
}

// LoadSettings reads the project settings, using defaults when they are
// missing or unreadable. Environment overrides are applied on top.
func LoadSettings(root string) *models.Settings {
	settings, err := ReadSettings(ProjectPath(root, SettingsFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			debug.Log("settings: %v, using defaults", err)
		}
		settings = models.DefaultSettings()
	}
	if err := ApplyEnv(settings); err != nil {
		debug.Log("settings: %v", err)
	}
	return settings
}
