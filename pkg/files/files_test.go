package files

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

func TestInitProjectStructure(t *testing.T) {
	root := t.TempDir()

	written, err := InitProjectStructure(root, catalog.Builtin(), catalog.BuiltinScreenshots(), false)
	if err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	expectedFiles := []string{CatalogFile, ScreenshotsFile, SettingsFile}
	if len(written) != len(expectedFiles) {
		t.Fatalf("Expected %d files written, got %d", len(expectedFiles), len(written))
	}
	for _, name := range expectedFiles {
		if _, err := os.Stat(filepath.Join(root, VentiqDir, name)); os.IsNotExist(err) {
			t.Errorf("Expected file %s does not exist", name)
		}
	}

	// A second init without force refuses to overwrite
	_, err = InitProjectStructure(root, catalog.Builtin(), catalog.BuiltinScreenshots(), false)
	if !errors.Is(err, ErrProjectExists) {
		t.Errorf("Expected ErrProjectExists, got %v", err)
	}

	// With force it succeeds
	if _, err := InitProjectStructure(root, catalog.Builtin(), catalog.BuiltinScreenshots(), true); err != nil {
		t.Errorf("Forced init failed: %v", err)
	}
}

func TestReadWriteCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", CatalogFile)
	original := catalog.Builtin()

	if err := WriteCatalog(path, original); err != nil {
		t.Fatalf("WriteCatalog failed: %v", err)
	}

	loaded, err := ReadCatalog(path)
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}

	if !reflect.DeepEqual(original.Keys(), loaded.Keys()) {
		t.Errorf("Key order changed: expected %v, got %v", original.Keys(), loaded.Keys())
	}

	venta, ok := loaded.Get("venta")
	if !ok {
		t.Fatal("Expected venta tutorial after round trip")
	}
	if venta.Category != models.CategorySeller {
		t.Errorf("Expected category %q, got %q", models.CategorySeller, venta.Category)
	}
	if len(venta.Steps) != 4 {
		t.Errorf("Expected 4 steps, got %d", len(venta.Steps))
	}
	if venta.Steps[0].Instructions[0] != "Abre la aplicación VentIQ Seller" {
		t.Errorf("Unexpected first instruction %q", venta.Steps[0].Instructions[0])
	}
}

func TestReadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			content: "tutorials: [",
			wantErr: "failed to parse catalog YAML",
		},
		{
			name: "duplicate keys",
			content: `tutorials:
  - key: a
    title: A
    steps: [{title: one}]
  - key: a
    title: B
    steps: [{title: two}]
`,
			wantErr: "duplicate tutorial key",
		},
		{
			name: "tutorial without steps",
			content: `tutorials:
  - key: a
    title: A
`,
			wantErr: "has no steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := ReadCatalog(path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}

	if _, err := ReadCatalog(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadWriteScreenshotIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), ScreenshotsFile)
	original := catalog.BuiltinScreenshots()

	if err := WriteScreenshotIndex(path, original); err != nil {
		t.Fatalf("WriteScreenshotIndex failed: %v", err)
	}

	loaded, err := ReadScreenshotIndex(path)
	if err != nil {
		t.Fatalf("ReadScreenshotIndex failed: %v", err)
	}

	if !reflect.DeepEqual(original, loaded) {
		t.Error("Screenshot index changed after round trip")
	}
}

func TestReadScreenshotIndexEmptyFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), ScreenshotsFile)
	if err := os.WriteFile(path, []byte("seller: [Demo]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	index, err := ReadScreenshotIndex(path)
	if err != nil {
		t.Fatalf("ReadScreenshotIndex failed: %v", err)
	}
	if index.Files == nil {
		t.Error("Expected Files to be initialized")
	}
	if !index.IsSeller("Demo") {
		t.Error("Expected Demo to be a seller tutorial")
	}
}

func TestReadSettingsAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	content := "labels:\n  next: Siguiente\n  finish: Finalizar\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if settings.Labels.Next != "Siguiente" || settings.Labels.Finish != "Finalizar" {
		t.Errorf("Labels not read: %+v", settings.Labels)
	}
	if settings.Assets.Placeholder != "assets/images/placeholder-screenshot.svg" {
		t.Errorf("Expected default placeholder, got %q", settings.Assets.Placeholder)
	}
	if !settings.UI.ShowScreenshot {
		t.Error("Expected the screenshot pane to stay on when the file omits it")
	}
}

func TestReadSettingsExplicitFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFile)
	if err := os.WriteFile(path, []byte("ui:\n  show_screenshot: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings(path)
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if settings.UI.ShowScreenshot {
		t.Error("Expected show_screenshot: false to be honored")
	}
	if settings.UI.WrapWidth != 72 {
		t.Errorf("Expected default wrap width, got %d", settings.UI.WrapWidth)
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	root := t.TempDir()

	c, source, err := LoadCatalog(root)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if source != SourceBuiltin {
		t.Errorf("Expected builtin source, got %q", source)
	}
	if c.Len() != catalog.Builtin().Len() {
		t.Errorf("Expected builtin catalog")
	}

	index, source, err := LoadScreenshotIndex(root)
	if err != nil {
		t.Fatalf("LoadScreenshotIndex failed: %v", err)
	}
	if source != SourceBuiltin || len(index.Files) == 0 {
		t.Errorf("Expected builtin screenshot index, got source %q", source)
	}

	settings := LoadSettings(root)
	if !reflect.DeepEqual(settings, models.DefaultSettings()) {
		t.Error("Expected default settings")
	}
}

func TestLoadFromProject(t *testing.T) {
	root := t.TempDir()

	custom, err := models.NewCatalog([]*models.Tutorial{
		{Key: "demo", Title: "Demo", Steps: []models.Step{{Title: "Only step"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	index := &models.ScreenshotIndex{Files: map[string][]string{"Demo": {"demo.png"}}}

	if _, err := InitProjectStructure(root, custom, index, false); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	c, source, err := LoadCatalog(root)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if source != SourceProject {
		t.Errorf("Expected project source, got %q", source)
	}
	if _, ok := c.Get("demo"); !ok || c.Len() != 1 {
		t.Errorf("Expected project catalog with demo only, got %v", c.Keys())
	}

	loadedIndex, source, err := LoadScreenshotIndex(root)
	if err != nil || source != SourceProject {
		t.Fatalf("LoadScreenshotIndex: source %q, err %v", source, err)
	}
	if files, _ := loadedIndex.Lookup("Demo"); len(files) != 1 {
		t.Errorf("Expected one screenshot for Demo, got %v", files)
	}
}

func TestLoadCatalogBrokenProject(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, VentiqDir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ProjectPath(root, CatalogFile), []byte("tutorials: ["), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := LoadCatalog(root); err == nil {
		t.Error("Expected error for broken project catalog")
	}
}

func TestWriteBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")

	if err := WriteBundle(path, catalog.Builtin(), catalog.BuiltinScreenshots()); err != nil {
		t.Fatalf("WriteBundle failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"tutorials:", "screenshots:", "key: venta", "seller:"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Expected bundle to contain %q", want)
		}
	}
}
