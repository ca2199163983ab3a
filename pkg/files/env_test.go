package files

import (
	"testing"
)

func TestLoadSettingsEnvOverrides(t *testing.T) {
	t.Setenv("VENTIQ_SERVER_ADDR", ":9090")
	t.Setenv("VENTIQ_LABEL_NEXT", "Siguiente")
	t.Setenv("VENTIQ_UI_SHOW_SCREENSHOT", "false")
	t.Setenv("VENTIQ_ASSETS_ROOT", "/static/img")

	settings := LoadSettings(t.TempDir())

	if settings.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", settings.Server.Addr)
	}
	if settings.Labels.Next != "Siguiente" {
		t.Errorf("Labels.Next = %q, want Siguiente", settings.Labels.Next)
	}
	if settings.Labels.Finish != "Finish" {
		t.Errorf("Labels.Finish = %q, want the default", settings.Labels.Finish)
	}
	if settings.UI.ShowScreenshot {
		t.Error("UI.ShowScreenshot should be overridden to false")
	}
	if settings.Assets.Root != "/static/img" {
		t.Errorf("Assets.Root = %q, want /static/img", settings.Assets.Root)
	}
}

func TestApplyEnvInvalidValue(t *testing.T) {
	t.Setenv("VENTIQ_UI_WRAP_WIDTH", "wide")

	settings := LoadSettings(t.TempDir())
	if err := ApplyEnv(settings); err == nil {
		t.Fatal("expected an error for a non-numeric wrap width")
	}
	if settings.UI.WrapWidth != 72 {
		t.Errorf("UI.WrapWidth = %d, want the default 72", settings.UI.WrapWidth)
	}
}
