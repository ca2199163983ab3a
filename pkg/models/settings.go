package models

// Settings represents the application configuration. Every field can be
// overridden from the environment, e.g. VENTIQ_SERVER_ADDR.
type Settings struct {
	Assets AssetSettings  `yaml:"assets" envPrefix:"ASSETS_"`
	Labels LabelSettings  `yaml:"labels" envPrefix:"LABEL_"`
	UI     UISettings     `yaml:"ui" envPrefix:"UI_"`
	Server ServerSettings `yaml:"server" envPrefix:"SERVER_"`
}

// AssetSettings controls how screenshot paths are built
type AssetSettings struct {
	Root         string `yaml:"root" env:"ROOT"`                   // URL prefix, e.g. assets/images
	SellerFolder string `yaml:"seller_folder" env:"SELLER_FOLDER"` // folder for seller tutorials
	AdminFolder  string `yaml:"admin_folder" env:"ADMIN_FOLDER"`   // folder for admin tutorials
	Placeholder  string `yaml:"placeholder" env:"PLACEHOLDER"`     // path used when no screenshot is mapped
	Dir          string `yaml:"dir" env:"DIR"`                     // local directory served under /assets/
}

// LabelSettings holds the navigation button labels
type LabelSettings struct {
	Next   string `yaml:"next" env:"NEXT"`
	Finish string `yaml:"finish" env:"FINISH"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowScreenshot bool `yaml:"show_screenshot" env:"SHOW_SCREENSHOT"`
	WrapWidth      int  `yaml:"wrap_width" env:"WRAP_WIDTH"`
	StatusSeconds  int  `yaml:"status_seconds" env:"STATUS_SECONDS"`
}

// ServerSettings controls the HTTP API
type ServerSettings struct {
	Addr string `yaml:"addr" env:"ADDR"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Assets: AssetSettings{
			Root:         "assets/images",
			SellerFolder: "images_tutorial_seller",
			AdminFolder:  "images_tutorial_admin",
			Placeholder:  "assets/images/placeholder-screenshot.svg",
			Dir:          "assets",
		},
		Labels: LabelSettings{
			Next:   "Next",
			Finish: "Finish",
		},
		UI: UISettings{
			ShowScreenshot: true,
			WrapWidth:      72,
			StatusSeconds:  4,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
	}
}

// ApplyDefaults fills empty fields from DefaultSettings so that a partial
// settings file still yields a usable configuration
func (s *Settings) ApplyDefaults() {
	d := DefaultSettings()
	if s.Assets.Root == "" {
		s.Assets.Root = d.Assets.Root
	}
	if s.Assets.SellerFolder == "" {
		s.Assets.SellerFolder = d.Assets.SellerFolder
	}
	if s.Assets.AdminFolder == "" {
		s.Assets.AdminFolder = d.Assets.AdminFolder
	}
	if s.Assets.Placeholder == "" {
		s.Assets.Placeholder = d.Assets.Placeholder
	}
	if s.Assets.Dir == "" {
		s.Assets.Dir = d.Assets.Dir
	}
	if s.Labels.Next == "" {
		s.Labels.Next = d.Labels.Next
	}
	if s.Labels.Finish == "" {
		s.Labels.Finish = d.Labels.Finish
	}
	if s.UI.WrapWidth <= 0 {
		s.UI.WrapWidth = d.UI.WrapWidth
	}
	if s.UI.StatusSeconds <= 0 {
		s.UI.StatusSeconds = d.UI.StatusSeconds
	}
	if s.Server.Addr == "" {
		s.Server.Addr = d.Server.Addr
	}
}
