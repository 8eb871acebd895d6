package config

// DefaultBackgrounds is the background rotation set shipped with the site.
// The filenames are resolved against asset_base at request time.
var DefaultBackgrounds = []string{
	"dark_mountains.png",
	"night_city.png",
	"foggy_forest.png",
	"deep_space.png",
	"winter_lake.png",
}

// DefaultExcludes are glob patterns the content-dir loader skips by default.
var DefaultExcludes = []string{
	"drafts/**",
	"README.md",
	"*.draft.md",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:          "homepage",
		Port:           8080,
		AssetsDir:      "assets/backs",
		AssetBase:      "/static/img/",
		Backgrounds:    DefaultBackgrounds,
		RotateInterval: 90,
		DefaultArticle: "upmath",
		ContentDir:     "content",
		Include:        []string{"**/*.md"},
		Exclude:        DefaultExcludes,
		DataDir:        ".homepage",
	}
}
