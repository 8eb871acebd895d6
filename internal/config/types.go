package config

// Config is the top-level homepage configuration, corresponding to homepage.yml.
type Config struct {
	Title          string   `yaml:"title" koanf:"title"`
	Port           int      `yaml:"port" koanf:"port"`
	AssetsDir      string   `yaml:"assets_dir" koanf:"assets_dir"`
	AssetBase      string   `yaml:"asset_base" koanf:"asset_base"`
	Backgrounds    []string `yaml:"backgrounds" koanf:"backgrounds"`
	RotateInterval int      `yaml:"rotate_interval" koanf:"rotate_interval"`
	DefaultArticle string   `yaml:"default_article" koanf:"default_article"`
	ContentDir     string   `yaml:"content_dir" koanf:"content_dir"`
	Include        []string `yaml:"include" koanf:"include"`
	Exclude        []string `yaml:"exclude" koanf:"exclude"`
	DataDir        string   `yaml:"data_dir" koanf:"data_dir"`
}
