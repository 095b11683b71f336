package config

type yamlConfig struct {
	Routes struct {
		File     string `yaml:"file"`
		Database string `yaml:"database"`
	} `yaml:"routes"`

	Defaults struct {
		Format string `yaml:"format"`
	} `yaml:"defaults"`

	Paths struct {
		JourneysDir string `yaml:"journeys_dir"`
	} `yaml:"paths"`

	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
}
