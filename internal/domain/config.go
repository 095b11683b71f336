package domain

// Config represents the minimal train-routes configuration loaded from
// trainroutes.yaml.
type Config struct {
	Routes   RoutesConfig
	Defaults DefaultsConfig
	Paths    PathsConfig
	Server   ServerConfig
}

type RoutesConfig struct {
	// File is a CSV route table; Database a SQLite one. File wins when both
	// are set and the caller passes no explicit source.
	File     string
	Database string
}

type DefaultsConfig struct {
	Format string
}

type PathsConfig struct {
	JourneysDir string
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// DefaultConfig provides sane defaults if trainroutes.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Routes: RoutesConfig{
			File: "routes.csv",
		},
		Defaults: DefaultsConfig{
			Format: "pretty",
		},
		Paths: PathsConfig{
			JourneysDir: "journeys",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
