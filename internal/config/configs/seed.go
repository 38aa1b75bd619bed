package configs

// Seed points at an optional YAML file of brands applied on startup. An
// empty File disables seeding.
type Seed struct {
	File string `env:"FILE"`
}
