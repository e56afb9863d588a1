package configs

import "time"

// Scheduler configures the directory watcher.
type Scheduler struct {
	Enabled    bool          `env:"ENABLED" envDefault:"false"`
	Dir        string        `env:"DIR" envDefault:"./uploads/auto_imports"`
	Interval   time.Duration `env:"INTERVAL" envDefault:"1h"`
	Profile    string        `env:"PROFILE" envDefault:"scheduled"`
	RunOnStart bool          `env:"RUN_ON_START" envDefault:"true"`
}
