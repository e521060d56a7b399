// Package config holds the runtime settings read from the environment.
package config

import (
	"io"

	"github.com/kelseyhightower/envconfig"
)

// NameSpace is the prefix of every environment variable read here
const NameSpace = "batchresize"

// Version of the tool, set at build time with -ldflags
var Version = "dev"

// Config ...
type Config struct {
	Develop bool   `envconfig:"DEVELOP"`
	Quality int    `envconfig:"QUALITY" default:"95"`  // JPEG and WebP encode quality
	Resizer string `envconfig:"RESIZER" default:"nfnt"` // nfnt | xdraw
}

const (
	DefaultQuality = 95
	DefaultResizer = "nfnt"
)

var current = Config{Quality: DefaultQuality, Resizer: DefaultResizer}

// Current returns the settings of the last successful Load
func Current() Config {
	return current
}

// Load reads the settings again from the environment
func Load() (Config, error) {
	var c Config
	err := envconfig.Process(NameSpace, &c)
	if err != nil {
		return c, err
	}
	current = c
	return c, nil
}

// InDevelop ...
func InDevelop() bool {
	return current.Develop
}

// Usage writes the supported environment variables to w
func Usage(w io.Writer) error {
	var c Config
	return envconfig.Usagef(NameSpace, &c, w, envconfig.DefaultTableFormat)
}
