//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config loads turtle settings. Values are layered: built-in
// defaults, then a TOML file, then TURTLE_ environment variables.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	terrors "github.com/timburks/turtle/errors"
)

//go:embed defaults.toml
var defaultConfig []byte

// EnvPrefix starts the names of environment overrides, e.g. TURTLE_CANVAS_SCALE.
const EnvPrefix = "TURTLE_"

// FileNames are searched, in order, when no config file is named.
var FileNames = []string{"turtle.toml", ".turtle.toml"}

type Config struct {
	Verbosity   int     // log.verbosity
	Scale       float64 // canvas.scale, cells per turtle unit
	StopOnEmpty bool    // run.stop_on_empty
	Heading     float64 // turtle.heading, radians
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the configuration. When path is empty, FileNames are looked
// up in dir; a missing file is not an error. A named file must exist.
func Load(path string, dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, terrors.Wrap(err, terrors.ErrConfigLoad, "failed to load defaults")
	}

	if path == "" {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, terrors.Wrapf(err, terrors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, terrors.Wrap(err, terrors.ErrConfigLoad, "failed to load env vars")
	}

	return &Config{
		Verbosity:   k.Int("log.verbosity"),
		Scale:       k.Float64("canvas.scale"),
		StopOnEmpty: k.Bool("run.stop_on_empty"),
		Heading:     k.Float64("turtle.heading"),
	}, nil
}
