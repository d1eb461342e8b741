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
package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, Level(-1))
	assert.Equal(t, zerolog.WarnLevel, Level(0))
	assert.Equal(t, zerolog.InfoLevel, Level(1))
	assert.Equal(t, zerolog.DebugLevel, Level(2))
	assert.Equal(t, zerolog.TraceLevel, Level(5))
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	xdg.Reload()
	assert.Equal(t, filepath.Join("/state", "turtle", "turtle.log"), LogFilePath())
}

func TestSetupLoggerWritesFile(t *testing.T) {
	saved := log.Logger
	savedLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = saved
		zerolog.SetGlobalLevel(savedLevel)
	})

	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	closeLog := SetupLogger(1, false)
	logger := GetLogger("test")
	logger.Info().Msg("hello from the test")
	closeLog()

	b, err := os.ReadFile(filepath.Join(dir, "turtle", "turtle.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello from the test")
	assert.Contains(t, string(b), `"component":"test"`)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
