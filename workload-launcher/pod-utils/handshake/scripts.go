/*
Copyright 2026 The Airbyte Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package handshake describes the file protocol the containers of a check
// pod use to coordinate through the shared config volume, and renders the
// shell scripts that implement it.
package handshake

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"text/template"
	"time"

	"github.com/buildkite/shellwords"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

const (
	// VolumeName is the name of the memory-backed volume shared by every
	// container in the pod.
	VolumeName = "airbyte-config"
	// ConfigDir is where VolumeName is mounted in every container.
	ConfigDir = "/config"

	// UploadCompleteMarker is created by the sidecar once the connector
	// configuration is staged. Its presence is the only signal the init
	// container waits for.
	UploadCompleteMarker = "FINISHED_UPLOADING"
	// ConnectorConfigFile is the connector configuration staged by the sidecar.
	ConnectorConfigFile = "connectionConfiguration.json"
	// CheckOutputFile receives the combined output of the check entrypoint.
	CheckOutputFile = "checkJobOutput.json"
	// ExitCodeFile receives the exit status of the check entrypoint.
	ExitCodeFile = "exitCode.txt"

	// EntrypointEnv names the variable the connector image uses to expose
	// its entrypoint.
	EntrypointEnv = "AIRBYTE_ENTRYPOINT"

	// MaxPollIterations bounds how many times the init container looks for
	// UploadCompleteMarker before giving up.
	MaxPollIterations = 60
	// PollInterval is the pause between two looks.
	PollInterval = 1 * time.Second
)

var (
	waitTemplate = template.Must(template.New("wait").Parse(`i=0
until [ $i -ge {{.Iterations}} ]
do
  echo "$i - waiting for config file transfer to complete..."
  if [ -f {{.MarkerPath}} ]; then
    exit 0
  fi
  i=$((i+1))
  sleep {{.Interval}}
done
echo "config files did not transfer in time"
exit 1
`))

	checkTemplate = template.Must(template.New("check").Parse(`config={{.ConfigPath}}
eval "${{.EntrypointEnv}} check --config \"$config\"" > {{.OutputPath}} 2>&1
exit_code=$?
cat {{.OutputPath}}
echo "$exit_code" > {{.ExitCodePath}}
`))
)

// WaitScript blocks until Marker shows up in Dir, polling at most
// Iterations times. It exits 0 as soon as the marker is seen and 1 once
// the polls are used up. Interval must be a whole number of seconds.
type WaitScript struct {
	Dir        string
	Marker     string
	Iterations int
	Interval   time.Duration
}

// DefaultWaitScript waits for the sidecar's upload marker in ConfigDir.
func DefaultWaitScript() WaitScript {
	return WaitScript{
		Dir:        ConfigDir,
		Marker:     UploadCompleteMarker,
		Iterations: MaxPollIterations,
		Interval:   PollInterval,
	}
}

func (s WaitScript) validate() error {
	var errs []error
	if s.Dir == "" {
		errs = append(errs, errors.New("directory is required"))
	}
	if s.Marker == "" {
		errs = append(errs, errors.New("marker file name is required"))
	}
	if s.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", s.Iterations))
	}
	if s.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative, got %s", s.Interval))
	}
	// POSIX sleep only takes whole seconds.
	if s.Interval%time.Second != 0 {
		errs = append(errs, fmt.Errorf("interval must be whole seconds, got %s", s.Interval))
	}
	return utilerrors.NewAggregate(errs)
}

// Render returns the script text for a POSIX shell.
func (s WaitScript) Render() (string, error) {
	if err := s.validate(); err != nil {
		return "", fmt.Errorf("invalid wait script: %w", err)
	}
	return render(waitTemplate, struct {
		MarkerPath string
		Iterations int
		Interval   int64
	}{
		MarkerPath: quote(s.Dir, s.Marker),
		Iterations: s.Iterations,
		Interval:   int64(s.Interval / time.Second),
	})
}

// CheckScript runs the connector's check entrypoint against ConfigFile,
// captures its output in OutputFile, echoes that output and finally
// records the entrypoint's exit status in ExitCodeFile. The exit code file
// is written whatever the entrypoint returns.
type CheckScript struct {
	Dir           string
	ConfigFile    string
	OutputFile    string
	ExitCodeFile  string
	EntrypointEnv string
}

// DefaultCheckScript uses the well-known file names in ConfigDir.
func DefaultCheckScript() CheckScript {
	return CheckScript{
		Dir:           ConfigDir,
		ConfigFile:    ConnectorConfigFile,
		OutputFile:    CheckOutputFile,
		ExitCodeFile:  ExitCodeFile,
		EntrypointEnv: EntrypointEnv,
	}
}

func (s CheckScript) validate() error {
	var errs []error
	for _, field := range []struct{ name, value string }{
		{"directory", s.Dir},
		{"config file", s.ConfigFile},
		{"output file", s.OutputFile},
		{"exit code file", s.ExitCodeFile},
		{"entrypoint variable", s.EntrypointEnv},
	} {
		if field.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", field.name))
		}
	}
	return utilerrors.NewAggregate(errs)
}

// Render returns the script text for a POSIX shell.
func (s CheckScript) Render() (string, error) {
	if err := s.validate(); err != nil {
		return "", fmt.Errorf("invalid check script: %w", err)
	}
	return render(checkTemplate, struct {
		ConfigPath    string
		OutputPath    string
		ExitCodePath  string
		EntrypointEnv string
	}{
		ConfigPath:    quote(s.Dir, s.ConfigFile),
		OutputPath:    quote(s.Dir, s.OutputFile),
		ExitCodePath:  quote(s.Dir, s.ExitCodeFile),
		EntrypointEnv: s.EntrypointEnv,
	})
}

// Command wraps a rendered script into a container command.
func Command(script string) []string {
	return []string{"sh", "-c", script}
}

func quote(dir, file string) string {
	return shellwords.QuotePosix(path.Join(dir, file))
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s script: %w", t.Name(), err)
	}
	return buf.String(), nil
}
