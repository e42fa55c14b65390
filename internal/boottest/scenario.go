// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boottest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aibor/bootcheck/internal/keys"
	"gopkg.in/yaml.v3"
)

// Markers printed by DavOS.
const (
	MarkerBoot    = "Welcome to DavOS"
	MarkerHelp    = "Commands:"
	MarkerVersion = "DavOS 0.1.0"
	MarkerMode    = MarkerVersion + " (64bit)"
)

// Checkpoint is a marker that must show up in the debug log in time.
type Checkpoint struct {
	Name    string        `yaml:"name"`
	Marker  string        `yaml:"marker"`
	Timeout time.Duration `yaml:"timeout"`

	// Diagnostics enables printing of the [Diagnostics] if the checkpoint
	// fails.
	Diagnostics bool `yaml:"diagnostics"`
}

// Input is a command typed into the guest shell.
type Input struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// Step is a single step of a [Scenario]. Exactly one of the fields is set.
type Step struct {
	Checkpoint *Checkpoint `yaml:"checkpoint,omitempty"`
	Input      *Input      `yaml:"input,omitempty"`
}

// Stage returns the [Stage] the run is in while working on the step.
func (s Step) Stage() Stage {
	switch {
	case s.Checkpoint != nil && s.Checkpoint.Name != "":
		return Stage(s.Checkpoint.Name)
	case s.Checkpoint != nil:
		return Stage(fmt.Sprintf("Await %q", s.Checkpoint.Marker))
	case s.Input != nil && s.Input.Name != "":
		return Stage(s.Input.Name)
	case s.Input != nil:
		return Stage(fmt.Sprintf("Send %q", s.Input.Command))
	default:
		return ""
	}
}

// Scenario is the ordered list of steps a run works through.
type Scenario struct {
	Steps []Step `yaml:"steps"`
}

// DefaultScenario returns the DavOS boot check: boot to the shell prompt, run
// "help" and "version" and check the version reports 64 bit mode.
func DefaultScenario() Scenario {
	return Scenario{
		Steps: []Step{
			{Checkpoint: &Checkpoint{
				Name:        "AwaitBoot",
				Marker:      MarkerBoot,
				Timeout:     10 * time.Second,
				Diagnostics: true,
			}},
			{Input: &Input{
				Name:    "SendHelp",
				Command: "help",
			}},
			{Checkpoint: &Checkpoint{
				Name:        "AwaitHelpOutput",
				Marker:      MarkerHelp,
				Timeout:     5 * time.Second,
				Diagnostics: true,
			}},
			{Input: &Input{
				Name:    "SendVersion",
				Command: "version",
			}},
			{Checkpoint: &Checkpoint{
				Name:        "AwaitVersionOutput",
				Marker:      MarkerVersion,
				Timeout:     5 * time.Second,
				Diagnostics: true,
			}},
			{Checkpoint: &Checkpoint{
				Name:    "AwaitModeMarker",
				Marker:  MarkerMode,
				Timeout: 5 * time.Second,
			}},
		},
	}
}

// Validate checks the scenario can be run.
func (s Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScenario)
	}

	for idx, step := range s.Steps {
		err := step.validate()
		if err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalidScenario, idx, err)
		}
	}

	return nil
}

func (s Step) validate() error {
	switch {
	case s.Checkpoint == nil && s.Input == nil:
		return errors.New("neither checkpoint nor input")
	case s.Checkpoint != nil && s.Input != nil:
		return errors.New("both checkpoint and input")
	case s.Checkpoint != nil:
		if s.Checkpoint.Marker == "" {
			return errors.New("empty marker")
		}

		if s.Checkpoint.Timeout <= 0 {
			return fmt.Errorf("non-positive timeout: %s", s.Checkpoint.Timeout)
		}
	default:
		_, err := keys.FromCommand(s.Input.Command)
		if err != nil {
			return fmt.Errorf("command: %w", err)
		}
	}

	return nil
}

// ParseScenario parses a YAML encoded [Scenario] and validates it.
func ParseScenario(data []byte) (Scenario, error) {
	var scenario Scenario

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(&scenario)
	if err != nil {
		return Scenario{}, fmt.Errorf("%w: decode: %w", ErrInvalidScenario, err)
	}

	err = scenario.Validate()
	if err != nil {
		return Scenario{}, err
	}

	return scenario, nil
}

// LoadScenario reads and parses the [Scenario] file at the given path.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	return ParseScenario(data)
}
