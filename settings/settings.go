// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings loads engine settings from TOML or YAML files and
// applies them to a [gpu.Device].
package settings

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/glkit/gpu"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported settings file encodings.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// ErrUnknownFormat is returned for files whose extension is not
// .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown settings format")

// FormatFor returns the format for a file name by its extension.
func FormatFor(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("settings: %w: %s", ErrUnknownFormat, filename)
}

// Settings are the engine settings.
type Settings struct {
	// DisableFloatLinear turns off linear filtering of float textures
	// even when the context supports it.
	DisableFloatLinear bool `toml:"disable_float_linear" yaml:"disable_float_linear"`

	// MaxTextureUnits limits the texture units used, including the
	// unit reserved for texture setup. Zero uses the device limit.
	MaxTextureUnits int `toml:"max_texture_units" yaml:"max_texture_units"`

	// ZeroInitTextures uploads zeros to every level of new textures.
	// It is always on in debug builds.
	ZeroInitTextures bool `toml:"zero_init_textures" yaml:"zero_init_textures"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level" default:"warn"`

	// ShaderDirs are directories watched for shader changes.
	ShaderDirs []string `toml:"shader_dirs" yaml:"shader_dirs"`
}

// Defaults sets the default values.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// New returns Settings with the default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Open reads settings from the named file over the current values,
// choosing the format by extension.
func (s *Settings) Open(filename string) error {
	f, err := FormatFor(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := s.Read(bytes.NewReader(b), f); err != nil {
		return fmt.Errorf("settings: %s: %w", filename, err)
	}
	return nil
}

// Read decodes settings in the given format over the current values.
// Unknown keys are an error.
func (s *Settings) Read(r io.Reader, f Formats) error {
	var err error
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(s)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(s)
	}
	if err != nil {
		return err
	}
	return s.Validate()
}

// Write encodes the settings in the given format.
func (s *Settings) Write(w io.Writer, f Formats) error {
	if f == YAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(w).Encode(s)
}

// Validate checks the values.
func (s *Settings) Validate() error {
	var errs []error
	if s.MaxTextureUnits < 0 || s.MaxTextureUnits == 1 {
		errs = append(errs, fmt.Errorf("max_texture_units must be 0 or at least 2, not %d", s.MaxTextureUnits))
	}
	if _, err := s.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the parsed LogLevel; empty is warn.
func (s *Settings) Level() (slog.Level, error) {
	if s.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log_level: %w", err)
	}
	return lv, nil
}

// Logger returns a text logger writing to w at the configured level.
func (s *Settings) Logger(w io.Writer) *slog.Logger {
	lv, err := s.Level()
	errors.Log(err)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv}))
}

// Apply adjusts the capabilities and options of dev. It must be called
// before any resources are created on dev, since the texture unit used
// for setup depends on MaxTextureUnits.
func (s *Settings) Apply(dev *gpu.Device) {
	c := &dev.Caps
	if s.DisableFloatLinear {
		c.FloatLinear = false
	}
	if s.MaxTextureUnits >= 2 && s.MaxTextureUnits < c.MaxTextureUnits {
		c.MaxTextureUnits = s.MaxTextureUnits
	}
	if s.ZeroInitTextures {
		dev.ZeroInitTextures = true
	}
}
