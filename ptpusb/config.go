// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package ptpusb

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// defines a PTP-over-USB configuration range.
const (
	// ChunkSizeMin/Max bound the outbound bulk chunk size; it must stay
	// a multiple of the endpoint's wMaxPacketSize.
	ChunkSizeMin = 64
	ChunkSizeMax = 16 * 1024 * 1024

	// CommandTimeoutMin/Max bound the per-phase command timeout.
	CommandTimeoutMin = 0 // 0 means unlimited
	CommandTimeoutMax = 5 * time.Minute

	// EventTimeoutMin/Max bound the interrupt-poll timeout.
	EventTimeoutMin = 0
	EventTimeoutMax = 5 * time.Minute
)

// Config defines a PTP-over-USB session configuration. The default is
// applied for each unspecified value.
type Config struct {
	// ChunkSize is the outbound bulk chunk size in bytes; must be a
	// multiple of the endpoint wMaxPacketSize. Default 1 MiB.
	ChunkSize int `mapstructure:"chunk_size"`

	// InitialReadBufferSize is the size of the first bulk-in read
	// attempted per phase, sized to avoid allocating for ordinary
	// command/control payloads. Default 8 KiB.
	InitialReadBufferSize int `mapstructure:"initial_read_buffer_size"`

	// CommandTimeout bounds each individual USB transfer within a
	// command() transaction. Zero means unlimited.
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	// EventTimeout is an interrupt-poll timeout, range-checked by Valid.
	// Zero means unlimited. Engine.Event and Session.Event take their
	// poll timeout as an argument and do not read this field.
	EventTimeout time.Duration `mapstructure:"event_timeout"`

	// SessionID is the id carried by OpenSession; any non-zero value is
	// valid. Default 3.
	SessionID uint32 `mapstructure:"session_id"`
}

// Valid applies the default for each unspecified value and rejects
// out-of-range settings.
func (sf *Config) Valid() error {
	if sf == nil {
		return errors.New("ptpusb: invalid config pointer")
	}

	if sf.ChunkSize == 0 {
		sf.ChunkSize = 1024 * 1024
	} else if sf.ChunkSize < ChunkSizeMin || sf.ChunkSize > ChunkSizeMax {
		return errors.New("ptpusb: ChunkSize out of range")
	}

	if sf.InitialReadBufferSize == 0 {
		sf.InitialReadBufferSize = 8 * 1024
	} else if sf.InitialReadBufferSize < 0 {
		return errors.New("ptpusb: InitialReadBufferSize must be positive")
	}

	if sf.CommandTimeout < CommandTimeoutMin || sf.CommandTimeout > CommandTimeoutMax {
		return errors.New("ptpusb: CommandTimeout out of range")
	}

	if sf.EventTimeout < EventTimeoutMin || sf.EventTimeout > EventTimeoutMax {
		return errors.New("ptpusb: EventTimeout out of range")
	}

	if sf.SessionID == 0 {
		sf.SessionID = 3
	}

	return nil
}

// DefaultConfig returns the default PTP-over-USB configuration.
func DefaultConfig() Config {
	return Config{
		ChunkSize:             1024 * 1024,
		InitialReadBufferSize: 8 * 1024,
		CommandTimeout:        0,
		EventTimeout:          0,
		SessionID:             3,
	}
}

// LoadConfig reads a Config from path (YAML, TOML, or JSON, by
// extension) and from PTP_-prefixed environment variables, applying
// defaults for anything left unset. An empty path skips the file and
// returns the environment-overridden default.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PTP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := DefaultConfig()
	v.SetDefault("chunk_size", cfg.ChunkSize)
	v.SetDefault("initial_read_buffer_size", cfg.InitialReadBufferSize)
	v.SetDefault("command_timeout", cfg.CommandTimeout)
	v.SetDefault("event_timeout", cfg.EventTimeout)
	v.SetDefault("session_id", cfg.SessionID)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var out Config
	if err := v.Unmarshal(&out); err != nil {
		return Config{}, err
	}
	if err := out.Valid(); err != nil {
		return Config{}, err
	}
	return out, nil
}
