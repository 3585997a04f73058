// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/docker/go-units"
	"github.com/pingcap/errors"
	"github.com/sqlscan/mysqllex/pkg/lexer"
	"github.com/sqlscan/mysqllex/pkg/util/logutil"
	"go.uber.org/atomic"
)

// Config contains configuration options.
type Config struct {
	Lexer    Lexer    `toml:"lexer" json:"lexer"`
	Log      Log      `toml:"log" json:"log"`
	Tokenize Tokenize `toml:"tokenize" json:"tokenize"`
	Metrics  Metrics  `toml:"metrics" json:"metrics"`
}

// Lexer is the lexer section of config.
type Lexer struct {
	// Server version, "8.0.19" or "80019".
	Version string `toml:"version" json:"version"`
	// SQL mode in sql_mode syntax, e.g. "ANSI,NO_BACKSLASH_ESCAPES".
	SQLMode string `toml:"sql-mode" json:"sql-mode"`
	// FunctionCallDetection scans function keywords not followed by "(" as
	// identifiers.
	FunctionCallDetection bool `toml:"function-call-detection" json:"function-call-detection"`
	// CharsetIntroducers recognizes "_utf8mb4" style introducers.
	CharsetIntroducers bool `toml:"charset-introducers" json:"charset-introducers"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json, text, or console.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
	// File log config.
	File logutil.FileLogConfig `toml:"file" json:"file"`
	// StatementLogMaxLen truncates statements written to the log.
	StatementLogMaxLen int `toml:"statement-log-max-len" json:"statement-log-max-len"`
}

// Tokenize is the tokenize section of config.
type Tokenize struct {
	// Concurrency is the number of statements a batch scans at once.
	Concurrency int `toml:"concurrency" json:"concurrency"`
	// MaxStatementLength rejects longer statements, e.g. "1MiB". Empty or
	// "0" means no limit.
	MaxStatementLength string `toml:"max-statement-length" json:"max-statement-length"`
}

// Metrics is the metrics section of config.
type Metrics struct {
	Enable bool `toml:"enable" json:"enable"`
	// Instance is added to every metric as the "instance" label if set.
	Instance string `toml:"instance" json:"instance"`
}

var defaultConf = Config{
	Lexer: Lexer{
		Version:            lexer.DefaultVersion.String(),
		CharsetIntroducers: true,
	},
	Log: Log{
		Level:              logutil.DefaultLogLevel,
		Format:             logutil.DefaultLogFormat,
		StatementLogMaxLen: logutil.DefaultTokenLogMaxLen,
	},
	Tokenize: Tokenize{
		Concurrency:        4,
		MaxStatementLength: "1MiB",
	},
	Metrics: Metrics{
		Enable: true,
	},
}

var globalConf atomic.Pointer[Config]

func init() {
	StoreGlobalConfig(NewConfig())
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// GetGlobalConfig returns the global configuration.
// It should store configuration from command line and configuration file.
// Other parts of the system can read the global configuration use this function.
func GetGlobalConfig() *Config {
	return globalConf.Load()
}

// StoreGlobalConfig stores a new config to the globalConf.
func StoreGlobalConfig(config *Config) {
	globalConf.Store(config)
}

// ErrConfigValidationFailed is returned by Load for unknown config items.
var ErrConfigValidationFailed = errors.New("config file has unknown configuration options")

// Load loads config options from a toml file. Unknown keys are an error.
func (c *Config) Load(confFile string) error {
	metaData, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	return checkUndecoded(metaData)
}

// LoadFromString is Load for toml content held in memory.
func (c *Config) LoadFromString(content string) error {
	metaData, err := toml.Decode(content, c)
	if err != nil {
		return errors.Trace(err)
	}
	return checkUndecoded(metaData)
}

func checkUndecoded(metaData toml.MetaData) error {
	undecoded := metaData.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	items := make([]string, 0, len(undecoded))
	for _, item := range undecoded {
		items = append(items, item.String())
	}
	return errors.Annotate(ErrConfigValidationFailed, strings.Join(items, ", "))
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	if _, err := c.Lexer.ServerVersion(); err != nil {
		return err
	}
	if _, err := c.Lexer.Mode(); err != nil {
		return err
	}
	if c.Tokenize.Concurrency <= 0 {
		return errors.Errorf("tokenize.concurrency should be positive, got %d", c.Tokenize.Concurrency)
	}
	if _, err := c.Tokenize.MaxStatementBytes(); err != nil {
		return err
	}
	if c.Log.StatementLogMaxLen < 0 {
		return errors.Errorf("log.statement-log-max-len should not be negative, got %d", c.Log.StatementLogMaxLen)
	}
	return nil
}

// ServerVersion parses the version option.
func (l *Lexer) ServerVersion() (lexer.Version, error) {
	v, err := lexer.ParseVersion(l.Version)
	return v, errors.Trace(err)
}

// Mode parses the sql-mode option.
func (l *Lexer) Mode() (lexer.SQLMode, error) {
	mode, err := lexer.ParseSQLMode(l.SQLMode)
	return mode, errors.Trace(err)
}

// ScannerOptions converts the lexer section into scanner options.
func (l *Lexer) ScannerOptions() ([]lexer.Option, error) {
	v, err := l.ServerVersion()
	if err != nil {
		return nil, err
	}
	mode, err := l.Mode()
	if err != nil {
		return nil, err
	}
	opts := []lexer.Option{lexer.WithVersion(v), lexer.WithSQLMode(mode)}
	if l.FunctionCallDetection {
		opts = append(opts, lexer.WithFunctionHook(lexer.CallSiteFunctionHook))
	}
	if !l.CharsetIntroducers {
		opts = append(opts, lexer.WithCharsetResolver(lexer.NopCharsetResolver))
	}
	return opts, nil
}

// MaxStatementBytes parses max-statement-length. 0 means no limit.
func (t *Tokenize) MaxStatementBytes() (int64, error) {
	s := strings.TrimSpace(t.MaxStatementLength)
	if s == "" {
		return 0, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, errors.Annotatef(err, "invalid tokenize.max-statement-length %q", t.MaxStatementLength)
	}
	if n < 0 {
		return 0, errors.Errorf("invalid tokenize.max-statement-length %q", t.MaxStatementLength)
	}
	return n, nil
}

// ToLogConfig converts *Log to *logutil.LogConfig.
func (l *Log) ToLogConfig() *logutil.LogConfig {
	return logutil.NewLogConfig(l.Level, l.Format, l.File, l.DisableTimestamp)
}
