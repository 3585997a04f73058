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
	"bytes"

	"github.com/BurntSushi/toml"
	jsoniter "github.com/json-iterator/go"
	"github.com/pingcap/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CloneConf deeply clones this config.
func CloneConf(conf *Config) (*Config, error) {
	content, err := json.Marshal(conf)
	if err != nil {
		return nil, errors.Trace(err)
	}
	var clonedConf Config
	if err := json.Unmarshal(content, &clonedConf); err != nil {
		return nil, errors.Trace(err)
	}
	return &clonedConf, nil
}

// EncodeTOML renders the config in the format Load reads.
func EncodeTOML(conf *Config) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return "", errors.Trace(err)
	}
	return buf.String(), nil
}

// EncodeJSON renders the config as indented JSON.
func EncodeJSON(conf *Config) (string, error) {
	content, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return "", errors.Trace(err)
	}
	return string(content), nil
}
