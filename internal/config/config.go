// Package config loads the settings shared by the batch programs from an
// optional YAML file, BIGNUM_* environment variables and defaults.
package config

import (
	"reflect"
	"strings"

	"github.com/govalues/bignum"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Prefix is the prefix of environment variables that override configuration
// keys, for example BIGNUM_LOGGING_SPEC overrides logging.spec.
const Prefix = "BIGNUM"

// Config is the configuration of the batch programs.
type Config struct {
	Logging   Logging `mapstructure:"logging" yaml:"logging"`
	Primality Task    `mapstructure:"primality" yaml:"primality"`
	KeyGen    Task    `mapstructure:"keygen" yaml:"keygen"`
	Match     Task    `mapstructure:"match" yaml:"match"`
}

// Logging contains the settings passed to flogging.
type Logging struct {
	// Spec is a flogging level specification, such as "info" or
	// "bignum.batch=debug:warn".
	Spec string `mapstructure:"spec" yaml:"spec"`
	// Format is a flogging format specifier or "json".
	Format string `mapstructure:"format" yaml:"format"`
}

// Task contains the settings of a single batch program.
type Task struct {
	// Endianness is the digit order of the hexadecimal tokens of the input.
	Endianness bignum.Endianness `mapstructure:"endianness" yaml:"endianness"`
}

var defaults = map[string]interface{}{
	"logging.spec":         "info",
	"logging.format":       "",
	"primality.endianness": bignum.BigEndian.String(),
	"keygen.endianness":    bignum.BigEndian.String(),
	"match.endianness":     bignum.BigEndian.String(),
}

// Load reads the configuration file at path, if path is not empty, and
// applies environment overrides and defaults on top of it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(Prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", path)
		}
	}

	var conf Config
	err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.DecodeHookFuncType(endiannessDecodeHook)))
	if err != nil {
		return nil, errors.Wrap(err, "error decoding config")
	}
	return &conf, nil
}

// YAML returns the configuration in the format accepted by Load.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "error encoding config")
	}
	return out, nil
}

var endiannessType = reflect.TypeOf(bignum.Endianness(0))

// endiannessDecodeHook parses "big" and "little" into bignum.Endianness.
func endiannessDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String || t != endiannessType {
		return data, nil
	}
	e, err := bignum.ParseEndianness(strings.TrimSpace(data.(string)))
	if err != nil {
		return nil, errors.WithMessage(err, "invalid endianness")
	}
	return e, nil
}
