// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/gogama/adagx/logger"
	"github.com/gogama/adagx/retry"
	"github.com/gogama/adagx/timeout"
	"github.com/gogama/adagx/transport"
)

// Environment names.
const (
	EnvQA         = "qa"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "ADAGX_"

var hosts = map[string]string{
	EnvQA:         "my-qa.alldata.com",
	EnvStaging:    "my-beta.alldata.com",
	EnvProduction: "my.alldata.com",
}

var aliases = map[string]string{
	"prod": EnvProduction,
	"beta": EnvStaging,
}

// Config is the resolved configuration.
type Config struct {
	// Env is the target environment: qa, staging or production.
	Env string `koanf:"env" validate:"required,oneof=qa staging production"`
	// BaseURLOverride replaces the environment's base URL, for example
	// to point at a local stub.
	BaseURLOverride string `koanf:"baseurl" validate:"omitempty,url"`
	Log             Log    `koanf:"log"`
	// Retry holds the retry tunables.
	Retry   retry.Settings `koanf:"retry"`
	Timeout Timeout        `koanf:"timeout"`
	Rate    Rate           `koanf:"rate"`
	// Credentials are keyed by user name: one, two, three, adrp...
	Credentials map[string]Credential `koanf:"credentials"`

	baseURL *url.URL
}

// Log configures the zerolog logger.
type Log struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty"`
}

// Timeout configures attempt timeouts.
type Timeout struct {
	// Attempt bounds every single attempt.
	Attempt time.Duration `koanf:"attempt" validate:"gt=0"`
}

// Rate configures client-side rate limiting. A zero Limit disables it.
type Rate struct {
	Limit float64 `koanf:"limit" validate:"gte=0"`
	Burst int     `koanf:"burst" validate:"gte=0"`
}

// A Credential is a username and password pair.
type Credential struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// String masks the password, so a Credential may be logged.
func (c Credential) String() string {
	return c.Username + ":" + logger.MaskValue
}

// Options control where Load reads from.
type Options struct {
	// File is an optional YAML file. An empty name skips the file
	// layer; a named file that cannot be read is an error.
	File string
	// Environ returns the environment as key=value strings. If nil,
	// os.Environ is used.
	Environ func() []string
}

// Defaults are the values used when no source sets a key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"env":                   EnvQA,
		"baseurl":               "",
		"log.level":             "info",
		"log.pretty":            false,
		"retry.maxretries":      retry.DefaultSettings.MaxRetries,
		"retry.initialdelay":    retry.DefaultSettings.InitialDelay,
		"retry.multiplier":      retry.DefaultSettings.Multiplier,
		"retry.retryablestatus": append([]int(nil), retry.DefaultSettings.RetryableStatus...),
		"retry.maxdelay":        time.Duration(0),
		"retry.jitter":          false,
		"timeout.attempt":       timeout.DefaultTimeout,
		"rate.limit":            0.0,
		"rate.burst":            1,
	}
}

// Load reads, decodes and validates the configuration.
func Load(o Options) (*Config, error) {
	environ := o.Environ
	if environ == nil {
		environ = os.Environ
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("adagx/config: failed to load defaults: %w", err)
	}

	if o.File != "" {
		if err := k.Load(file.Provider(o.File), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("adagx/config: failed to load %s: %w", o.File, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		EnvironFunc:   environ,
		TransformFunc: legacyKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("adagx/config: failed to load legacy environment: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: environ,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("adagx/config: failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("adagx/config: failed to unmarshal config: %w", err)
	}

	cfg.Env = canonicalEnv(cfg.Env)
	if err := validate(&cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.baseURL, err = resolveBaseURL(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// legacyKey maps the environment variables of the estimate test suite
// onto config keys. Unrelated variables map to "" and are skipped.
func legacyKey(k, v string) (string, any) {
	switch {
	case k == "TEST_ENV":
		return "env", v
	case k == "ADRP_USERNAME":
		return "credentials.adrp.username", v
	case k == "ADRP_PASSWORD":
		return "credentials.adrp.password", v
	case strings.HasPrefix(k, "USER_"):
		rest := strings.TrimPrefix(k, "USER_")
		for _, field := range []string{"USERNAME", "PASSWORD"} {
			if user, ok := strings.CutSuffix(rest, "_"+field); ok && user != "" {
				return "credentials." + strings.ToLower(user) + "." + strings.ToLower(field), v
			}
		}
	}
	return "", nil
}

func canonicalEnv(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

var validate = func() func(*Config) error {
	v := validator.New()
	return func(cfg *Config) error {
		err := v.Struct(cfg)
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return newValidationError(fieldErrs)
		} else if err != nil {
			return fmt.Errorf("adagx/config: %w", err)
		}
		return nil
	}
}()

func resolveBaseURL(cfg *Config) (*url.URL, error) {
	raw := cfg.BaseURLOverride
	if raw == "" {
		raw = "https://" + hosts[cfg.Env]
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("adagx/config: invalid base URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("adagx/config: base URL %q is not absolute", raw)
	}
	return u, nil
}

// Host returns the API gateway host name of environment name, which may
// be an alias such as "prod". It reports false for unknown names.
func Host(name string) (string, bool) {
	h, ok := hosts[canonicalEnv(name)]
	return h, ok
}

// BaseURL returns a copy of the base URL plans are resolved against.
func (c *Config) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// TLSPolicy returns the TLS policy of the environment. Only QA, whose
// gateway runs with a self-signed legacy certificate, is permissive.
func (c *Config) TLSPolicy() transport.TLSPolicy {
	if c.Env == EnvQA {
		return transport.Permissive
	}
	return transport.Verify
}

// RetrySettings returns the retry tunables. The status list is a copy.
func (c *Config) RetrySettings() retry.Settings {
	s := c.Retry
	s.RetryableStatus = append([]int(nil), c.Retry.RetryableStatus...)
	return s
}

// TimeoutPolicy returns a fixed attempt timeout policy.
func (c *Config) TimeoutPolicy() timeout.Policy {
	return timeout.Fixed(c.Timeout.Attempt)
}

// TransportOptions returns the options for transport.New.
func (c *Config) TransportOptions() transport.Options {
	return transport.Options{
		TLS:   c.TLSPolicy(),
		Limit: c.Rate.Limit,
		Burst: c.Rate.Burst,
	}
}

// Credential returns the credential of the named user.
func (c *Config) Credential(user string) (Credential, bool) {
	cred, ok := c.Credentials[strings.ToLower(user)]
	return cred, ok && cred.Username != ""
}
