// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogama/adagx"
	"github.com/gogama/adagx/adag"
	"github.com/gogama/adagx/config"
	"github.com/gogama/adagx/logger"
	"github.com/gogama/adagx/tracing"
	"github.com/gogama/adagx/transport"
)

const tokenVar = config.EnvPrefix + "TOKEN"

var errNoToken = errors.New("no access token: pass --token or set " + tokenVar)

// app carries the state shared by the subcommands. It is filled in by
// the root command's PersistentPreRunE.
type app struct {
	environ func() []string
	// tracerProvider records one span per call. Nil means the global
	// provider, which is a no-op unless an SDK has been registered.
	tracerProvider trace.TracerProvider

	configFile string
	env        string
	baseURL    string
	logLevel   string
	token      string

	cfg    *config.Config
	client *adagx.Client
	api    adag.API
}

func newRootCommand(environ func() []string, tp trace.TracerProvider) *cobra.Command {
	a := &app{environ: environ, tracerProvider: tp}

	root := &cobra.Command{
		Use:   "adagctl",
		Short: "Call the estimate platform API gateway",
		Long: `adagctl creates estimates, links them to vehicles, looks up vehicles and
ends sessions through the API gateway of the configured environment.

Configuration is read from the optional --config YAML file and from
ADAGX_ environment variables; flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.client != nil {
				a.client.CloseIdleConnections()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML configuration file")
	flags.StringVar(&a.env, "env", "", "target environment: qa, staging or production")
	flags.StringVar(&a.baseURL, "base-url", "", "override the environment's base URL")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.token, "token", "", "access token (default $"+tokenVar+")")

	root.AddCommand(newEstimateCommand(a), newVehicleCommand(a), newSessionCommand(a))
	return root
}

// setup loads the configuration with the flags layered on top, and
// builds the client.
func (a *app) setup(cmd *cobra.Command) error {
	overrides := map[string]string{
		"ENV":       a.env,
		"BASEURL":   a.baseURL,
		"LOG_LEVEL": a.logLevel,
	}
	environ := func() []string {
		kv := a.environ()
		for k, v := range overrides {
			if v != "" {
				kv = append(kv, config.EnvPrefix+k+"="+v)
			}
		}
		return kv
	}

	cfg, err := config.Load(config.Options{File: a.configFile, Environ: environ})
	if err != nil {
		return err
	}
	hc, err := transport.New(cfg.TransportOptions())
	if err != nil {
		return err
	}

	handlers := &adagx.HandlerGroup{}
	tracing.Install(handlers, tracing.Options{
		TracerProvider: a.tracerProvider,
		Propagator:     propagation.TraceContext{},
	})

	a.cfg = cfg
	a.client = &adagx.Client{
		HTTPDoer:      hc,
		BaseURL:       cfg.BaseURL(),
		RetryPolicy:   cfg.RetrySettings().Policy(),
		TimeoutPolicy: cfg.TimeoutPolicy(),
		Logger:        logger.New(cfg.Log.Level, cfg.Log.Pretty, cmd.ErrOrStderr()),
		Handlers:      handlers,
	}
	a.api = adag.API{Doer: a.client}
	if a.token == "" {
		a.token = lookup(a.environ(), tokenVar)
	}
	return nil
}

func (a *app) requireToken() (string, error) {
	if a.token == "" {
		return "", errNoToken
	}
	return a.token, nil
}

func lookup(environ []string, name string) string {
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok && k == name {
			return v
		}
	}
	return ""
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
