package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/katatrina/commerce-clients/internal/auth"
	"github.com/katatrina/commerce-clients/internal/gateway"
	"github.com/katatrina/commerce-clients/internal/iocontext"
	"github.com/katatrina/commerce-clients/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	configPath := pflag.StringP("config", "c", "./app.env", "config file; the environment is used alone when it does not exist")
	authMethod := pflag.StringP("auth", "a", "", "credential to send: AUTH_TOKEN (default), ADMIN_TOKEN or STORE_TOKEN")
	maxDistance := pflag.Float64("max-distance", 0, "search radius of the near command (default 50)")
	pflag.Usage = usage
	pflag.Parse()

	if pflag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	// Load configurations
	path := *configPath
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		path = ""
	}
	config, err := util.LoadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config 😣")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Warn().Str("log_level", config.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Debug().Msg("configurations loaded successfully ✅")

	method, err := auth.ParseMethod(*authMethod)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth method 😣")
	}

	ioctx := iocontext.FromConfig(config)
	hc, err := gateway.NewHTTPClient(ioctx, config.HTTPTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP client 😣")
	}
	defer hc.Close()

	clients, err := newClients(ioctx, hc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create service clients 😣")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in := input{opts: &gateway.CallOptions{AuthMethod: method}}
	if pflag.CommandLine.Changed("max-distance") {
		in.maxDistance = maxDistance
	}

	result, err := run(ctx, clients, pflag.Args(), in)
	if err != nil {
		log.Error().Err(err).Msg("command failed 😣")
		stop()
		hc.Close()
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Error().Err(err).Msg("failed to write result 😣")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: commerce-clients [flags] <command> [args...]\n\ncommands:\n")
	for _, name := range commandNames() {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
	fmt.Fprintf(os.Stderr, "\nflags:\n")
	pflag.PrintDefaults()
}
