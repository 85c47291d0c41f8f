// Copyright 2025 The JyutServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the JyutServe lookup CLI and IPC server.

JyutServe finds Cantonese characters that share a pronunciation with a
Jyutping query: the same full syllable, the same initial (onset), or the
same final (rime). Tone digits 1-6 are ignored for full syllable matches.

# Usage

Look up a single query:

	jyutserve faa1
	jyutserve f
	jyutserve aa

Create a data file with every initial+final combination and no characters:

	jyutserve -init

Run the interactive prompt, or the msgpack IPC server:

	jyutserve -c
	jyutserve -s

# Data

Characters live in a JSON file mapping tone-less syllables to characters:

	{ "baa": ["巴", "爸"], "fi": [] }

Edit the file directly to add characters. A missing or broken file is
treated as empty. Files ending in .msgpack or .bin are read as msgpack.

# Configuration

A TOML file in the user config dir is created with defaults on first run:

	[store]
	path = "characters.json"

	[server]
	min_query_len = 0
	max_query_len = 0

	[cli]
	show_decomposition = true
	color = true
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bastiangx/jyutserve/internal/cli"
	"github.com/bastiangx/jyutserve/internal/utils"
	"github.com/bastiangx/jyutserve/pkg/config"
	"github.com/bastiangx/jyutserve/pkg/jyutping"
	"github.com/bastiangx/jyutserve/pkg/server"
	"github.com/bastiangx/jyutserve/pkg/store"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "jyutserve"
	gh      = "https://github.com/bastiangx/jyutserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires flags, config and the engine to one of the run modes and
// returns the process exit code. Reports go to stdout, logs to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "Show current version")
	dataFile := fs.String("data", "", "Characters data file (default from config)")
	configFile := fs.String("config", "", "Path to a TOML config file")
	debugMode := fs.Bool("d", false, "Toggle debug mode")
	cliMode := fs.Bool("c", false, "Run the interactive prompt")
	serverMode := fs.Bool("s", false, "Run the msgpack IPC server on stdin/stdout")
	initData := fs.Bool("init", false, "Write a data file with every initial+final combination")
	showInfo := fs.Bool("info", false, "Print the initials, finals and number of stored syllables")

	fs.Usage = func() {
		cli.Usage(stdout, AppName, "characters.json")
		fmt.Fprintln(stdout, "\nFlags:")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fs.SetOutput(stderr)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		printVersion(stderr)
		return 0
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
		log.SetReportTimestamp(false)
	}

	var defaultConfigPath string
	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v. Using paths as given...", err)
	} else {
		defaultConfigPath = pathResolver.GetConfigPath(config.FileName)
	}

	cfg, activeConfig := config.LoadConfigWithPriority(*configFile, defaultConfigPath)
	log.Debugf("Using config: (%s)", utils.GetAbsolutePath(activeConfig))

	dataPath := cfg.Store.Path
	if *dataFile != "" {
		dataPath = *dataFile
	}
	if pathResolver != nil && !*initData {
		dataPath = pathResolver.GetDataFile(dataPath)
	}
	log.Debugf("Using data file: (%s)", dataPath)

	switch {
	case *initData:
		if err := writeSkeleton(stdout, dataPath); err != nil {
			log.Errorf("Failed to create data file: %v", err)
			return 1
		}
		return 0

	case *serverMode:
		reload := func() jyutping.Lookuper { return jyutping.New(dataPath) }
		srv := server.NewServer(jyutping.New(dataPath), cfg, reload)
		if err := srv.Start(); err != nil {
			log.Errorf("Server error: %v", err)
			return 1
		}
		return 0

	case *cliMode:
		engine := jyutping.New(dataPath)
		handler := cli.NewInputHandler(engine, os.Stdin, stdout, cfg.CLI.ShowDecomposition, cfg.CLI.Color)
		if err := handler.Start(); err != nil {
			log.Errorf("CLI error: %v", err)
			return 1
		}
		return 0

	case *showInfo:
		cli.Info(stdout, jyutping.New(dataPath))
		return 0
	}

	if fs.NArg() != 1 {
		cli.Usage(stdout, AppName, filepath.Base(dataPath))
		return 1
	}

	query := fs.Arg(0)
	engine := jyutping.New(dataPath)
	cli.Report(stdout, query, engine.Lookup(query))
	return 0
}

// writeSkeleton creates the data file pre-populated with every
// initial+final combination. An existing file is never overwritten.
func writeSkeleton(w io.Writer, path string) error {
	if utils.FileExists(path) {
		return fmt.Errorf("%s already exists", path)
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	s := store.Skeleton(jyutping.DefaultOnsets(), jyutping.DefaultRimes())
	if err := s.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %d combinations to %s\n", s.Len(), path)
	return nil
}

func printVersion(w io.Writer) {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("[ JyutServe ] Jyutping character lookup")
	logger.Print("", "version", Version)
	logger.Print("Github Repo", "gh", gh)
}
