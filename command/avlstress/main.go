// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--version] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if 0 == theConfiguration.Seed {
		theConfiguration.Seed = uint64(time.Now().UnixNano())
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	if verbose {
		fmt.Printf("configuration: %+v\n", theConfiguration)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Infof("seed: %d", theConfiguration.Seed)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: %s", program, fault.ErrAlreadyRunning)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	tally := &counter.Tally{}
	work := newWorkload(theConfiguration, logger.New("workload"), tally)
	progress := &reporter{
		log:      logger.New("report"),
		interval: time.Duration(theConfiguration.ReportInterval) * time.Second,
		tally:    tally,
		status:   work.status,
	}

	// list of background processes to start
	processes := background.Processes{
		work,
		progress,
	}

	p := background.Start(processes, nil)

	// wait for CTRL-C before shutting down to allow manual testing
	if !quiet {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	status := 0
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
	case err := <-work.failed:
		log.Criticalf("workload failed: %s", err)
		fmt.Fprintf(os.Stderr, "\nworkload failed: %s\n", err)
		status = 1
	}

	if !quiet {
		fmt.Printf("\nshutting down…\n")
	}
	log.Info("shutting down…")
	p.Stop()

	if !quiet {
		fmt.Printf("totals: %+v\n", tally.Snapshot())
	}

	if 0 != status {
		exitwithstatus.Exit(status)
	}
}
