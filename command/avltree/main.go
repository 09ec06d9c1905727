// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	file    string
	config  *Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avltree"
	app.Usage = "build, inspect and verify AVL trees of integer keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " optional Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute script files against a single tree",
			ArgsUsage: "FILE...",
			Action:    runScripts,
		},
		{
			Name:   "demo",
			Usage:  "build a small tree, show it, then delete a key",
			Action: runDemo,
		},
		{
			Name:      "sort",
			Usage:     "print the unique keys in order and the tree height",
			ArgsUsage: "KEY...",
			Action:    runSort,
		},
		{
			Name:  "version",
			Usage: "display avltree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file, verbose)
		if nil != err {
			return err
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s", version)
		log.Debugf("configuration: %+v", configuration)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			log:     log,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// stop logging
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("finished")
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
