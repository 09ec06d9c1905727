// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultMaximumNodes  = 0  // unbounded

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as parsing the file merges into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - values read from the optional configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	MaximumNodes  int                  `gluamapper:"maximum_nodes" json:"maximum_nodes"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// with no file the log goes to the system temporary directory and
// critical messages are copied to the console
func getConfiguration(configurationFileName string, verbose bool) (*Configuration, error) {

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		MaximumNodes:  defaultMaximumNodes,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if "" == configurationFileName {
		options.Logging.Directory = os.TempDir()
		options.Logging.Console = true
		if verbose {
			options.Logging.Levels = LoglevelMap{
				logger.DefaultTag: "info",
			}
		}
		return options, nil
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.MaximumNodes < 0 {
		return nil, fault.ErrInvalidCount
	}

	dataDirectory, err := configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	if err := configuration.PrepareLogging(options.DataDirectory, &options.Logging); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
