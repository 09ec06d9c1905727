// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyRange            = 100000
	defaultDeletePercent       = 45
	defaultOperationsPerSecond = 10000
	defaultBurst               = 100
	defaultCheckInterval       = 10000 // operations
	defaultReportInterval      = 60    // seconds
	defaultMaximumNodes        = 0     // unbounded

	defaultLogDirectory = "log"
	defaultLogFile      = "avlstress.log"
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

// Configuration - values read from the configuration file
type Configuration struct {
	DataDirectory       string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile             string               `gluamapper:"pidfile" json:"pidfile"`
	KeyRange            int                  `gluamapper:"key_range" json:"key_range"`
	DeletePercent       int                  `gluamapper:"delete_percent" json:"delete_percent"`
	OperationsPerSecond float64              `gluamapper:"operations_per_second" json:"operations_per_second"`
	Burst               int                  `gluamapper:"burst" json:"burst"`
	CheckInterval       int                  `gluamapper:"check_interval" json:"check_interval"`
	ReportInterval      int                  `gluamapper:"report_interval" json:"report_interval"`
	MaximumNodes        int                  `gluamapper:"maximum_nodes" json:"maximum_nodes"`
	Seed                uint64               `gluamapper:"seed" json:"seed"`
	Logging             logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := &Configuration{

		DataDirectory:       defaultDataDirectory,
		PidFile:             "", // no PidFile by default
		KeyRange:            defaultKeyRange,
		DeletePercent:       defaultDeletePercent,
		OperationsPerSecond: defaultOperationsPerSecond,
		Burst:               defaultBurst,
		CheckInterval:       defaultCheckInterval,
		ReportInterval:      defaultReportInterval,
		MaximumNodes:        defaultMaximumNodes,
		Seed:                0, // zero selects a time based seed

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	dataDirectory, err := configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	if err := configuration.PrepareLogging(options.DataDirectory, &options.Logging); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// check workload parameters
func (c *Configuration) validate() error {
	switch {
	case c.KeyRange <= 0, c.Burst <= 0, c.MaximumNodes < 0:
		return fault.ErrInvalidCount
	case c.DeletePercent < 0 || c.DeletePercent > 100:
		return fault.ErrInvalidPercentage
	case c.OperationsPerSecond < 0:
		return fault.ErrInvalidRate
	case c.CheckInterval <= 0, c.ReportInterval <= 0:
		return fault.ErrInvalidInterval
	}
	return nil
}
