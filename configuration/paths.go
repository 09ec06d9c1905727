// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - absolute data directory
//
// "." means the directory containing the configuration file and other
// relative paths are also taken from there; the directory must exist
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}
	configurationDirectory := filepath.Dir(configurationFileName)

	if "" == dataDirectory || "~" == dataDirectory {
		return "", fault.ErrInvalidDirectory
	}
	dataDirectory = EnsureAbsolute(configurationDirectory, dataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(dataDirectory); nil != err {
		return "", err
	} else if !fileInfo.IsDir() {
		return "", fault.ErrInvalidDirectory
	}
	return dataDirectory, nil
}

// PrepareLogging - make the log directory absolute and create it
//
// the log file must be a plain name within that directory
func PrepareLogging(dataDirectory string, logging *logger.Configuration) error {
	switch filepath.Dir(logging.File) {
	case "", ".":
	default:
		return fault.ErrNotAPlainFileName
	}

	logging.Directory = EnsureAbsolute(dataDirectory, logging.Directory)
	return os.MkdirAll(logging.Directory, 0700)
}
