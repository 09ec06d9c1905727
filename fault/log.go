// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time for the logger to write out the final message
const panicDelay = 100 * time.Millisecond

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
// prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf("%s"+format, append([]interface{}{caller(2)}, arguments...)...)
}

// Panicf - panic with a formatted message
func Panicf(format string, arguments ...interface{}) {
	s := fmt.Sprintf(format, arguments...)
	internalCriticalf("%s%s", caller(2), s)
	abort(s)
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	abort(message)
}

func abort(message string) {
	if nil != log {
		time.Sleep(panicDelay) // to allow logging output
	}
	panic(message)
}

// PanicWithError - final panic
func PanicWithError(message string, err error) {
	panicWithError(caller(2), message, err)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	panicWithError(caller(2), message, err)
}

func panicWithError(location string, message string, err error) {
	s := fmt.Sprintf("%s failed with error: %s", message, err)
	internalCriticalf("%s%s", location, s)
	abort(s)
}

// source location of a caller as "(file:line) "
func caller(skip int) string {
	if _, file, line, ok := runtime.Caller(skip); ok {
		return fmt.Sprintf("(%q:%d) ", file, line)
	}
	return ""
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
