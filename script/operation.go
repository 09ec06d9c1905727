// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Command - the action of one operation
type Command int

// all possible commands
const (
	Insert Command = iota
	Delete
	Contains
	List
	Height
	Count
	Print
	Check
	Clear
)

// names as written in a script, the first group take keys
var commandNames = map[string]Command{
	"insert":   Insert,
	"delete":   Delete,
	"contains": Contains,
	"list":     List,
	"height":   Height,
	"count":    Count,
	"print":    Print,
	"check":    Check,
	"clear":    Clear,
}

// String - the script name of a command
func (c Command) String() string {
	for name, command := range commandNames {
		if c == command {
			return name
		}
	}
	return "command(" + strconv.Itoa(int(c)) + ")"
}

// true if the command requires one or more keys
func (c Command) takesKeys() bool {
	switch c {
	case Insert, Delete, Contains:
		return true
	default:
		return false
	}
}

// Operation - one parsed script line
type Operation struct {
	Line    int
	Command Command
	Keys    []int
}

// Parse - read a script, one operation per line
//
// blank lines and everything after a '#' are ignored; command names
// are not case sensitive; keys are decimal integers
func Parse(r io.Reader) ([]Operation, error) {
	operations := []Operation{}

	scanner := bufio.NewScanner(r)
	n := 0
scan_lines:
	for scanner.Scan() {
		n += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if 0 == len(fields) {
			continue scan_lines
		}

		name := strings.ToLower(fields[0])
		command, ok := commandNames[name]
		if !ok {
			return nil, fmt.Errorf("line: %d  command: %q  %w", n, fields[0], fault.ErrInvalidCommand)
		}

		arguments := fields[1:]
		if !command.takesKeys() {
			if 0 != len(arguments) {
				return nil, fmt.Errorf("line: %d  %s: %w", n, command, fault.ErrUnexpectedArguments)
			}
			operations = append(operations, Operation{Line: n, Command: command})
			continue scan_lines
		}

		if 0 == len(arguments) {
			return nil, fmt.Errorf("line: %d  %s: %w", n, command, fault.ErrMissingKeys)
		}
		keys, err := ParseKeys(arguments)
		if nil != err {
			return nil, fmt.Errorf("line: %d  %s: %w", n, command, err)
		}
		operations = append(operations, Operation{Line: n, Command: command, Keys: keys})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return operations, nil
}

// ParseKeys - convert decimal strings to keys
func ParseKeys(arguments []string) ([]int, error) {
	keys := make([]int, 0, len(arguments))
	for _, s := range arguments {
		key, err := strconv.Atoi(s)
		if nil != err {
			return nil, fmt.Errorf("key: %q  %w", s, fault.ErrInvalidKey)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
