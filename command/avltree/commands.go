// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

// the keys of the demonstration tree and the key removed afterwards
var (
	demoKeys   = []int{9, 5, 10, 0, 6, 11, -1, 1, 2}
	demoDelete = 10
)

func runScripts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrMissingParameters
	}

	runner, err := script.NewRunner(m.config.MaximumNodes, logger.New("script"), m.w)
	if nil != err {
		return err
	}

	for _, fileName := range c.Args() {
		if m.verbose {
			fmt.Fprintf(m.e, "script: %s\n", fileName)
		}
		if err := runFile(runner, fileName); nil != err {
			m.log.Errorf("script: %q  error: %s", fileName, err)
			return fmt.Errorf("%s: %w", fileName, err)
		}
	}
	return nil
}

// parse and execute a single file
func runFile(runner *script.Runner, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	operations, err := script.Parse(f)
	if nil != err {
		return err
	}
	return runner.Run(operations)
}

func runDemo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return demo(m.w, logger.New("demo"), m.config.MaximumNodes)
}

// show the tree after inserting the demonstration keys and again
// after deleting one of them
func demo(w io.Writer, log *logger.L, maximumNodes int) error {

	runner, err := script.NewRunner(maximumNodes, log, w)
	if nil != err {
		return err
	}

	report := []script.Command{script.List, script.Height, script.Print, script.Check}

	steps := []struct {
		title     string
		operation script.Operation
	}{
		{
			title:     "insert: " + joinKeys(demoKeys),
			operation: script.Operation{Line: 1, Command: script.Insert, Keys: demoKeys},
		},
		{
			title:     "delete: " + strconv.Itoa(demoDelete),
			operation: script.Operation{Line: 2, Command: script.Delete, Keys: []int{demoDelete}},
		},
	}

	for _, step := range steps {
		fmt.Fprintf(w, "%s\n", step.title)

		operations := []script.Operation{step.operation}
		for _, command := range report {
			operations = append(operations, script.Operation{Line: step.operation.Line, Command: command})
		}
		if err := runner.Run(operations); nil != err {
			return err
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}

func runSort(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := script.ParseKeys(c.Args())
	if nil != err {
		return err
	}
	return sortKeys(m.w, keys, m.config.MaximumNodes)
}

// insert all keys and print the unique ones in order
func sortKeys(w io.Writer, keys []int, maximumNodes int) error {

	if 0 == len(keys) {
		return fault.ErrMissingKeys
	}

	tree := avl.NewWithLimit[int](maximumNodes)
	for _, key := range keys {
		var err error
		tree, err = tree.TryInsert(key)
		if nil != err {
			return err
		}
	}

	fmt.Fprintf(w, "%s\n", joinKeys(tree.Keys()))
	fmt.Fprintf(w, "height: %d\n", tree.Height())
	return nil
}

func joinKeys(keys []int) string {
	s := make([]string, len(keys))
	for i, key := range keys {
		s[i] = strconv.Itoa(key)
	}
	return strings.Join(s, " ")
}
