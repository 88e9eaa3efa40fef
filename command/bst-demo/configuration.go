// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultCount   = 100 // number of random keys
	defaultMaximum = 100 // keys are in [0, maximum)

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - everything the demonstration run needs
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Count         int                  `gluamapper:"count" json:"count"`
	Maximum       int                  `gluamapper:"maximum" json:"maximum"`
	Seed          int64                `gluamapper:"seed" json:"seed"`
	Rebalance     bool                 `gluamapper:"rebalance" json:"rebalance"`
	Insert        []int                `gluamapper:"insert" json:"insert"`
	Delete        []int                `gluamapper:"delete" json:"delete"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// defaults, a configuration file only overrides the items it sets
func defaultConfiguration(dataDirectory string) *Configuration {

	// parsing adds to Levels, each configuration gets its own copy
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		DataDirectory: dataDirectory,
		PidFile:       "", // no PidFile by default
		Count:         defaultCount,
		Maximum:       defaultMaximum,
		Seed:          0, // time based
		Rebalance:     true,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name selects the defaults with the data directory
// set to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	if "" == configurationFileName {
		dataDirectory, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		options := defaultConfiguration(dataDirectory)
		return options, finishConfiguration(options)
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration(defaultDataDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}

	return options, finishConfiguration(options)
}

// validate ranges and make all paths absolute
func finishConfiguration(options *Configuration) error {

	if options.Count <= 0 {
		return fault.ErrInvalidCount
	}
	if options.Maximum <= 0 {
		return fault.ErrInvalidRange
	}

	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must not contain a path separator
	if !util.IsPlainName(options.Logging.File) {
		return fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	return nil
}
