// Copyright (c) 2026, The pooch Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/choria-io/fisk"

	"github.com/Xarthisius/pooch/metrics"
	"github.com/Xarthisius/pooch/model"
	"github.com/Xarthisius/pooch/processors"
)

type processCommand struct {
	file        string
	members     []string
	method      string
	action      string
	cacheDir    string
	monitorPort int
}

func registerUnzipCommand(app *fisk.Application) {
	cmd := &processCommand{}

	unzip := app.Command("unzip", "Unpacks a zip archive into a directory next to it").Action(cmd.unzipAction)
	unzip.Arg("file", "Archive to unpack, relative names are resolved in the cache directory").Required().StringVar(&cmd.file)
	unzip.Flag("member", "Unpack only these archive members").PlaceHolder("NAME").StringsVar(&cmd.members)
	cmd.addCommonFlags(unzip)
}

func registerUntarCommand(app *fisk.Application) {
	cmd := &processCommand{}

	untar := app.Command("untar", "Unpacks a tar archive into a directory next to it").Action(cmd.untarAction)
	untar.Arg("file", "Archive to unpack, may be gzip, bzip2 or xz compressed, relative names are resolved in the cache directory").Required().StringVar(&cmd.file)
	untar.Flag("member", "Unpack only these archive members").PlaceHolder("NAME").StringsVar(&cmd.members)
	cmd.addCommonFlags(untar)
}

func registerDecompressCommand(app *fisk.Application) {
	cmd := &processCommand{}

	decompress := app.Command("decompress", "Decompresses a file next to itself").Action(cmd.decompressAction)
	decompress.Arg("file", "File to decompress, relative names are resolved in the cache directory").Required().StringVar(&cmd.file)
	decompress.Flag("method", "Compression method").Default(model.MethodAuto).EnumVar(&cmd.method, model.MethodAuto, model.MethodLzma, model.MethodXz, model.MethodGzip, model.MethodBzip2)
	cmd.addCommonFlags(decompress)
}

func (c *processCommand) addCommonFlags(cmd *fisk.CmdClause) {
	cmd.Flag("action", "How the file came to be in the local store").Default(string(model.ActionFetch)).EnumVar(&c.action, string(model.ActionDownload), string(model.ActionUpdate), string(model.ActionFetch))
	cmd.Flag("cache", "Override the local cache directory").PlaceHolder("DIR").StringVar(&c.cacheDir)
	cmd.Flag("monitor-port", "Port to serve Prometheus metrics on, 0 disables").Default("0").IntVar(&c.monitorPort)
}

func (c *processCommand) unzipAction(_ *fisk.ParseContext) error {
	proc, err := processors.NewUnzip(c.members...)
	if err != nil {
		return err
	}

	return c.run(proc)
}

func (c *processCommand) untarAction(_ *fisk.ParseContext) error {
	proc, err := processors.NewUntar(c.members...)
	if err != nil {
		return err
	}

	return c.run(proc)
}

func (c *processCommand) decompressAction(_ *fisk.ParseContext) error {
	proc, err := processors.NewDecompress(c.method)
	if err != nil {
		return err
	}

	return c.run(proc)
}

func (c *processCommand) run(proc model.Processor) error {
	action, err := model.ParseAction(c.action)
	if err != nil {
		return err
	}

	if c.monitorPort > 0 {
		metrics.RegisterMetrics()
		metrics.ListenAndServe(c.monitorPort, newLogger())
	}

	fetch, err := newFetch(c.cacheDir)
	if err != nil {
		return err
	}

	path, err := fetch.ResolvePath(c.file)
	if err != nil {
		return err
	}

	files, err := proc.Process(ctx, path, action, fetch)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}

	return nil
}
