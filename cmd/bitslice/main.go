// Package main defines a command line inspector for fixed-width registers.
// It loads a value and its named ranges from flags, environment or a YAML
// file and reads, writes or computes on them with Verilog-like bit slicing.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "bitslice")

func newApp() *cli.App {
	flags := appFlags()
	return &cli.App{
		Name:     "bitslice",
		Usage:    "Verilog-like bit slicing of fixed-width register values",
		Flags:    flags,
		Commands: commands,
		Before:   before(flags),
	}
}

func before(flags []cli.Flag) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		// Load any flags from file, if specified.
		if ctx.IsSet(ConfigFileFlag.Name) {
			if err := altsrc.InitInputSourceWithContext(
				flags,
				altsrc.NewYamlSourceFromFlagFunc(ConfigFileFlag.Name))(ctx); err != nil {
				return err
			}
		}
		return setupLogging(ctx)
	}
}

func setupLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	switch format := ctx.String(LogFormatFlag.Name); format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		formatter.DisableColors = ctx.Bool(NoColorFlag.Name)
		logrus.SetFormatter(formatter)
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %s", format)
	}
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
