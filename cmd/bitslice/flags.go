package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

var (
	// ValueFlag is the register value, in any base Parse accepts.
	ValueFlag = &cli.StringFlag{
		Name:    "value",
		Usage:   "Register value: decimal, 0x hex, 0o octal or 0b binary",
		Value:   "0",
		EnvVars: []string{"BITSLICE_VALUE"},
	}
	// WidthFlag is the declared register width; 0 picks the minimal width of the value.
	WidthFlag = &cli.IntFlag{
		Name:    "width",
		Usage:   "Register width in bits (1-256), 0 to fit the value",
		EnvVars: []string{"BITSLICE_WIDTH"},
	}
	AliasFlag = &cli.StringSliceFlag{
		Name:    "alias",
		Usage:   "Named range in the form name=high:low or name=bit, may be repeated",
		EnvVars: []string{"BITSLICE_ALIAS"},
	}
	NoColorFlag = &cli.BoolFlag{
		Name:    "no-color",
		Usage:   "Disable coloured output",
		EnvVars: []string{"BITSLICE_NO_COLOR"},
	}
	VerbosityFlag = &cli.StringFlag{
		Name:    "verbosity",
		Usage:   "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value:   "info",
		EnvVars: []string{"BITSLICE_VERBOSITY"},
	}
	LogFormatFlag = &cli.StringFlag{
		Name:    "log-format",
		Usage:   "Specify log formatting. Supports: text, json",
		Value:   "text",
		EnvVars: []string{"BITSLICE_LOG_FORMAT"},
	}
	// ConfigFileFlag points at a YAML file holding values for any of the flags above.
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config-file",
		Usage:   "The filepath to a yaml file with flag values",
		EnvVars: []string{"BITSLICE_CONFIG_FILE"},
	}
	HighlightFlag = &cli.StringFlag{
		Name:  "highlight",
		Usage: "Bit, range (high:low) or alias to colour in the binary output",
	}
)

// appFlags returns fresh copies of the global flags, wrapped for config file
// loading. Slice flags keep their parsed values in the flag itself.
func appFlags() []cli.Flag {
	value, width, alias := *ValueFlag, *WidthFlag, *AliasFlag
	noColor, verbosity, logFormat, configFile := *NoColorFlag, *VerbosityFlag, *LogFormatFlag, *ConfigFileFlag
	return wrapFlags([]cli.Flag{
		&value,
		&width,
		&alias,
		&noColor,
		&verbosity,
		&logFormat,
		&configFile,
	})
}

// wrapFlags so that they can be loaded from a config file.
func wrapFlags(flags []cli.Flag) []cli.Flag {
	wrapped := make([]cli.Flag, 0, len(flags))
	for _, f := range flags {
		switch f := f.(type) {
		case *cli.BoolFlag:
			wrapped = append(wrapped, altsrc.NewBoolFlag(f))
		case *cli.StringFlag:
			wrapped = append(wrapped, altsrc.NewStringFlag(f))
		case *cli.StringSliceFlag:
			wrapped = append(wrapped, altsrc.NewStringSliceFlag(f))
		case *cli.IntFlag:
			wrapped = append(wrapped, altsrc.NewIntFlag(f))
		default:
			panic(fmt.Sprintf("cannot convert type %T", f))
		}
	}
	return wrapped
}
