package main

import (
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btclog/v2"
	"github.com/xtls/aes128/aes"
)

const (
	defaultDebugLevel = "info"

	// subsystem is the logging tag of the command itself.
	subsystem = "A128"
)

// globalOptions are the flags accepted before any subcommand.
//
//nolint:lll
type globalOptions struct {
	DebugLevel   string `long:"debuglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off}"`
	NoTimestamps bool   `long:"notimestamps" description:"Omit timestamps from log output"`

	logWriter io.Writer
	out       io.Writer
}

func newGlobalOptions() *globalOptions {
	return &globalOptions{
		DebugLevel: defaultDebugLevel,
		logWriter:  os.Stderr,
		out:        os.Stdout,
	}
}

// setupLogging creates the log handler and hands sub-loggers to this
// command and to the aes package.
func (o *globalOptions) setupLogging() error {
	level, ok := btclog.LevelFromString(o.DebugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", o.DebugLevel)
	}

	var opts []btclog.HandlerOption
	if o.NoTimestamps {
		opts = append(opts, btclog.WithNoTimestamp())
	}
	handler := btclog.NewDefaultHandler(o.logWriter, opts...)

	cmdLog := btclog.NewSLogger(handler.SubSystem(subsystem))
	cmdLog.SetLevel(level)
	useLogger(cmdLog)

	aesLog := btclog.NewSLogger(handler.SubSystem(aes.Subsystem))
	aesLog.SetLevel(level)
	aes.UseLogger(aesLog)

	return nil
}
