package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/xtls/aes128/aes"
)

type infoCommand struct {
	cfg *globalOptions
}

func newInfoCommand(cfg *globalOptions) *infoCommand {
	return &infoCommand{cfg: cfg}
}

func (x *infoCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"info",
		"Describe the cipher implementation",
		"Print the block, key and schedule sizes, the code path in "+
			"use and whether the CPU offers AES instructions",
		x,
	)
	return err
}

func (x *infoCommand) Execute(_ []string) error {
	if err := x.cfg.setupLogging(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(x.cfg.out,
		"implementation: %s\n"+
			"block size:     %d\n"+
			"key size:       %d\n"+
			"rounds:         %d\n"+
			"schedule size:  %d\n"+
			"hardware aes:   %t\n",
		aes.Implementation, aes.BlockSize, aes.KeySize, aes.Rounds,
		aes.ScheduleSize, aes.HardwareAES(),
	)
	if err != nil {
		return err
	}

	if aes.HardwareAES() {
		log.Warnf("This CPU has AES instructions; crypto/aes uses them " +
			"and is not exposed to cache-timing leaks of the table " +
			"implementation")
	}

	return nil
}
