package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/xtls/aes128/aes"
)

type selfTestCommand struct {
	cfg *globalOptions
}

func newSelfTestCommand(cfg *globalOptions) *selfTestCommand {
	return &selfTestCommand{cfg: cfg}
}

func (x *selfTestCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"selftest",
		"Run the built-in known-answer tests",
		"Encrypt and decrypt the FIPS-197 example vectors and "+
			"report any mismatch",
		x,
	)
	return err
}

func (x *selfTestCommand) Execute(_ []string) error {
	if err := x.cfg.setupLogging(); err != nil {
		return err
	}

	if err := aes.SelfTest(); err != nil {
		return err
	}

	for _, k := range aes.KnownAnswers() {
		if _, err := fmt.Fprintf(x.cfg.out, "ok  %s\n", k.Name); err != nil {
			return err
		}
	}

	log.Infof("All %d known-answer vectors passed", len(aes.KnownAnswers()))

	return nil
}
