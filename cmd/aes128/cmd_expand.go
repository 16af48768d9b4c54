package main

import (
	"encoding/hex"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/xtls/aes128/aes"
)

type expandCommand struct {
	Key string `long:"key" short:"k" description:"Hex encoded 16 byte key" required:"true"`
	Raw bool   `long:"raw" description:"Print the whole schedule as one hex string, suitable for --schedule"`

	cfg *globalOptions
}

func newExpandCommand(cfg *globalOptions) *expandCommand {
	return &expandCommand{cfg: cfg}
}

func (x *expandCommand) Register(parser *flags.Parser) error {
	_, err := parser.AddCommand(
		"expand",
		"Print the round keys of an AES-128 key",
		"Run the AES-128 key expansion and print the eleven round "+
			"keys, one per line, or the full 176 byte schedule "+
			"when --raw is given",
		x,
	)
	return err
}

func (x *expandCommand) Execute(_ []string) error {
	if err := x.cfg.setupLogging(); err != nil {
		return err
	}

	key, err := hex.DecodeString(x.Key)
	if err != nil {
		return fmt.Errorf("invalid --key: %w", err)
	}

	sched, err := aes.ExpandKey(key)
	if err != nil {
		return fmt.Errorf("invalid --key: %w", err)
	}

	if x.Raw {
		_, err := fmt.Fprintf(x.cfg.out, "%x\n", sched.Bytes())
		return err
	}

	for i := 0; i <= aes.Rounds; i++ {
		rk := sched.RoundKey(i)
		_, err := fmt.Fprintf(x.cfg.out, "round %2d: %x\n", i, rk[:])
		if err != nil {
			return err
		}
	}

	return nil
}
