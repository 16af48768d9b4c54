package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/xtls/aes128/aes"
)

// cryptCommand backs both the encrypt and decrypt commands.
//
//nolint:lll
type cryptCommand struct {
	Key      string `long:"key" short:"k" description:"Hex encoded 16 byte key"`
	Schedule string `long:"schedule" description:"Hex encoded 176 byte expanded key, as printed by expand --raw; replaces --key"`
	Block    string `long:"block" short:"b" description:"Hex encoded 16 byte block" required:"true"`

	cfg     *globalOptions
	decrypt bool
}

func newCryptCommand(cfg *globalOptions, decrypt bool) *cryptCommand {
	return &cryptCommand{cfg: cfg, decrypt: decrypt}
}

func (x *cryptCommand) Register(parser *flags.Parser) error {
	name, short, long := "encrypt", "Encrypt a single block",
		"Encrypt one 16 byte block with AES-128 and print the "+
			"ciphertext in hex"
	if x.decrypt {
		name, short, long = "decrypt", "Decrypt a single block",
			"Decrypt one 16 byte block with AES-128 and print "+
				"the plaintext in hex"
	}

	_, err := parser.AddCommand(name, short, long, x)
	return err
}

// schedule builds the round keys from either --key or --schedule.
func (x *cryptCommand) schedule() (*aes.Schedule, error) {
	switch {
	case x.Key != "" && x.Schedule != "":
		return nil, errors.New("--key and --schedule are mutually " +
			"exclusive")

	case x.Schedule != "":
		raw, err := hex.DecodeString(x.Schedule)
		if err != nil {
			return nil, fmt.Errorf("invalid --schedule: %w", err)
		}
		sched, err := aes.ScheduleFromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --schedule: %w", err)
		}
		return sched, nil

	case x.Key != "":
		key, err := hex.DecodeString(x.Key)
		if err != nil {
			return nil, fmt.Errorf("invalid --key: %w", err)
		}
		sched, err := aes.ExpandKey(key)
		if err != nil {
			return nil, fmt.Errorf("invalid --key: %w", err)
		}
		return sched, nil

	default:
		return nil, errors.New("one of --key or --schedule is required")
	}
}

func (x *cryptCommand) Execute(_ []string) error {
	if err := x.cfg.setupLogging(); err != nil {
		return err
	}

	sched, err := x.schedule()
	if err != nil {
		return err
	}

	in, err := hex.DecodeString(x.Block)
	if err != nil {
		return fmt.Errorf("invalid --block: %w", err)
	}

	out := make([]byte, aes.BlockSize)
	if x.decrypt {
		log.Debugf("Decrypting one block")
		err = aes.DecryptBlock(sched, out, in)
	} else {
		log.Debugf("Encrypting one block")
		err = aes.EncryptBlock(sched, out, in)
	}
	if err != nil {
		return fmt.Errorf("invalid --block: %w", err)
	}

	_, err = fmt.Fprintf(x.cfg.out, "%x\n", out)
	return err
}
