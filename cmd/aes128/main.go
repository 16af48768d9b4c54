// Command aes128 expands AES-128 keys and encrypts or decrypts single
// blocks given in hex. It is meant for checking vectors by hand, not for
// encrypting data: there is no mode of operation.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// subCommand is implemented by every command of the tool.
type subCommand interface {
	Register(parser *flags.Parser) error
}

func newParser(cfg *globalOptions) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)

	commands := []subCommand{
		newExpandCommand(cfg),
		newCryptCommand(cfg, false),
		newCryptCommand(cfg, true),
		newSelfTestCommand(cfg),
		newInfoCommand(cfg),
	}
	for _, command := range commands {
		if err := command.Register(parser); err != nil {
			return nil, err
		}
	}

	return parser, nil
}

func main() {
	parser, err := newParser(newGlobalOptions())
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
