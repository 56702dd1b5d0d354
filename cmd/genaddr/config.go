package main

import (
	"github.com/jessevdk/go-flags"
)

type config struct {
	Mnemonic string `long:"mnemonic" short:"m" description:"Restore the private key from a BIP39 mnemonic instead of generating a new one"`
	TestNet  bool   `long:"testnet" description:"Derive a test network address"`
}

func parseCommandLine() (*config, error) {
	cfg := &config{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
