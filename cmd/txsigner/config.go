package main

import (
	"github.com/jessevdk/go-flags"
)

type config struct {
	PrivateKey    string `long:"private-key" short:"p" description:"Private key in HEX format" required:"true"`
	PrevTxID      string `long:"prev-txid" description:"ID of the transaction whose output is being spent" required:"true"`
	PrevIndex     uint32 `long:"prev-index" description:"Index of the output being spent" default:"0"`
	ToAddress     string `long:"to-address" description:"Destination address" required:"true"`
	Amount        uint64 `long:"amount" description:"Amount to send, in satoshis" required:"true"`
	ChangeAddress string `long:"change-address" description:"Address receiving the change output, if any"`
	ChangeAmount  uint64 `long:"change-amount" description:"Amount returned as change, in satoshis"`
	TestNet       bool   `long:"testnet" description:"Use test network address versions"`
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
