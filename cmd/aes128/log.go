package main

import "github.com/btcsuite/btclog/v2"

// log is the command's logger. It stays disabled until setupLogging runs.
var log btclog.Logger = btclog.Disabled

func useLogger(logger btclog.Logger) {
	log = logger
}
