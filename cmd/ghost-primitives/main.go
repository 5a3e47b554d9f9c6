package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

var (
	envFileFlag = &cli.StringFlag{
		Name:  "env",
		Usage: "dotenv file loaded before reading ETH_* variables",
		Value: ".env",
	}
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file, applied over the environment",
	}
	rpcFlag = &cli.StringFlag{
		Name:  "rpc",
		Usage: "JSON-RPC endpoint of the node (overrides ETH_RPC_URL)",
	}
	chainIDFlag = &cli.Uint64Flag{
		Name:  "chainid",
		Usage: "expected chain ID of the node (overrides ETH_CHAIN_ID)",
	}
	policyFlag = &cli.StringFlag{
		Name:  "policy",
		Usage: "what to do with unconvertible transactions: abort or skip",
	}
	timeoutFlag = &cli.IntFlag{
		Name:  "timeout",
		Usage: "per request timeout in seconds",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "library log level (0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace)",
		Value: 3,
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "write output as JSON to a rotated file instead of stdout",
	}
	numberFlag = &cli.StringFlag{
		Name:  "number",
		Usage: "block number, decimal or 0x-prefixed hex",
		Value: "latest",
	}
)

var app = &cli.App{
	Name:    "ghost-primitives",
	Usage:   "fetch Ethereum blocks and convert them into canonical form",
	Version: version,
	Flags: []cli.Flag{
		envFileFlag,
		configFileFlag,
		rpcFlag,
		chainIDFlag,
		policyFlag,
		timeoutFlag,
		verbosityFlag,
		logFileFlag,
	},
	Before: setup,
	Commands: []*cli.Command{
		{
			Name:   "block",
			Usage:  "fetch and convert a single block",
			Flags:  []cli.Flag{numberFlag},
			Action: blockCommand,
		},
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
