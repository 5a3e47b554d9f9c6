package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/nando-os/ghost-primitives/eth"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type ghostConfig struct {
	Eth eth.Overrides
	Log logConfig
}

type logConfig struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func loadConfig(file string, cfg *ghostConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// loadEnv reads the dotenv file if there is one. A missing file is not an
// error, the variables may already be in the environment.
func loadEnv(file string) error {
	if file == "" {
		return nil
	}
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		return fmt.Errorf("error loading %s: %w", file, err)
	}
	return nil
}

// makeConfig layers the configuration: environment, then the TOML file,
// then command line flags.
func makeConfig(ctx *cli.Context) (eth.Config, *ghostConfig, error) {
	file := &ghostConfig{}
	if path := ctx.String(configFileFlag.Name); path != "" {
		if err := loadConfig(path, file); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := eth.NewConfiguration()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Override(file.Eth); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ctx.String(configFileFlag.Name), err)
	}
	err = cfg.Override(eth.Overrides{
		RPCURL:                ctx.String(rpcFlag.Name),
		BatchPolicy:           ctx.String(policyFlag.Name),
		RequestTimeoutSeconds: ctx.Int(timeoutFlag.Name),
	})
	if err != nil {
		return nil, nil, err
	}
	// An explicit --chainid 0 turns the check off.
	if ctx.IsSet(chainIDFlag.Name) {
		cfg.SetChainID(ctx.Uint64(chainIDFlag.Name))
	}
	return cfg, file, nil
}
