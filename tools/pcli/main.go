// Package main implements a command line utility for interacting with the
// state transition engine: pretty-printing SSZ-encoded containers, dumping
// chain configuration presets, and benchmarking full state transitions.
package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/prysmaticlabs/phase0/beacon-chain/core/transition"
	"github.com/prysmaticlabs/phase0/config/params"
	ethpb "github.com/prysmaticlabs/phase0/consensus-types/eth"
	"github.com/prysmaticlabs/phase0/runtime/interop"
	"github.com/prysmaticlabs/phase0/testing/util"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/yaml.v2"
)

type sszUnmarshaler interface {
	UnmarshalSSZ(buf []byte) error
}

func main() {
	var sszPath string
	var configName string
	var configPath string
	var numValidators uint64
	var numBlocks uint64
	var numAttestations uint64

	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
	app := cli.App{}
	app.Name = "pcli"
	app.Usage = "A command line utility to run phase0 specific commands"
	app.Commands = []*cli.Command{
		{
			Name:    "pretty",
			Aliases: []string{"p"},
			Usage:   "pretty-print SSZ data",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "ssz-path",
					Usage:       "Path to file(ssz)",
					Required:    true,
					Destination: &sszPath,
				},
			},
			Subcommands: []*cli.Command{
				{
					Name:  "attestation",
					Usage: "Pretty print an Attestation",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.Attestation{})
						return nil
					},
				},
				{
					Name:  "attestation_data",
					Usage: "Pretty print an AttestationData",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.AttestationData{})
						return nil
					},
				},
				{
					Name:  "attester_slashing",
					Usage: "Pretty print an AttesterSlashing",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.AttesterSlashing{})
						return nil
					},
				},
				{
					Name:  "signed_block",
					Usage: "Pretty print a SignedBeaconBlock",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.SignedBeaconBlock{})
						return nil
					},
				},
				{
					Name:  "block",
					Usage: "Pretty print a BeaconBlock",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.BeaconBlock{})
						return nil
					},
				},
				{
					Name:  "block_body",
					Usage: "Pretty print a BeaconBlockBody",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.BeaconBlockBody{})
						return nil
					},
				},
				{
					Name:  "block_header",
					Usage: "Pretty print a BeaconBlockHeader",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.BeaconBlockHeader{})
						return nil
					},
				},
				{
					Name:  "signed_block_header",
					Usage: "Pretty print a SignedBeaconBlockHeader",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.SignedBeaconBlockHeader{})
						return nil
					},
				},
				{
					Name:  "deposit",
					Usage: "Pretty print a Deposit",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.Deposit{})
						return nil
					},
				},
				{
					Name:  "deposit_data",
					Usage: "Pretty print a DepositData",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.DepositData{})
						return nil
					},
				},
				{
					Name:  "eth1_data",
					Usage: "Pretty print an Eth1Data",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.Eth1Data{})
						return nil
					},
				},
				{
					Name:  "fork",
					Usage: "Pretty print a Fork",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.Fork{})
						return nil
					},
				},
				{
					Name:  "proposer_slashing",
					Usage: "Pretty print a ProposerSlashing",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.ProposerSlashing{})
						return nil
					},
				},
				{
					Name:  "signed_voluntary_exit",
					Usage: "Pretty print a SignedVoluntaryExit",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.SignedVoluntaryExit{})
						return nil
					},
				},
				{
					Name:  "voluntary_exit",
					Usage: "Pretty print a VoluntaryExit",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.VoluntaryExit{})
						return nil
					},
				},
				{
					Name:  "transfer",
					Usage: "Pretty print a Transfer",
					Action: func(c *cli.Context) error {
						prettyPrint(sszPath, &ethpb.Transfer{})
						return nil
					},
				},
			},
		},
		{
			Name:  "spec",
			Usage: "Print a chain configuration as yaml",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "name",
					Usage:       "Preset name (mainnet, minimal, end-to-end)",
					Value:       "mainnet",
					Destination: &configName,
				},
				&cli.StringFlag{
					Name:        "config-file",
					Usage:       "Path to a chain config yaml file, overrides --name",
					Destination: &configPath,
				},
			},
			Action: func(c *cli.Context) error {
				cfg, err := resolveConfig(configName, configPath)
				if err != nil {
					log.Fatal(err)
				}
				enc, err := yaml.Marshal(cfg)
				if err != nil {
					log.Fatal(err)
				}
				fmt.Print(string(enc))
				return nil
			},
		},
		{
			Name:     "benchmark",
			Category: "state-transition",
			Usage:    "Run sequential full state transitions over generated blocks and report timings",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "config",
					Usage:       "Preset name to benchmark under",
					Value:       "minimal",
					Destination: &configName,
				},
				&cli.Uint64Flag{
					Name:        "validators",
					Usage:       "Number of validators in the generated genesis state",
					Value:       256,
					Destination: &numValidators,
				},
				&cli.Uint64Flag{
					Name:        "blocks",
					Usage:       "Number of blocks to process",
					Value:       8,
					Destination: &numBlocks,
				},
				&cli.Uint64Flag{
					Name:        "attestations",
					Usage:       "Number of attestations per block",
					Value:       1,
					Destination: &numAttestations,
				},
			},
			Action: func(c *cli.Context) error {
				cfg, err := resolveConfig(configName, "")
				if err != nil {
					log.Fatal(err)
				}
				if err := runBenchmark(cfg, numValidators, numBlocks, numAttestations); err != nil {
					log.Fatal(err)
				}
				return nil
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func resolveConfig(name, path string) (*params.BeaconChainConfig, error) {
	if path != "" {
		return params.LoadChainConfigFile(path)
	}
	cfg, ok := params.ByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown config preset %q", name)
	}
	return cfg, nil
}

func runBenchmark(cfg *params.BeaconChainConfig, numValidators, numBlocks, numAttestations uint64) error {
	ctx := context.Background()
	start := time.Now()
	st, _, err := interop.GenerateGenesisState(ctx, cfg, uint64(time.Now().Unix()), numValidators)
	if err != nil {
		return err
	}
	privs, _, err := interop.DeterministicallyGenerateKeys(0 /*startIndex*/, numValidators)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Infof("Generated genesis state with %d validators", numValidators)

	conf := &util.BlockGenConfig{NumAttestations: numAttestations}
	for i := uint64(0); i < numBlocks; i++ {
		blk, err := util.GenerateFullBlock(cfg, st, privs, conf, st.Slot+1)
		if err != nil {
			return err
		}
		blkStart := time.Now()
		st, err = transition.ExecuteStateTransition(ctx, cfg, st, blk)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"slot":    fmt.Sprintf("%d", st.Slot),
			"elapsed": time.Since(blkStart),
		}).Info("Processed block")
	}
	root, err := st.HashTreeRoot(ctx, cfg)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Infof("Finished benchmark with post state root of %#x", root)
	return nil
}

// dataFetcher fetches and unmarshals data from file to provided data structure.
func dataFetcher(fPath string, data sszUnmarshaler) error {
	rawFile, err := ioutil.ReadFile(fPath) // #nosec G304
	if err != nil {
		return err
	}
	return data.UnmarshalSSZ(rawFile)
}

func prettyPrint(sszPath string, data sszUnmarshaler) {
	if err := dataFetcher(sszPath, data); err != nil {
		log.Fatal(err)
	}
	fmt.Print(pretty.Sprint(data))
}
