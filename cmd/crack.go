package cmd

import (
	"dictcrackr/report"
	"dictcrackr/runner"
	"dictcrackr/utility"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	dictionaryPath, hashFunction, passwordsPath string
	workers                                     int
	jsonOutput                                  bool
)

func init() {
	rootCmd.Flags().StringVarP(&dictionaryPath, "dictionary", "d", "",
		"wordlist with one candidate password per line (path, s3://bucket/key or - for stdin)")
	rootCmd.Flags().StringVar(&hashFunction, "hash", "",
		"hash function used for the stored passwords, see the functions command")
	rootCmd.Flags().StringVarP(&passwordsPath, "passwords", "p", "",
		"CSV file of login,hash pairs with a header row (path or s3://bucket/key)")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1,
		"number of shards the dictionary is hashed in")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false,
		"print the cracked passwords as JSON")

	bindFlags()
}

// bindFlags lets --workers override the Workers config value
func bindFlags() {
	_ = viper.BindPFlag("Workers", rootCmd.Flags().Lookup("workers"))
}

func crack(cmd *cobra.Command, _ []string) error {
	opts := runner.Options{
		Dictionary:   dictionaryPath,
		HashFunction: hashFunction,
		Passwords:    passwordsPath,
		Workers:      globalCfg.Workers,
	}

	// Fall back on the configured hash function only when cracking
	if opts.HashFunction == "" && opts.Dictionary != "" && opts.Passwords != "" {
		opts.HashFunction = globalCfg.HashFunction
	}

	outcome, err := runner.New(newLoader(cmd)).Run(cmd.Context(), opts)
	if errors.Is(err, runner.ErrWrongFlagCombination) {
		_ = cmd.Help()
		return err
	}
	if err != nil {
		return err
	}

	return printOutcome(cmd, outcome)
}

func printOutcome(cmd *cobra.Command, outcome *runner.Outcome) error {
	out := cmd.OutOrStdout()

	switch outcome.Mode {
	case runner.ModeDictionary:
		fmt.Fprintf(out, "Dictionary loaded successfully with %d %v.\n",
			outcome.Candidates, utility.Pluralize("candidate", outcome.Candidates))
	case runner.ModeHashFunction:
		fmt.Fprintf(out, "Hash function %v is supported, digests are %d hex characters long.\n",
			outcome.HashFunction, outcome.HashFunction.HexLen())
	case runner.ModePasswords:
		fmt.Fprintf(out, "Password-login pairs loaded successfully with %d %v.\n",
			outcome.Credentials, utility.Pluralize("pair", outcome.Credentials))
	case runner.ModeCrack:
		if jsonOutput {
			return report.JSON(out, outcome.Result)
		}
		return report.Text(out, outcome.Result)
	}

	return nil
}
