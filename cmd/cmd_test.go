package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"dictcrackr/hashfunc"
	"dictcrackr/retriever"
	"dictcrackr/runner"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// executeCommand runs the root command with a clean flag and config state
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dictionaryPath, hashFunction, passwordsPath = "", "", ""
	workers, jsonOutput, cfgFile = 1, false, ""
	globalCfg = config{}
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	viper.Reset()
	bindFlags()

	buffer := new(bytes.Buffer)
	rootCmd.SetOut(buffer)
	rootCmd.SetErr(buffer)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buffer.String(), err
}

func TestCrackCmd(t *testing.T) {
	dir := t.TempDir()
	noConfig := filepath.Join(dir, "missing.yaml")
	dictionary := writeFile(t, dir, "words.txt", "password\nletmein\n")
	passwords := writeFile(t, dir, "leak.csv",
		"login,password\nalice,"+sha256Hex("password")+"\nbob,"+sha256Hex("qwerty")+"\n")
	mismatched := writeFile(t, dir, "bad.csv", "login,password\nalice\n")
	withHash := writeFile(t, dir, "config.yaml", "HashFunction: sha256\nWorkers: 3\n")

	cases := []struct {
		desc   string
		args   []string
		output string
		err    error
	}{
		{
			desc:   "crack with text output",
			args:   []string{"--config", noConfig, "-d", dictionary, "--hash", "sha256", "-p", passwords},
			output: "alice  password\nbob    <not found>\nRecovered 1 of 2 passwords\n",
		},
		{
			desc: "crack with json output",
			args: []string{"--config", noConfig, "-d", dictionary, "--hash", "sha256", "-p", passwords, "--json", "-w", "2"},
			output: `[
  {
    "login": "alice",
    "password": "password",
    "found": true
  },
  {
    "login": "bob",
    "found": false
  }
]
`,
		},
		{
			desc:   "hash function from config",
			args:   []string{"--config", withHash, "-d", dictionary, "-p", passwords},
			output: "alice  password\nbob    <not found>\nRecovered 1 of 2 passwords\n",
		},
		{
			desc:   "dictionary only",
			args:   []string{"--config", noConfig, "-d", dictionary},
			output: "Dictionary loaded successfully with 2 candidates.\n",
		},
		{
			desc:   "hash function only",
			args:   []string{"--config", noConfig, "--hash", "md5"},
			output: "Hash function md5 is supported, digests are 32 hex characters long.\n",
		},
		{
			desc:   "passwords only",
			args:   []string{"--config", noConfig, "-p", passwords},
			output: "Password-login pairs loaded successfully with 2 pairs.\n",
		},
		{
			desc: "unsupported hash function",
			args: []string{"--config", noConfig, "-d", dictionary, "--hash", "rot13", "-p", passwords},
			err:  hashfunc.ErrUnsupportedHashFunction,
		},
		{
			desc: "mismatched credentials",
			args: []string{"--config", noConfig, "-d", dictionary, "--hash", "sha256", "-p", mismatched},
			err:  retriever.ErrCredentialCountMismatch,
		},
		{
			desc: "wrong flag combination",
			args: []string{"--config", noConfig, "-d", dictionary, "-p", passwords},
			err:  runner.ErrWrongFlagCombination,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := executeCommand(t, tc.args...)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.output, out)
		})
	}
}

func TestWorkersFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.yaml", "Workers: 3\n")

	_, err := executeCommand(t, "--config", cfg, "--hash", "md5")
	require.NoError(t, err)
	assert.Equal(t, 3, globalCfg.Workers)

	_, err = executeCommand(t, "--config", cfg, "--hash", "md5", "-w", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, globalCfg.Workers)
}

func TestFunctionsCmd(t *testing.T) {
	out, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "functions")
	require.NoError(t, err)

	for _, name := range hashfunc.Names() {
		assert.Contains(t, out, "- "+name)
	}
	assert.Contains(t, out, " 64 hex characters")
}

func TestDigestCmd(t *testing.T) {
	noConfig := filepath.Join(t.TempDir(), "none.yaml")

	out, err := executeCommand(t, "--config", noConfig, "digest", "MD5", "password")
	require.NoError(t, err)
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99\n", out)

	_, err = executeCommand(t, "--config", noConfig, "digest", "rot13", "password")
	assert.ErrorIs(t, err, hashfunc.ErrUnsupportedHashFunction)
}

func TestConfigWhereWithCustomPath(t *testing.T) {
	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "configuration", "where")
	assert.EqualError(t, err, FixedConfigCommandError)
}

func TestRequiredFields(t *testing.T) {
	var names []string
	for _, f := range requiredFields() {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"Region", "ProfileName", "S3BucketName"}, names)
}
