package cmd

import (
	"dictcrackr/utility"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"
)

const (
	UserCreateConfigurationDeniedError = "user did not want to create config"
	FixedConfigCommandError            = "command doesn't work with custom config path"
)

// Fields with an instr tag are required by the S3 commands and asked for when missing
type config struct {
	Region       string `instr:"The AWS region to use"`
	ProfileName  string `instr:"The name of the profile to use (see ~/.aws/credentials)"`
	S3BucketName string `instr:"The name of the S3 bucket holding dictionaries and credential files"`
	HashFunction string // used when --hash is omitted while cracking
	Workers      int    // number of hashing shards
}

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"config", "cfg", "conf", "c"},
	Short:   "Handle the configuration of the program",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration settings",
	Args:  cobra.ExactArgs(0),
	Run:   showConfig,
}

var configCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes the current configuration file",
	Args:  cobra.ExactArgs(0),
	RunE:  configClean,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Shows the default configuration location",
	Args:  cobra.ExactArgs(0),
	RunE:  configWhere,
}

func init() {
	configurationCmd.AddCommand(configShowCmd)
	configurationCmd.AddCommand(configCleanCmd)
	configurationCmd.AddCommand(configWhereCmd)

	rootCmd.AddCommand(configurationCmd)
}

func showConfig(cmd *cobra.Command, _ []string) {
	for _, key := range viper.AllKeys() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", key, viper.Get(key))
	}
}

// requireAWSConfig makes sure the S3 settings are present, prompting for them
// and saving the config file when they aren't
func requireAWSConfig(_ *cobra.Command, _ []string) error {
	if !hasMissingConf() {
		return unmarshalConfig()
	}

	if viper.ConfigFileUsed() == "" && cfgFile == "" {
		fmt.Println("Config was not found. " +
			"If you do not want to create it, rerun the program with --config " +
			"to use a config file in a custom location")

		if err := generateConfig(); err != nil {
			return err
		}
	} else {
		getMissingConf()
	}

	if err := writeConfig(); err != nil {
		// the values are still usable for this run
		log.Error(err)
	}

	return unmarshalConfig()
}

func writeConfig() error {
	cfgPath := viper.ConfigFileUsed()
	if cfgPath == "" {
		cfgPath = cfgFile
	}
	if cfgPath == "" {
		cfgPath = defaultCfgPath
	}

	return viper.WriteConfigAs(cfgPath)
}

func requiredFields() []reflect.StructField {
	var fields []reflect.StructField

	v := reflect.TypeOf(config{})
	for i := 0; i < v.NumField(); i++ {
		if field := v.Field(i); field.Tag.Get("instr") != "" {
			fields = append(fields, field)
		}
	}

	return fields
}

func generateConfig() error {
	confirm := utility.GetBoolean("Do you want to create a config now?")

	if !confirm {
		return errors.New(UserCreateConfigurationDeniedError)
	}

	fmt.Println("The bucket will be created by running init, please do not use an already existing" +
		" bucket name")

	for _, field := range requiredFields() {
		fmt.Println("> " + field.Tag.Get("instr"))
		input := utility.GetInput(field.Name)
		viper.Set(field.Name, input)
	}

	return nil
}

func hasMissingConf() bool {
	for _, field := range requiredFields() {
		if viper.GetString(field.Name) == "" {
			return true
		}
	}

	return false
}

func getMissingConf() bool {
	fixedMissingConf := false

	for _, field := range requiredFields() {
		if viper.GetString(field.Name) != "" {
			continue
		}

		if !fixedMissingConf {
			log.Info("Configuration", "%s", "Found missing configuration, please set these values")
		}

		fixedMissingConf = true

		fmt.Println("> " + field.Tag.Get("instr"))
		input := utility.GetInput(field.Name)
		viper.Set(field.Name, input)
	}

	return fixedMissingConf
}

func configWhere(c *cobra.Command, _ []string) error {
	if c.Flag("config").Value.String() != "" {
		return errors.New(FixedConfigCommandError)
	}

	fmt.Fprintln(c.OutOrStdout(), defaultCfgPath)
	return nil
}

func configClean(c *cobra.Command, _ []string) error {
	if c.Flag("config").Value.String() != "" {
		return errors.New(FixedConfigCommandError)
	}

	return os.Remove(defaultCfgPath)
}
