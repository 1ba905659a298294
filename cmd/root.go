package cmd

import (
	"context"
	"dictcrackr/source"
	"fmt"
	"os"
	"os/signal"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	log "github.com/visionmedia/go-cli-log"
)

var globalCfg config
var awsSession *session.Session

var configFileName = ".dictcrackr"
var cfgFile string
var defaultCfgPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dictcrackr",
	Short: "Recover passwords from their hashes with a dictionary attack",
	Long: `dictcrackr hashes every word of a dictionary and matches the digests against
a CSV of login,hash pairs.

  dictcrackr -d words.txt --hash sha256 -p leak.csv   crack the passwords
  dictcrackr -d words.txt                             check a dictionary
  dictcrackr --hash sha256                            check a hash function
  dictcrackr -p leak.csv                              check a credential file

Dictionaries and credential files can also be read from S3 with s3://bucket/key.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: preRun,
	RunE:              crack,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func preRun(_ *cobra.Command, _ []string) error {
	return unmarshalConfig()
}

func unmarshalConfig() error {
	return viper.Unmarshal(&globalCfg)
}

// getSession creates the AWS session the first time something needs S3
func getSession() (*session.Session, error) {
	if awsSession != nil {
		return awsSession, nil
	}

	if err := setupAwsSession(); err != nil {
		return nil, err
	}

	return awsSession, nil
}

func setupAwsSession() error {
	var err error
	awsSession, err = session.NewSessionWithOptions(session.Options{
		Profile: viper.GetString("ProfileName"),
		Config:  aws.Config{Region: aws.String(viper.GetString("Region"))},
	})

	return err
}

func newLoader(cmd *cobra.Command) *source.Loader {
	return &source.Loader{
		Session: getSession,
		Stdin:   cmd.InOrStdin(),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err == nil {
		os.Exit(0)
	} else {
		log.Error(err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is $HOME/.dictcrackr.yaml)",
	)
}

// initConfig reads in config file and ENV variables if set.
// The file is optional, local cracking works without one.
func initConfig() {
	viper.SetDefault("Workers", 1)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".dictcrackr" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(configFileName)

		defaultCfgPath = fmt.Sprintf("%s/%s.yaml", home, configFileName)
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			return
		}

		log.Error(err)
		os.Exit(-1)
	}
}
