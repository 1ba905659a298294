package cmd

import (
	"dictcrackr/storage"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:     "init",
	Short:   "Create the S3 bucket that holds dictionaries and credential files",
	Args:    cobra.ExactArgs(0),
	PreRunE: requireAWSConfig,
	RunE:    initInfra,
}

func initInfra(_ *cobra.Command, _ []string) error {
	sess, err := getSession()
	if err != nil {
		return err
	}

	if err := storage.New(sess, globalCfg.S3BucketName); err != nil {
		return err
	}

	log.Info("Init", "Bucket %v is ready", globalCfg.S3BucketName)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
