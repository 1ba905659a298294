package cmd

import (
	"dictcrackr/constants"
	"dictcrackr/storage"
	"dictcrackr/utility"

	"github.com/spf13/cobra"
	log "github.com/visionmedia/go-cli-log"
)

// teardownCmd represents the teardown command
var teardownCmd = &cobra.Command{
	Use:     "teardown",
	Short:   "Delete every dictionary and credential file from the bucket. Use conf clean to remove the configuration file.",
	Args:    cobra.ExactArgs(0),
	PreRunE: requireAWSConfig,
	RunE:    tearDown,
}

var force bool

func tearDown(_ *cobra.Command, _ []string) error {
	if !force {
		accept := utility.GetBoolean("This will remove every uploaded dictionary and credential file. " +
			"This operation cannot be reversed. Proceed?")
		if !accept {
			return nil
		}
	}

	sess, err := getSession()
	if err != nil {
		return err
	}

	removed := 0
	for _, prefix := range []string{constants.DictionaryPrefix, constants.CredentialsPrefix} {
		files, err := storage.ListFiles(sess, globalCfg.S3BucketName, prefix)
		if err != nil {
			return err
		}

		for _, fn := range files {
			if err := storage.Delete(sess, globalCfg.S3BucketName, prefix+fn); err != nil {
				return err
			}
			removed++
		}
	}

	log.Info("Teardown", "Removed %d %v from %v", removed, utility.Pluralize("file", removed), globalCfg.S3BucketName)
	return nil
}

func init() {
	rootCmd.AddCommand(teardownCmd)
	teardownCmd.Flags().BoolVar(&force, "force", false, "used to force teardown, avoid prompt")
}
