package cmd

import (
	"dictcrackr/constants"

	"github.com/spf13/cobra"
)

// credentialsCmd represents the credentials command
var credentialsCmd = &cobra.Command{
	Use:     "credentials",
	Aliases: []string{"creds", "passwords"},
	Short:   "Manage the login,hash files stored in the S3 bucket",
}

var credentialsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List credential files available for cracking",
	Aliases: []string{"l", "ls"},
	Args:    cobra.ExactArgs(0),
	PreRunE: requireAWSConfig,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return listFiles(cmd, constants.CredentialsPrefix)
	},
}

var credentialsAddCmd = &cobra.Command{
	Use:     "add <file> <credentials-alias>",
	Aliases: []string{"upload"},
	Short:   "Upload a CSV of login,hash pairs, use it later with -p s3://<bucket>/credentials/<credentials-alias>",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireAWSConfig,
	RunE: func(_ *cobra.Command, args []string) error {
		return uploadFile(args[0], constants.CredentialsPrefix+args[1])
	},
}

func init() {
	credentialsCmd.AddCommand(credentialsAddCmd)
	credentialsCmd.AddCommand(credentialsListCmd)
	rootCmd.AddCommand(credentialsCmd)
}
