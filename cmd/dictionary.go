package cmd

import (
	"dictcrackr/constants"
	"dictcrackr/storage"
	"dictcrackr/utility"
	"fmt"

	"github.com/spf13/cobra"
)

// dictionaryCmd represents the dictionary command
var dictionaryCmd = &cobra.Command{
	Use:     "dictionary",
	Aliases: []string{"dict", "d"},
	Short:   "Manage the dictionaries stored in the S3 bucket",
}

var dictionaryListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the dictionaries available for cracking",
	Aliases: []string{"l", "ls"},
	Args:    cobra.ExactArgs(0),
	PreRunE: requireAWSConfig,
	RunE:    dictionaryList,
}

var dictionaryAddCmd = &cobra.Command{
	Use:     "add <file> <dictionary-alias>",
	Aliases: []string{"upload"},
	Short:   "Upload a wordlist, use it later with -d s3://<bucket>/dictionary/<dictionary-alias>",
	Args:    cobra.ExactArgs(2),
	PreRunE: requireAWSConfig,
	RunE:    dictionaryAdd,
}

func init() {
	dictionaryCmd.AddCommand(dictionaryAddCmd)
	dictionaryCmd.AddCommand(dictionaryListCmd)
	rootCmd.AddCommand(dictionaryCmd)
}

func dictionaryList(cmd *cobra.Command, _ []string) error {
	return listFiles(cmd, constants.DictionaryPrefix)
}

func dictionaryAdd(_ *cobra.Command, args []string) error {
	return uploadFile(args[0], constants.DictionaryPrefix+args[1])
}

func listFiles(cmd *cobra.Command, prefix string) error {
	sess, err := getSession()
	if err != nil {
		return err
	}

	files, err := storage.ListFiles(sess, globalCfg.S3BucketName, prefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Found a total of [%d] %v\n", len(files), utility.Pluralize("file", len(files)))
	for _, fn := range files {
		fmt.Fprintf(out, "- %v\n", fn)
	}

	return nil
}

func uploadFile(filePath, key string) error {
	sess, err := getSession()
	if err != nil {
		return err
	}

	return storage.Upload(sess, filePath, globalCfg.S3BucketName, key)
}
