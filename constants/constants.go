// Values shared by every package that creates cloud resources
package constants

const (
	// TagKey is set on every resource dictcrackr creates so they can be found again
	TagKey   = "service"
	TagValue = "dictcrackr"
)

const (
	// S3 key prefixes used to keep dictionaries and credential files apart in the bucket
	DictionaryPrefix  = "dictionary/"
	CredentialsPrefix = "credentials/"
)
