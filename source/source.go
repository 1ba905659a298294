// Package source reads wordlists and credential files from disk, stdin or S3
package source

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"dictcrackr/retriever"
	"dictcrackr/storage"

	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	Stdin = "-"

	KindWordlist    = "wordlist"
	KindCredentials = "credentials"
)

var (
	// ErrSourceUnavailable when a wordlist or credential source couldn't produce its data
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrNoSession when an s3 location is used without AWS being configured
	ErrNoSession = errors.New("no AWS session configured for s3 locations")
	// ErrTooManyColumns when a credential row has more than login and hash
	ErrTooManyColumns = errors.New("credential row has more than two columns")
)

// UnavailableError wraps the reason a source failed
type UnavailableError struct {
	Kind     string
	Location string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s %s unavailable: %v", e.Kind, e.Location, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// replaced in tests
var (
	download    = storage.Download
	statObjects = storage.StatMultiple
)

// Input is one location to check before loading
type Input struct {
	Kind     string
	Location string
}

// Loader resolves locations into readers
type Loader struct {
	// Session is only called for s3 locations
	Session func() (*session.Session, error)
	// Stdin is used for the "-" location, os.Stdin when nil
	Stdin io.Reader
}

// LoadWordlist reads the candidates at location
func (l *Loader) LoadWordlist(location string) ([]string, error) {
	var words []string

	err := l.open(location, func(r io.Reader) error {
		var err error
		words, err = ReadWordlist(r)
		return err
	})

	if err != nil {
		return nil, &UnavailableError{Kind: KindWordlist, Location: location, Err: err}
	}

	return words, nil
}

// LoadCredentials reads the login/hash pairs at location. The set is not validated here.
func (l *Loader) LoadCredentials(location string) (retriever.CredentialSet, error) {
	var creds retriever.CredentialSet

	err := l.open(location, func(r io.Reader) error {
		var err error
		creds, err = ReadCredentials(r)
		return err
	})

	if err != nil {
		return retriever.CredentialSet{}, &UnavailableError{Kind: KindCredentials, Location: location, Err: err}
	}

	return creds, nil
}

// Stat makes sure every input exists without reading it. s3 keys are checked
// with one HEAD per key, grouped by bucket. Stdin is always there.
func (l *Loader) Stat(inputs ...Input) error {
	var remote []Input
	var buckets []string
	keys := map[string][]string{}

	for _, in := range inputs {
		if in.Location == Stdin {
			continue
		}

		bucket, key, ok := storage.ParseURI(in.Location)
		if !ok {
			if _, err := os.Stat(in.Location); err != nil {
				return &UnavailableError{Kind: in.Kind, Location: in.Location, Err: err}
			}
			continue
		}

		if _, seen := keys[bucket]; !seen {
			buckets = append(buckets, bucket)
		}
		keys[bucket] = append(keys[bucket], key)
		remote = append(remote, in)
	}

	if len(remote) == 0 {
		return nil
	}

	sess, err := l.session()
	if err != nil {
		return &UnavailableError{Kind: remote[0].Kind, Location: remote[0].Location, Err: err}
	}

	for _, bucket := range buckets {
		if err := statObjects(sess, bucket, keys[bucket]...); err != nil {
			in := failedInput(remote, bucket, err)
			return &UnavailableError{Kind: in.Kind, Location: in.Location, Err: err}
		}
	}

	return nil
}

// failedInput finds the input behind a failed bucket check, the first one of the bucket
// when the error doesn't name a key
func failedInput(remote []Input, bucket string, err error) Input {
	prefix := storage.URIScheme + bucket + "/"

	var objErr *storage.ObjectError
	if errors.As(err, &objErr) {
		for _, in := range remote {
			if in.Location == prefix+objErr.Key {
				return in
			}
		}
	}

	for _, in := range remote {
		if strings.HasPrefix(in.Location, prefix) {
			return in
		}
	}

	return remote[0]
}

func (l *Loader) session() (*session.Session, error) {
	if l.Session == nil {
		return nil, ErrNoSession
	}

	return l.Session()
}

func (l *Loader) open(location string, read func(io.Reader) error) error {
	if location == Stdin {
		if l.Stdin != nil {
			return read(l.Stdin)
		}
		return read(os.Stdin)
	}

	if bucket, key, ok := storage.ParseURI(location); ok {
		sess, err := l.session()
		if err != nil {
			return err
		}

		data, err := download(sess, bucket, key)
		if err != nil {
			return err
		}

		return read(bytes.NewReader(data))
	}

	f, err := os.Open(location)
	if err != nil {
		return err
	}
	defer f.Close()

	return read(f)
}

// ReadWordlist returns one candidate per line, in order. Blank lines are skipped,
// everything else is kept verbatim apart from the line ending.
func ReadWordlist(r io.Reader) ([]string, error) {
	words := []string{}

	scanner := bufio.NewScanner(r)
	// long lines show up in real leaks
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(word) == "" {
			continue
		}
		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// ReadCredentials parses a login,hash CSV with a header row. A row with only a login
// adds a login without a hash, which Validate later reports. A two column row always
// adds one login and one hash, even when a cell is empty.
func ReadCredentials(r io.Reader) (retriever.CredentialSet, error) {
	creds := retriever.CredentialSet{Logins: []string{}, Digests: []string{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return retriever.CredentialSet{}, err
		}

		if header {
			header = false
			continue
		}

		switch len(record) {
		case 1:
			if record[0] == "" {
				continue
			}
			creds.Logins = append(creds.Logins, record[0])
		case 2:
			// Both cells always go in together so rows can't shift against each other.
			// An empty hash never matches anything.
			creds.Logins = append(creds.Logins, record[0])
			creds.Digests = append(creds.Digests, record[1])
		default:
			line, _ := reader.FieldPos(0)
			return retriever.CredentialSet{}, fmt.Errorf("line %d: %w", line, ErrTooManyColumns)
		}
	}

	return creds, nil
}
