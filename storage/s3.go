// Package storage keeps dictionaries and credential files in an S3 bucket
package storage

import (
	"dictcrackr/constants"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	log "github.com/visionmedia/go-cli-log"
)

const (
	URIScheme = "s3://"
)

var (
	// ErrorObjectNotFound when a key isn't present in the bucket
	ErrorObjectNotFound = errors.New("couldn't find object in bucket")
)

// clientFor is replaced in tests
var clientFor = func(sess *session.Session) s3iface.S3API {
	return s3.New(sess)
}

// ParseURI splits s3://bucket/key into its parts
func ParseURI(uri string) (string, string, bool) {
	if !strings.HasPrefix(uri, URIScheme) {
		return "", "", false
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, URIScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	return parts[0], parts[1], true
}

func New(sess *session.Session, bucketName string) error {
	client := clientFor(sess)

	_, err := client.CreateBucket(
		&s3.CreateBucketInput{
			Bucket: aws.String(bucketName),
		},
	)

	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			// Running init twice is fine
			case s3.ErrCodeBucketAlreadyOwnedByYou:
				log.Warn("Bucket %v already exists, leaving it as is", bucketName)
				return nil
			}
		}

		return err
	}

	_, err = client.PutBucketTagging(&s3.PutBucketTaggingInput{
		Bucket: aws.String(bucketName),
		Tagging: &s3.Tagging{
			TagSet: []*s3.Tag{
				{
					Key:   aws.String(constants.TagKey),
					Value: aws.String(constants.TagValue),
				},
			},
		},
	})

	return err
}

// ListFiles returns the keys under prefix, with the prefix stripped
func ListFiles(sess *session.Session, bucketName, prefix string) ([]string, error) {
	client := clientFor(sess)

	var keys []string

	err := client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, _ bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, strings.TrimPrefix(*obj.Key, prefix))
		}
		return true
	})

	if err != nil {
		return nil, err
	}

	return keys, nil
}

func Upload(sess *session.Session, filePath, bucketName, key string) error {
	uploader := s3manager.NewUploader(sess)

	f, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	log.Info("Upload", "uploading %v to %v%v/%v", filePath, URIScheme, bucketName, key)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
		Body:   f,
	})

	if err != nil {
		return err
	}

	log.Info("Upload", "File successfully uploaded")

	return nil
}

// Download reads the whole object into memory
func Download(sess *session.Session, bucketName, key string) ([]byte, error) {
	downloader := s3manager.NewDownloaderWithClient(clientFor(sess))

	buf := aws.NewWriteAtBuffer([]byte{})
	n, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrorObjectNotFound
		}
		return nil, err
	}

	log.Info("Download", "Fetched %d bytes from %v%v/%v", n, URIScheme, bucketName, key)

	return buf.Bytes(), nil
}

// Stat verifies that the key exists
func Stat(sess *session.Session, bucketName, key string) error {
	client := clientFor(sess)

	_, err := client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	if err != nil {
		if reqErr, ok := err.(awserr.RequestFailure); ok && reqErr.StatusCode() == http.StatusNotFound {
			return ErrorObjectNotFound
		}
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			// HeadObject has no body so the code is the bare HTTP status text
			case "NotFound", s3.ErrCodeNoSuchKey:
				return ErrorObjectNotFound
			}
		}
		return err
	}

	return nil
}

// ObjectError names the key a multi-object call stopped at
type ObjectError struct {
	Bucket string
	Key    string
	Err    error
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("%v%v/%v: %v", URIScheme, e.Bucket, e.Key, e.Err)
}

func (e *ObjectError) Unwrap() error {
	return e.Err
}

// StatMultiple stops at the first key that can't be found
func StatMultiple(sess *session.Session, bucketName string, keys ...string) error {
	for _, key := range keys {
		if err := Stat(sess, bucketName, key); err != nil {
			return &ObjectError{Bucket: bucketName, Key: key, Err: err}
		}
	}

	return nil
}

func Delete(sess *session.Session, bucketName, key string) error {
	client := clientFor(sess)

	_, err := client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})

	return err
}
