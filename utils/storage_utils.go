package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Config points the storage at an S3-compatible bucket. When nil, files
// land on the local disk under UploadDir instead.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	BaseURL   string
}

type Storage struct {
	UploadDir string
	S3        *S3Config
}

func (s *Storage) s3Client() *s3.S3 {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(s.S3.Region),
		Endpoint: aws.String(s.S3.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			s.S3.AccessKey, s.S3.SecretKey, "",
		),
	}))
	return s3.New(sess)
}

// SaveListingImage stores a listing photo under listings/YYYY/MM/ and returns
// the public path.
func (s *Storage) SaveListingImage(data []byte, fileName, contentType string, now time.Time) (string, error) {
	folder := fmt.Sprintf("listings/%04d/%02d", now.Year(), int(now.Month()))
	return s.save(data, folder, fileName, contentType)
}

func (s *Storage) save(data []byte, folder, fileName, contentType string) (string, error) {
	if s.S3 != nil {
		return s.uploadToS3(data, folder, fileName, contentType)
	}

	dir := filepath.Join(s.UploadDir, folder)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("cannot save file: %w", err)
	}
	return "/uploads/" + folder + "/" + fileName, nil
}

func (s *Storage) uploadToS3(data []byte, folder, fileName, contentType string) (string, error) {
	filePath := fmt.Sprintf("%s/%s", folder, fileName)

	if contentType == "" {
		contentType = "image/jpeg"
	}

	_, err := s.s3Client().PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.S3.Bucket),
		Key:           aws.String(filePath),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.S3.BaseURL, "/"), filePath), nil
}

// Remove deletes a previously stored file given its public path.
func (s *Storage) Remove(path string) error {
	if s.S3 != nil {
		key := strings.TrimPrefix(path, strings.TrimSuffix(s.S3.BaseURL, "/")+"/")
		_, err := s.s3Client().DeleteObject(&s3.DeleteObjectInput{
			Bucket: aws.String(s.S3.Bucket),
			Key:    aws.String(key),
		})
		return err
	}

	rel := strings.TrimPrefix(path, "/uploads/")
	return os.Remove(filepath.Join(s.UploadDir, filepath.FromSlash(rel)))
}
