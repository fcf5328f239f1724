package assets

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize caps a single uploaded asset.
const MaxFileSize = 10 << 20

// File is a binary asset picked by the admin.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, f File) (string, error)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ObjectKey builds the storage key for name: the upload time in unix
// milliseconds, a dash, then name with every whitespace run replaced by "-".
func ObjectKey(name string, at time.Time) string {
	return strconv.FormatInt(at.UnixMilli(), 10) + "-" + whitespaceRun.ReplaceAllString(name, "-")
}

// PublicURL is the virtual-hosted S3 URL of key.
func PublicURL(bucket, region, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, url.PathEscape(key))
}

// DetectContentType prefers the client-declared type and sniffs the bytes
// otherwise.
func DetectContentType(f File) string {
	if f.ContentType != "" && f.ContentType != "application/octet-stream" {
		return f.ContentType
	}
	return mimetype.Detect(f.Data).String()
}

// FromMultipart reads an uploaded form file into memory.
func FromMultipart(fh *multipart.FileHeader) (*File, error) {
	if fh.Size > MaxFileSize {
		return nil, fmt.Errorf("file %q exceeds %d bytes", fh.Filename, MaxFileSize)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("file %q exceeds %d bytes", fh.Filename, MaxFileSize)
	}
	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
