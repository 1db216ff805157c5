package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/warungpo/preorder_api/internal/config"
	"github.com/warungpo/preorder_api/internal/utils"
)

// imageContentTypes maps accepted upload extensions to their MIME type.
var imageContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// UploadService stores product images in S3 with a plain signed PUT. The
// bucket must allow public reads on the products/ prefix.
type UploadService struct {
	bucket          string
	region          string
	accessKeyID     string
	secretAccessKey string
}

// NewUploadService constructs an UploadService.
func NewUploadService(cfg *config.S3Config) (*UploadService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("S3 config is nil")
	}
	return &UploadService{
		bucket:          cfg.Bucket,
		region:          cfg.Region,
		accessKeyID:     cfg.AccessKeyID,
		secretAccessKey: cfg.SecretAccessKey,
	}, nil
}

// AllowedImageExt reports whether ext (without dot) is an accepted image
// extension.
func AllowedImageExt(ext string) bool {
	_, ok := imageContentTypes[strings.ToLower(ext)]
	return ok
}

// UploadProductImage stores an image under a fresh products/ key and returns
// its public URL.
func (s *UploadService) UploadProductImage(ctx context.Context, ext string, data []byte) (string, error) {
	contentType, ok := imageContentTypes[strings.ToLower(ext)]
	if !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	if s.bucket == "" || s.accessKeyID == "" || s.secretAccessKey == "" {
		log.Warn().Msg("S3 credentials not configured - image upload unavailable")
		return "", utils.ErrUploadFailed
	}

	key := fmt.Sprintf("products/%s.%s", uuid.New().String(), strings.ToLower(ext))
	if err := s.put(ctx, key, data, contentType); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Product image upload failed")
		return "", utils.ErrUploadFailed
	}

	log.Info().Str("key", key).Int("bytes", len(data)).Msg("Product image uploaded")
	return s.objectURL(key), nil
}

func (s *UploadService) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// put issues a SigV4-signed PUT for the object.
func (s *UploadService) put(ctx context.Context, key string, data []byte, contentType string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	payloadHash := sha256Hex(data)

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", fmt.Sprintf("%d", len(data)))
	req.Header.Set("Host", fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region))
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)
	req.Header.Set("Authorization", s.signRequest(req, payloadHash, amzDate, dateStamp))

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("S3 upload failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// signRequest builds the AWS Signature V4 authorization header for a PUT
// with no query string.
func (s *UploadService) signRequest(req *http.Request, payloadHash, amzDate, dateStamp string) string {
	const service = "s3"

	canonicalURI := req.URL.Path
	if canonicalURI == "" {
		canonicalURI = "/"
	}

	signedHeaders := []string{"content-type", "host", "x-amz-content-sha256", "x-amz-date"}

	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(h)
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}
	signedHeadersStr := strings.Join(signedHeaders, ";")

	canonicalRequest := strings.Join([]string{
		req.Method,
		canonicalURI,
		"",
		canonicalHeaders.String(),
		signedHeadersStr,
		payloadHash,
	}, "\n")

	algorithm := "AWS4-HMAC-SHA256"
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.region, service)
	stringToSign := strings.Join([]string{
		algorithm,
		amzDate,
		credentialScope,
		sha256Hex([]byte(canonicalRequest)),
	}, "\n")

	kDate := hmacSHA256([]byte("AWS4"+s.secretAccessKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.region))
	kService := hmacSHA256(kRegion, []byte(service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))
	signature := hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm,
		s.accessKeyID,
		credentialScope,
		signedHeadersStr,
		signature,
	)
}

func sha256Hex(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}
