package billing

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/diillson/billswitch/internal/shared/types"
)

// UploadLimits are the caller-side constraints on a bill file.
type UploadLimits struct {
	MaxBytes     int64
	AllowedTypes []string
}

var defaultAllowedTypes = []string{"application/pdf", "image/jpeg", "image/png", "image/heic"}

var typesByExtension = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".heic": "image/heic",
}

// DefaultUploadLimits accepts PDF and common image formats up to 10MB.
func DefaultUploadLimits() UploadLimits {
	return UploadLimitsFor(types.DefaultMaxUploadMB, nil)
}

// UploadLimitsFor builds limits from configuration values, falling back to the defaults.
func UploadLimitsFor(maxMB int, allowed []string) UploadLimits {
	if maxMB <= 0 {
		maxMB = types.DefaultMaxUploadMB
	}
	if len(allowed) == 0 {
		allowed = defaultAllowedTypes
	}
	return UploadLimits{MaxBytes: int64(maxMB) * 1024 * 1024, AllowedTypes: allowed}
}

// ContentTypeOf resolves the media type of an upload, using the file extension
// when the declared type is missing or generic.
func ContentTypeOf(name, declared string) string {
	if declared != "" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
			return strings.ToLower(mt)
		}
	}
	return typesByExtension[strings.ToLower(filepath.Ext(name))]
}

// ValidateUpload checks the type and size of a bill file before it is sent for extraction.
func ValidateUpload(name string, size int64, contentType string, limits UploadLimits) error {
	mt := ContentTypeOf(name, contentType)
	allowed := false
	for _, t := range limits.AllowedTypes {
		if strings.EqualFold(t, mt) {
			allowed = true
			break
		}
	}
	if !allowed {
		return types.ErrInvalidFileType
	}
	if limits.MaxBytes > 0 && size > limits.MaxBytes {
		return fmt.Errorf("%w: maximum file size is %dMB", types.ErrFileTooLarge, limits.MaxBytes/(1024*1024))
	}
	return nil
}
