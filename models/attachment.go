package models

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MaxCVBytes             int64 = 5 << 20
	MaxPictureBytes        int64 = 2 << 20
	MaxCertificationsBytes int64 = 10 << 20
)

// AttachmentRule constrains the files accepted for one upload field.
// For multi-file fields MaxBytes applies to the combined size.
type AttachmentRule struct {
	Field    string
	MaxBytes int64
	Multi    bool
	PDF      bool
	Image    bool
}

var (
	CVRule             = AttachmentRule{Field: FieldCV, MaxBytes: MaxCVBytes, PDF: true}
	PictureRule        = AttachmentRule{Field: FieldProfilePicture, MaxBytes: MaxPictureBytes, Image: true}
	CertificationsRule = AttachmentRule{Field: FieldCertifications, MaxBytes: MaxCertificationsBytes, Multi: true, PDF: true, Image: true}
)

// AttachmentRuleFor returns the rule for an upload field.
func AttachmentRuleFor(field string) (AttachmentRule, bool) {
	switch field {
	case FieldCV:
		return CVRule, true
	case FieldProfilePicture:
		return PictureRule, true
	case FieldCertifications:
		return CertificationsRule, true
	}
	return AttachmentRule{}, false
}

// Accepts reports whether a detected MIME type is allowed by the rule.
func (r AttachmentRule) Accepts(mime string) bool {
	if r.PDF && mime == "application/pdf" {
		return true
	}
	return r.Image && strings.HasPrefix(mime, "image/")
}

// DetectMIME sniffs the content type from the file header.
func DetectMIME(head []byte) string {
	return mimetype.Detect(head).String()
}

// CheckAttachment verifies the sniffed type and size of one file. The
// returned MIME type is the detected one, not whatever the caller claimed.
func (r AttachmentRule) CheckAttachment(name string, head []byte, size int64) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("%s is empty", name)
	}
	mime := DetectMIME(head)
	base, _, _ := strings.Cut(mime, ";")
	if !r.Accepts(base) {
		return base, fmt.Errorf("%s has unsupported type %s", name, base)
	}
	if !r.Multi && size > r.MaxBytes {
		return base, fmt.Errorf("%s exceeds %d MB", name, r.MaxBytes>>20)
	}
	return base, nil
}

// CheckTotal verifies the combined size of a multi-file field.
func (r AttachmentRule) CheckTotal(total int64) error {
	if total > r.MaxBytes {
		return fmt.Errorf("%s exceed %d MB in total", r.Field, r.MaxBytes>>20)
	}
	return nil
}
