package models

import (
	"strings"
	"testing"
)

var (
	pdfHead = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")
	pngHead = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 16)...)
	jpgHead = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

func TestCheckAttachment(t *testing.T) {
	tests := []struct {
		name    string
		rule    AttachmentRule
		head    []byte
		size    int64
		mime    string
		wantErr string
	}{
		{"cv pdf", CVRule, pdfHead, 1024, "application/pdf", ""},
		{"cv image", CVRule, pngHead, 1024, "image/png", "unsupported type"},
		{"cv too large", CVRule, pdfHead, MaxCVBytes + 1, "application/pdf", "exceeds 5 MB"},
		{"cv at limit", CVRule, pdfHead, MaxCVBytes, "application/pdf", ""},
		{"picture jpeg", PictureRule, jpgHead, 1024, "image/jpeg", ""},
		{"picture pdf", PictureRule, pdfHead, 1024, "application/pdf", "unsupported type"},
		{"picture too large", PictureRule, pngHead, MaxPictureBytes + 1, "image/png", "exceeds 2 MB"},
		{"empty", PictureRule, pngHead, 0, "", "is empty"},
		{"certificate pdf", CertificationsRule, pdfHead, 1024, "application/pdf", ""},
		{"certificate large single", CertificationsRule, pngHead, MaxCertificationsBytes + 1, "image/png", ""},
		{"certificate text", CertificationsRule, []byte("hello world"), 11, "text/plain", "unsupported type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, err := tt.rule.CheckAttachment("file", tt.head, tt.size)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
			} else if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if mime != tt.mime {
				t.Fatalf("mime = %q, want %q", mime, tt.mime)
			}
		})
	}
}

func TestCheckTotal(t *testing.T) {
	if err := CertificationsRule.CheckTotal(MaxCertificationsBytes); err != nil {
		t.Fatalf("limit should be inclusive: %v", err)
	}
	if err := CertificationsRule.CheckTotal(MaxCertificationsBytes + 1); err == nil {
		t.Fatalf("expected total size error")
	}
}

func TestAttachmentRuleFor(t *testing.T) {
	if r, ok := AttachmentRuleFor(FieldCV); !ok || r.MaxBytes != MaxCVBytes {
		t.Fatalf("cv rule not found")
	}
	if _, ok := AttachmentRuleFor("coverLetter"); ok {
		t.Fatalf("unknown field should have no rule")
	}
}

func TestParseSlotTime(t *testing.T) {
	for _, clock := range []string{"14:30", "14:30:00", "9:05"} {
		if _, err := ParseSlotTime("2025-03-12", clock, nil); err != nil {
			t.Errorf("ParseSlotTime(%q): %v", clock, err)
		}
	}
	for _, bad := range [][2]string{{"2025-02-30", "10:00"}, {"2025-03-12", "25:00"}, {"12/03/2025", "10:00"}} {
		if _, err := ParseSlotTime(bad[0], bad[1], nil); err == nil {
			t.Errorf("ParseSlotTime(%q, %q) should fail", bad[0], bad[1])
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known(Position("investment-analyst"), Positions) {
		t.Fatalf("known position rejected")
	}
	if Known(Position("astronaut"), Positions) {
		t.Fatalf("unknown position accepted")
	}
}
