package wizard

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"cpicareers/models"
)

// BuildPayload encodes the draft and the selected slot as the multipart
// application body. It returns the body and its Content-Type.
func BuildPayload(d *Draft, slot SelectedSlot) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for i := range fields {
		f := &fields[i]
		if f.kind != kindText {
			continue
		}
		if err := w.WriteField(string(f.key), strings.TrimSpace(f.get(d))); err != nil {
			return nil, "", fmt.Errorf("write %s: %w", f.key, err)
		}
	}

	if d.CV != nil {
		if err := writeFile(w, CVFile, *d.CV); err != nil {
			return nil, "", err
		}
	}
	if d.ProfilePicture != nil {
		if err := writeFile(w, ProfilePicture, *d.ProfilePicture); err != nil {
			return nil, "", err
		}
	}
	for _, a := range d.Certifications {
		if err := writeFile(w, CertificationsFiles, a); err != nil {
			return nil, "", err
		}
	}

	for _, part := range [][2]string{
		{models.FieldInterviewSlotDate, slot.Date},
		{models.FieldInterviewSlotTime, slot.Time},
		{models.FieldInterviewSlotID, slot.ID},
	} {
		if err := w.WriteField(part[0], part[1]); err != nil {
			return nil, "", fmt.Errorf("write %s: %w", part[0], err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFile(w *multipart.Writer, key FieldKey, a Attachment) error {
	contentType := a.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	name := a.Name
	if name == "" {
		name = string(key)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(string(key)), quoteEscaper.Replace(name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create %s part: %w", key, err)
	}
	if _, err := part.Write(a.Data); err != nil {
		return fmt.Errorf("write %s part: %w", key, err)
	}
	return nil
}
