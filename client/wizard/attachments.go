package wizard

import (
	"fmt"

	"cpicareers/models"
)

// checkAttachments applies the upload rule of key to files. The detected
// content type replaces whatever the caller supplied.
func checkAttachments(key FieldKey, files []Attachment) ([]Attachment, error) {
	rule, ok := models.AttachmentRuleFor(string(key))
	if !ok {
		return nil, ErrUnknownField
	}
	if !rule.Multi && len(files) > 1 {
		return nil, &AttachmentError{Field: key, Reason: "accepts a single file"}
	}

	out := make([]Attachment, 0, len(files))
	var total int64
	for _, f := range files {
		size := int64(len(f.Data))
		mime, err := rule.CheckAttachment(f.Name, f.Data, size)
		if err != nil {
			return nil, &AttachmentError{Field: key, File: f.Name, Reason: err.Error()}
		}
		total += size
		f = cloneAttachment(f)
		f.ContentType = mime
		out = append(out, f)
	}
	if rule.Multi {
		if err := rule.CheckTotal(total); err != nil {
			return nil, &AttachmentError{Field: key, Reason: fmt.Sprintf("%d files %v", len(files), err)}
		}
	}
	return out, nil
}
