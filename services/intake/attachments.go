package intake

import (
	"fmt"
	"io"
	"mime/multipart"

	"cpicareers/models"
)

// sniffLen matches the mimetype default read limit.
const sniffLen = 3072

// checkedFile is an attachment that passed type and size checks.
type checkedFile struct {
	field  string
	header *multipart.FileHeader
	mime   string
}

func sniff(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	return head[:n], nil
}

func checkOne(rule models.AttachmentRule, fh *multipart.FileHeader) (checkedFile, error) {
	head, err := sniff(fh)
	if err != nil {
		return checkedFile{}, fmt.Errorf("%w: cannot read %s", ErrInvalidAttachment, fh.Filename)
	}
	mime, err := rule.CheckAttachment(fh.Filename, head, fh.Size)
	if err != nil {
		return checkedFile{}, fmt.Errorf("%w: %v", ErrInvalidAttachment, err)
	}
	return checkedFile{field: rule.Field, header: fh, mime: mime}, nil
}

// checkAttachments validates every uploaded file against its field rule.
func checkAttachments(form *models.ApplicationForm) ([]checkedFile, *FormError) {
	fieldErrs := map[string]string{}
	var files []checkedFile

	if f, err := checkOne(models.CVRule, form.CV); err != nil {
		fieldErrs[models.FieldCV] = err.Error()
	} else {
		files = append(files, f)
	}
	if f, err := checkOne(models.PictureRule, form.ProfilePicture); err != nil {
		fieldErrs[models.FieldProfilePicture] = err.Error()
	} else {
		files = append(files, f)
	}

	var total int64
	for _, fh := range form.Certifications {
		f, err := checkOne(models.CertificationsRule, fh)
		if err != nil {
			fieldErrs[models.FieldCertifications] = err.Error()
			break
		}
		total += fh.Size
		files = append(files, f)
	}
	if _, failed := fieldErrs[models.FieldCertifications]; !failed {
		if err := models.CertificationsRule.CheckTotal(total); err != nil {
			fieldErrs[models.FieldCertifications] = fmt.Sprintf("%v: %v", ErrInvalidAttachment, err)
		}
	}

	if len(fieldErrs) > 0 {
		return nil, &FormError{Fields: fieldErrs}
	}
	return files, nil
}
