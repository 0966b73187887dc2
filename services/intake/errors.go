package intake

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidAttachment = errors.New("invalid attachment")
	ErrUploadFailed      = errors.New("attachment upload failed")
)

// FormError lists rejected form parts by multipart field name.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "invalid application: " + strings.Join(parts, "; ")
}
