package wizard

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"cpicareers/models"
)

func TestBuildPayload(t *testing.T) {
	store := filledStore(t)
	if err := store.SetFile(CertificationsFiles,
		Attachment{Name: "a.pdf", Data: pdfBytes},
		Attachment{Name: "b.png", Data: pngBytes},
	); err != nil {
		t.Fatalf("SetFile(certs): %v", err)
	}
	_ = store.SetField(FullNameEnglish, "  Mona Hassan  ")
	draft := store.Draft()

	body, contentType, err := BuildPayload(&draft, SelectedSlot{Date: "2025-03-11", Time: "10:00", ID: "s1"})
	if err != nil {
		t.Fatalf("BuildPayload: %v", err)
	}
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		t.Fatalf("bad content type %q: %v", contentType, err)
	}

	values := map[string][]string{}
	files := map[string][]string{}
	var order []string
	r := multipart.NewReader(body, params["boundary"])
	for {
		part, err := r.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			files[part.FormName()] = append(files[part.FormName()], part.FileName()+"|"+part.Header.Get("Content-Type"))
			continue
		}
		values[part.FormName()] = append(values[part.FormName()], string(data))
		order = append(order, part.FormName())
	}

	wantTail := []string{models.FieldInterviewSlotDate, models.FieldInterviewSlotTime, models.FieldInterviewSlotID}
	if len(order) < len(wantTail) {
		t.Fatalf("too few value parts: %v", order)
	}
	if tail := strings.Join(order[len(order)-3:], ","); tail != strings.Join(wantTail, ",") {
		t.Errorf("slot parts written as %s, want %s", tail, strings.Join(wantTail, ","))
	}

	checks := map[string]string{
		string(FullNameEnglish):       "Mona Hassan",
		string(DateOfBirth):           "1998-01-01",
		string(EmailAddress):          "mona@example.com",
		string(ExpectedSalary):        "25000",
		string(PositionAppliedFor):    "investment-analyst",
		string(NoticePeriod):          "",
		models.FieldInterviewSlotDate: "2025-03-11",
		models.FieldInterviewSlotTime: "10:00",
		models.FieldInterviewSlotID:   "s1",
	}
	for key, want := range checks {
		got, ok := values[key]
		if !ok || len(got) != 1 || got[0] != want {
			t.Errorf("%s: got %q, want %q", key, got, want)
		}
	}

	if got := files[string(CVFile)]; len(got) != 1 || got[0] != "cv.pdf|application/pdf" {
		t.Errorf("cv part: %v", got)
	}
	if got := files[string(ProfilePicture)]; len(got) != 1 || !strings.HasPrefix(got[0], "me.png|image/png") {
		t.Errorf("picture part: %v", got)
	}
	if got := files[string(CertificationsFiles)]; len(got) != 2 {
		t.Errorf("expected two certification parts, got %v", got)
	}
}
