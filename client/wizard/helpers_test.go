package wizard

import (
	"sync"
	"testing"
	"time"

	"cpicareers/models"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n%%EOF\n")
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
)

// fixedNow is a Monday morning in March 2025.
var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

var completeScalars = map[FieldKey]string{
	FullNameEnglish:       "Mona Hassan",
	FullNameArabic:        "منى حسن",
	NationalID:            "29801011234567",
	DateOfBirth:           "1998-01-01",
	MobileNumber:          "+201001234567",
	WhatsappNumber:        "+201001234567",
	EmailAddress:          "mona@example.com",
	CurrentAddress:        "12 Nile St, Cairo",
	PositionAppliedFor:    "investment-analyst",
	YearsOfExperience:     "2-3",
	CurrentLastPosition:   "Junior Analyst",
	ExpectedSalary:        "25,000",
	HighestEducationLevel: "bachelor",
	ArabicProficiency:     "native",
	EnglishProficiency:    "fluent",
	KeySkills:             "Financial modelling, Excel",
	Motivation:            "I want to grow with a property investment leader.",
}

// filledStore returns a store whose draft passes every data step.
func filledStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	for key, value := range completeScalars {
		if err := s.SetField(key, value); err != nil {
			t.Fatalf("SetField(%s): %v", key, err)
		}
	}
	if err := s.SetFile(CVFile, Attachment{Name: "cv.pdf", Data: pdfBytes}); err != nil {
		t.Fatalf("SetFile(cv): %v", err)
	}
	if err := s.SetFile(ProfilePicture, Attachment{Name: "me.png", Data: pngBytes}); err != nil {
		t.Fatalf("SetFile(picture): %v", err)
	}
	return s
}

func openSlot(id, at string) models.SlotView {
	return models.SlotView{ID: id, Time: at, Status: models.SlotOpen}
}
