package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"cpicareers/models"
	"cpicareers/services/intake"
	"cpicareers/services/slots"
	"cpicareers/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type stubSlotService struct {
	month   models.MonthSlots
	bookErr error
	booked  models.BookSlotRequest
}

func (s *stubSlotService) GetMonth(_ context.Context, year, month int) (models.MonthSlots, error) {
	if month < 1 || month > 12 {
		return nil, slots.ErrInvalidMonth
	}
	return s.month, nil
}

func (s *stubSlotService) Book(_ context.Context, req models.BookSlotRequest) (*models.InterviewSlot, error) {
	s.booked = req
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return &models.InterviewSlot{ID: "s1", Date: req.Date, Time: req.Time, Status: models.SlotBooked}, nil
}

func (s *stubSlotService) CreateSlots(context.Context, models.CreateSlotsRequest) ([]string, error) {
	return []string{"n1"}, nil
}

func (s *stubSlotService) SetStatus(context.Context, string, models.SlotStatus) error {
	return slots.ErrSlotNotFound
}

func (s *stubSlotService) DeleteSlot(context.Context, string) error { return slots.ErrSlotBooked }

func slotRouter(svc slots.SlotService) *gin.Engine {
	h := NewSlotHandler(svc)
	r := gin.New()
	r.GET("/api/interview-slots", h.GetMonthHandler)
	r.POST("/api/interview-slots/book", h.BookHandler)
	r.PATCH("/admin/:id", h.UpdateStatusHandler)
	r.DELETE("/admin/:id", h.DeleteSlotHandler)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestGetMonthHandler(t *testing.T) {
	svc := &stubSlotService{month: models.MonthSlots{"2025-03-12": {{ID: "s1", Time: "10:00", Status: models.SlotOpen}}}}
	r := slotRouter(svc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/interview-slots?month=3&year=2025", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got models.MonthSlots
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if len(got["2025-03-12"]) != 1 || got["2025-03-12"][0].ID != "s1" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	for _, q := range []string{"", "?month=3", "?month=x&year=2025", "?month=13&year=2025"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/interview-slots"+q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestBookHandler(t *testing.T) {
	body := `{"date":"2025-03-12","time":"10:00","applicantEmail":"mona@example.com","applicantName":"Mona"}`

	t.Run("booked", func(t *testing.T) {
		svc := &stubSlotService{}
		rec := httptest.NewRecorder()
		slotRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/interview-slots/book", strings.NewReader(body)))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if svc.booked.ApplicantEmail != "mona@example.com" {
			t.Fatalf("request not forwarded: %+v", svc.booked)
		}
	})

	t.Run("taken", func(t *testing.T) {
		svc := &stubSlotService{bookErr: slots.ErrSlotUnavailable}
		rec := httptest.NewRecorder()
		slotRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/interview-slots/book", strings.NewReader(body)))
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		if got := decodeError(t, rec).Error; got != "Slot no longer available" {
			t.Fatalf("unexpected message %q", got)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		slotRouter(&stubSlotService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/interview-slots/book", strings.NewReader(`{"date":"2025-03-12"}`)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unexpected failure", func(t *testing.T) {
		svc := &stubSlotService{bookErr: errors.New("mongo down")}
		rec := httptest.NewRecorder()
		slotRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/interview-slots/book", strings.NewReader(body)))
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestAdminSlotErrors(t *testing.T) {
	r := slotRouter(&stubSlotService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/admin/x", strings.NewReader(`{"status":"open"}`)))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/x", nil))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

type stubIntake struct {
	form *models.ApplicationForm
	err  error
}

func (s *stubIntake) Submit(_ context.Context, form *models.ApplicationForm) (*models.Application, error) {
	s.form = form
	if s.err != nil {
		return nil, s.err
	}
	return &models.Application{ID: "app-1", Status: models.ApplicationReceived}, nil
}

func multipartBody(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	_ = w.WriteField("fullNameEnglish", "Mona Hassan")
	_ = w.WriteField("expectedSalary", "25000")
	_ = w.WriteField("interviewSlotId", "s1")
	cv, _ := w.CreateFormFile("cvFile", "cv.pdf")
	_, _ = cv.Write([]byte("%PDF-1.4"))
	for _, name := range []string{"a.pdf", "b.pdf"} {
		part, _ := w.CreateFormFile("certificationsFiles", name)
		_, _ = part.Write([]byte("%PDF-1.4"))
	}
	_ = w.Close()
	return body, w.FormDataContentType()
}

func submit(t *testing.T, svc intake.IntakeService) *httptest.ResponseRecorder {
	t.Helper()
	h := NewApplicationHandler(svc, nil)
	r := gin.New()
	r.POST("/api/applications", h.SubmitHandler)

	body, contentType := multipartBody(t)
	req := httptest.NewRequest(http.MethodPost, "/api/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmitHandlerBindsForm(t *testing.T) {
	svc := &stubIntake{}
	rec := submit(t, svc)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp models.IntakeResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != "app-1" || resp.Status != models.ApplicationReceived {
		t.Fatalf("unexpected response %+v", resp)
	}
	f := svc.form
	if f.FullNameEnglish != "Mona Hassan" || f.ExpectedSalary != 25000 || f.InterviewSlotID != "s1" {
		t.Fatalf("scalars not bound: %+v", f)
	}
	if f.CV == nil || f.CV.Filename != "cv.pdf" || len(f.Certifications) != 2 || f.ProfilePicture != nil {
		t.Fatalf("files not bound: cv=%v certs=%d", f.CV, len(f.Certifications))
	}
}

func TestSubmitHandlerErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"form", &intake.FormError{Fields: map[string]string{"cvFile": "is required"}}, http.StatusBadRequest},
		{"upload", intake.ErrUploadFailed, http.StatusBadGateway},
		{"other", errors.New("mongo down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := submit(t, &stubIntake{err: tt.err})
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
		})
	}

	rec := submit(t, &stubIntake{err: &intake.FormError{Fields: map[string]string{"cvFile": "is required"}}})
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "Invalid application" || body.Fields["cvFile"] != "is required" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
