package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cpicareers/models"
)

type fakeSource struct {
	mu      sync.Mutex
	data    map[time.Month]models.MonthSlots
	fail    map[time.Month]error
	gates   map[time.Month]chan struct{}
	started chan time.Month
	calls   []time.Month
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		data:    map[time.Month]models.MonthSlots{},
		fail:    map[time.Month]error{},
		gates:   map[time.Month]chan struct{}{},
		started: make(chan time.Month, 10),
	}
}

// FetchMonth ignores cancellation so a held month answers late, like a slow
// server would.
func (f *fakeSource) FetchMonth(_ context.Context, _ int, month time.Month) (models.MonthSlots, error) {
	f.mu.Lock()
	f.calls = append(f.calls, month)
	gate := f.gates[month]
	data, err := f.data[month], f.fail[month]
	f.mu.Unlock()

	f.started <- month
	if gate != nil {
		<-gate
	}
	return data, err
}

func newTestCalendar(src SlotSource, n Notifier) *Calendar {
	return NewCalendar(src, CalendarOptions{Now: clock, Location: time.UTC, Notifier: n})
}

func TestCalendarStartsLoadingOnCurrentMonth(t *testing.T) {
	src := newFakeSource()
	cal := newTestCalendar(src, &recordingNotifier{})
	if !cal.Loading() {
		t.Fatalf("calendar should start in the loading state")
	}
	if y, m := cal.Month(); y != 2025 || m != time.March {
		t.Fatalf("expected March 2025, got %v %d", m, y)
	}
	if err := cal.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cal.Loading() {
		t.Fatalf("loading flag not cleared")
	}
}

func TestCalendarStaleResponseIsDiscarded(t *testing.T) {
	src := newFakeSource()
	src.data[time.March] = models.MonthSlots{"2025-03-20": {openSlot("m", "10:00")}}
	src.data[time.April] = models.MonthSlots{"2025-04-02": {openSlot("a", "10:00")}}
	marchGate := make(chan struct{})
	src.gates[time.March] = marchGate

	cal := newTestCalendar(src, &recordingNotifier{})
	ctx := context.Background()

	marchDone := make(chan error, 1)
	go func() { marchDone <- cal.Show(ctx, 2025, time.March) }()
	if m := <-src.started; m != time.March {
		t.Fatalf("expected March fetch first, got %v", m)
	}

	go func() {
		// Drain April's start notification.
		<-src.started
	}()
	if err := cal.Show(ctx, 2025, time.April); err != nil {
		t.Fatalf("Show(April): %v", err)
	}

	close(marchGate)
	if err := <-marchDone; !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse for March, got %v", err)
	}

	data, year, month := cal.Slots()
	if year != 2025 || month != time.April {
		t.Fatalf("displayed month overwritten: %v %d", month, year)
	}
	if _, ok := data["2025-04-02"]; !ok {
		t.Fatalf("April data missing: %v", data)
	}
	if _, ok := data["2025-03-20"]; ok {
		t.Fatalf("stale March data leaked in")
	}
	if y, m := cal.Month(); y != 2025 || m != time.April {
		t.Fatalf("target month changed to %v %d", m, y)
	}
}

func TestCalendarFailureKeepsPreviousData(t *testing.T) {
	src := newFakeSource()
	src.data[time.March] = models.MonthSlots{"2025-03-20": {openSlot("m", "10:00")}}
	src.fail[time.April] = errors.New("boom")
	n := &recordingNotifier{}
	cal := newTestCalendar(src, n)
	ctx := context.Background()

	go func() {
		for range src.started {
		}
	}()
	if err := cal.Show(ctx, 2025, time.March); err != nil {
		t.Fatalf("Show(March): %v", err)
	}
	if err := cal.Next(ctx); err == nil {
		t.Fatalf("expected April fetch to fail")
	}

	if cal.Err() == nil {
		t.Fatalf("expected Err() to report the failure")
	}
	if n.lastError() != MsgMonthLoadError {
		t.Fatalf("expected load error notice, got %q", n.lastError())
	}
	data, _, month := cal.Slots()
	if month != time.March || len(data["2025-03-20"]) != 1 {
		t.Fatalf("previous month data not kept: %v %v", month, data)
	}
	if cal.Loading() {
		t.Fatalf("loading flag should be cleared after failure")
	}
	if got := cal.Summary(); got != (Summary{}) {
		t.Fatalf("summary counts March while April is shown: %+v", got)
	}
	for _, day := range cal.Days() {
		if len(day.Cells) != 0 {
			t.Fatalf("April grid shows March slots on %s", day.ISO)
		}
	}
}

func TestCalendarNavigationIsUnbounded(t *testing.T) {
	src := newFakeSource()
	cal := newTestCalendar(src, &recordingNotifier{})
	ctx := context.Background()
	go func() {
		for range src.started {
		}
	}()

	if err := cal.Show(ctx, 2025, time.January); err != nil {
		t.Fatal(err)
	}
	if err := cal.Prev(ctx); err != nil {
		t.Fatal(err)
	}
	if y, m := cal.Month(); y != 2024 || m != time.December {
		t.Fatalf("expected December 2024, got %v %d", m, y)
	}
	for i := 0; i < 14; i++ {
		if err := cal.Next(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if y, m := cal.Month(); y != 2026 || m != time.February {
		t.Fatalf("expected February 2026, got %v %d", m, y)
	}
}

func TestCalendarDaysGrid(t *testing.T) {
	src := newFakeSource()
	src.data[time.March] = models.MonthSlots{
		"2025-03-10": {
			{ID: "4", Time: "12:00", Status: models.SlotPending},
			{ID: "1", Time: "08:00", Status: models.SlotOpen},
			{ID: "2", Time: "10:00", Status: models.SlotOpen},
			{ID: "3", Time: "11:00", Status: models.SlotBooked},
		},
		"2025-03-05": {openSlot("5", "10:00")},
	}
	cal := newTestCalendar(src, &recordingNotifier{})
	go func() {
		for range src.started {
		}
	}()
	if err := cal.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	days := cal.Days()
	if len(days) != 42 {
		t.Fatalf("expected 6 full weeks, got %d days", len(days))
	}
	if days[0].ISO != "2025-02-23" || days[0].InMonth || days[0].Date.Weekday() != time.Sunday {
		t.Fatalf("grid should start on Sunday 2025-02-23, got %+v", days[0])
	}
	if days[41].ISO != "2025-04-05" {
		t.Fatalf("grid should end on 2025-04-05, got %s", days[41].ISO)
	}

	byISO := map[string]Day{}
	for _, d := range days {
		byISO[d.ISO] = d
	}
	today := byISO["2025-03-10"]
	if !today.Today {
		t.Fatalf("2025-03-10 should be flagged today")
	}
	wantReasons := []DisabledReason{ReasonPassed, ReasonNone, ReasonBooked, ReasonPending}
	if len(today.Cells) != len(wantReasons) {
		t.Fatalf("unexpected cells %+v", today.Cells)
	}
	for i, cell := range today.Cells {
		if cell.Reason != wantReasons[i] || cell.Disabled != (wantReasons[i] != ReasonNone) {
			t.Fatalf("cell %d (%s): got reason %q disabled %v", i, cell.Slot.Time, cell.Reason, cell.Disabled)
		}
	}
	if c := byISO["2025-03-05"].Cells; len(c) != 1 || c[0].Reason != ReasonPassed {
		t.Fatalf("past day slot should be passed: %+v", c)
	}

	sum := cal.Summary()
	if sum != (Summary{Total: 5, Open: 3, Pending: 1, Booked: 1}) {
		t.Fatalf("unexpected summary %+v", sum)
	}

	if ok, reason := cal.Selectable("2025-03-10", openSlot("2", "10:00")); !ok || reason != ReasonNone {
		t.Fatalf("10:00 should be selectable, got %v %q", ok, reason)
	}
}
