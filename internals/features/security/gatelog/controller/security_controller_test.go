package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"hostel_admin_backend/internals/features/security/gatelog/export"
	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/repository"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
	helpersAuth "hostel_admin_backend/internals/helpers/auth"
)

type fakeStore struct {
	mu       sync.Mutex
	byStatus map[string][]model.LeaveRequest
	listErr  error
	applyErr error
	applied  []model.ActionBy
}

func (s *fakeStore) ListBySecurityStatus(_ context.Context, status string) ([]model.LeaveRequest, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byStatus[status], nil
}

func (s *fakeStore) ApplyAction(_ context.Context, requestID, status string, by model.ActionBy) (model.LeaveRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.applyErr != nil {
		return model.LeaveRequest{}, s.applyErr
	}
	s.applied = append(s.applied, by)
	return model.LeaveRequest{RequestID: requestID, SecurityStatus: status}, nil
}

func request(id, name, enrollment string, from time.Time, status string) model.LeaveRequest {
	return model.LeaveRequest{
		ID:                      id,
		RequestID:               id,
		RequestType:             model.RequestTypeOuting,
		StudentEnrollmentNumber: enrollment,
		AppliedFrom:             from,
		Reason:                  "Market visit",
		SecurityStatus:          status,
		Active:                  true,
		StudentInfo:             model.StudentInfo{Name: name, EnrollmentNo: enrollment, HostelName: "BH-1", RoomNo: "101"},
		UpdatedAt:               from.Add(time.Hour),
	}
}

func newTestApp(store *fakeStore, archive export.Sink) *fiber.App {
	ctrl := NewSecurityController(store, resolver.New(time.UTC, resolver.CompatSlots), archive)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helpersAuth.LocalUserID, "9b1d3a55-0000-4000-8000-000000000001")
		c.Locals(helpersAuth.LocalEmpID, "ADM001")
		c.Locals(helpersAuth.LocalUserName, "Meera")
		return c.Next()
	})
	g := app.Group("/security")
	g.Get("/requests/:view/export", ctrl.ExportRequests)
	g.Get("/requests/:view", ctrl.ListRequests)
	g.Post("/requests/:request_id/action", ctrl.ApplyAction)
	g.Put("/request/update-status", ctrl.UpdateStatus)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Notices []struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"notices"`
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env, raw
}

func pendingStore() *fakeStore {
	day := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	return &fakeStore{byStatus: map[string][]model.LeaveRequest{
		model.SecurityStatusPending: {
			request("r1", "Aarav Shah", "22BCS104", day, model.SecurityStatusPending),
			request("r2", "Diya Nair", "22ECE017", day.AddDate(0, 0, 2), model.SecurityStatusPending),
		},
	}}
}

func TestListRequestsFiltersAndBuildsTable(t *testing.T) {
	app := newTestApp(pendingStore(), nil)

	status, env, _ := do(t, app, "GET", "/security/requests/pending?search=diya", "")
	if status != 200 || !env.Success {
		t.Fatalf("status %d, env %+v", status, env)
	}
	var data struct {
		Label string `json:"label"`
		Total int    `json:"total"`
		Table struct {
			Columns []string `json:"columns"`
			Rows    []struct {
				RequestID string `json:"request_id"`
				Action    *struct {
					Status   string `json:"status"`
					Endpoint string `json:"endpoint"`
				} `json:"action"`
			} `json:"rows"`
		} `json:"table"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.Label != "Pending Requests" || data.Total != 1 || len(data.Table.Rows) != 1 {
		t.Fatalf("data = %+v", data)
	}
	row := data.Table.Rows[0]
	if row.RequestID != "r2" || row.Action == nil || row.Action.Status != "out" || row.Action.Endpoint != "/requests/r2/action" {
		t.Fatalf("row = %+v", row)
	}
	if got := data.Table.Columns[len(data.Table.Columns)-1]; got != "ACTION" {
		t.Fatalf("last column = %q", got)
	}
}

func TestListRequestsDateRange(t *testing.T) {
	app := newTestApp(pendingStore(), nil)
	_, env, _ := do(t, app, "GET", "/security/requests/pending?from=2024-03-05&to=2024-03-05", "")
	var data struct {
		Total int `json:"total"`
	}
	_ = json.Unmarshal(env.Data, &data)
	if data.Total != 1 {
		t.Fatalf("total = %d, want 1", data.Total)
	}
}

func TestListRequestsErrors(t *testing.T) {
	app := newTestApp(pendingStore(), nil)
	if status, _, _ := do(t, app, "GET", "/security/requests/archived", ""); status != 404 {
		t.Errorf("unknown view: %d", status)
	}
	if status, _, _ := do(t, app, "GET", "/security/requests/pending?from=05-03-2024x", ""); status != 400 {
		t.Errorf("bad date: %d", status)
	}

	failing := &fakeStore{listErr: errors.New("connection refused")}
	status, env, _ := do(t, newTestApp(failing, nil), "GET", "/security/requests/out", "")
	if status != fiber.StatusBadGateway {
		t.Fatalf("fetch failure: %d", status)
	}
	if len(env.Notices) != 1 || env.Notices[0].Kind != "error" || env.Notices[0].Message != "Failed to load Out Requests" {
		t.Fatalf("notices = %+v", env.Notices)
	}
}

func TestExportEmptyIsWarning(t *testing.T) {
	archive := &export.MemorySink{}
	app := newTestApp(&fakeStore{}, archive)

	status, env, _ := do(t, app, "GET", "/security/requests/in/export?format=pdf", "")
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", status)
	}
	if len(env.Notices) != 1 || env.Notices[0].Kind != "warning" || env.Notices[0].Message != "No data to export" {
		t.Fatalf("notices = %+v", env.Notices)
	}
	if len(archive.Files()) != 0 {
		t.Fatal("nothing should be archived")
	}
}

func TestExportExcelDownload(t *testing.T) {
	archive := &export.MemorySink{}
	app := newTestApp(pendingStore(), archive)

	req := httptest.NewRequest("GET", "/security/requests/pending/export?format=excel", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != export.FormatExcel.ContentType() {
		t.Errorf("content type = %q", ct)
	}
	cd := resp.Header.Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "Pending_Requests_") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("content disposition = %q", cd)
	}
	if n := resp.Header.Get("X-Notice"); n != "Pending Requests exported successfully" {
		t.Errorf("notice = %q", n)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 || string(body[:2]) != "PK" {
		t.Fatal("body is not an xlsx archive")
	}
	if files := archive.Files(); len(files) != 1 || !strings.HasSuffix(files[0].Name, ".xlsx") {
		t.Fatalf("archived = %+v", files)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	app := newTestApp(pendingStore(), nil)
	if status, _, _ := do(t, app, "GET", "/security/requests/pending/export?format=csv", ""); status != 400 {
		t.Fatalf("status = %d", status)
	}
}

func TestApplyAction(t *testing.T) {
	store := pendingStore()
	app := newTestApp(store, nil)

	if status, _, _ := do(t, app, "POST", "/security/requests/r1/action", `{"status":"gone"}`); status != 422 {
		t.Fatalf("bad status accepted: %d", status)
	}

	status, env, _ := do(t, app, "POST", "/security/requests/r1/action", `{"status":"OUT"}`)
	if status != 200 || env.Message != "Request marked out" {
		t.Fatalf("status %d, env %+v", status, env)
	}
	if len(store.applied) != 1 || store.applied[0].EmpID != "ADM001" || store.applied[0].Name != "Meera" {
		t.Fatalf("action by = %+v", store.applied)
	}

	status, _, _ = do(t, app, "PUT", "/security/request/update-status", `{"requestId":"r1","status":"in"}`)
	if status != 200 || len(store.applied) != 2 {
		t.Fatalf("compat update: %d", status)
	}
}

func TestApplyActionErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{repository.ErrRequestNotFound, 404},
		{repository.ErrInvalidTransition, 409},
		{repository.ErrRequestInactive, 409},
		{errors.New("deadlock"), 500},
	}
	for _, tc := range cases {
		app := newTestApp(&fakeStore{applyErr: tc.err}, nil)
		if status, _, _ := do(t, app, "POST", "/security/requests/r9/action", `{"status":"in"}`); status != tc.want {
			t.Errorf("%v: status %d, want %d", tc.err, status, tc.want)
		}
	}

	app := newTestApp(&fakeStore{}, nil)
	if status, _, _ := do(t, app, "PUT", "/security/request/update-status", `{"status":"in"}`); status != 400 {
		t.Errorf("missing requestId: %d", status)
	}
}
