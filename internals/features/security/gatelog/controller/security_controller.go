// file: internals/features/security/gatelog/controller/security_controller.go
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hostel_admin_backend/internals/features/security/gatelog/export"
	"hostel_admin_backend/internals/features/security/gatelog/model"
	"hostel_admin_backend/internals/features/security/gatelog/notify"
	"hostel_admin_backend/internals/features/security/gatelog/repository"
	"hostel_admin_backend/internals/features/security/gatelog/resolver"
	"hostel_admin_backend/internals/features/security/gatelog/service"
	helper "hostel_admin_backend/internals/helpers"
	helpersAuth "hostel_admin_backend/internals/helpers/auth"
)

/* ==================== Views ==================== */

type view struct {
	Status  string
	Label   string
	Options service.TableOptions
}

var views = map[string]view{
	model.SecurityStatusPending: {
		Status:  model.SecurityStatusPending,
		Label:   "Pending Requests",
		Options: service.TableOptions{ActionType: model.SecurityStatusOut},
	},
	model.SecurityStatusOut: {
		Status:  model.SecurityStatusOut,
		Label:   "Out Requests",
		Options: service.TableOptions{ActionType: model.SecurityStatusIn, ShowActualOut: true},
	},
	model.SecurityStatusIn: {
		Status:  model.SecurityStatusIn,
		Label:   "In Requests",
		Options: service.TableOptions{ShowActualOut: true, ShowActualIn: true},
	},
}

/* ==================== Controller ==================== */

type SecurityController struct {
	Store    repository.Store
	Resolver resolver.Resolver
	// Archive, when set, also receives every exported file.
	Archive export.Sink
}

func NewSecurityController(store repository.Store, r resolver.Resolver, archive export.Sink) *SecurityController {
	return &SecurityController{Store: store, Resolver: r, Archive: archive}
}

// open builds a request scoped aggregator for the :view param with the
// search and date filters applied. The caller closes it.
func (ctrl *SecurityController) open(c *fiber.Ctx, rec *notify.Recorder, sink export.Sink) (*service.Aggregator, view, error) {
	v, ok := views[strings.ToLower(c.Params("view"))]
	if !ok {
		return nil, v, fiber.NewError(fiber.StatusNotFound, "Unknown view; use pending, out or in")
	}

	fetch := func(ctx context.Context) ([]model.LeaveRequest, error) {
		return ctrl.Store.ListBySecurityStatus(ctx, v.Status)
	}
	agg := service.NewAggregator(fetch, v.Label,
		service.WithLocation(ctrl.Resolver.Loc()),
		service.WithResolver(ctrl.Resolver),
		service.WithNotifier(notify.Tee(notify.LogNotifier{}, rec)),
		service.WithSink(sink),
	)

	var patch service.DateRangePatch
	if from := c.Query("from"); from != "" {
		patch.From = &from
	}
	if to := c.Query("to"); to != "" {
		patch.To = &to
	}
	if err := agg.SetDateRange(patch); err != nil {
		agg.Close()
		return nil, v, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	agg.SetSearchTerm(c.Query("search"))

	if !agg.Load(c.UserContext()) {
		agg.Close()
		return nil, v, fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Failed to load %s", v.Label))
	}
	return agg, v, nil
}

// GET /api/a/security/requests/:view?search=&from=&to=
func (ctrl *SecurityController) ListRequests(c *fiber.Ctx) error {
	rec := &notify.Recorder{}
	agg, v, err := ctrl.open(c, rec, nil)
	if err != nil {
		return respondError(c, err, rec)
	}
	defer agg.Close()

	surface := agg.Surface()
	table := service.BuildTable(surface.Data, v.Options, agg.Resolver())
	return helper.JsonOKWithNotices(c, "ok", fiber.Map{
		"view":    v.Status,
		"label":   surface.Label,
		"range":   surface.Range,
		"search":  surface.Search,
		"loading": surface.Loading,
		"total":   len(surface.Data),
		"table":   table,
		"data":    surface.Data,
	}, rec.Notices())
}

// GET /api/a/security/requests/:view/export?format=excel|pdf&search=&from=&to=
func (ctrl *SecurityController) ExportRequests(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format", string(export.FormatExcel)))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var file *export.File
	sink := export.SinkFunc(func(f export.File) error {
		if ctrl.Archive != nil {
			if err := ctrl.Archive.Save(f); err != nil {
				log.Printf("[WARNING] archive export %s: %v", f.Name, err)
			}
		}
		file = &f
		return nil
	})

	rec := &notify.Recorder{}
	agg, v, err := ctrl.open(c, rec, sink)
	if err != nil {
		return respondError(c, err, rec)
	}
	defer agg.Close()

	if !agg.Export(format) || file == nil {
		if rec.Count(notify.Warning) > 0 {
			return helper.JsonErrorWithNotices(c, fiber.StatusUnprocessableEntity, "No data to export", rec.Notices())
		}
		return helper.JsonErrorWithNotices(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to export %s", v.Label), rec.Notices())
	}

	if n, ok := rec.Last(); ok {
		c.Set("X-Notice", n.Message)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Status(fiber.StatusOK).Send(file.Data)
}

/* ==================== Gate actions ==================== */

type actionRequest struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status" validate:"required,oneof=out in"`
}

// POST /api/a/security/requests/:request_id/action  {status}
func (ctrl *SecurityController) ApplyAction(c *fiber.Ctx) error {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return ctrl.applyAction(c, c.Params("request_id"), req)
}

// PUT /api/a/security/request/update-status  {requestId, status}
func (ctrl *SecurityController) UpdateStatus(c *fiber.Ctx) error {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return ctrl.applyAction(c, req.RequestID, req)
}

func (ctrl *SecurityController) applyAction(c *fiber.Ctx, requestID string, req actionRequest) error {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "requestId is required")
	}
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u := helpersAuth.GetCurrentUser(c)
	by := model.ActionBy{ID: u.ID, Name: u.Name, EmpID: u.EmpID}

	updated, err := ctrl.Store.ApplyAction(c.UserContext(), requestID, req.Status, by)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrRequestNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Request not found")
	case errors.Is(err, repository.ErrInvalidTransition), errors.Is(err, repository.ErrRequestInactive):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	default:
		log.Printf("[ERROR] apply action %s → %s: %v", requestID, req.Status, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update request status")
	}

	log.Printf("[INFO] request %s marked %s by %s", requestID, req.Status, by.EmpID)
	return helper.JsonUpdated(c, fmt.Sprintf("Request marked %s", req.Status), updated)
}

func respondError(c *fiber.Ctx, err error, rec *notify.Recorder) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		fe = fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if notices := rec.Notices(); len(notices) > 0 {
		return helper.JsonErrorWithNotices(c, fe.Code, fe.Message, notices)
	}
	return helper.JsonError(c, fe.Code, fe.Message)
}
