// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/lms-admin/internal/http/types"
	"github.com/canonical/lms-admin/internal/identity"
	"github.com/canonical/lms-admin/internal/logging"
	"github.com/canonical/lms-admin/internal/monitoring"
	"github.com/canonical/lms-admin/internal/tracing"
	"github.com/canonical/lms-admin/internal/types"
)

const apiPrefix = "/api/v0"

type activityRequest struct {
	Action     types.Action     `json:"action" validate:"required"`
	EntityType types.EntityType `json:"entity_type" validate:"required"`
	EntityID   string           `json:"entity_id" validate:"required"`
	Details    interface{}      `json:"details"`
}

// resource binds the generic get/create/update/delete handlers to one entity
// group of the service.
type resource[T, P any] struct {
	name   string
	path   string
	list   func(context.Context, types.ListFilter) ([]*T, error)
	get    func(context.Context, string) (*T, error)
	create func(context.Context, *types.Identity, *T) (*T, error)
	update func(context.Context, *types.Identity, string, *P) (*T, error)
	delete func(context.Context, *types.Identity, string) error
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get(apiPrefix+"/companies", a.listCompanies)
	mux.Post(apiPrefix+"/companies/{id}/suspend", a.suspendCompany(true))
	mux.Post(apiPrefix+"/companies/{id}/unsuspend", a.suspendCompany(false))
	register(a, mux, resource[types.Company, types.CompanyPatch]{
		name:   "company",
		path:   "/companies",
		get:    a.service.GetCompany,
		create: a.service.CreateCompany,
		update: a.service.UpdateCompany,
		delete: a.service.DeleteCompany,
	})

	register(a, mux, resource[types.User, types.UserPatch]{
		name:   "user",
		path:   "/users",
		list:   a.service.ListUsers,
		get:    a.service.GetUser,
		create: a.service.CreateUser,
		update: a.service.UpdateUser,
		delete: a.service.DeleteUser,
	})

	register(a, mux, resource[types.Course, types.CoursePatch]{
		name:   "course",
		path:   "/courses",
		list:   a.service.ListCourses,
		get:    a.service.GetCourse,
		create: a.service.CreateCourse,
		update: a.service.UpdateCourse,
		delete: a.service.DeleteCourse,
	})

	register(a, mux, resource[types.Department, types.DepartmentPatch]{
		name:   "department",
		path:   "/departments",
		list:   a.service.ListDepartments,
		get:    a.service.GetDepartment,
		create: a.service.CreateDepartment,
		update: a.service.UpdateDepartment,
		delete: a.service.DeleteDepartment,
	})

	register(a, mux, resource[types.License, types.LicensePatch]{
		name:   "license",
		path:   "/licenses",
		list:   a.service.ListLicenses,
		get:    a.service.GetLicense,
		create: a.service.CreateLicense,
		update: a.service.UpdateLicense,
		delete: a.service.DeleteLicense,
	})

	mux.Get(apiPrefix+"/dashboard", a.dashboard)
	mux.Get(apiPrefix+"/activity", a.listActivity)
	mux.Post(apiPrefix+"/activity", a.logActivity)
}

func register[T, P any](a *API, mux chi.Router, res resource[T, P]) {
	base := apiPrefix + res.path
	item := base + "/{id}"

	if res.list != nil {
		mux.Get(base, func(w http.ResponseWriter, r *http.Request) {
			ctx, span := a.tracer.Start(r.Context(), "admin.API.list")
			defer span.End()

			q := r.URL.Query()
			items, err := res.list(ctx, types.ListFilter{
				CompanyID: q.Get("company_id"),
				Search:    strings.TrimSpace(q.Get("search")),
			})
			if err != nil {
				a.writeError(w, err)
				return
			}
			a.writeResponse(w, http.StatusOK, fmt.Sprintf("List of %ss", res.name), items)
		})
	}

	mux.Get(item, func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "admin.API.get")
		defer span.End()

		v, err := res.get(ctx, chi.URLParam(r, "id"))
		if err != nil {
			a.writeError(w, err)
			return
		}
		a.writeResponse(w, http.StatusOK, fmt.Sprintf("Rendered %s", res.name), v)
	})

	mux.Post(base, func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "admin.API.create")
		defer span.End()

		body := new(T)
		if err := decode(r, body); err != nil {
			a.writeError(w, err)
			return
		}

		created, err := res.create(ctx, identity.FromContext(ctx), body)
		if err != nil {
			a.writeError(w, err)
			return
		}
		a.writeResponse(w, http.StatusCreated, fmt.Sprintf("Created %s", res.name), created)
	})

	mux.Patch(item, func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "admin.API.update")
		defer span.End()

		patch := new(P)
		if err := decode(r, patch); err != nil {
			a.writeError(w, err)
			return
		}

		updated, err := res.update(ctx, identity.FromContext(ctx), chi.URLParam(r, "id"), patch)
		if err != nil {
			a.writeError(w, err)
			return
		}
		a.writeResponse(w, http.StatusOK, fmt.Sprintf("Updated %s", res.name), updated)
	})

	mux.Delete(item, func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "admin.API.delete")
		defer span.End()

		if err := res.delete(ctx, identity.FromContext(ctx), chi.URLParam(r, "id")); err != nil {
			a.writeError(w, err)
			return
		}
		a.writeResponse(w, http.StatusOK, fmt.Sprintf("Deleted %s", res.name), nil)
	})
}

func (a *API) listCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.listCompanies")
	defer span.End()

	filter := types.CompanyFilter{Search: strings.TrimSpace(r.URL.Query().Get("search"))}
	if v := r.URL.Query().Get("suspended"); v != "" {
		suspended, err := strconv.ParseBool(v)
		if err != nil {
			a.writeError(w, httptypes.NewBadRequestError(fmt.Errorf("invalid suspended filter %q", v)))
			return
		}
		filter.Suspended = &suspended
	}

	companies, err := a.service.ListCompanies(ctx, filter)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, "List of companies", companies)
}

func (a *API) suspendCompany(suspended bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "admin.API.suspendCompany")
		defer span.End()

		c, err := a.service.SuspendCompany(ctx, identity.FromContext(ctx), chi.URLParam(r, "id"), suspended)
		if err != nil {
			a.writeError(w, err)
			return
		}

		message := "Unsuspended company"
		if suspended {
			message = "Suspended company"
		}
		a.writeResponse(w, http.StatusOK, message, c)
	}
}

func (a *API) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.dashboard")
	defer span.End()

	stats, err := a.service.GetDashboardStats(ctx)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, "Dashboard stats", stats)
}

func (a *API) listActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.listActivity")
	defer span.End()

	filter := types.ActivityFilter{CompanyID: r.URL.Query().Get("company_id")}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			a.writeError(w, httptypes.NewBadRequestError(fmt.Errorf("invalid limit %q", v)))
			return
		}
		filter.Limit = limit
	}

	logs, err := a.service.ListActivity(ctx, filter)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, "List of activity", logs)
}

func (a *API) logActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.logActivity")
	defer span.End()

	req := new(activityRequest)
	if err := decode(r, req); err != nil {
		a.writeError(w, err)
		return
	}

	if err := validate.StructCtx(ctx, req); err != nil {
		a.writeError(w, err)
		return
	}

	if err := a.service.LogActivity(ctx, identity.FromContext(ctx), req.Action, req.EntityType, req.EntityID, req.Details); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeResponse(w, http.StatusAccepted, "Activity accepted", nil)
}

func (a *API) writeResponse(w http.ResponseWriter, status int, message string, data interface{}) {
	if err := httptypes.WriteResponse(w, status, message, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if status := httptypes.StatusFromError(err); status >= http.StatusInternalServerError {
		a.logger.Errorf("request failed: %v", err)
	} else {
		a.logger.Debugf("request rejected: %v", err)
	}

	if err := httptypes.WriteError(w, err); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return httptypes.NewBadRequestError(fmt.Errorf("invalid request body: %w", err))
	}
	return nil
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
