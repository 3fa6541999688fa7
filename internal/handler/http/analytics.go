package http

import (
	"net/http"

	"github.com/cmlabs-hris/hrms-core-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hrms-core-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	ByDesignation(w http.ResponseWriter, r *http.Request)
	ByManager(w http.ResponseWriter, r *http.Request)
	SalaryStats(w http.ResponseWriter, r *http.Request)
	SalaryExtremes(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

func filterFrom(r *http.Request) analytics.FilterRequest {
	return analytics.NewFilterRequest(r.URL.Query().Get("designation"))
}

// ByDesignation handles GET /analytics/employees/by-designation
func (h *analyticsHandlerImpl) ByDesignation(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.ByDesignation(r.Context(), filterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ByManager handles GET /analytics/employees/by-manager
func (h *analyticsHandlerImpl) ByManager(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.ByManager(r.Context(), filterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SalaryStats handles GET /analytics/salary/by-designation
func (h *analyticsHandlerImpl) SalaryStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.SalaryStats(r.Context(), filterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// SalaryExtremes handles GET /analytics/salary/extremes-by-designation
func (h *analyticsHandlerImpl) SalaryExtremes(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.SalaryExtremes(r.Context(), filterFrom(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Overview handles GET /analytics/overview
func (h *analyticsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
