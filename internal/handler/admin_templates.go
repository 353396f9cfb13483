package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

// kindParam parses the {kind} URL parameter, accepting singular and plural forms
func kindParam(w http.ResponseWriter, r *http.Request) (domain.ItemKind, bool) {
	kind, err := domain.ParseItemKind(chi.URLParam(r, URLParamKind))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItemKind)
		return "", false
	}
	return kind, true
}

// HandleListTemplates lists every template of a kind
// @Summary List item templates
// @Tags admin
// @Produce json
// @Param kind path string true "fish, rod, bait, accessory or title"
// @Success 200 {array} domain.ItemTemplate
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/templates/{kind} [get]
func HandleListTemplates(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}

		templates, err := svc.ListTemplates(r.Context(), kind)
		if err != nil {
			respondServiceError(w, r, "list templates", err)
			return
		}
		respondJSON(w, http.StatusOK, templates)
	}
}

// HandleGetTemplate returns one template
// @Summary Get an item template
// @Tags admin
// @Produce json
// @Param kind path string true "Template kind"
// @Param id path int true "Template ID"
// @Success 200 {object} domain.ItemTemplate
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/templates/{kind}/{id} [get]
func HandleGetTemplate(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		id, ok := GetIntURLParam(r, w, URLParamID)
		if !ok {
			return
		}

		tmpl, err := svc.GetTemplate(r.Context(), kind, id)
		if err != nil {
			respondServiceError(w, r, "get template", err)
			return
		}
		respondJSON(w, http.StatusOK, tmpl)
	}
}

// HandleCreateTemplate adds a template with the next free id of its kind
// @Summary Create an item template
// @Tags admin
// @Accept json
// @Produce json
// @Param kind path string true "Template kind"
// @Param request body catalog.TemplateInput true "Template"
// @Success 201 {object} domain.ItemTemplate
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/templates/{kind} [post]
func HandleCreateTemplate(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		var req catalog.TemplateInput
		if err := DecodeAndValidateRequest(r, w, &req, "create template"); err != nil {
			return
		}

		tmpl, err := svc.CreateTemplate(r.Context(), kind, req)
		if err != nil {
			respondServiceError(w, r, "create template", err)
			return
		}
		respondJSON(w, http.StatusCreated, tmpl)
	}
}

// HandleUpdateTemplate replaces a template's editable fields
// @Summary Update an item template
// @Tags admin
// @Accept json
// @Produce json
// @Param kind path string true "Template kind"
// @Param id path int true "Template ID"
// @Param request body catalog.TemplateInput true "Template"
// @Success 200 {object} domain.ItemTemplate
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/templates/{kind}/{id} [put]
func HandleUpdateTemplate(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		id, ok := GetIntURLParam(r, w, URLParamID)
		if !ok {
			return
		}
		var req catalog.TemplateInput
		if err := DecodeAndValidateRequest(r, w, &req, "update template"); err != nil {
			return
		}

		tmpl, err := svc.UpdateTemplate(r.Context(), kind, id, req)
		if err != nil {
			respondServiceError(w, r, "update template", err)
			return
		}
		respondJSON(w, http.StatusOK, tmpl)
	}
}

// HandleDeleteTemplate removes a template
// @Summary Delete an item template
// @Tags admin
// @Produce json
// @Param kind path string true "Template kind"
// @Param id path int true "Template ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/templates/{kind}/{id} [delete]
func HandleDeleteTemplate(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := kindParam(w, r)
		if !ok {
			return
		}
		id, ok := GetIntURLParam(r, w, URLParamID)
		if !ok {
			return
		}

		if err := svc.DeleteTemplate(r.Context(), kind, id); err != nil {
			respondServiceError(w, r, "delete template", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTemplateDeleted})
	}
}
