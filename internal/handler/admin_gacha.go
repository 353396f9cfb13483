package handler

import (
	"net/http"

	"github.com/osse101/FishingBot_Go/internal/catalog"
)

// HandleListPools lists every gacha pool
// @Summary List gacha pools
// @Tags admin
// @Produce json
// @Success 200 {array} domain.GachaPool
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha [get]
func HandleListPools(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pools, err := svc.ListPools(r.Context())
		if err != nil {
			respondServiceError(w, r, "list pools", err)
			return
		}
		respondJSON(w, http.StatusOK, pools)
	}
}

// HandleCreatePool adds a gacha pool
// @Summary Create a gacha pool
// @Tags admin
// @Accept json
// @Produce json
// @Param request body catalog.PoolInput true "Pool"
// @Success 201 {object} domain.GachaPool
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha [post]
func HandleCreatePool(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req catalog.PoolInput
		if err := DecodeAndValidateRequest(r, w, &req, "create pool"); err != nil {
			return
		}

		pool, err := svc.CreatePool(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "create pool", err)
			return
		}
		respondJSON(w, http.StatusCreated, pool)
	}
}

// HandleGetPool returns a pool with its enriched items and the selectable templates
// @Summary Gacha pool details
// @Tags admin
// @Produce json
// @Param poolID path int true "Pool ID"
// @Success 200 {object} domain.PoolDetails
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha/{poolID} [get]
func HandleGetPool(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poolID, ok := GetIntURLParam(r, w, URLParamPoolID)
		if !ok {
			return
		}

		details, err := svc.GetPoolDetails(r.Context(), poolID)
		if err != nil {
			respondServiceError(w, r, "get pool", err)
			return
		}
		respondJSON(w, http.StatusOK, details)
	}
}

// HandleUpdatePool replaces a pool's editable fields
// @Summary Update a gacha pool
// @Tags admin
// @Accept json
// @Produce json
// @Param poolID path int true "Pool ID"
// @Param request body catalog.PoolInput true "Pool"
// @Success 200 {object} domain.GachaPool
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha/{poolID} [put]
func HandleUpdatePool(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poolID, ok := GetIntURLParam(r, w, URLParamPoolID)
		if !ok {
			return
		}
		var req catalog.PoolInput
		if err := DecodeAndValidateRequest(r, w, &req, "update pool"); err != nil {
			return
		}

		pool, err := svc.UpdatePool(r.Context(), poolID, req)
		if err != nil {
			respondServiceError(w, r, "update pool", err)
			return
		}
		respondJSON(w, http.StatusOK, pool)
	}
}

// HandleDeletePool removes a pool and its items
// @Summary Delete a gacha pool
// @Tags admin
// @Produce json
// @Param poolID path int true "Pool ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha/{poolID} [delete]
func HandleDeletePool(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poolID, ok := GetIntURLParam(r, w, URLParamPoolID)
		if !ok {
			return
		}

		if err := svc.DeletePool(r.Context(), poolID); err != nil {
			respondServiceError(w, r, "delete pool", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPoolDeleted})
	}
}

// HandleAddPoolItem adds an entry to a pool
// @Summary Add a gacha pool item
// @Tags admin
// @Accept json
// @Produce json
// @Param poolID path int true "Pool ID"
// @Param request body catalog.PoolItemInput true "Pool item"
// @Success 201 {object} domain.GachaPoolItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha/{poolID}/items [post]
func HandleAddPoolItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poolID, ok := GetIntURLParam(r, w, URLParamPoolID)
		if !ok {
			return
		}
		var req catalog.PoolItemInput
		if err := DecodeAndValidateRequest(r, w, &req, "add pool item"); err != nil {
			return
		}

		item, err := svc.AddPoolItem(r.Context(), poolID, req)
		if err != nil {
			respondServiceError(w, r, "add pool item", err)
			return
		}
		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleUpdatePoolItem replaces a pool entry
// @Summary Update a gacha pool item
// @Tags admin
// @Accept json
// @Produce json
// @Param itemID path int true "Pool item ID"
// @Param request body catalog.PoolItemInput true "Pool item"
// @Success 200 {object} domain.GachaPoolItem
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha/items/{itemID} [put]
func HandleUpdatePoolItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntURLParam(r, w, URLParamItemID)
		if !ok {
			return
		}
		var req catalog.PoolItemInput
		if err := DecodeAndValidateRequest(r, w, &req, "update pool item"); err != nil {
			return
		}

		item, err := svc.UpdatePoolItem(r.Context(), itemID, req)
		if err != nil {
			respondServiceError(w, r, "update pool item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleDeletePoolItem removes a pool entry
// @Summary Delete a gacha pool item
// @Tags admin
// @Produce json
// @Param itemID path int true "Pool item ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/gacha/items/{itemID} [delete]
func HandleDeletePoolItem(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetIntURLParam(r, w, URLParamItemID)
		if !ok {
			return
		}

		if err := svc.DeletePoolItem(r.Context(), itemID); err != nil {
			respondServiceError(w, r, "delete pool item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPoolItemDeleted})
	}
}
