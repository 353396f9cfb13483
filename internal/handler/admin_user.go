package handler

import (
	"net/http"

	"github.com/osse101/FishingBot_Go/internal/user"
)

// ModifyCoinsRequest overwrites a player's coin balance. Negative amounts are accepted.
type ModifyCoinsRequest struct {
	UserID string `json:"user_id" validate:"required,notblank,max=100"`
	Amount *int   `json:"amount" validate:"required"`
}

// HandleModifyCoins sets a player's coins to an absolute amount
// @Summary Overwrite coin balance
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ModifyCoinsRequest true "New balance"
// @Success 200 {object} domain.Result
// @Failure 404 {object} domain.Result
// @Security ApiKeyAuth
// @Security AdminKeyAuth
// @Router /api/v1/admin/user/coins [post]
func HandleModifyCoins(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModifyCoinsRequest
		if err := DecodeAndValidateRequest(r, w, &req, user.OpModifyCoins); err != nil {
			return
		}

		res, err := svc.ModifyUserCoins(r.Context(), req.UserID, *req.Amount)
		respondResult(w, r, user.OpModifyCoins, http.StatusOK, res, res, err)
	}
}
