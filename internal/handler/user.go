package handler

import (
	"net/http"

	"github.com/osse101/FishingBot_Go/internal/user"
)

// RegisterRequest registers a new player
type RegisterRequest struct {
	UserID   string `json:"user_id" validate:"required,notblank,max=100"`
	Nickname string `json:"nickname" validate:"required,notblank,max=100"`
}

// UserRequest identifies the acting player
type UserRequest struct {
	UserID string `json:"user_id" validate:"required,notblank,max=100"`
}

// UseTitleRequest equips an owned title
type UseTitleRequest struct {
	UserID  string `json:"user_id" validate:"required,notblank,max=100"`
	TitleID int    `json:"title_id" validate:"min=1"`
}

// HandleRegister registers a player with the starting balance
// @Summary Register a player
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Player"
// @Success 201 {object} domain.Result
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} domain.Result
// @Security ApiKeyAuth
// @Router /api/v1/user/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, user.OpRegister); err != nil {
			return
		}

		res, err := svc.Register(r.Context(), req.UserID, req.Nickname)
		respondResult(w, r, user.OpRegister, http.StatusCreated, res, res, err)
	}
}

// HandleSignIn performs the daily check-in
// @Summary Daily sign-in
// @Tags user
// @Accept json
// @Produce json
// @Param request body UserRequest true "Player"
// @Success 200 {object} user.SignInResult
// @Failure 404 {object} user.SignInResult
// @Failure 409 {object} user.SignInResult
// @Security ApiKeyAuth
// @Router /api/v1/user/signin [post]
func HandleSignIn(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := DecodeAndValidateRequest(r, w, &req, user.OpSignIn); err != nil {
			return
		}

		res, err := svc.DailySignIn(r.Context(), req.UserID)
		respondResult(w, r, user.OpSignIn, http.StatusOK, res.Result, res, err)
	}
}

// HandleGetCurrency returns both balances
// @Summary Get balances
// @Tags user
// @Produce json
// @Param user_id query string true "Player ID"
// @Success 200 {object} user.CurrencyResult
// @Failure 404 {object} user.CurrencyResult
// @Security ApiKeyAuth
// @Router /api/v1/user/currency [get]
func HandleGetCurrency(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, QueryParamUserID)
		if !ok {
			return
		}

		res, err := svc.GetUserCurrency(r.Context(), userID)
		respondResult(w, r, user.OpCurrency, http.StatusOK, res.Result, res, err)
	}
}

// HandleGetAccessory returns the equipped accessory, if any
// @Summary Get equipped accessory
// @Tags user
// @Produce json
// @Param user_id query string true "Player ID"
// @Success 200 {object} user.AccessoryResult
// @Failure 404 {object} user.AccessoryResult
// @Security ApiKeyAuth
// @Router /api/v1/user/accessory [get]
func HandleGetAccessory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, QueryParamUserID)
		if !ok {
			return
		}

		res, err := svc.GetUserCurrentAccessory(r.Context(), userID)
		respondResult(w, r, user.OpAccessory, http.StatusOK, res.Result, res, err)
	}
}

// HandleGetTitles lists owned titles
// @Summary List owned titles
// @Tags user
// @Produce json
// @Param user_id query string true "Player ID"
// @Success 200 {object} user.TitlesResult
// @Failure 404 {object} user.TitlesResult
// @Security ApiKeyAuth
// @Router /api/v1/user/titles [get]
func HandleGetTitles(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, QueryParamUserID)
		if !ok {
			return
		}

		res, err := svc.GetUserTitles(r.Context(), userID)
		respondResult(w, r, user.OpTitles, http.StatusOK, res.Result, res, err)
	}
}

// HandleUseTitle equips an owned title
// @Summary Equip a title
// @Tags user
// @Accept json
// @Produce json
// @Param request body UseTitleRequest true "Title to equip"
// @Success 200 {object} domain.Result
// @Failure 403 {object} domain.Result
// @Failure 404 {object} domain.Result
// @Security ApiKeyAuth
// @Router /api/v1/user/title/use [post]
func HandleUseTitle(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseTitleRequest
		if err := DecodeAndValidateRequest(r, w, &req, user.OpUseTitle); err != nil {
			return
		}

		res, err := svc.UseTitle(r.Context(), req.UserID, req.TitleID)
		respondResult(w, r, user.OpUseTitle, http.StatusOK, res, res, err)
	}
}

// HandleGetTaxRecords returns the player's tax ledger
// @Summary Get tax records
// @Tags user
// @Produce json
// @Param user_id query string true "Player ID"
// @Success 200 {object} user.TaxRecordsResult
// @Failure 404 {object} user.TaxRecordsResult
// @Security ApiKeyAuth
// @Router /api/v1/user/taxes [get]
func HandleGetTaxRecords(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, QueryParamUserID)
		if !ok {
			return
		}

		res, err := svc.GetTaxRecord(r.Context(), userID)
		respondResult(w, r, user.OpTaxRecords, http.StatusOK, res.Result, res, err)
	}
}

// HandleGetLeaderboard returns the richest players
// @Summary Coin leaderboard
// @Tags user
// @Produce json
// @Param limit query int false "Entries to return (default 10, max 100)"
// @Success 200 {object} user.LeaderboardResult
// @Security ApiKeyAuth
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntQueryParam(r, w, QueryParamLimit, 0)
		if !ok {
			return
		}

		res, err := svc.GetLeaderboard(r.Context(), limit)
		respondResult(w, r, user.OpLeaderboard, http.StatusOK, res.Result, res, err)
	}
}
