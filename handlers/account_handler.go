package handlers

import (
	"errors"
	"net/http"

	"github.com/kalimuthu765/sports-connect/middleware"
	"github.com/kalimuthu765/sports-connect/services"
)

type AccountHandler struct {
	accountService      services.AccountService
	relationshipService services.RelationshipService
}

func NewAccountHandler(
	accountService services.AccountService,
	relationshipService services.RelationshipService,
) *AccountHandler {
	return &AccountHandler{
		accountService:      accountService,
		relationshipService: relationshipService,
	}
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	h.respondWithAccount(w, r, callerID, http.StatusOK)
}

func (h *AccountHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDParam(r, "accountID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.respondWithAccount(w, r, accountID, http.StatusOK)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.UpdateProfileInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	account, err := h.accountService.UpdateProfile(r.Context(), callerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"account": account}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AccountHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequestResponse(w, r, errors.New("avatar file is required (multipart field \"avatar\")"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	account, err := h.accountService.UploadAvatar(r.Context(), callerID, contentType, file)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"account": account}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// LeaveTeam detaches the calling player from their current team.
func (h *AccountHandler) LeaveTeam(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	if err := h.relationshipService.ClearTeam(r.Context(), callerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) Follow(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	targetID, err := getIDParam(r, "accountID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.relationshipService.Follow(r.Context(), callerID, targetID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AccountHandler) Followers(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDParam(r, "accountID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ids, err := h.relationshipService.Followers(r.Context(), accountID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"followers": ids}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AccountHandler) Following(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDParam(r, "accountID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ids, err := h.relationshipService.Following(r.Context(), accountID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"following": ids}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AccountHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	accounts, err := h.accountService.Recommendations(r.Context(), callerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"recommendations": accounts}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AccountHandler) AddMatchStat(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.AddMatchStatInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stat, err := h.accountService.AddMatchStat(r.Context(), callerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match_stat": stat}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AccountHandler) ListMatchStats(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDParam(r, "accountID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.accountService.ListMatchStats(r.Context(), accountID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"match_stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AccountHandler) respondWithAccount(w http.ResponseWriter, r *http.Request, accountID, status int) {
	account, err := h.accountService.GetByID(r.Context(), accountID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, status, jsonResponse{"account": account}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
