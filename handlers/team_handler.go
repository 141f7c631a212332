package handlers

import (
	"errors"
	"net/http"

	"github.com/kalimuthu765/sports-connect/middleware"
	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/services"
)

type TeamHandler struct {
	accountService      services.AccountService
	relationshipService services.RelationshipService
	joinRequestService  services.JoinRequestService
}

func NewTeamHandler(
	accountService services.AccountService,
	relationshipService services.RelationshipService,
	joinRequestService services.JoinRequestService,
) *TeamHandler {
	return &TeamHandler{
		accountService:      accountService,
		relationshipService: relationshipService,
		joinRequestService:  joinRequestService,
	}
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.accountService.ListTeams(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) Roster(w http.ResponseWriter, r *http.Request) {
	teamID, err := getIDParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	roster, err := h.relationshipService.Roster(r.Context(), teamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"roster": roster}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddToRoster lets the calling team add a player directly by email.
func (h *TeamHandler) AddToRoster(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input struct {
		Email string `json:"email"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Email == "" {
		badRequestResponse(w, r, errors.New("email is required"))
		return
	}

	player, err := h.relationshipService.AddToRoster(r.Context(), callerID, input.Email)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) RemoveFromRoster(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	playerID, err := getIDParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.relationshipService.RemoveFromRoster(r.Context(), callerID, playerID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestToJoin files a join request from the calling player to the team.
func (h *TeamHandler) RequestToJoin(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	teamID, err := getIDParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	request, err := h.joinRequestService.Request(r.Context(), teamID, callerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"join_request": request}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) ListJoinRequests(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	teamID, err := getIDParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	requests, err := h.joinRequestService.ListByTeam(r.Context(), teamID, callerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"join_requests": requests}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DecideJoinRequest approves or rejects a pending request. Approval also
// places the player on the roster.
func (h *TeamHandler) DecideJoinRequest(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	teamID, err := getIDParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	requestID, err := getIDParam(r, "requestID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	request, err := h.joinRequestService.Decide(r.Context(), teamID, requestID, models.ReviewStatus(input.Status), callerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"join_request": request}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
