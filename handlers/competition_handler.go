package handlers

import (
	"net/http"
	"strconv"

	"github.com/kalimuthu765/sports-connect/middleware"
	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/services"
)

type CompetitionHandler struct {
	competitionService  services.CompetitionService
	registrationService services.RegistrationService
}

func NewCompetitionHandler(
	competitionService services.CompetitionService,
	registrationService services.RegistrationService,
) *CompetitionHandler {
	return &CompetitionHandler{
		competitionService:  competitionService,
		registrationService: registrationService,
	}
}

func (h *CompetitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.CreateCompetitionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competition, err := h.competitionService.Create(r.Context(), callerID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) List(w http.ResponseWriter, r *http.Request) {
	input := services.ListCompetitionsInput{}

	query := r.URL.Query()
	if sport := query.Get("sport"); sport != "" {
		input.Sport = &sport
	}
	if organizer := query.Get("organizer_id"); organizer != "" {
		id, err := strconv.Atoi(organizer)
		if err != nil || id <= 0 {
			badRequestResponse(w, r, strconvErr("organizer_id", organizer))
			return
		}
		input.OrganizerID = &id
	}
	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			badRequestResponse(w, r, strconvErr("limit", limit))
			return
		}
		input.Limit = n
	}
	if offset := query.Get("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			badRequestResponse(w, r, strconvErr("offset", offset))
			return
		}
		input.Offset = n
	}

	competitions, err := h.competitionService.List(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"competitions": competitions}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	competition, err := h.competitionService.GetByID(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"competition": competition}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Register files a registration for the calling team.
func (h *CompetitionHandler) Register(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	competitionID, err := getIDParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	registration, err := h.registrationService.Register(r.Context(), competitionID, callerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"registration": registration}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CompetitionHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	competitionID, err := getIDParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	registrations, err := h.registrationService.ListByCompetition(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"registrations": registrations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DecideRegistration lets the organizer approve or reject a team's
// registration, addressed by team.
func (h *CompetitionHandler) DecideRegistration(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetAccountIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}
	competitionID, err := getIDParam(r, "competitionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := getIDParam(r, "teamID")
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

	registration, err := h.registrationService.Decide(r.Context(), competitionID, teamID, models.ReviewStatus(input.Status), callerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"registration": registration}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
