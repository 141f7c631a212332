package services

import "errors"

// Shared errors used across services and HTTP mapping.
var (
	// Not-found family
	ErrAccountNotFound     = errors.New("account not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrPlayerNotFound      = errors.New("player not found or email is incorrect")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrJoinRequestNotFound  = errors.New("join request not found")
	ErrMatchNotFound        = errors.New("match not found")

	// Validation and business rules
	ErrValidationFailed  = errors.New("validation failed")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrInvalidRole       = errors.New("invalid account role")
	ErrUnknownSport      = errors.New("unknown sport")
	ErrInvalidSportRole  = errors.New("sport role is not valid for the selected sport")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrTwoTeamsRequired  = errors.New("exactly two teams are required")
	ErrTeamNotApproved   = errors.New("team does not hold an approved registration in this competition")
	ErrSelfFollow        = errors.New("cannot follow yourself")
	ErrAlreadyOnTeam     = errors.New("player is already on a team")

	// Idempotency guards
	ErrAlreadyRegistered  = errors.New("team is already registered for this competition")
	ErrRequestAlreadySent = errors.New("join request already sent")

	// Conflicts
	ErrEmailTaken = errors.New("email address is already in use")

	// Authentication and authorization
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrOperationForbidden       = errors.New("operation not allowed for the current account")
	ErrOnlyTeamsCanRegister     = errors.New("only teams can register for a competition")
	ErrOnlyPlayersCanRequest    = errors.New("only players can send join requests")
	ErrOnlyTeamsCanManageRoster = errors.New("only teams can manage rosters")
	ErrOnlyOrganizerAllowed     = errors.New("only the competition organizer can perform this action")
	ErrOnlyPlayersHaveStats     = errors.New("only players can record match stats")
)
