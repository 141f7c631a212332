package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kalimuthu765/sports-connect/handlers"
	"github.com/kalimuthu765/sports-connect/middleware"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	teamHandler *handlers.TeamHandler,
	competitionHandler *handlers.CompetitionHandler,
	matchHandler *handlers.MatchHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Post("/auth/signup", authHandler.Signup)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/accounts", func(r chi.Router) {
		r.Get("/{accountID}", accountHandler.GetByID)
		r.Get("/{accountID}/followers", accountHandler.Followers)
		r.Get("/{accountID}/following", accountHandler.Following)
		r.Get("/{accountID}/stats", accountHandler.ListMatchStats)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/me", accountHandler.Me)
			r.Patch("/me", accountHandler.UpdateProfile)
			r.Put("/me/avatar", accountHandler.UploadAvatar)
			r.Delete("/me/team", accountHandler.LeaveTeam)
			r.Post("/me/stats", accountHandler.AddMatchStat)
			r.Get("/me/recommendations", accountHandler.Recommendations)
			r.Post("/{accountID}/follow", accountHandler.Follow)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Get("/{teamID}/roster", teamHandler.Roster)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/roster", teamHandler.AddToRoster)
			r.Delete("/roster/{playerID}", teamHandler.RemoveFromRoster)
			r.Post("/{teamID}/join-requests", teamHandler.RequestToJoin)
			r.Get("/{teamID}/join-requests", teamHandler.ListJoinRequests)
			r.Patch("/{teamID}/join-requests/{requestID}", teamHandler.DecideJoinRequest)
		})
	})

	router.Route("/competitions", func(r chi.Router) {
		r.Get("/", competitionHandler.List)
		r.Get("/{competitionID}", competitionHandler.GetByID)
		r.Get("/{competitionID}/registrations", competitionHandler.ListRegistrations)
		r.Get("/{competitionID}/matches", matchHandler.List)
		r.Get("/{competitionID}/matches/{matchID}", matchHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", competitionHandler.Create)
			r.Post("/{competitionID}/registrations", competitionHandler.Register)
			r.Patch("/{competitionID}/registrations/{teamID}", competitionHandler.DecideRegistration)
			r.Post("/{competitionID}/matches", matchHandler.Create)
			r.Patch("/{competitionID}/matches/{matchID}/score", matchHandler.UpdateScore)
			r.Patch("/{competitionID}/matches/{matchID}/status", matchHandler.UpdateStatus)
		})
	})

	router.Get("/ws/matches/{matchID}", webSocketHandler.ServeMatch)
}
