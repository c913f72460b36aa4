package main

import (
	"api/database"
	"api/entities/activities"
	"api/entities/companies"
	"api/entities/contacts"
	"api/entities/dashboard"
	"api/entities/funnels"
	"api/entities/notes"
	"api/entities/opportunities"
	"api/entities/users"
	"api/middlewares"
	"api/utils"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	utils.LoadEnvVariables()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[ATENÇÃO] Rodando em ambiente de PRODUÇÃO!\033[0m\n")
	} else {
		log.Info().Str("env", env).Msg("ambiente atual")
	}

	if err := database.EnsureIndexes(); err != nil {
		log.Warn().Err(err).Msg("não foi possível garantir os índices do MongoDB")
	}

	mux := http.NewServeMux()

	mux.Handle("GET /v1/funnels", middlewares.Auth(http.HandlerFunc(funnels.GetAll)))
	mux.Handle("POST /v1/funnels", middlewares.Auth(http.HandlerFunc(funnels.CreateOne)))
	mux.Handle("POST /v1/funnels/default", middlewares.Auth(http.HandlerFunc(funnels.CreateDefault)))
	mux.Handle("GET /v1/funnels/{id}", middlewares.Auth(http.HandlerFunc(funnels.GetOne)))
	mux.Handle("PATCH /v1/funnels/{id}", middlewares.Auth(http.HandlerFunc(funnels.UpdateOne)))
	mux.Handle("DELETE /v1/funnels/{id}", middlewares.Auth(http.HandlerFunc(funnels.DeleteOne)))
	mux.Handle("PATCH /v1/funnels/{id}/default", middlewares.Auth(http.HandlerFunc(funnels.SetDefault)))
	mux.HandleFunc("/v1/ws/funnels", funnels.FunnelWebSocketHandler)

	mux.Handle("GET /v1/opportunities", middlewares.Auth(http.HandlerFunc(opportunities.GetAll)))
	mux.Handle("POST /v1/opportunities", middlewares.Auth(http.HandlerFunc(opportunities.CreateOne)))
	mux.Handle("GET /v1/opportunities/by-stage", middlewares.Auth(http.HandlerFunc(opportunities.GetByStage)))
	mux.Handle("POST /v1/opportunities/migrate", middlewares.Auth(http.HandlerFunc(opportunities.MigrateToDefaultFunnel)))
	mux.Handle("PATCH /v1/opportunities/{id}", middlewares.Auth(http.HandlerFunc(opportunities.UpdateOne)))
	mux.Handle("DELETE /v1/opportunities/{id}", middlewares.Auth(http.HandlerFunc(opportunities.DeleteOne)))
	mux.Handle("PATCH /v1/opportunities/{id}/stage", middlewares.Auth(http.HandlerFunc(opportunities.UpdateStageAndOrder)))

	mux.Handle("GET /v1/companies", middlewares.Auth(http.HandlerFunc(companies.GetAll)))
	mux.Handle("POST /v1/companies", middlewares.Auth(http.HandlerFunc(companies.CreateOne)))
	mux.Handle("GET /v1/companies/{id}", middlewares.Auth(http.HandlerFunc(companies.GetOne)))
	mux.Handle("PATCH /v1/companies/{id}", middlewares.Auth(http.HandlerFunc(companies.UpdateOne)))
	mux.Handle("DELETE /v1/companies/{id}", middlewares.Auth(http.HandlerFunc(companies.DeleteOne)))

	mux.Handle("GET /v1/contacts", middlewares.Auth(http.HandlerFunc(contacts.GetAll)))
	mux.Handle("POST /v1/contacts", middlewares.Auth(http.HandlerFunc(contacts.CreateOne)))
	mux.Handle("GET /v1/contacts/{id}", middlewares.Auth(http.HandlerFunc(contacts.GetOne)))
	mux.Handle("PATCH /v1/contacts/{id}", middlewares.Auth(http.HandlerFunc(contacts.UpdateOne)))
	mux.Handle("DELETE /v1/contacts/{id}", middlewares.Auth(http.HandlerFunc(contacts.DeleteOne)))

	mux.Handle("GET /v1/activities", middlewares.Auth(http.HandlerFunc(activities.GetAll)))
	mux.Handle("POST /v1/activities", middlewares.Auth(http.HandlerFunc(activities.CreateOne)))
	mux.Handle("PATCH /v1/activities/{id}", middlewares.Auth(http.HandlerFunc(activities.UpdateOne)))
	mux.Handle("DELETE /v1/activities/{id}", middlewares.Auth(http.HandlerFunc(activities.DeleteOne)))

	mux.Handle("GET /v1/notes", middlewares.Auth(http.HandlerFunc(notes.GetAll)))
	mux.Handle("POST /v1/notes", middlewares.Auth(http.HandlerFunc(notes.CreateOne)))
	mux.Handle("DELETE /v1/notes/{id}", middlewares.Auth(http.HandlerFunc(notes.DeleteOne)))

	mux.Handle("GET /v1/users", middlewares.Auth(http.HandlerFunc(users.GetAll)))
	mux.Handle("GET /v1/users/invalid", middlewares.Auth(http.HandlerFunc(users.GetInvalid)))
	mux.Handle("POST /v1/users/cleanup", middlewares.Auth(http.HandlerFunc(users.CleanupInvalid)))
	mux.Handle("GET /v1/users/stats", middlewares.Auth(http.HandlerFunc(users.GetStats)))

	mux.Handle("GET /v1/dashboard/stats", middlewares.Auth(http.HandlerFunc(dashboard.GetStats)))
	mux.Handle("GET /v1/dashboard/recent-activity", middlewares.Auth(http.HandlerFunc(dashboard.GetRecentActivity)))

	log.Info().Str("port", os.Getenv(utils.PORT)).Msg("servidor iniciado")
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.SecurityHeaders(middlewares.Cors(mux)))
}
