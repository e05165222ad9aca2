package router

import (
	"net/http"

	"github.com/AlenaMolokova/cardcheck/internal/handlers"
	"github.com/AlenaMolokova/cardcheck/internal/middleware"
	"github.com/AlenaMolokova/cardcheck/internal/usecase"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	CardPrefix   = "/api/card"
	ValidatePath = "/validate"
	LuhnPath     = "/luhn"
	BrandsPath   = "/brands"
	PingPath     = "/ping"
)

func SetupRoutes(cardUC usecase.CardUseCase) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Get(PingPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route(CardPrefix, func(r chi.Router) {
		r.Post(ValidatePath, handlers.NewValidateHandler(cardUC).ServeHTTP)
		r.Post(LuhnPath, handlers.NewLuhnHandler(cardUC).ServeHTTP)
		r.Get(BrandsPath, handlers.NewBrandsHandler(cardUC).ServeHTTP)
	})

	return r
}
