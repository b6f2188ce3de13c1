// Package mealaggregator предоставляет маршруты для основного приложения.
package mealaggregator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/auth/token"
	"github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/health"
	mealcreate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/create"
	meallike "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/like"
	meallist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/list"
	mealread "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/read"
	mealremove "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/remove"
	mealreviewcount "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/reviewcount"
	mealupdate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/meal/update"
	requestcreate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/mealrequest/create"
	requestdeliver "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/mealrequest/deliver"
	requestlist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/mealrequest/list"
	requestremove "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/mealrequest/remove"
	planlist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/membership/list"
	paymentintent "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/payment/intentcreate"
	paymentlist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/payment/list"
	paymentlistall "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/payment/listall"
	paymentrecord "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/payment/record"
	productioncreate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/production/create"
	productionlist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/production/list"
	reviewcreate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/review/create"
	reviewlist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/review/list"
	reviewread "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/review/read"
	reviewremove "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/review/remove"
	reviewupdate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/review/update"
	upcomingcreate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/upcoming/create"
	upcominglike "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/upcoming/like"
	upcominglist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/upcoming/list"
	useradminstatus "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/user/adminstatus"
	usercreate "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/user/list"
	userpromote "github.com/magabrotheeeer/meal-aggregator/internal/http/handlers/user/promote"
	"github.com/magabrotheeeer/meal-aggregator/internal/http/middlewarectx"
	appjwt "github.com/magabrotheeeer/meal-aggregator/internal/lib/jwt"
	mealrequestservice "github.com/magabrotheeeer/meal-aggregator/internal/services/mealrequest"
	mealservice "github.com/magabrotheeeer/meal-aggregator/internal/services/meal"
	membershipservice "github.com/magabrotheeeer/meal-aggregator/internal/services/membership"
	paymentservice "github.com/magabrotheeeer/meal-aggregator/internal/services/payment"
	reviewservice "github.com/magabrotheeeer/meal-aggregator/internal/services/review"
	userservice "github.com/magabrotheeeer/meal-aggregator/internal/services/user"
)

// Services агрегирует зависимости, необходимые для регистрации маршрутов.
type Services struct {
	TokenMaker   appjwt.Maker
	Users        *userservice.UserService
	Meals        *mealservice.MealService
	Reviews      *reviewservice.ReviewService
	MealRequests *mealrequestservice.RequestService
	Plans        *membershipservice.PlanService
	Payments     *paymentservice.PaymentService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/jwt", token.New(logger, s.TokenMaker).ServeHTTP)
		r.Post("/users", usercreate.New(logger, s.Users).ServeHTTP)
		r.Get("/meals", meallist.New(logger, s.Meals).ServeHTTP)
		r.Get("/meals/{id}", mealread.New(logger, s.Meals).ServeHTTP)
		r.Patch("/meals/{id}/review-count", mealreviewcount.New(logger, s.Meals).ServeHTTP)
		r.Get("/upcoming-meals", upcominglist.New(logger, s.Meals).ServeHTTP)
		r.Get("/reviews", reviewlist.New(logger, s.Reviews).ServeHTTP)
		r.Get("/reviews/{id}", reviewread.New(logger, s.Reviews).ServeHTTP)
		r.Get("/production-meals", productionlist.New(logger, s.Meals).ServeHTTP)
		r.Get("/plans", planlist.New(logger, s.Plans).ServeHTTP)
		r.Get("/plans/{name}", planlist.New(logger, s.Plans).ServeHTTP)
		r.Post("/create-payment-intent", paymentintent.New(logger, s.Payments).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.TokenMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Patch("/meals/{id}/likes", meallike.New(logger, s.Meals).ServeHTTP)
			r.Patch("/upcoming-meals/{id}/likes", upcominglike.New(logger, s.Meals).ServeHTTP)
			r.Post("/reviews", reviewcreate.New(logger, s.Reviews).ServeHTTP)
			r.Patch("/reviews/{id}", reviewupdate.New(logger, s.Reviews).ServeHTTP)
			r.Delete("/reviews/{id}", reviewremove.New(logger, s.Reviews).ServeHTTP)
			r.Post("/meal-requests", requestcreate.New(logger, s.MealRequests).ServeHTTP)
			r.Get("/meal-requests", requestlist.New(logger, s.MealRequests).ServeHTTP)
			r.Delete("/meal-requests/{id}", requestremove.New(logger, s.MealRequests).ServeHTTP)
			r.Post("/payments", paymentrecord.New(logger, s.Payments).ServeHTTP)

			// Конечные точки, доступные только владельцу данных
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.OwnerMiddleware(logger))
				r.Get("/users/admin/{email}", useradminstatus.New(logger, s.Users).ServeHTTP)
				r.Get("/payments/{email}", paymentlist.New(logger, s.Payments).ServeHTTP)
			})

			// Конечные точки администратора
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger, s.Users))
				r.Get("/users", userlist.New(logger, s.Users).ServeHTTP)
				r.Patch("/users/admin/{id}", userpromote.New(logger, s.Users).ServeHTTP)
				r.Post("/meals", mealcreate.New(logger, s.Meals).ServeHTTP)
				r.Put("/meals/{id}", mealupdate.New(logger, s.Meals).ServeHTTP)
				r.Delete("/meals/{id}", mealremove.New(logger, s.Meals).ServeHTTP)
				r.Post("/upcoming-meals", upcomingcreate.New(logger, s.Meals).ServeHTTP)
				r.Post("/production-meals", productioncreate.New(logger, s.Meals).ServeHTTP)
				r.Patch("/meal-requests/{id}/deliver", requestdeliver.New(logger, s.MealRequests).ServeHTTP)
				r.Get("/payments", paymentlistall.New(logger, s.Payments).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
