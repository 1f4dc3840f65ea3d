package http

import (
	"net/http"

	"betak-backend/internal/config"
	"betak-backend/internal/security"
	"betak-backend/internal/service"
	"betak-backend/internal/storage"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Services bundles the service layer for route registration.
type Services struct {
	Auth     service.AuthService
	User     service.UserService
	Property service.PropertyService
	Amenity  service.AmenityService
	Rental   service.RentalService
	Contact  service.ContactService
	Payment  service.PaymentService
}

// NewRouter builds the full route table. Public routes carry only the rate
// limit; authenticated routes add bearer-token validation, and admin routes
// the role gate on top.
func NewRouter(cfg *config.Config, svcs Services, tokens security.TokenManager, files storage.Storage) *mux.Router {
	maxMB := cfg.Storage.MaxFileSize

	authHandler := NewAuthHandler(svcs.Auth, files, maxMB)
	userHandler := NewUserHandler(svcs.User, files, maxMB)
	propertyHandler := NewPropertyHandler(svcs.Property, files, maxMB)
	amenityHandler := NewAmenityHandler(svcs.Amenity)
	rentalHandler := NewRentalHandler(svcs.Rental, files, maxMB)
	contactHandler := NewContactHandler(svcs.Contact)
	stripeHandler := NewStripeHandler(svcs.Payment, cfg.Stripe.WebhookSecret)
	uploadHandler := NewUploadHandler(files, maxMB)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(RateLimitMiddleware(rate.Limit(10), 30))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/properties", propertyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id:[0-9]+}", propertyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id:[0-9]+}/occupied", rentalHandler.Occupied).Methods(http.MethodGet)
	api.HandleFunc("/amenities", amenityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/contact", contactHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/stripe/webhook", stripeHandler.Webhook).Methods(http.MethodPost)
	api.HandleFunc("/uploads/{key}", uploadHandler.Download).Methods(http.MethodGet)

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))
	authed.HandleFunc("/rental", rentalHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/rental/my-rentals", rentalHandler.MyRentals).Methods(http.MethodGet)
	authed.HandleFunc("/rental/{id:[0-9]+}/complete", rentalHandler.Complete).Methods(http.MethodPut)
	authed.HandleFunc("/user/me", userHandler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/user/favorites", userHandler.AddFavorite).Methods(http.MethodPost)
	authed.HandleFunc("/user/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/user/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/stripe/user-transactions/{userId:[0-9]+}", stripeHandler.ListTransactions).Methods(http.MethodGet)
	authed.HandleFunc("/uploads", uploadHandler.Upload).Methods(http.MethodPost)

	// Admin
	admin := api.NewRoute().Subrouter()
	admin.Use(AuthMiddleware(tokens), RequireAdmin)
	admin.HandleFunc("/rental", rentalHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/rental/{id:[0-9]+}/status", rentalHandler.SetStatus).Methods(http.MethodPut)
	admin.HandleFunc("/rental/{id:[0-9]+}", rentalHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/properties", propertyHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/properties/{id:[0-9]+}", propertyHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/properties/{id:[0-9]+}", propertyHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/properties/{id:[0-9]+}/images", propertyHandler.RemoveImage).Methods(http.MethodDelete)
	admin.HandleFunc("/amenities", amenityHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/amenities/{id:[0-9]+}", amenityHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/amenities/{id:[0-9]+}", amenityHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/user/all-users", userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/contact", contactHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id:[0-9]+}", contactHandler.Delete).Methods(http.MethodDelete)

	return r
}
