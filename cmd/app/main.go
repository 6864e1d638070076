package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/dlevine/gig-marketplace/pkg/config"
	"github.com/dlevine/gig-marketplace/pkg/handlers/gigs"
	"github.com/dlevine/gig-marketplace/pkg/handlers/payments"
	"github.com/dlevine/gig-marketplace/pkg/ledger"
	"github.com/dlevine/gig-marketplace/pkg/lifecycle"
	"github.com/dlevine/gig-marketplace/pkg/middleware"
	"github.com/dlevine/gig-marketplace/pkg/processor/omisepay"
	"github.com/dlevine/gig-marketplace/pkg/storage/postgres"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	store := postgres.New(db)

	// The processor client is constructed once here and injected; nothing
	// below holds a package-level client.
	proc, err := omisepay.New(cfg.OmisePublicKey, cfg.OmiseSecretKey)
	if err != nil {
		log.Fatalf("failed to create payment processor client: %v", err)
	}

	paymentLedger := ledger.New(store, proc, logger, cfg.Currency, cfg.PlatformFeeBps)
	controller := lifecycle.NewController(store, paymentLedger, logger)

	gigsHandler := gigs.NewGigsHandler(store, controller)
	paymentsHandler := payments.NewPaymentsHandler(store)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Route("/gigs", func(r chi.Router) {
		r.Post("/", gigsHandler.CreateGig)
		r.Get("/{gigID}", gigsHandler.GetGigById)
		r.Get("/{gigID}/payments", paymentsHandler.ListPaymentsByGig)
		r.Post("/{gigID}/accept", gigsHandler.AcceptOffer)
		r.Post("/{gigID}/decline", gigsHandler.DeclineOffer)
		r.Post("/{gigID}/status", gigsHandler.UpdateOfferStatus)
		r.Post("/{gigID}/start", gigsHandler.StartGig)
		r.Post("/{gigID}/complete", gigsHandler.RequestCompletion)
		r.Post("/{gigID}/confirm", gigsHandler.ConfirmCompletion)
	})

	log.Printf("Starting server on %s", cfg.HTTPAddr)

	if err := http.ListenAndServe(cfg.HTTPAddr, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
