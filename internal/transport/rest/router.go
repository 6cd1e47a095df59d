package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/asset-tracker/internal/asset"
	"github.com/frahmantamala/asset-tracker/internal/category"
	"github.com/frahmantamala/asset-tracker/internal/clearance"
	"github.com/frahmantamala/asset-tracker/internal/employee"
	"github.com/frahmantamala/asset-tracker/internal/transport/middleware"
	"github.com/frahmantamala/asset-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, assetHandler *asset.Handler, categoryHandler *category.Handler, employeeHandler *employee.Handler, clearanceHandler *clearance.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.ActorContext)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if assetHandler != nil {
			r.Route("/assets", func(ar chi.Router) {
				ar.Get("/", assetHandler.ListAssets)       // GET /assets
				ar.Get("/count", assetHandler.CountAssets) // GET /assets/count
				ar.Post("/add", assetHandler.AddAsset)     // POST /assets/add
				ar.Get("/{code}", assetHandler.GetAsset)   // GET /assets/:code
			})

			r.Post("/assign", assetHandler.Assign)
			r.Post("/return", assetHandler.Return)

			r.Route("/repair", func(rr chi.Router) {
				rr.Post("/", assetHandler.SendToRepair)
				rr.Post("/complete", assetHandler.CompleteRepair)
				rr.Get("/list", assetHandler.RepairList)
			})

			r.Route("/missing", func(mr chi.Router) {
				mr.Post("/", assetHandler.MarkMissing)
				mr.Post("/recover", assetHandler.RecoverMissing)
			})

			r.Post("/retire", assetHandler.Retire)
		}

		if categoryHandler != nil {
			r.Route("/categories", func(cr chi.Router) {
				cr.Get("/", categoryHandler.GetCategories)
				cr.Post("/add", categoryHandler.AddCategory)
				cr.Post("/check-duplicate", categoryHandler.CheckDuplicate)
			})
		}

		if employeeHandler != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.GetEmployees)
				er.Post("/add", employeeHandler.AddEmployee)
				er.Post("/deactivate", employeeHandler.Deactivate)
				er.Get("/{employee_id}/assets", employeeHandler.ActiveAssets)
			})
		}

		if clearanceHandler != nil {
			r.Route("/exit-clearance", func(xr chi.Router) {
				xr.Get("/{employee_id}", clearanceHandler.Check)
				xr.Post("/approve", clearanceHandler.Approve)
			})
		}
	})
}
