package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seiwa/repasse-api/internal/application/auth"
	"github.com/seiwa/repasse-api/internal/application/usecase"
	"github.com/seiwa/repasse-api/pkg/config"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	DoctorUC         *usecase.DoctorUseCase
	HospitalUC       *usecase.HospitalUseCase
	DoctorHospitalUC *usecase.DoctorHospitalUseCase
	ProductionUC     *usecase.ProductionUseCase
	RepasseUC        *usecase.RepasseUseCase
	JWTSecret        string
	Scope            config.ScopeConfig
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/signup", authHandler.SignUp)
	api.Post("/signin", authHandler.SignIn)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuário autenticado
	userHandler := NewUserHandler()
	protected.Get("/user/me", userHandler.Me)

	// Doctors (protegido)
	doctors := protected.Group("/doctors")
	doctorHandler := NewDoctorHandler(deps.DoctorUC, deps.Scope.Doctors)
	doctors.Post("/", doctorHandler.Create)
	doctors.Get("/", doctorHandler.List)
	doctors.Get("/:id", doctorHandler.GetByID)
	doctors.Put("/:id", doctorHandler.Update)
	doctors.Delete("/:id", doctorHandler.Delete)

	// Hospitals (protegido)
	hospitals := protected.Group("/hospitals")
	hospitalHandler := NewHospitalHandler(deps.HospitalUC, deps.Scope.Hospitals)
	hospitals.Post("/", hospitalHandler.Create)
	hospitals.Get("/", hospitalHandler.List)
	hospitals.Get("/:id", hospitalHandler.GetByID)
	hospitals.Put("/:id", hospitalHandler.Update)
	hospitals.Delete("/:id", hospitalHandler.Delete)

	// Vínculos médico↔hospital (protegido)
	linkHandler := NewDoctorHospitalHandler(deps.DoctorHospitalUC)
	doctors.Post("/:id/hospitals/:hospital_id", linkHandler.Assign)
	doctors.Delete("/:id/hospitals/:hospital_id", linkHandler.Remove)
	doctors.Get("/:id/hospitals", linkHandler.HospitalsByDoctor)
	hospitals.Get("/:id/doctors", linkHandler.DoctorsByHospital)

	// Productions (protegido). Sub-rotas literais antes de /:id para não colidir.
	productions := protected.Group("/productions")
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.Scope.Productions)
	productions.Post("/", productionHandler.Create)
	productions.Get("/", productionHandler.List)
	productions.Get("/doctor/:doctor_id", productionHandler.ListByDoctor)
	productions.Get("/hospital/:hospital_id", productionHandler.ListByHospital)
	productions.Get("/:id", productionHandler.GetByID)
	productions.Put("/:id", productionHandler.Update)
	productions.Delete("/:id", productionHandler.Delete)

	// Repasses (protegido)
	repasses := protected.Group("/repasses")
	repasseHandler := NewRepasseHandler(deps.RepasseUC, deps.Scope.Repasses)
	repasses.Post("/", repasseHandler.Create)
	repasses.Get("/", repasseHandler.List)
	repasses.Get("/stats/:doctor_id", repasseHandler.Stats)
	repasses.Get("/production/:production_id", repasseHandler.ListByProduction)
	repasses.Get("/hospital/:hospital_id", repasseHandler.ListByHospital)
	repasses.Get("/:id", repasseHandler.GetByID)
	repasses.Put("/:id", repasseHandler.Update)
	repasses.Delete("/:id", repasseHandler.Delete)
}
