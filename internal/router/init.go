package router

import (
	"github.com/savelife-bd/savelife-server/internal/application"
	"github.com/savelife-bd/savelife-server/internal/container"
	"github.com/savelife-bd/savelife-server/internal/infrastructure/mongodb"
	handlers "github.com/savelife-bd/savelife-server/internal/interface/http"
	"github.com/savelife-bd/savelife-server/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetMongoDB()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := mongodb.NewUserRepository(db)
	donationRepo := mongodb.NewDonationRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	userSvc := application.NewUserService(userRepo, container.GetGCS(), cfg.GCSBucket, logger)
	donationSvc := application.NewDonationService(donationRepo, userRepo, logger)
	paymentSvc := application.NewPaymentService(container.GetGateway(), paymentRepo, container.GetReceiptPub(), logger)

	verifier := container.GetVerifier()

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), verifier, container.GetRedis()))
	r.Add(modules.NewDonationModule(handlers.NewDonationHandler(donationSvc, logger), verifier))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger), container.GetRedis()))
}
