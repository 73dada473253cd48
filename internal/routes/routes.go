package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/heritagecuts/barbershop-api/internal/config"
	domainGallery "github.com/heritagecuts/barbershop-api/internal/domain/gallery"
	"github.com/heritagecuts/barbershop-api/internal/handlers"
	"github.com/heritagecuts/barbershop-api/internal/identity"
	"github.com/heritagecuts/barbershop-api/internal/infra/cache"
	infraRepo "github.com/heritagecuts/barbershop-api/internal/infra/repository"
	"github.com/heritagecuts/barbershop-api/internal/infra/storage"
	"github.com/heritagecuts/barbershop-api/internal/middleware"
	"github.com/heritagecuts/barbershop-api/internal/notify"
	ucBooking "github.com/heritagecuts/barbershop-api/internal/usecase/booking"
	ucGallery "github.com/heritagecuts/barbershop-api/internal/usecase/gallery"
	ucLoyalty "github.com/heritagecuts/barbershop-api/internal/usecase/loyalty"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(db)
	galleryRepo := infraRepo.NewGalleryGormRepository(db)

	bucket := storage.NewBucket(cfg)
	listingCache := cache.NewListing(cache.NewRedisClient(cfg), 60*time.Second)

	webhooks := notify.NewDispatcher(cfg.BookingWebhookURL)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	listReferenceUC := ucBooking.NewListReference(bookingRepo)
	getSlotsUC := ucBooking.NewGetAvailableSlots(bookingRepo)
	nextSlotUC := ucBooking.NewGetNextAvailableSlot(bookingRepo)
	createAppointmentUC := ucBooking.NewCreateAppointment(bookingRepo, webhooks)

	// ======================================================
	// USE CASES — LOYALTY
	// ======================================================
	awardPointsUC := ucLoyalty.NewAwardPoints(loyaltyRepo)
	redeemPointsUC := ucLoyalty.NewRedeemPoints(loyaltyRepo)
	snapshotUC := ucLoyalty.NewGetSnapshot(loyaltyRepo)
	transactionsUC := ucLoyalty.NewListTransactions(loyaltyRepo)

	confirmUC := ucBooking.NewConfirmAppointment(bookingRepo)
	completeUC := ucBooking.NewCompleteAppointment(bookingRepo, awardPointsUC)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo)

	// ======================================================
	// USE CASES — GALLERY (fallback chain in fidelity order)
	// ======================================================
	loadImagesUC := ucGallery.NewLoadImages(
		ucGallery.NewMetadataSource(galleryRepo),
		ucGallery.NewBucketSource(bucket, listingCache),
		domainGallery.FixtureSource{},
	)
	uploadImageUC := ucGallery.NewUploadImage(galleryRepo, bucket)
	deleteImageUC := ucGallery.NewDeleteImage(galleryRepo, bucket)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		listReferenceUC,
		getSlotsUC,
		nextSlotUC,
		createAppointmentUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookingRepo,
		confirmUC,
		completeUC,
		cancelUC,
	)

	loyaltyHandler := handlers.NewLoyaltyHandler(
		snapshotUC,
		transactionsUC,
		redeemPointsUC,
	)

	galleryHandler := handlers.NewGalleryHandler(
		loadImagesUC,
		uploadImageUC,
		deleteImageUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers/:id/slots", publicHandler.AvailableSlots)
			publicAPI.GET("/barbers/:id/next-slot", publicHandler.NextAvailableSlot)

			publicAPI.POST(
				"/appointments",
				middleware.OptionalAuthMiddleware(cfg),
				publicHandler.CreateAppointment,
			)

			publicAPI.GET("/gallery", galleryHandler.List)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/appointments", appointmentHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/me/loyalty", loyaltyHandler.GetSnapshot)
			secured.GET("/me/loyalty/transactions", loyaltyHandler.ListTransactions)
			secured.POST("/me/loyalty/redeem", loyaltyHandler.Redeem)

			// ------------------------------
			// STAFF
			// ------------------------------
			staff := secured.Group("/appointments")
			staff.Use(middleware.RequireRoles(identity.RoleBarber, identity.RoleAdmin))
			{
				staff.PATCH("/:id/confirm", appointmentHandler.Confirm)
				staff.PATCH("/:id/complete", appointmentHandler.Complete)
				staff.PATCH("/:id/cancel", appointmentHandler.Cancel)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/gallery")
			admin.Use(middleware.RequireRoles(identity.RoleAdmin))
			{
				admin.POST("", galleryHandler.Upload)
				admin.DELETE("/:id", galleryHandler.Delete)
			}
		}
	}
}
