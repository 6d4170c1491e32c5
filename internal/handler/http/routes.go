package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/admin/login", h.login)
		r.Post("/auth/admin/refresh", h.refresh)
	})

	// everything below requires a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/admin/logout", h.logout)
		r.Get("/auth/admin/me", h.me)

		r.Route("/admin", func(r chi.Router) {
			r.Route("/salons", func(r chi.Router) {
				r.Get("/", h.listSalons)
				r.Post("/", h.createSalon)
				r.Get("/{id}", h.getSalon)
				r.Put("/{id}", h.updateSalon)
				r.Delete("/{id}", h.deleteSalon)
				r.Put("/{id}/status", h.updateSalonStatus)
				r.Get("/{id}/services", h.salonServices)
				r.Get("/{id}/staff", h.salonStaff)
				r.Get("/{id}/availability", h.salonAvailability)
			})

			r.Route("/services", func(r chi.Router) {
				r.Get("/", h.listServices)
				r.Post("/", h.createService)
				r.Get("/{id}", h.getService)
				r.Put("/{id}", h.updateService)
				r.Delete("/{id}", h.deleteService)
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.listStaff)
				r.Post("/", h.createStaffMember)
				r.Get("/{id}", h.getStaffMember)
				r.Put("/{id}", h.updateStaffMember)
				r.Delete("/{id}", h.deleteStaffMember)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", h.listBookings)
				r.Post("/", h.createBooking)
				r.Get("/by-date", h.bookingsByDate)
				r.Get("/salon/{id}", h.bookingsBySalon)
				r.Get("/{id}", h.getBooking)
				r.Put("/{id}", h.updateBooking)
				r.Delete("/{id}", h.deleteBooking)
				r.Put("/{id}/status", h.updateBookingStatus)
			})

			r.Route("/offers", func(r chi.Router) {
				r.Get("/", h.listOffers)
				r.Post("/", h.createOffer)
				r.Get("/{id}", h.getOffer)
				r.Put("/{id}", h.updateOffer)
				r.Delete("/{id}", h.deleteOffer)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Get("/{id}/favorites", h.userFavorites)
			})

			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.listPayments)
				r.Get("/webhook-logs", h.webhookLogs)
				r.Get("/{id}", h.getPayment)
				r.Post("/{id}/refund", h.refundPayment)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.listNotifications)
				r.Post("/", h.createNotification)
				r.Post("/send", h.sendNotification)
				r.Put("/{id}", h.updateNotification)
				r.Delete("/{id}", h.deleteNotification)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/overview", h.analyticsOverview)
				r.Get("/bookings", h.analyticsBookings)
				r.Get("/revenue", h.analyticsRevenue)
				r.Get("/salons", h.analyticsSalons)
				r.Get("/services", h.analyticsServices)
				r.Get("/users", h.analyticsUsers)
				r.Get("/export", h.analyticsExport)
			})
		})
	})

	return router
}
