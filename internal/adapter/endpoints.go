package adapter

import "fmt"

// REST endpoints consumed by the admin dashboard, relative to the configured
// base URL.
const (
	epLogin   = "/auth/admin/login"
	epLogout  = "/auth/admin/logout"
	epRefresh = "/auth/admin/refresh"
	epMe      = "/auth/admin/me"

	epSalons        = "/admin/salons"
	epServices      = "/admin/services"
	epStaff         = "/admin/staff"
	epBookings      = "/admin/bookings"
	epBookingsByDay = "/admin/bookings/by-date"
	epUsers         = "/admin/users"
	epPayments      = "/admin/payments"
	epWebhookLogs   = "/admin/payments/webhook-logs"
	epNotifications = "/admin/notifications"
	epNotifySend    = "/admin/notifications/send"
	epOffers        = "/admin/offers"

	epAnalyticsOverview = "/admin/analytics/overview"
	epAnalyticsBookings = "/admin/analytics/bookings"
	epAnalyticsRevenue  = "/admin/analytics/revenue"
	epAnalyticsSalons   = "/admin/analytics/salons"
	epAnalyticsServices = "/admin/analytics/services"
	epAnalyticsUsers    = "/admin/analytics/users"
	epAnalyticsExport   = "/admin/analytics/export"
)

func epSalon(id string) string             { return fmt.Sprintf("%s/%s", epSalons, id) }
func epSalonStatus(id string) string       { return fmt.Sprintf("%s/%s/status", epSalons, id) }
func epSalonServices(id string) string     { return fmt.Sprintf("%s/%s/services", epSalons, id) }
func epSalonStaff(id string) string        { return fmt.Sprintf("%s/%s/staff", epSalons, id) }
func epSalonAvailability(id string) string { return fmt.Sprintf("%s/%s/availability", epSalons, id) }

func epService(id string) string       { return fmt.Sprintf("%s/%s", epServices, id) }
func epStaffMember(id string) string   { return fmt.Sprintf("%s/%s", epStaff, id) }
func epBooking(id string) string       { return fmt.Sprintf("%s/%s", epBookings, id) }
func epBookingStatus(id string) string { return fmt.Sprintf("%s/%s/status", epBookings, id) }
func epBookingsBySalon(id string) string {
	return fmt.Sprintf("%s/salon/%s", epBookings, id)
}

func epUser(id string) string          { return fmt.Sprintf("%s/%s", epUsers, id) }
func epUserFavorites(id string) string { return fmt.Sprintf("%s/%s/favorites", epUsers, id) }
func epPayment(id string) string       { return fmt.Sprintf("%s/%s", epPayments, id) }
func epPaymentRefund(id string) string { return fmt.Sprintf("%s/%s/refund", epPayments, id) }
func epNotification(id string) string  { return fmt.Sprintf("%s/%s", epNotifications, id) }
func epOffer(id string) string         { return fmt.Sprintf("%s/%s", epOffers, id) }
