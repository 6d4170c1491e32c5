package models

// AnalyticsOverview is the dashboard landing summary.
type AnalyticsOverview struct {
	TotalSalons       int     `json:"totalSalons"`
	ActiveSalons      int     `json:"activeSalons"`
	TotalBookings     int     `json:"totalBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalUsers        int     `json:"totalUsers"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// BookingsAnalytics breaks bookings down by status.
type BookingsAnalytics struct {
	Total    int `json:"total"`
	ByStatus map[BookingStatus]int `json:"byStatus"`
}

// RevenueAnalytics aggregates completed payments.
type RevenueAnalytics struct {
	Total    float64 `json:"total"`
	Refunded float64 `json:"refunded"`
	Payments int     `json:"payments"`
}

// SalonAnalytics ranks a single salon by booking volume.
type SalonAnalytics struct {
	SalonID  string `json:"salonId"`
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

// ServiceAnalytics ranks a single service by booking volume.
type ServiceAnalytics struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Bookings  int     `json:"bookings"`
	Revenue   float64 `json:"revenue"`
}

// UsersAnalytics summarizes the customer base.
type UsersAnalytics struct {
	Total int `json:"total"`
}
