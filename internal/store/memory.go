package store

import (
	"sync"
	"time"

	"github.com/blushrz/salon-admin/internal/logger"
	"github.com/blushrz/salon-admin/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memoryDB is the shared state behind the in-memory repositories. It is a
// typed record set, not a query engine: every repository method works on the
// maps directly.
type memoryDB struct {
	mu sync.RWMutex

	salons        map[string]models.Salon
	services      map[string]models.Service
	staff         map[string]models.Staff
	bookings      map[string]models.Booking
	offers        map[string]models.Offer
	admins        map[string]models.Admin
	users         map[string]models.User
	payments      map[string]models.Payment
	notifications map[string]models.Notification
	webhookLogs   []models.WebhookLog
}

// NewMemoryRepositories builds the in-memory repository set seeded with
// development sample data. It backs the dev server and the test fixtures.
func NewMemoryRepositories(log *logger.Logger) *Repositories {
	db := &memoryDB{
		salons:        make(map[string]models.Salon),
		services:      make(map[string]models.Service),
		staff:         make(map[string]models.Staff),
		bookings:      make(map[string]models.Booking),
		offers:        make(map[string]models.Offer),
		admins:        make(map[string]models.Admin),
		users:         make(map[string]models.User),
		payments:      make(map[string]models.Payment),
		notifications: make(map[string]models.Notification),
	}
	db.seed()

	log.Debug().Msg("in-memory repositories seeded")

	return &Repositories{
		Salons:        &memorySalons{db: db},
		Services:      &memoryServices{db: db},
		Staff:         &memoryStaff{db: db},
		Bookings:      &memoryBookings{db: db},
		Offers:        &memoryOffers{db: db},
		Admins:        &memoryAdmins{db: db},
		Users:         &memoryUsers{db: db},
		Payments:      &memoryPayments{db: db},
		Notifications: &memoryNotifications{db: db},
	}
}

func newID() string { return uuid.NewString() }

// sameDay reports whether a and b fall on the same UTC calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// seed loads the sample data served before a real database is configured.
func (db *memoryDB) seed() {
	now := time.Now().UTC()

	glow := models.Salon{
		ID: "salon-1", Name: "Glow Beauty Lounge",
		Address: "12 Rose Street, Casablanca", Phone: "+212600000001",
		Email: "hello@glowlounge.ma", Status: models.StatusActive,
		WaitingTime: "15 min", HomeServiceAvailable: true,
		CreatedAt: now, UpdatedAt: now,
	}
	velvet := models.Salon{
		ID: "salon-2", Name: "Velvet Hair Studio",
		Address: "48 Palm Avenue, Rabat", Phone: "+212600000002",
		Email: "contact@velvethair.ma", Status: models.StatusActive,
		CreatedAt: now, UpdatedAt: now,
	}
	db.salons[glow.ID] = glow
	db.salons[velvet.ID] = velvet

	services := []models.Service{
		{ID: "service-1", SalonID: glow.ID, Name: "Classic Manicure", Price: 120, Duration: 45, Status: models.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ID: "service-2", SalonID: glow.ID, Name: "Facial Treatment", Price: 300, Duration: 60, Status: models.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ID: "service-3", SalonID: velvet.ID, Name: "Haircut & Styling", Price: 180, Duration: 40, Status: models.StatusActive, CreatedAt: now, UpdatedAt: now},
	}
	for _, s := range services {
		db.services[s.ID] = s
	}

	staff := []models.Staff{
		{ID: "staff-1", SalonID: glow.ID, Name: "Imane Berrada", Role: "Esthetician", Specialization: "Skincare", Status: models.StatusActive, CreatedAt: now, UpdatedAt: now},
		{ID: "staff-2", SalonID: velvet.ID, Name: "Sara Alaoui", Role: "Stylist", Specialization: "Color", Status: models.StatusActive, CreatedAt: now, UpdatedAt: now},
	}
	for _, m := range staff {
		db.staff[m.ID] = m
	}

	bookings := []models.Booking{
		{
			ID: "booking-1", SalonID: glow.ID, ServiceID: "service-1", StaffID: "staff-1",
			CustomerName: "Lina Tazi", CustomerPhone: "+212600000100",
			BookingDate: now.Add(24 * time.Hour), Status: models.BookingConfirmed,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "booking-2", SalonID: velvet.ID, ServiceID: "service-3", StaffID: "staff-2",
			CustomerName: "Nora Bennis", CustomerEmail: "nora@example.com",
			BookingDate: now.Add(48 * time.Hour), Status: models.BookingPending,
			CreatedAt: now, UpdatedAt: now,
		},
	}
	for _, b := range bookings {
		db.bookings[b.ID] = b
	}

	offer := models.Offer{
		ID: "offer-1", SalonID: glow.ID, Title: "Spring Glow",
		Description: "20% off facial treatments", DiscountPercentage: 20,
		StartDate: now.Add(-7 * 24 * time.Hour), EndDate: now.Add(14 * 24 * time.Hour),
		Status: models.StatusActive, CreatedAt: now, UpdatedAt: now,
	}
	db.offers[offer.ID] = offer

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := models.Admin{
		ID: "admin-1", Name: "Platform Admin", Email: "admin@blushrz.com",
		Role: models.RoleSuperAdmin, PasswordHash: string(hash),
	}
	staffAdmin := models.Admin{
		ID: "admin-2", Name: "Front Desk", Email: "desk@blushrz.com",
		Role: "staff", Permissions: []string{"bookings.view", "bookings.edit"},
		PasswordHash: string(hash),
	}
	db.admins[admin.ID] = admin
	db.admins[staffAdmin.ID] = staffAdmin

	user := models.User{
		ID: "user-1", Name: "Lina Tazi", Email: "lina@example.com",
		Phone: "+212600000100", Favorites: []string{glow.ID},
		CreatedAt: now, UpdatedAt: now,
	}
	db.users[user.ID] = user

	payment := models.Payment{
		ID: "payment-1", BookingID: "booking-1", Amount: 120,
		Status: models.PaymentCompleted, CustomerEmail: "lina@example.com",
		CreatedAt: now, UpdatedAt: now,
	}
	db.payments[payment.ID] = payment

	db.webhookLogs = append(db.webhookLogs, models.WebhookLog{
		ID: "webhook-1", PaymentID: payment.ID, Event: "payment.completed",
		Payload: `{"status":"succeeded"}`, ReceivedAt: now,
	})
}
