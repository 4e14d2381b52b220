package database

import (
	"log"
	"time"

	"project/models"
	"project/repository"
	"project/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates development fixtures: one hotel, its admin accounts, three
// room types, three upcoming bookings and a completed usage session. It is a
// no-op when hotels already exist, so restarts do not duplicate data.
func Seed(db *gorm.DB) error {
	hotelRepo := repository.NewHotelRepository(db)
	userRepo := repository.NewUserRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	usageRepo := repository.NewUsageRecordRepository(db)

	count, err := hotelRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("INFO: [Seeder] Database already seeded, skipping.")
		return nil
	}

	log.Println("INFO: [Seeder] Seeding development data...")

	hotel := &models.Hotel{
		Name:              "Grand Plaza Hotel",
		Address:           "123 Main Street, New York, NY 10001",
		Phone:             "+1-555-0100",
		Email:             "info@grandplaza.com",
		IsActive:          true,
		MonthlyTokenLimit: 100000,
	}
	if err := hotelRepo.Create(hotel); err != nil {
		return err
	}

	if err := seedUser(userRepo, "superadmin@example.com", "SuperAdmin123!", "System", "Administrator", models.RoleSuperAdmin, hotel.ID); err != nil {
		return err
	}
	if err := seedUser(userRepo, "admin@grandplaza.com", "HotelAdmin123!", "John", "Manager", models.RoleHotelAdmin, hotel.ID); err != nil {
		return err
	}

	roomTypes := []models.RoomType{
		{HotelID: hotel.ID, Name: "Standard", Description: "Comfortable room with city view", BasePrice: decimal.NewFromFloat(150.00), MaxOccupancy: 2, TotalRooms: 50, IsActive: true},
		{HotelID: hotel.ID, Name: "Deluxe", Description: "Spacious room with king bed and premium amenities", BasePrice: decimal.NewFromFloat(250.00), MaxOccupancy: 3, TotalRooms: 30, IsActive: true},
		{HotelID: hotel.ID, Name: "Suite", Description: "Luxury suite with separate living area", BasePrice: decimal.NewFromFloat(450.00), MaxOccupancy: 4, TotalRooms: 10, IsActive: true},
	}
	for i := range roomTypes {
		if err := roomTypeRepo.Create(&roomTypes[i]); err != nil {
			return err
		}
	}

	today := services.NormalizeDate(time.Now())
	seedBookings := []struct {
		guest, email, phone, room string
		inDays, outDays           int
		amount                    string
	}{
		{"Alice Johnson", "alice@email.com", "+1-555-0201", "101", 1, 3, "300.00"},
		{"Bob Smith", "bob@email.com", "+1-555-0202", "205", 5, 7, "500.00"},
		{"Carol White", "carol@email.com", "+1-555-0203", "301", 10, 14, "1800.00"},
	}
	for _, b := range seedBookings {
		amount, err := decimal.NewFromString(b.amount)
		if err != nil {
			return err
		}
		now := time.Now()
		booking := &models.Booking{
			HotelID:      hotel.ID,
			Reference:    uuid.NewString(),
			GuestName:    b.guest,
			GuestEmail:   b.email,
			GuestPhone:   b.phone,
			CheckInDate:  today.AddDate(0, 0, b.inDays),
			CheckOutDate: today.AddDate(0, 0, b.outDays),
			RoomNumber:   b.room,
			TotalAmount:  amount,
			Status:       models.BookingStatusConfirmed,
			ConfirmedAt:  &now,
		}
		if err := bookingRepo.Save(booking); err != nil {
			return err
		}
	}

	// One finished call so the usage dashboard has something to show.
	start := time.Now().Add(-10 * time.Minute)
	end := start.Add(4 * time.Minute)
	duration := int64(end.Sub(start) / time.Second)
	session := &models.UsageRecord{
		HotelID:         hotel.ID,
		SessionID:       uuid.NewString(),
		CallStartTime:   &start,
		CallEndTime:     &end,
		DurationSeconds: &duration,
		InputTokens:     820,
		OutputTokens:    430,
		TotalTokens:     1250,
		BookingAttempts: 1,
		Status:          models.UsageStatusCompleted,
	}
	if err := usageRepo.Save(session); err != nil {
		return err
	}

	log.Printf("INFO: [Seeder] Seeded hotel '%s' with %d room types and %d bookings.", hotel.Name, len(roomTypes), len(seedBookings))
	return nil
}

func seedUser(userRepo repository.UserRepository, email, password, first, last string, role models.UserRole, hotelID uint) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return userRepo.Create(&models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: first,
		LastName:  last,
		HotelID:   hotelID,
		Role:      role,
		IsActive:  true,
	})
}
