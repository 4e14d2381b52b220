package services

import (
	"testing"
	"time"

	"project/models"
	"project/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHotelRepository is a mock type for the HotelRepository interface
type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) ExistsByID(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHotelRepository) FindByID(id uint) (*models.Hotel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Create(hotel *models.Hotel) error {
	args := m.Called(hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRepository is a mock type for the BookingRepository interface
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindOverlapping(hotelID uint, roomNumber string, checkIn, checkOut time.Time) ([]models.Booking, error) {
	args := m.Called(hotelID, roomNumber, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(id uint) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByHotelID(hotelID uint) ([]models.Booking, error) {
	args := m.Called(hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Save(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

// InTransaction runs the closure against the mock itself; tests exercise the
// logic, not the store's transaction machinery.
func (m *MockBookingRepository) InTransaction(fn func(repository.BookingRepository) error) error {
	return fn(m)
}

func futureDate(days int) time.Time {
	return NormalizeDate(time.Now().AddDate(0, 0, days))
}

func newBookingService() (*MockBookingRepository, *MockHotelRepository, BookingService) {
	bookingRepo := new(MockBookingRepository)
	hotelRepo := new(MockHotelRepository)
	return bookingRepo, hotelRepo, NewBookingService(bookingRepo, hotelRepo)
}

func TestCheckAvailability_RoomFree(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(1), futureDate(5)).
		Return([]models.Booking{}, nil)

	result, err := svc.CheckAvailability(1, "301", futureDate(1), futureDate(5))

	assert.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, "Room is available", result.Message)
	bookingRepo.AssertExpectations(t)
}

func TestCheckAvailability_RoomTaken(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(2), futureDate(4)).
		Return([]models.Booking{{ID: 7, RoomNumber: "301"}}, nil)

	result, err := svc.CheckAvailability(1, "301", futureDate(2), futureDate(4))

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, "Room is not available for selected dates", result.Message)
}

func TestCheckAvailability_HotelNotFound(t *testing.T) {
	_, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(99)).Return(false, nil)

	_, err := svc.CheckAvailability(99, "301", futureDate(1), futureDate(5))

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCheckAvailability_BadDateOrder(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)

	// Equal dates are an empty half-open range, so they fail too.
	_, err := svc.CheckAvailability(1, "301", futureDate(3), futureDate(3))

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	bookingRepo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(1), futureDate(5)).
		Return([]models.Booking{}, nil)
	bookingRepo.On("Save", mock.AnythingOfType("*models.Booking")).Return(nil)

	booking, err := svc.CreateBooking(CreateBookingInput{
		HotelID:      1,
		GuestName:    "Alice Johnson",
		GuestEmail:   "alice@email.com",
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(5),
		RoomNumber:   "301",
		TotalAmount:  decimal.NewFromFloat(600.00),
	})

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.NotNil(t, booking.ConfirmedAt)
	assert.NotEmpty(t, booking.Reference)
	assert.True(t, booking.CheckInDate.Equal(futureDate(1)))
	assert.True(t, booking.CheckOutDate.Equal(futureDate(5)))
	bookingRepo.AssertExpectations(t)
}

func TestCreateBooking_RoomUnavailable(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(2), futureDate(4)).
		Return([]models.Booking{{ID: 5, RoomNumber: "301", CheckInDate: futureDate(1), CheckOutDate: futureDate(5)}}, nil)

	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:      1,
		GuestName:    "Bob Smith",
		CheckInDate:  futureDate(2),
		CheckOutDate: futureDate(4),
		RoomNumber:   "301",
	})

	assert.Error(t, err)
	assert.True(t, IsRoomUnavailable(err))
	assert.False(t, IsValidation(err), "a range conflict is not a validation failure")
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestCreateBooking_AdjacentRangeIsFree(t *testing.T) {
	// Half-open ranges: a booking for [+1,+5) does not block [+5,+7).
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(5), futureDate(7)).
		Return([]models.Booking{}, nil)
	bookingRepo.On("Save", mock.AnythingOfType("*models.Booking")).Return(nil)

	booking, err := svc.CreateBooking(CreateBookingInput{
		HotelID:      1,
		GuestName:    "Carol White",
		CheckInDate:  futureDate(5),
		CheckOutDate: futureDate(7),
		RoomNumber:   "301",
	})

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestCreateBooking_PastCheckIn(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)

	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:      1,
		GuestName:    "Alice Johnson",
		CheckInDate:  futureDate(-1),
		CheckOutDate: futureDate(2),
		RoomNumber:   "301",
	})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	bookingRepo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_CheckInTodayAllowed(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindOverlapping", uint(1), "101", futureDate(0), futureDate(1)).
		Return([]models.Booking{}, nil)
	bookingRepo.On("Save", mock.AnythingOfType("*models.Booking")).Return(nil)

	_, err := svc.CreateBooking(CreateBookingInput{
		HotelID:      1,
		GuestName:    "Walk-in Guest",
		CheckInDate:  futureDate(0),
		CheckOutDate: futureDate(1),
		RoomNumber:   "101",
	})

	assert.NoError(t, err)
}

func TestModifyBooking_NotFound(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	bookingRepo.On("FindByID", uint(42)).Return(nil, nil)

	_, err := svc.ModifyBooking(42, ModifyBookingInput{})

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestModifyBooking_GuestOnlySkipsOverlapCheck(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	existing := &models.Booking{
		ID: 10, HotelID: 1, RoomNumber: "301",
		GuestName:   "Old Name",
		CheckInDate: futureDate(1), CheckOutDate: futureDate(5),
		Status: models.BookingStatusConfirmed,
	}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
	bookingRepo.On("Save", existing).Return(nil)

	newName := "New Name"
	booking, err := svc.ModifyBooking(10, ModifyBookingInput{GuestName: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", booking.GuestName)
	bookingRepo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestModifyBooking_UnchangedDatesSkipOverlapCheck(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	checkIn, checkOut := futureDate(1), futureDate(5)
	existing := &models.Booking{
		ID: 10, HotelID: 1, RoomNumber: "301",
		CheckInDate: checkIn, CheckOutDate: checkOut,
		Status: models.BookingStatusConfirmed,
	}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
	bookingRepo.On("Save", existing).Return(nil)

	_, err := svc.ModifyBooking(10, ModifyBookingInput{CheckInDate: &checkIn, CheckOutDate: &checkOut})

	assert.NoError(t, err)
	bookingRepo.AssertNotCalled(t, "FindOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestModifyBooking_DateChangeConflict(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	existing := &models.Booking{
		ID: 10, HotelID: 1, RoomNumber: "301",
		CheckInDate: futureDate(1), CheckOutDate: futureDate(5),
		Status: models.BookingStatusConfirmed,
	}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(2), futureDate(6)).
		Return([]models.Booking{{ID: 11, RoomNumber: "301"}}, nil)

	newIn, newOut := futureDate(2), futureDate(6)
	_, err := svc.ModifyBooking(10, ModifyBookingInput{CheckInDate: &newIn, CheckOutDate: &newOut})

	assert.Error(t, err)
	assert.True(t, IsRoomUnavailable(err))
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestModifyBooking_OwnBookingExcludedFromConflict(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	existing := &models.Booking{
		ID: 10, HotelID: 1, RoomNumber: "301",
		CheckInDate: futureDate(1), CheckOutDate: futureDate(5),
		Status: models.BookingStatusConfirmed,
	}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
	// The stored range still overlaps the new one, so the query returns the
	// booking being modified; it must not conflict with itself.
	bookingRepo.On("FindOverlapping", uint(1), "301", futureDate(2), futureDate(6)).
		Return([]models.Booking{*existing}, nil)
	bookingRepo.On("Save", existing).Return(nil)

	newIn, newOut := futureDate(2), futureDate(6)
	booking, err := svc.ModifyBooking(10, ModifyBookingInput{CheckInDate: &newIn, CheckOutDate: &newOut})

	assert.NoError(t, err)
	assert.True(t, booking.CheckInDate.Equal(futureDate(2)))
	assert.True(t, booking.CheckOutDate.Equal(futureDate(6)))
}

func TestModifyBooking_InvalidStatus(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	existing := &models.Booking{ID: 10, HotelID: 1, Status: models.BookingStatusConfirmed}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)

	bad := "TELEPORTED"
	_, err := svc.ModifyBooking(10, ModifyBookingInput{Status: &bad})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestModifyBooking_StatusParsedCaseInsensitively(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	existing := &models.Booking{ID: 10, HotelID: 1, Status: models.BookingStatusConfirmed}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
	bookingRepo.On("Save", existing).Return(nil)

	status := "checked_in"
	booking, err := svc.ModifyBooking(10, ModifyBookingInput{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCheckedIn, booking.Status)
}

func TestCancelBooking_Success(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	existing := &models.Booking{ID: 10, Status: models.BookingStatusConfirmed}
	bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
	bookingRepo.On("Save", existing).Return(nil)

	err := svc.CancelBooking(10)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, existing.Status)
}

func TestCancelBooking_AnyStatusIsCancellable(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.BookingStatusCheckedOut,
		models.BookingStatusCancelled,
	} {
		bookingRepo, _, svc := newBookingService()
		existing := &models.Booking{ID: 10, Status: status}
		bookingRepo.On("FindByID", uint(10)).Return(existing, nil)
		bookingRepo.On("Save", existing).Return(nil)

		err := svc.CancelBooking(10)

		assert.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, existing.Status)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	bookingRepo, _, svc := newBookingService()

	bookingRepo.On("FindByID", uint(404)).Return(nil, nil)

	err := svc.CancelBooking(404)

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetBookingsByHotel_Success(t *testing.T) {
	bookingRepo, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(1)).Return(true, nil)
	bookingRepo.On("FindByHotelID", uint(1)).Return([]models.Booking{{ID: 2}, {ID: 1}}, nil)

	bookings, err := svc.GetBookingsByHotel(1)

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, uint(2), bookings[0].ID, "newest booking comes first")
}

func TestGetBookingsByHotel_HotelNotFound(t *testing.T) {
	_, hotelRepo, svc := newBookingService()

	hotelRepo.On("ExistsByID", uint(99)).Return(false, nil)

	_, err := svc.GetBookingsByHotel(99)

	assert.Error(t, err)
	assert.True(t, IsNotFound(err))
}
