package validate

import (
	"testing"

	"cinebooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() domain.User {
	return domain.User{
		Name:     "Ann",
		LastName: "Lee",
		Email:    "ann@x.com",
		CreditCard: domain.CreditCard{
			Number:   "4242424242424242",
			CVC:      "123",
			ExpMonth: 12,
			ExpYear:  2030,
		},
	}
}

func validBooking() domain.BookingRequest {
	return domain.BookingRequest{
		City:        "CDMX",
		Cinema:      "Plaza Central",
		CinemaRoom:  "Room 1",
		Movie:       domain.Movie{Title: "Dune", Format: "IMAX"},
		Schedule:    "2024-05-01T19:00",
		Seats:       []string{"A1", "A2"},
		TotalAmount: 250,
	}
}

func TestValidate_User(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validUser(), SchemaUser))
}

func TestValidate_Booking(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(validBooking(), SchemaBooking))
}

func TestValidate_NegativeAmount(t *testing.T) {
	v := New()
	booking := validBooking()
	booking.TotalAmount = -5

	err := v.Validate(booking, SchemaBooking)
	require.Error(t, err)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, SchemaBooking, ve.Schema)
	assert.Equal(t, "totalAmount", ve.Field)
}

func TestValidate_EmptySeats(t *testing.T) {
	v := New()
	booking := validBooking()
	booking.Seats = nil

	err := v.Validate(booking, SchemaBooking)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "seats", ve.Field)
}

func TestValidate_DuplicateSeats(t *testing.T) {
	v := New()
	booking := validBooking()
	booking.Seats = []string{"A1", "A1"}

	err := v.Validate(booking, SchemaBooking)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "seats", ve.Field)
}

func TestValidate_MalformedEmail(t *testing.T) {
	v := New()
	user := validUser()
	user.Email = "not-an-email"

	err := v.Validate(user, SchemaUser)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
}

func TestValidate_UnknownSchema(t *testing.T) {
	v := New()
	err := v.Validate(validUser(), "cinema")
	assert.Error(t, err)
}

func TestValidate_WrongPayloadType(t *testing.T) {
	v := New()
	err := v.Validate(validBooking(), SchemaUser)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, SchemaUser, ve.Schema)
}

// validating the same input twice must yield the same verdict: validation is
// pure and idempotent
func TestValidate_Idempotent(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validUser(), SchemaUser))
	assert.NoError(t, v.Validate(validUser(), SchemaUser))

	bad := validBooking()
	bad.TotalAmount = 0
	first := v.Validate(bad, SchemaBooking)
	second := v.Validate(bad, SchemaBooking)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestValidate_PaymentOrder(t *testing.T) {
	v := New()
	order := domain.NewPaymentOrder(validUser(), validBooking(), "mxn", "key-1")
	assert.NoError(t, v.Validate(order, SchemaPayment))

	order.Amount = 0
	err := v.Validate(order, SchemaPayment)
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)
}
