package booking

import (
	"context"
	"log"
	"time"

	"cinebooking/internal/domain"
	"cinebooking/internal/repository"
	"cinebooking/internal/validate"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type BookingUseCase interface {
	PlaceBooking(ctx context.Context, user domain.User, booking domain.BookingRequest) (*domain.TicketRecord, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.TicketRecord, error)
	GetBookingByID(ctx context.Context, id int64) (*domain.BookingRecord, error)
}

type Validator interface {
	Validate(input any, schema string) error
}

// Charger submits a payment order and returns the receipt. Declines and
// gateway failures come back as their own error kinds.
type Charger interface {
	MakePurchase(ctx context.Context, order domain.PaymentOrder) (*domain.ChargeReceipt, error)
}

// Dispatcher delivers the confirmation. Best effort only; see PlaceBooking.
type Dispatcher interface {
	Send(ctx context.Context, payload domain.NotificationPayload) error
}

type BookingService struct {
	validator     Validator
	charger       Charger
	store         repository.BookingStore
	dispatcher    Dispatcher
	currency      string
	storeTimeout  time.Duration
	notifyTimeout time.Duration
}

func NewBookingService(
	validator Validator,
	charger Charger,
	store repository.BookingStore,
	dispatcher Dispatcher,
	currency string,
	storeTimeout, notifyTimeout time.Duration,
) *BookingService {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	if notifyTimeout <= 0 {
		notifyTimeout = 3 * time.Second
	}
	return &BookingService{
		validator:     validator,
		charger:       charger,
		store:         store,
		dispatcher:    dispatcher,
		currency:      currency,
		storeTimeout:  storeTimeout,
		notifyTimeout: notifyTimeout,
	}
}

// PlaceBooking runs the booking pipeline: validate both inputs, charge the
// card, persist the booking, persist the ticket, notify. Steps are strictly
// sequential; the first failure aborts everything that has not started yet.
// A charge with no durable record behind it is the one state that cannot be
// rolled back, so store failures after the charge surface as
// ChargedNotRecordedError instead of a plain store error.
func (s *BookingService) PlaceBooking(ctx context.Context, user domain.User, booking domain.BookingRequest) (*domain.TicketRecord, error) {
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return s.validator.Validate(user, validate.SchemaUser) })
	g.Go(func() error { return s.validator.Validate(booking, validate.SchemaBooking) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// one idempotency key per attempt: a gateway-side retry of this attempt
	// cannot double-charge, a fresh PlaceBooking call is a fresh charge
	order := domain.NewPaymentOrder(user, booking, s.currency, uuid.NewString())

	receipt, err := s.charger.MakePurchase(ctx, order)
	if err != nil {
		return nil, err
	}

	record := domain.NewBookingRecord(user, booking)
	stored, err := s.insertBooking(ctx, record)
	if err != nil {
		return nil, &domain.ChargedNotRecordedError{
			ChargeID: receipt.ID,
			Step:     "booking record",
			User:     user.Email,
			Err:      err,
		}
	}

	ticket := domain.NewTicketRecord(stored, receipt, order.Description)
	storedTicket, err := s.insertTicket(ctx, ticket)
	if err != nil {
		return nil, &domain.ChargedNotRecordedError{
			ChargeID: receipt.ID,
			Step:     "ticket record",
			User:     user.Email,
			Err:      err,
		}
	}

	s.notify(ctx, storedTicket, user)

	return storedTicket, nil
}

func (s *BookingService) insertBooking(ctx context.Context, record *domain.BookingRecord) (*domain.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.store.InsertBooking(ctx, record)
}

func (s *BookingService) insertTicket(ctx context.Context, ticket *domain.TicketRecord) (*domain.TicketRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.store.InsertTicket(ctx, ticket)
}

// notify is fire-and-forget: the ticket already exists and is returned to the
// caller whatever happens here.
func (s *BookingService) notify(ctx context.Context, ticket *domain.TicketRecord, user domain.User) {
	payload := domain.NotificationPayload{
		Ticket:   *ticket,
		UserName: user.FullName(),
		Email:    user.Email,
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	if err := s.dispatcher.Send(notifyCtx, payload); err != nil {
		log.Printf("notification for order %s not delivered: %v", ticket.OrderID, err)
	}
}

func (s *BookingService) GetOrderByID(ctx context.Context, orderID string) (*domain.TicketRecord, error) {
	return s.store.FindTicketByOrderID(ctx, orderID)
}

func (s *BookingService) GetBookingByID(ctx context.Context, id int64) (*domain.BookingRecord, error) {
	return s.store.FindBookingByID(ctx, id)
}

var _ BookingUseCase = (*BookingService)(nil)
