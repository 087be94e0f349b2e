package service

import (
	"context"
	"time"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"
)

func (s *Service) CreateBooking(ctx context.Context, userID int64, req model.CreateBookingRequest) (model.BookingInfo, error) {
	item, err := s.repo.GetItem(ctx, req.ItemID)
	if err != nil {
		return model.BookingInfo{}, err
	}
	if !item.Available {
		return model.BookingInfo{}, errs.ErrNotAvailable
	}
	if !req.End.After(req.Start) {
		return model.BookingInfo{}, errs.ErrInvalidDateTime
	}
	booker, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.BookingInfo{}, err
	}
	// owners cannot book their own items; surfaced as user-not-found on purpose
	if booker.ID == item.OwnerID {
		return model.BookingInfo{}, errs.ErrUserNotFound
	}

	id, err := s.repo.CreateBooking(ctx, model.Booking{
		Start:    req.Start,
		End:      req.End,
		ItemID:   item.ID,
		BookerID: booker.ID,
		Status:   model.StatusWaiting,
	})
	if err != nil {
		return model.BookingInfo{}, err
	}
	info, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.BookingInfo{}, err
	}
	s.publishBookingEvent(info)
	return info, nil
}

// ApproveBooking resolves a WAITING booking. approved nil leaves the status
// untouched but still answers with the stored booking.
func (s *Service) ApproveBooking(ctx context.Context, userID, bookingID int64, approved *bool) (model.BookingInfo, error) {
	info, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingInfo{}, err
	}
	if info.Item.OwnerID != userID {
		return model.BookingInfo{}, errs.ErrUserNotFound
	}
	if info.Status != model.StatusWaiting {
		return model.BookingInfo{}, errs.ErrInvalidStatus
	}
	if approved == nil {
		return info, nil
	}

	status := model.StatusRejected
	if *approved {
		status = model.StatusApproved
	}
	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return model.BookingInfo{}, err
	}
	info.Status = status
	s.publishBookingEvent(info)
	return info, nil
}

func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64) (model.BookingInfo, error) {
	info, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingInfo{}, err
	}
	if userID != info.Item.OwnerID && userID != info.Booker.ID {
		return model.BookingInfo{}, errs.ErrUserNotFound
	}
	return info, nil
}

func (s *Service) ListBookings(ctx context.Context, userID int64, state string, from, size int) ([]model.BookingInfo, error) {
	return s.listBookings(ctx, userID, model.RoleBooker, state, from, size)
}

func (s *Service) ListBookingsByOwner(ctx context.Context, userID int64, state string, from, size int) ([]model.BookingInfo, error) {
	return s.listBookings(ctx, userID, model.RoleOwner, state, from, size)
}

func (s *Service) listBookings(ctx context.Context, userID int64, role model.Role, value string, from, size int) ([]model.BookingInfo, error) {
	state, err := model.ParseState(value)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	page, err := model.NewPageRequest(from, size)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBookings(ctx, userID, role, state, time.Now(), page)
}
