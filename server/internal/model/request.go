package model

import "time"

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateUserRequest carries a partial update: nil fields keep the stored value.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

// MergeUser overlays the non-nil fields of upd onto base.
func MergeUser(base User, upd UpdateUserRequest) User {
	if upd.Name != nil {
		base.Name = *upd.Name
	}
	if upd.Email != nil {
		base.Email = *upd.Email
	}
	return base
}

// MergeItem overlays the non-nil fields of upd onto base.
func MergeItem(base Item, upd UpdateItemRequest) Item {
	if upd.Name != nil {
		base.Name = *upd.Name
	}
	if upd.Description != nil {
		base.Description = *upd.Description
	}
	if upd.Available != nil {
		base.Available = *upd.Available
	}
	return base
}
