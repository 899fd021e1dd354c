package services

import "errors"

var (
	ErrPropertyNotFound        = errors.New("property_not_found")
	ErrRoomTypeNotFound        = errors.New("room_type_not_found")
	ErrRoomNotFound            = errors.New("room_not_found")
	ErrReservationNotFound     = errors.New("reservation_not_found")
	ErrInvalidStatusTransition = errors.New("invalid_status_transition")
	ErrDuplicate               = errors.New("duplicate")
	ErrInvalidInput            = errors.New("invalid_input")
)
