package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-backend/models"
	"rental-backend/utils"

	"gorm.io/gorm"
)

// RoomService manages the physical rooms of a room type.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	Floor      string `json:"floor"`
	Status     string `json:"status"`
}

// Create fails with ErrDuplicate when the room number is taken within the room type.
func (s *RoomService) Create(ctx context.Context, ownerID, roomTypeID uint, in RoomInput) (*models.Room, error) {
	number := strings.TrimSpace(in.RoomNumber)
	if number == "" {
		return nil, fmt.Errorf("%w: roomNumber is required", ErrInvalidInput)
	}
	if _, err := ownedRoomType(ctx, s.DB, ownerID, roomTypeID); err != nil {
		return nil, utils.WrapServiceError(err, "create room", ErrRoomTypeNotFound)
	}

	room := models.Room{RoomTypeID: roomTypeID, RoomNumber: number, Floor: in.Floor, Status: in.Status}
	if room.Status == "" {
		room.Status = "Available"
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if utils.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: room %s already exists", ErrDuplicate, number)
		}
		return nil, utils.WrapServiceError(err, "create room")
	}
	return &room, nil
}

func (s *RoomService) ListByRoomType(ctx context.Context, ownerID, roomTypeID uint) ([]models.Room, error) {
	if _, err := ownedRoomType(ctx, s.DB, ownerID, roomTypeID); err != nil {
		return nil, utils.WrapServiceError(err, "list rooms", ErrRoomTypeNotFound)
	}
	var rooms []models.Room
	if err := s.DB.WithContext(ctx).Where("room_type_id = ?", roomTypeID).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, utils.WrapServiceError(err, "list rooms")
	}
	return rooms, nil
}

func (s *RoomService) Delete(ctx context.Context, ownerID, id uint) error {
	var room models.Room
	err := s.DB.WithContext(ctx).First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	if err != nil {
		return utils.WrapServiceError(err, "delete room")
	}
	if _, err := ownedRoomType(ctx, s.DB, ownerID, room.RoomTypeID); err != nil {
		if errors.Is(err, ErrRoomTypeNotFound) {
			return ErrRoomNotFound
		}
		return utils.WrapServiceError(err, "delete room")
	}
	if err := s.DB.WithContext(ctx).Delete(&room).Error; err != nil {
		return utils.WrapServiceError(err, "delete room")
	}
	return nil
}
