package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-backend/models"
	"rental-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RoomTypeService manages the room types of an owner's properties.
type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

type RoomTypeInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	MaxGuests     uint            `json:"maxGuests"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	TotalQuantity int             `json:"totalQuantity"`
}

func (in RoomTypeInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case in.TotalQuantity < 0:
		return fmt.Errorf("%w: totalQuantity must not be negative", ErrInvalidInput)
	case in.BasePrice.IsNegative():
		return fmt.Errorf("%w: basePrice must not be negative", ErrInvalidInput)
	}
	return nil
}

// ownedProperty fails with ErrPropertyNotFound unless the property belongs to the owner.
func ownedProperty(ctx context.Context, db *gorm.DB, ownerID, propertyID uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Property{}).
		Where("id = ? AND owner_id = ?", propertyID, ownerID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// ownedRoomType loads a room type whose property belongs to the owner.
func ownedRoomType(ctx context.Context, db *gorm.DB, ownerID, roomTypeID uint) (*models.RoomType, error) {
	var rt models.RoomType
	err := db.WithContext(ctx).
		Joins("JOIN properties ON properties.id = room_types.property_id AND properties.deleted_at IS NULL").
		Where("room_types.id = ? AND properties.owner_id = ?", roomTypeID, ownerID).
		First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *RoomTypeService) Create(ctx context.Context, ownerID, propertyID uint, in RoomTypeInput) (*models.RoomType, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := ownedProperty(ctx, s.DB, ownerID, propertyID); err != nil {
		return nil, utils.WrapServiceError(err, "create room type", ErrPropertyNotFound)
	}

	rt := models.RoomType{
		PropertyID:    propertyID,
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		MaxGuests:     in.MaxGuests,
		BasePrice:     in.BasePrice,
		TotalQuantity: in.TotalQuantity,
	}
	if err := s.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		return nil, utils.WrapServiceError(err, "create room type")
	}
	return &rt, nil
}

func (s *RoomTypeService) ListByProperty(ctx context.Context, ownerID, propertyID uint) ([]models.RoomType, error) {
	if err := ownedProperty(ctx, s.DB, ownerID, propertyID); err != nil {
		return nil, utils.WrapServiceError(err, "list room types", ErrPropertyNotFound)
	}
	var types []models.RoomType
	err := s.DB.WithContext(ctx).Where("property_id = ?", propertyID).Order("id ASC").Find(&types).Error
	if err != nil {
		return nil, utils.WrapServiceError(err, "list room types")
	}
	return types, nil
}

func (s *RoomTypeService) GetByID(ctx context.Context, ownerID, id uint) (*models.RoomType, error) {
	rt, err := ownedRoomType(ctx, s.DB, ownerID, id)
	if err != nil {
		return nil, utils.WrapServiceError(err, "get room type", ErrRoomTypeNotFound)
	}
	return rt, nil
}

func (s *RoomTypeService) Update(ctx context.Context, ownerID, id uint, in RoomTypeInput) (*models.RoomType, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	rt, err := ownedRoomType(ctx, s.DB, ownerID, id)
	if err != nil {
		return nil, utils.WrapServiceError(err, "update room type", ErrRoomTypeNotFound)
	}

	err = s.DB.WithContext(ctx).Model(&models.RoomType{}).Where("id = ?", rt.ID).Updates(map[string]interface{}{
		"name":           strings.TrimSpace(in.Name),
		"description":    in.Description,
		"max_guests":     in.MaxGuests,
		"base_price":     in.BasePrice,
		"total_quantity": in.TotalQuantity,
	}).Error
	if err != nil {
		return nil, utils.WrapServiceError(err, "update room type")
	}
	return s.GetByID(ctx, ownerID, id)
}

func (s *RoomTypeService) Delete(ctx context.Context, ownerID, id uint) error {
	rt, err := ownedRoomType(ctx, s.DB, ownerID, id)
	if err != nil {
		return utils.WrapServiceError(err, "delete room type", ErrRoomTypeNotFound)
	}
	if err := s.DB.WithContext(ctx).Delete(&models.RoomType{}, rt.ID).Error; err != nil {
		return utils.WrapServiceError(err, "delete room type")
	}
	return nil
}
