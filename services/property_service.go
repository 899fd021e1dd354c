package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rental-backend/models"
	"rental-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyService manages an owner's properties.
type PropertyService struct {
	DB *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{DB: db}
}

type PropertyInput struct {
	Name        string         `json:"name" binding:"required"`
	RentalType  string         `json:"rentalType"`
	MainPicture string         `json:"mainPicture"`
	Facilities  datatypes.JSON `json:"facilities"`
	Address     string         `json:"address"`
	CityID      uint           `json:"cityId"`
}

func (in PropertyInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

func (s *PropertyService) Create(ctx context.Context, ownerID uint, in PropertyInput) (*models.Property, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := models.Property{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		RentalType:  in.RentalType,
		MainPicture: in.MainPicture,
		Facilities:  in.Facilities,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.CityID != 0 {
			loc := models.Location{Address: in.Address, CityID: in.CityID}
			if err := tx.Create(&loc).Error; err != nil {
				return err
			}
			p.LocationID = &loc.ID
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, utils.WrapServiceError(err, "create property")
	}
	return s.GetByID(ctx, ownerID, p.ID)
}

// GetByID only finds properties of the given owner.
func (s *PropertyService) GetByID(ctx context.Context, ownerID, id uint) (*models.Property, error) {
	var p models.Property
	err := s.DB.WithContext(ctx).
		Preload("Location.City.Province").
		Preload("RoomTypes").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, utils.WrapServiceError(err, "get property")
	}
	return &p, nil
}

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Property, error) {
	var properties []models.Property
	err := s.DB.WithContext(ctx).
		Preload("Location.City.Province").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&properties).Error
	if err != nil {
		return nil, utils.WrapServiceError(err, "list properties")
	}
	return properties, nil
}

func (s *PropertyService) Update(ctx context.Context, ownerID, id uint, in PropertyInput) (*models.Property, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":         strings.TrimSpace(in.Name),
			"rental_type":  in.RentalType,
			"main_picture": in.MainPicture,
		}
		if in.Facilities != nil {
			updates["facilities"] = in.Facilities
		}
		if in.CityID != 0 {
			if p.LocationID != nil {
				if err := tx.Model(&models.Location{}).Where("id = ?", *p.LocationID).
					Updates(map[string]interface{}{"address": in.Address, "city_id": in.CityID}).Error; err != nil {
					return err
				}
			} else {
				loc := models.Location{Address: in.Address, CityID: in.CityID}
				if err := tx.Create(&loc).Error; err != nil {
					return err
				}
				updates["location_id"] = loc.ID
			}
		}
		return tx.Model(&models.Property{}).Where("id = ?", p.ID).Updates(updates).Error
	})
	if err != nil {
		return nil, utils.WrapServiceError(err, "update property")
	}
	return s.GetByID(ctx, ownerID, id)
}

// Delete soft-deletes the property; its room types disappear from reports with it.
func (s *PropertyService) Delete(ctx context.Context, ownerID, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Property{})
	if res.Error != nil {
		return utils.WrapServiceError(res.Error, "delete property")
	}
	if res.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
