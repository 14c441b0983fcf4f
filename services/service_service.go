package services

import (
	"errors"
	"fmt"
	"strings"

	"resort-backend/models"

	"gorm.io/gorm"
)

// ServiceCatalogService manages the orderable service catalog.
type ServiceCatalogService struct {
	DB *gorm.DB
}

func NewServiceCatalogService(db *gorm.DB) *ServiceCatalogService {
	return &ServiceCatalogService{DB: db}
}

type ServiceFilter struct {
	Category      string
	AvailableOnly bool
	Search        string
}

func (s *ServiceCatalogService) CreateService(svc *models.Service) error {
	if err := validateService(svc); err != nil {
		return err
	}
	if err := s.DB.Create(svc).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (s *ServiceCatalogService) GetService(id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load service %d: %w", id, err)
	}
	return &svc, nil
}

func (s *ServiceCatalogService) ListServices(filter ServiceFilter, page, limit int) ([]models.Service, int64, error) {
	q := s.DB.Model(&models.Service{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	var list []models.Service
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	return list, total, nil
}

func (s *ServiceCatalogService) UpdateService(id uint, updates map[string]interface{}) (*models.Service, error) {
	for _, k := range []string{"id", "created_at", "updated_at", "deleted_at"} {
		delete(updates, k)
	}
	if c, ok := updates["category"].(string); ok && !models.ValidServiceCategory(c) {
		return nil, validationErr("unknown service category %q", c)
	}

	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load service %d: %w", id, err)
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&svc).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update service %d: %w", id, err)
		}
	}
	if err := s.DB.First(&svc, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload service %d: %w", id, err)
	}
	return &svc, nil
}

func (s *ServiceCatalogService) DeleteService(id uint) error {
	result := s.DB.Delete(&models.Service{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: service %d", ErrNotFound, id)
	}
	return nil
}

func validateService(svc *models.Service) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return validationErr("service name is required")
	}
	if len(svc.Name) > 100 {
		return validationErr("name cannot be more than 100 characters")
	}
	if svc.Price < 0 {
		return validationErr("price cannot be negative")
	}
	if !models.ValidServiceCategory(svc.Category) {
		return validationErr("unknown service category %q", svc.Category)
	}
	if svc.Duration <= 0 {
		return validationErr("duration in minutes is required")
	}
	if len(svc.Description) > maxSpecialRequestsLen {
		return validationErr("description cannot be more than %d characters", maxSpecialRequestsLen)
	}
	return nil
}
