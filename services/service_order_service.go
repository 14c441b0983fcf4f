package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"resort-backend/models"

	"gorm.io/gorm"
)

// ServiceOrderService mirrors the booking lifecycle for service orders:
// same status machine, no availability dimension.
type ServiceOrderService struct {
	DB *gorm.DB
}

func NewServiceOrderService(db *gorm.DB) *ServiceOrderService {
	return &ServiceOrderService{DB: db}
}

type CreateServiceOrderInput struct {
	ClientID        uint
	ServiceID       uint
	AppointmentDate time.Time
	Quantity        int
	SpecialRequests string
}

func (s *ServiceOrderService) CreateServiceOrder(in CreateServiceOrderInput) (*models.ServiceOrder, error) {
	if in.Quantity < 1 {
		return nil, validationErr("quantity must be at least 1")
	}
	if in.AppointmentDate.IsZero() {
		return nil, validationErr("appointment date is required")
	}
	if len(in.SpecialRequests) > maxSpecialRequestsLen {
		return nil, validationErr("special requests cannot be more than %d characters", maxSpecialRequestsLen)
	}

	var svc models.Service
	if err := s.DB.First(&svc, in.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", ErrNotFound, in.ServiceID)
		}
		return nil, fmt.Errorf("db error checking service %d: %w", in.ServiceID, err)
	}
	if !svc.IsAvailable {
		return nil, validationErr("service %q is not currently available", svc.Name)
	}

	total, err := PriceForOrder(svc.Price, in.Quantity)
	if err != nil {
		return nil, err
	}

	order := &models.ServiceOrder{
		ClientID:        in.ClientID,
		ServiceID:       in.ServiceID,
		AppointmentDate: in.AppointmentDate,
		Quantity:        in.Quantity,
		Status:          models.StatusPending,
		TotalPrice:      total,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
	}
	if err := s.DB.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create service order: %w", err)
	}
	return order, nil
}

func (s *ServiceOrderService) GetServiceOrder(id, callerID uint, callerRole models.Role) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	if err := s.DB.Preload("Service").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service order %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load service order %d: %w", id, err)
	}
	if order.ClientID != callerID && !callerRole.IsAdmin() {
		return nil, fmt.Errorf("%w: service order belongs to another client", ErrNotAuthorized)
	}
	return &order, nil
}

func (s *ServiceOrderService) ListServiceOrders(callerID uint, callerRole models.Role, page, limit int) ([]models.ServiceOrder, int64, error) {
	q := s.DB.Model(&models.ServiceOrder{})
	if !callerRole.IsAdmin() {
		q = q.Where("client_id = ?", callerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count service orders: %w", err)
	}

	var orders []models.ServiceOrder
	err := q.Preload("Service").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list service orders: %w", err)
	}
	return orders, total, nil
}

func (s *ServiceOrderService) UpdateServiceOrderStatus(id, callerID uint, callerRole models.Role, newStatus string) (*models.ServiceOrder, error) {
	var order models.ServiceOrder
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: service order %d", ErrNotFound, id)
			}
			return fmt.Errorf("failed to load service order %d: %w", id, err)
		}

		isOwner := order.ClientID == callerID
		if !isOwner && !callerRole.IsAdminOrStaff() {
			return fmt.Errorf("%w: service order belongs to another client", ErrNotAuthorized)
		}
		if err := checkTransition(order.Status, newStatus, callerRole, isOwner); err != nil {
			return err
		}

		order.Status = newStatus
		return tx.Model(&order).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *ServiceOrderService) DeleteServiceOrder(id, callerID uint, callerRole models.Role) error {
	var order models.ServiceOrder
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: service order %d", ErrNotFound, id)
		}
		return fmt.Errorf("failed to load service order %d: %w", id, err)
	}
	if order.ClientID != callerID && !callerRole.IsAdmin() {
		return fmt.Errorf("%w: service order belongs to another client", ErrNotAuthorized)
	}
	if err := s.DB.Delete(&order).Error; err != nil {
		return fmt.Errorf("failed to delete service order %d: %w", id, err)
	}
	return nil
}
