package services

import (
	"errors"
	"fmt"
	"strings"

	"resort-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientService handles registration, login and account management.
type ClientService struct {
	DB     *gorm.DB
	Policy RolePolicy
}

func NewClientService(db *gorm.DB, policy RolePolicy) *ClientService {
	return &ClientService{DB: db, Policy: policy}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Register creates a client account. The role comes from the bootstrap
// policy: the first client ever (or an admin-domain email) becomes admin.
func (s *ClientService) Register(in RegisterInput) (*models.Client, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, validationErr("a valid email is required")
	}
	if len(in.Password) < 6 {
		return nil, validationErr("password must be at least 6 characters")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, validationErr("first name is required")
	}

	var existing int64
	if err := s.DB.Model(&models.Client{}).Where("email = ?", in.Email).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing > 0 {
		return nil, ErrDuplicateEmail
	}

	var total int64
	if err := s.DB.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	client := &models.Client{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     in.Email,
		Phone:     strings.TrimSpace(in.Phone),
		Password:  string(hash),
		Role:      s.Policy.Assign(in.Email, total == 0),
	}
	if err := s.DB.Create(client).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// Authenticate verifies email/password and returns the client.
func (s *ClientService) Authenticate(email, password string) (*models.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, validationErr("email and password are required")
	}

	var client models.Client
	if err := s.DB.Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredential
	}
	return &client, nil
}

func (s *ClientService) GetClient(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load client %d: %w", id, err)
	}
	return &client, nil
}

type ClientFilter struct {
	Role   string
	Search string
}

func (s *ClientService) ListClients(filter ClientFilter, page, limit int) ([]models.Client, int64, error) {
	q := s.DB.Model(&models.Client{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ?",
			like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	var clients []models.Client
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, total, nil
}

// UpdateClient applies a partial update. Password and role changes do not go
// through this path.
func (s *ClientService) UpdateClient(id uint, updates map[string]interface{}) (*models.Client, error) {
	for _, k := range []string{"id", "created_at", "updated_at", "deleted_at", "password", "role"} {
		delete(updates, k)
	}

	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load client %d: %w", id, err)
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&client).Updates(updates).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return nil, ErrDuplicateEmail
			}
			return nil, fmt.Errorf("failed to update client %d: %w", id, err)
		}
	}
	if err := s.DB.First(&client, id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload client %d: %w", id, err)
	}
	return &client, nil
}

// DeleteClient removes the account. Bookings that reference it keep their
// client id and become orphaned references; nothing cascades.
func (s *ClientService) DeleteClient(id uint) error {
	result := s.DB.Delete(&models.Client{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	return nil
}
