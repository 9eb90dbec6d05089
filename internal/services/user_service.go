package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/uuid"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a new user with a hashed password, a fresh invite code,
// and a zero-amount registration ledger entry recording the invite used.
func (s *userService) Register(identifier, password, invite string) (*models.User, error) {
	if identifier == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "identifier and password are required")
	}

	var count int64
	s.db.Model(&models.User{}).Where("identifier = ?", identifier).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateIdentifier
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Identifier: identifier,
		Password:   string(hashedPassword),
		InviteCode: newInviteCode(),
		Balance:    0,
	}

	if invite == "" {
		invite = "-"
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		entry := &models.Transaction{
			UserID: user.ID,
			Type:   models.TransactionTypeBuy,
			Amount: 0,
			Status: models.TransactionStatusSuccess,
			Note:   fmt.Sprintf("Register (invite %s)", invite),
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByIdentifier retrieves a user by their login identifier (email or phone).
func (s *userService) GetUserByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("identifier = ?", identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// SetPayoutAccount stores the user's withdrawal destination.
func (s *userService) SetPayoutAccount(userID string, accountType models.PayoutAccountType, number, name string) (*models.User, error) {
	if accountType == "" || number == "" || name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "payout account type, number and name are required")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"payout_account_type":   accountType,
		"payout_account_number": number,
		"payout_account_name":   name,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// ChangePassword verifies the old password and replaces it with a new hash.
func (s *userService) ChangePassword(userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "new password is required")
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if !s.VerifyPassword(user, oldPassword) {
		return apperrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(user).Update("password", string(hashed)).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// newInviteCode builds a short shareable code from a fresh UUID.
func newInviteCode() string {
	return "INV-" + strings.ToUpper(uuid.New()[:6])
}
