package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mbeckert/taskboard-api/internal/constants"
	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrPolicyNotAccepted    = errors.New("privacy policy must be accepted")
	ErrInvalidToken         = errors.New("invalid token")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration, login, guest provisioning and token
// resolution. Tokens are opaque keys with get-or-create semantics: a user
// keeps the same token across logins.
type AuthService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	Name                string
	Email               string
	Password            string
	ConfirmPassword     string
	AcceptPrivacyPolicy bool
}

// Register creates a user with a hashed password, an address book contact
// carrying the user's email, and the user's token, all in one transaction.
// The contact is a deliberate side effect of registration: the address book
// is seeded from registered users but holds no foreign key to them.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	if input.Password != input.ConfirmPassword {
		return nil, "", ErrPasswordMismatch
	}
	if !input.AcceptPrivacyPolicy {
		return nil, "", ErrPolicyNotAccepted
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	hash := string(hashedPassword)
	user := &models.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: &hash,
	}
	firstname, lastname := SplitName(input.Name)
	contact := &models.Contact{
		Firstname: firstname,
		Lastname:  lastname,
		Email:     input.Email,
	}
	token := &models.AuthToken{Key: newTokenKey()}

	if err := s.userRepo.CreateWithContact(user, contact, token); err != nil {
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	return user, token.Key, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user with their token. Unknown
// emails and wrong passwords are indistinguishable to the caller. Accounts
// without a password hash (the guest) can never log in here.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if user.PasswordHash == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreate(user.ID, newTokenKey())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token.Key, nil
}

// GuestLogin gets or creates the reserved guest account and returns it with
// its token. The guest carries no password hash, so it has no usable
// password. Repeated calls reuse both the account and the token.
func (s *AuthService) GuestLogin() (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(constants.GuestEmail)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("failed to find guest user: %w", err)
		}
		user = &models.User{
			Email: constants.GuestEmail,
			Name:  constants.GuestName,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, "", fmt.Errorf("failed to create guest user: %w", err)
		}
	}

	token, err := s.tokenRepo.GetOrCreate(user.ID, newTokenKey())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	return user, token.Key, nil
}

// ResolveToken maps an opaque token key to its user.
func (s *AuthService) ResolveToken(key string) (*models.User, error) {
	token, err := s.tokenRepo.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}
	return &token.User, nil
}

// SplitName derives contact name parts from a registration name: everything
// before the first space becomes the firstname, the remainder the lastname.
func SplitName(name string) (firstname, lastname string) {
	firstname, lastname, _ = strings.Cut(strings.TrimSpace(name), " ")
	return firstname, lastname
}

func newTokenKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
