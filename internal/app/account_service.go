package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"quotevault/internal/cache"
	"quotevault/internal/model"
	"quotevault/internal/pkg/jwtutil"
	"quotevault/internal/repository"
)

var (
	ErrMissingFields     = errors.New("email, password, and name are required")
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters long")
	ErrEmailExists       = errors.New("user with this email already exists")
	ErrEmailTaken        = errors.New("email is already taken")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrUserNotFound      = errors.New("user not found")
)

const passwordHashCost = 12

type AccountService struct {
	users         repository.UserRepository
	favorites     repository.FavoriteRepository
	generations   *cache.GenerationCache
	events        EventPublisher
	jwtSecret     string
	jwtExpiration time.Duration
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAccountService(
	users repository.UserRepository,
	favorites repository.FavoriteRepository,
	generations *cache.GenerationCache,
	events EventPublisher,
	jwtSecret string,
	jwtExpiration time.Duration,
) *AccountService {
	return &AccountService{
		users:         users,
		favorites:     favorites,
		generations:   generations,
		events:        events,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AccountService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, ErrMissingFields
	}
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index is the authority; the pre-check above only
		// exists for a friendlier common path.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	publishActivity(ctx, s.events, model.Activity{
		UserID:     user.ID,
		Action:     model.ActivityRegistered,
		OccurredAt: time.Now(),
	})
	return &AuthResult{Token: token, User: user}, nil
}

// Login deliberately returns the same error for an unknown email and a
// wrong password, so callers cannot probe which emails are registered.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredential
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	publishActivity(ctx, s.events, model.Activity{
		UserID:     user.ID,
		Action:     model.ActivityLoggedIn,
		OccurredAt: time.Now(),
	})
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AccountService) GetByID(ctx context.Context, userID string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies the supplied profile fields. An email change bumps the
// token generation, which retires every previously issued token.
func (s *AccountService) Update(ctx context.Context, userID, name, email string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidUserID
	}

	update := model.UserUpdate{}
	if name != "" {
		trimmed := strings.TrimSpace(name)
		update.Name = &trimmed
	}
	if email != "" {
		lowered := strings.TrimSpace(strings.ToLower(email))
		if !validEmail(lowered) {
			return ErrInvalidEmail
		}
		taken, err := s.users.EmailTakenByOther(ctx, lowered, id)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		update.Email = &lowered
		update.BumpGeneration = true
	}

	matched, err := s.users.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrEmailTaken
		}
		return err
	}
	if !matched {
		return ErrUserNotFound
	}

	if update.BumpGeneration {
		s.invalidateGeneration(ctx, userID)
	}
	return nil
}

// Delete removes the user's favorites before the user document. The two
// steps are not atomic: a crash in between leaves a user without favorites,
// never favorites without a user. A storage engine with multi-document
// transactions would wrap both in one.
func (s *AccountService) Delete(ctx context.Context, userID string) error {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrInvalidUserID
	}

	if err := s.favorites.DeleteByUser(ctx, id); err != nil {
		return err
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	s.invalidateGeneration(ctx, userID)
	publishActivity(ctx, s.events, model.Activity{
		UserID:     id,
		Action:     model.ActivityAccountDeleted,
		OccurredAt: time.Now(),
	})
	return nil
}

// CurrentGeneration backs the auth middleware's staleness check. Cache
// first; a miss falls through to the users collection and refills.
func (s *AccountService) CurrentGeneration(ctx context.Context, userID string) (int, error) {
	if s.generations != nil {
		generation, hit, err := s.generations.Get(ctx, userID)
		if err != nil {
			log.Printf("generation cache read failed: %v", err)
		} else if hit {
			return generation, nil
		}
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	if s.generations != nil {
		if err := s.generations.Set(ctx, userID, user.TokenGeneration); err != nil {
			log.Printf("generation cache write failed: %v", err)
		}
	}
	return user.TokenGeneration, nil
}

func (s *AccountService) issueToken(user *model.User) (string, error) {
	token, err := jwtutil.GenerateToken(
		s.jwtSecret,
		s.jwtExpiration,
		user.ID.Hex(),
		user.Email,
		user.TokenGeneration,
	)
	if err != nil {
		return "", fmt.Errorf("issue token failed: %w", err)
	}
	return token, nil
}

func (s *AccountService) invalidateGeneration(ctx context.Context, userID string) {
	if s.generations == nil {
		return
	}
	if err := s.generations.Invalidate(ctx, userID); err != nil {
		log.Printf("generation cache invalidate failed: %v", err)
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms; only the bare address is acceptable.
	if addr.Address != email {
		return false
	}
	// net/mail accepts dotless domains; real addresses here never have one.
	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}
