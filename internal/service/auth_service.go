package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"idea-shaper-be/internal/dto"
	"idea-shaper-be/internal/entity"
	"idea-shaper-be/internal/pkg/logger"
	"idea-shaper-be/internal/pkg/mailer"
	"idea-shaper-be/internal/repository/specification"
	"idea-shaper-be/internal/repository/unitofwork"
	"idea-shaper-be/pkg/events"
	"idea-shaper-be/pkg/nats"
)

const accessTokenTTL = 72 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	email      mailer.IEmailService
	natsPub    *nats.Publisher
	logger     logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, email mailer.IEmailService, natsPub *nats.Publisher, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		email:      email,
		natsPub:    natsPub,
		logger:     log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// The welcome mail is sent by the registration worker consuming this
	// event. Falls back to sending inline when NATS is unavailable.
	published := false
	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewUserRegistered(user.Email, user.FullName)); err != nil {
			s.logger.Warn("AuthService", "Failed to publish registration event", map[string]interface{}{"error": err.Error()})
		} else {
			published = true
		}
	}
	if !published && s.email != nil {
		go func() {
			_ = s.email.SendWelcome(user.Email, user.FullName)
		}()
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	return s.buildAuthResponse(user)
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &dto.UserResponse{
		Id:       user.Id.String(),
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

func (s *authService) buildAuthResponse(user *entity.User) (*dto.AuthResponse, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken: signed,
		User: dto.UserResponse{
			Id:       user.Id.String(),
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}
