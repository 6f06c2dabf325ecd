package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("credenciales inválidas")

// Service authenticates back-office users and issues access tokens.
type Service struct {
	usuarioRepo repositories.UsuarioRepo
	jwtService  *JWTService
	auditor     audit.Recorder
}

func NewService(usuarioRepo repositories.UsuarioRepo, jwtService *JWTService, auditor audit.Recorder) *Service {
	return &Service{
		usuarioRepo: usuarioRepo,
		jwtService:  jwtService,
		auditor:     auditor,
	}
}

func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	usuario, err := s.usuarioRepo.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("error buscando usuario: %w", err)
	}
	if !usuario.Activo {
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(usuario.PasswordHash, req.Password); err != nil {
		utils.LogWarn("intento de login fallido", map[string]interface{}{"email": email})
		return nil, ErrInvalidCredentials
	}

	claims := &TokenClaims{
		UserID:    usuario.ID.String(),
		Email:     usuario.Email,
		Nombre:    usuario.Nombre,
		Iniciales: usuario.Iniciales,
		Rol:       usuario.Rol,
	}
	token, expiresIn, err := s.jwtService.GenerateAccessToken(claims)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(usuario.Email, audit.AccionLogin, "usuario", usuario.ID.String(), "login")
	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Usuario: UserInfo{
			ID:        usuario.ID.String(),
			Email:     usuario.Email,
			Nombre:    usuario.Nombre,
			Iniciales: usuario.Iniciales,
			Rol:       usuario.Rol,
		},
	}, nil
}

// ValidateToken validates an access token
func (s *Service) ValidateToken(token string) (*TokenClaims, error) {
	return s.jwtService.ValidateAccessToken(token)
}

// EnsureAdmin bootstraps the first admin account when the configured email
// does not exist yet. No-op without configuration.
func (s *Service) EnsureAdmin(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.usuarioRepo.GetByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("error verificando cuenta admin: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	usuario := &models.Usuario{
		Email:        email,
		Nombre:       "Administrador",
		PasswordHash: hash,
		Rol:          models.RolAdmin,
		Activo:       true,
	}
	if err := s.usuarioRepo.Create(usuario); err != nil {
		return fmt.Errorf("error creando cuenta admin: %w", err)
	}

	utils.LogInfo("cuenta admin inicial creada", map[string]interface{}{"email": email})
	return nil
}
