package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/sisacad/nomina-docentes-api/internal/application/dto"
	"github.com/sisacad/nomina-docentes-api/internal/domain"
	"github.com/sisacad/nomina-docentes-api/internal/domain/repository"
	"github.com/sisacad/nomina-docentes-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login y consulta del usuario actual.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Login verifica correo/password contra el hash bcrypt y genera el JWT con
// los roles del usuario. Cuentas inactivas no pueden iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByCorreo(ctx, in.Correo)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Correo, usuario.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Me devuelve id, correo y roles del usuario autenticado (datos frescos de DB).
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.MeResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	return &dto.MeResponse{ID: usuario.ID, Correo: usuario.Correo, Roles: usuario.Roles}, nil
}
