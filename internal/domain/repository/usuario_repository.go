package repository

import (
	"context"

	"github.com/sisacad/nomina-docentes-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Los roles se cargan y guardan junto con el usuario (tabla usuario_roles).
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	GetByCorreo(ctx context.Context, correo string) (*entity.Usuario, error)
	Update(ctx context.Context, usuario *entity.Usuario) error
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Usuario, int, error)
	// TieneReferencias indica si el usuario aparece como coordinador o como
	// creador de cargas (decide baja lógica vs borrado físico).
	TieneReferencias(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}
