package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*models.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*models.Usuario)}
}

func (f *fakeUsuarioRepo) Create(usuario *models.Usuario) error {
	if usuario.ID == uuid.Nil {
		usuario.ID = uuid.New()
	}
	f.usuarios[usuario.Email] = usuario
	return nil
}

func (f *fakeUsuarioRepo) GetByID(id string) (*models.Usuario, error) {
	for _, usuario := range f.usuarios {
		if usuario.ID.String() == id {
			return usuario, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsuarioRepo) GetByEmail(email string) (*models.Usuario, error) {
	if usuario, ok := f.usuarios[email]; ok {
		return usuario, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsuarioRepo) List() ([]models.Usuario, error) {
	var out []models.Usuario
	for _, usuario := range f.usuarios {
		out = append(out, *usuario)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) Update(usuario *models.Usuario) error {
	f.usuarios[usuario.Email] = usuario
	return nil
}

type noopAuditor struct{}

func (noopAuditor) Record(actor, accion, entidad, entidadID, detalle string) {}

func (noopAuditor) List(entidad, entidadID string, limit int) ([]audit.Entry, error) {
	return nil, nil
}

func newServiceForTest(t *testing.T) (*Service, *fakeUsuarioRepo) {
	t.Helper()
	repo := newFakeUsuarioRepo()
	return NewService(repo, NewJWTService("test-secret"), noopAuditor{}), repo
}

func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, email, password, rol string) *models.Usuario {
	t.Helper()

	hash, err := HashPassword(password)
	require.NoError(t, err)

	usuario := &models.Usuario{
		Email:        email,
		Nombre:       "Usuario Prueba",
		Iniciales:    "UP",
		PasswordHash: hash,
		Rol:          rol,
		Activo:       true,
	}
	require.NoError(t, repo.Create(usuario))
	return usuario
}

func TestLoginEmiteTokenValido(t *testing.T) {
	svc, repo := newServiceForTest(t)
	seedUsuario(t, repo, "compras@obratec.mx", "secreta123", models.RolCompras)

	resp, err := svc.Login(LoginRequest{Email: "Compras@obratec.mx ", Password: "secreta123"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, models.RolCompras, resp.Usuario.Rol)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "compras@obratec.mx", claims.Email)
	assert.Equal(t, models.RolCompras, claims.Rol)
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	svc, repo := newServiceForTest(t)
	seedUsuario(t, repo, "compras@obratec.mx", "secreta123", models.RolCompras)

	_, err := svc.Login(LoginRequest{Email: "compras@obratec.mx", Password: "otra"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	svc, _ := newServiceForTest(t)

	_, err := svc.Login(LoginRequest{Email: "nadie@obratec.mx", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	svc, repo := newServiceForTest(t)
	usuario := seedUsuario(t, repo, "baja@obratec.mx", "secreta123", models.RolPagos)
	usuario.Activo = false

	_, err := svc.Login(LoginRequest{Email: "baja@obratec.mx", Password: "secreta123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenFirmaIncorrecta(t *testing.T) {
	svc, _ := newServiceForTest(t)
	otro := NewJWTService("otro-secreto")

	token, _, err := otro.GenerateAccessToken(&TokenClaims{UserID: "x", Email: "x@y.z"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestEnsureAdmin(t *testing.T) {
	svc, repo := newServiceForTest(t)

	require.NoError(t, svc.EnsureAdmin("admin@obratec.mx", "cambiame"))

	usuario, err := repo.GetByEmail("admin@obratec.mx")
	require.NoError(t, err)
	assert.Equal(t, models.RolAdmin, usuario.Rol)
	require.NoError(t, VerifyPassword(usuario.PasswordHash, "cambiame"))

	// Idempotente
	require.NoError(t, svc.EnsureAdmin("admin@obratec.mx", "cambiame"))
}
