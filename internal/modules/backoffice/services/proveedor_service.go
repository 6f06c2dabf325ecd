package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/core/folio"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProveedorRequest struct {
	Codigo        string          `json:"codigo"`
	Nombre        string          `json:"nombre"`
	RazonSocial   string          `json:"razon_social"`
	RFC           string          `json:"rfc"`
	Direccion     string          `json:"direccion"`
	Contacto      string          `json:"contacto"`
	Telefono      string          `json:"telefono"`
	Email         string          `json:"email"`
	LineaCredito  decimal.Decimal `json:"linea_credito"`
	DiasCredito   int             `json:"dias_credito"`
	Observaciones string          `json:"observaciones"`
}

type ProveedorService struct {
	proveedorRepo repositories.ProveedorRepo
	auditor       audit.Recorder
}

func NewProveedorService(proveedorRepo repositories.ProveedorRepo, auditor audit.Recorder) *ProveedorService {
	return &ProveedorService{proveedorRepo: proveedorRepo, auditor: auditor}
}

func (s *ProveedorService) Create(actor string, req CreateProveedorRequest) (*models.Proveedor, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	// When no short code was captured, derive one from the name.
	codigo := folio.Normalize(req.Codigo)
	if codigo == "" {
		codigo = folio.CodigoProveedor(req.Nombre)
	}

	if _, err := s.proveedorRepo.GetByCodigo(codigo); err == nil {
		verr := newValidationError()
		verr.add("codigo", "ya existe un proveedor con ese código")
		return nil, verr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error verificando código de proveedor: %w", err)
	}

	proveedor := &models.Proveedor{
		Codigo:        codigo,
		Nombre:        strings.TrimSpace(req.Nombre),
		RazonSocial:   req.RazonSocial,
		RFC:           strings.ToUpper(strings.TrimSpace(req.RFC)),
		Direccion:     req.Direccion,
		Contacto:      req.Contacto,
		Telefono:      req.Telefono,
		Email:         strings.TrimSpace(req.Email),
		LineaCredito:  req.LineaCredito.Round(2),
		DiasCredito:   req.DiasCredito,
		Activo:        true,
		Observaciones: req.Observaciones,
	}

	if err := s.proveedorRepo.Create(proveedor); err != nil {
		return nil, fmt.Errorf("error creando proveedor: %w", err)
	}

	s.auditor.Record(actor, audit.AccionCrear, "proveedor", proveedor.ID.String(), proveedor.Codigo)
	utils.LogInfo("proveedor creado", map[string]interface{}{
		"proveedor_id": proveedor.ID.String(),
		"codigo":       proveedor.Codigo,
	})
	return proveedor, nil
}

func (s *ProveedorService) GetByID(id string) (*models.Proveedor, error) {
	return s.proveedorRepo.GetByID(id)
}

func (s *ProveedorService) List(soloActivos bool, limit int) ([]models.Proveedor, error) {
	return s.proveedorRepo.List(soloActivos, limit)
}

func (s *ProveedorService) Update(actor, id string, req CreateProveedorRequest) (*models.Proveedor, error) {
	proveedor, err := s.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	codigo := folio.Normalize(req.Codigo)
	if codigo == "" {
		codigo = proveedor.Codigo
	}
	if codigo != proveedor.Codigo {
		if _, err := s.proveedorRepo.GetByCodigo(codigo); err == nil {
			verr := newValidationError()
			verr.add("codigo", "ya existe un proveedor con ese código")
			return nil, verr
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error verificando código de proveedor: %w", err)
		}
	}

	proveedor.Codigo = codigo
	proveedor.Nombre = strings.TrimSpace(req.Nombre)
	proveedor.RazonSocial = req.RazonSocial
	proveedor.RFC = strings.ToUpper(strings.TrimSpace(req.RFC))
	proveedor.Direccion = req.Direccion
	proveedor.Contacto = req.Contacto
	proveedor.Telefono = req.Telefono
	proveedor.Email = strings.TrimSpace(req.Email)
	proveedor.LineaCredito = req.LineaCredito.Round(2)
	proveedor.DiasCredito = req.DiasCredito
	proveedor.Observaciones = req.Observaciones

	if err := s.proveedorRepo.Update(proveedor); err != nil {
		return nil, fmt.Errorf("error actualizando proveedor: %w", err)
	}

	s.auditor.Record(actor, audit.AccionActualizar, "proveedor", proveedor.ID.String(), proveedor.Codigo)
	return proveedor, nil
}

// Desactivar soft-disables a supplier so it stops appearing in active
// listings without breaking historic orders.
func (s *ProveedorService) Desactivar(actor, id string) (*models.Proveedor, error) {
	proveedor, err := s.proveedorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	proveedor.Activo = false
	if err := s.proveedorRepo.Update(proveedor); err != nil {
		return nil, fmt.Errorf("error desactivando proveedor: %w", err)
	}

	s.auditor.Record(actor, audit.AccionActualizar, "proveedor", id, "desactivado")
	return proveedor, nil
}

func (s *ProveedorService) validate(req CreateProveedorRequest) error {
	verr := newValidationError()
	if strings.TrimSpace(req.Nombre) == "" {
		verr.add("nombre", "el nombre es obligatorio")
	}
	if req.LineaCredito.IsNegative() {
		verr.add("linea_credito", "la línea de crédito no puede ser negativa")
	}
	if req.DiasCredito < 0 {
		verr.add("dias_credito", "los días de crédito no pueden ser negativos")
	}
	if email := strings.TrimSpace(req.Email); email != "" && !strings.Contains(email, "@") {
		verr.add("email", "el correo no es válido")
	}
	return verr.orNil()
}
