package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/obratec/obras-backoffice-be/internal/core/audit"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/models"
	"github.com/obratec/obras-backoffice-be/internal/modules/backoffice/repositories"
	"github.com/obratec/obras-backoffice-be/internal/shared/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateObraRequest struct {
	Codigo             string          `json:"codigo"`
	Nombre             string          `json:"nombre"`
	Cliente            string          `json:"cliente"`
	NumeroContrato     string          `json:"numero_contrato"`
	MontoContrato      decimal.Decimal `json:"monto_contrato"`
	Direccion          string          `json:"direccion"`
	FechaInicio        *time.Time      `json:"fecha_inicio"`
	FechaFinEstimada   *time.Time      `json:"fecha_fin_estimada"`
	Residente          string          `json:"residente"`
	ResidenteIniciales string          `json:"residente_iniciales"`
	Observaciones      string          `json:"observaciones"`
}

type ObraService struct {
	obraRepo repositories.ObraRepo
	auditor  audit.Recorder
}

func NewObraService(obraRepo repositories.ObraRepo, auditor audit.Recorder) *ObraService {
	return &ObraService{obraRepo: obraRepo, auditor: auditor}
}

func (s *ObraService) Create(actor string, req CreateObraRequest) (*models.Obra, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	codigo := strings.TrimSpace(req.Codigo)
	if _, err := s.obraRepo.GetByCodigo(codigo); err == nil {
		verr := newValidationError()
		verr.add("codigo", "ya existe una obra con ese código")
		return nil, verr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error verificando código de obra: %w", err)
	}

	obra := &models.Obra{
		Codigo:             codigo,
		Nombre:             strings.TrimSpace(req.Nombre),
		Cliente:            req.Cliente,
		NumeroContrato:     req.NumeroContrato,
		MontoContrato:      req.MontoContrato.Round(2),
		Direccion:          req.Direccion,
		FechaInicio:        req.FechaInicio,
		FechaFinEstimada:   req.FechaFinEstimada,
		Residente:          req.Residente,
		ResidenteIniciales: strings.ToUpper(strings.TrimSpace(req.ResidenteIniciales)),
		Estado:             models.ObraActiva,
		Observaciones:      req.Observaciones,
	}

	if err := s.obraRepo.Create(obra); err != nil {
		return nil, fmt.Errorf("error creando obra: %w", err)
	}

	s.auditor.Record(actor, audit.AccionCrear, "obra", obra.ID.String(), obra.Codigo)
	utils.LogInfo("obra creada", map[string]interface{}{
		"obra_id": obra.ID.String(),
		"codigo":  obra.Codigo,
	})
	return obra, nil
}

func (s *ObraService) GetByID(id string) (*models.Obra, error) {
	return s.obraRepo.GetByID(id)
}

func (s *ObraService) List(estado string, limit int) ([]models.Obra, error) {
	return s.obraRepo.List(estado, limit)
}

func (s *ObraService) Update(actor, id string, req CreateObraRequest) (*models.Obra, error) {
	obra, err := s.obraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	codigo := strings.TrimSpace(req.Codigo)
	if codigo != obra.Codigo {
		if _, err := s.obraRepo.GetByCodigo(codigo); err == nil {
			verr := newValidationError()
			verr.add("codigo", "ya existe una obra con ese código")
			return nil, verr
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error verificando código de obra: %w", err)
		}
	}

	obra.Codigo = codigo
	obra.Nombre = strings.TrimSpace(req.Nombre)
	obra.Cliente = req.Cliente
	obra.NumeroContrato = req.NumeroContrato
	obra.MontoContrato = req.MontoContrato.Round(2)
	obra.Direccion = req.Direccion
	obra.FechaInicio = req.FechaInicio
	obra.FechaFinEstimada = req.FechaFinEstimada
	obra.Residente = req.Residente
	obra.ResidenteIniciales = strings.ToUpper(strings.TrimSpace(req.ResidenteIniciales))
	obra.Observaciones = req.Observaciones

	if err := s.obraRepo.Update(obra); err != nil {
		return nil, fmt.Errorf("error actualizando obra: %w", err)
	}

	s.auditor.Record(actor, audit.AccionActualizar, "obra", obra.ID.String(), obra.Codigo)
	return obra, nil
}

func (s *ObraService) CambiarEstado(actor, id, estado string) (*models.Obra, error) {
	switch estado {
	case models.ObraActiva, models.ObraPausada, models.ObraFinalizada,
		models.ObraCancelada, models.ObraArchivada:
	default:
		verr := newValidationError()
		verr.add("estado", "estado de obra no reconocido")
		return nil, verr
	}

	obra, err := s.obraRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	anterior := obra.Estado
	obra.Estado = estado
	if err := s.obraRepo.Update(obra); err != nil {
		return nil, fmt.Errorf("error cambiando estado de obra: %w", err)
	}

	s.auditor.Record(actor, audit.AccionEstado, "obra", obra.ID.String(),
		fmt.Sprintf("%s → %s", anterior, estado))
	return obra, nil
}

func (s *ObraService) Delete(actor, id string) error {
	obra, err := s.obraRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.obraRepo.Delete(id); err != nil {
		return fmt.Errorf("error eliminando obra: %w", err)
	}
	s.auditor.Record(actor, audit.AccionEliminar, "obra", id, obra.Codigo)
	return nil
}

func (s *ObraService) validate(req CreateObraRequest) error {
	verr := newValidationError()
	if strings.TrimSpace(req.Codigo) == "" {
		verr.add("codigo", "el código es obligatorio")
	}
	if strings.TrimSpace(req.Nombre) == "" {
		verr.add("nombre", "el nombre es obligatorio")
	}
	if req.MontoContrato.IsNegative() {
		verr.add("monto_contrato", "el monto de contrato no puede ser negativo")
	}
	return verr.orNil()
}
