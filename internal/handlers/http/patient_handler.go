package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/healthcamp-backend/internal/domain/ports"
	"github.com/rafabene/healthcamp-backend/internal/handlers/dto"
	"github.com/rafabene/healthcamp-backend/internal/handlers/middleware"
	"github.com/rafabene/healthcamp-backend/internal/services"
)

// watchInterval é o período de atualização do feed de contagem diária
const watchInterval = 5 * time.Second

// PatientHandler lida com requisições HTTP de prontuários.
// Todas as rotas assumem o middleware de autenticação: o id do usuário
// autenticado é o escopo de dono de cada operação.
type PatientHandler struct {
	patientService *services.PatientService
	logger         ports.Logger
	upgrader       websocket.Upgrader
}

// NewPatientHandler cria um novo PatientHandler
func NewPatientHandler(patientService *services.PatientService, logger ports.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		logger:         logger,
		upgrader: websocket.Upgrader{
			// CORS já é tratado no middleware; o handshake aceita qualquer origem
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// CreatePatient registra um novo prontuário para o usuário autenticado
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	record, err := h.patientService.AddPatient(c.Request.Context(), ownerID, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPatientResponse(record))
}

// GetPatient busca um prontuário por id
func (h *PatientHandler) GetPatient(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Patient"))
		return
	}

	record, err := h.patientService.GetPatient(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponse(record))
}

// ListPatients lista os prontuários do usuário autenticado
func (h *PatientHandler) ListPatients(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	records, err := h.patientService.ListPatients(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponses(records))
}

// SearchPatients busca prontuários por palavra-chave (?q=)
func (h *PatientHandler) SearchPatients(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	records, err := h.patientService.SearchPatients(c.Request.Context(), ownerID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponses(records))
}

// UpdatePatient sobrescreve os campos mutáveis de um prontuário
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Patient"))
		return
	}

	var req dto.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	record, err := h.patientService.UpdatePatient(c.Request.Context(), ownerID, id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPatientResponse(record))
}

// DeletePatient remove um prontuário do usuário autenticado
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Patient"))
		return
	}

	if err := h.patientService.DeletePatient(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CountToday retorna o relatório de atendimentos do dia corrente
func (h *PatientHandler) CountToday(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	count, err := h.patientService.CountToday(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TodayCountResponse{
		Date:  time.Now().Format("2006-01-02"),
		Count: count,
	})
}

// WatchToday mantém uma conexão websocket empurrando a contagem do dia em
// intervalos fixos (equivalente ao contador do dashboard da aplicação
// original, sem polling do cliente)
func (h *PatientHandler) WatchToday(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Leitor descarta mensagens do cliente e detecta o fechamento
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		count, err := h.patientService.CountToday(ctx, ownerID)
		if err != nil {
			h.logger.Warn("today count feed failed", "owner_user_id", ownerID, "error", err)
			return
		}

		payload := dto.TodayCountResponse{
			Date:  time.Now().Format("2006-01-02"),
			Count: count,
		}
		if err := conn.WriteJSON(payload); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
