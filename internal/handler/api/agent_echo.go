package api

import (
	"net/http"

	models "SolPulse/internal/domain/models"
	"SolPulse/internal/usecase"
	xhttp "SolPulse/pkg/http"
	xlogger "SolPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AgentEchoHandler exposes the agent dispatch surface over Echo.
type AgentEchoHandler struct {
	logger     *xlogger.Logger
	dispatcher *usecase.Dispatcher
}

func NewAgentEchoHandler(logger *xlogger.Logger, dispatcher *usecase.Dispatcher) *AgentEchoHandler {
	return &AgentEchoHandler{logger: logger, dispatcher: dispatcher}
}

func (h *AgentEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/agent", h.Agent)
	g.GET("/tools", h.Tools)
	e.GET("/healthz", h.Health)
}

// Agent handles one agent request. Operation failures ride inside the
// envelope, so the endpoint answers 200 unless the body itself is
// unreadable.
func (h *AgentEchoHandler) Agent(c echo.Context) error {
	req := &models.AgentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	resp := h.dispatcher.Handle(c.Request().Context(), req)
	return c.JSON(http.StatusOK, resp)
}

// Tools lists the registered tool definitions.
func (h *AgentEchoHandler) Tools(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tools": h.dispatcher.Definitions(),
	})
}

// Health reports liveness.
func (h *AgentEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
