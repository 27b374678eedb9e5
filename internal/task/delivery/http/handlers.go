package http

import (
	"github.com/gin-gonic/gin"

	"adhd-task-assistant/internal/middleware"
	"adhd-task-assistant/pkg/response"
)

// HandleUtterance godoc
// @Summary     Act on an utterance
// @Description Recognizes the intent of a spoken or typed utterance and applies it (create, complete, edit, delete, list, help).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       false "Caller label for request logs; not authenticated, single-user service"
// @Param       body      body   utteranceReq true  "Utterance"
// @Success     200 {object} utteranceResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Storage unavailable"
// @Router      /api/v1/utterances [POST]
func (h *handler) HandleUtterance(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUtteranceReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.HandleUtterance(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.task.delivery.http.HandleUtterance: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUtteranceResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns open tasks through a ranked view, each with an explanation.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       view         query string false "prioritized (default), optimal, quick, hyperfocus"
// @Param       energy_level query int    false "Current energy 1-5 (default 3)"
// @Param       max_minutes  query int    false "Quick view limit (default 15)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Storage unavailable"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.task.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task, freshly scored, with its explanation.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Storage unavailable"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Errorf(ctx, "internal.task.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateStatus godoc
// @Summary     Change task status
// @Description Moves a task to pending, inProgress, paused, completed or cancelled.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Task ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} updateStatusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.task.delivery.http.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateStatusResp(output))
}
