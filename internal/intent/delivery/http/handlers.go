package http

import (
	"github.com/gin-gonic/gin"

	"adhd-task-assistant/pkg/response"
)

// Recognize godoc
// @Summary     Recognize intent
// @Description Classifies an utterance without acting on it. Blank input yields intent "unknown" with confidence 0.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       body body recognizeReq true "Utterance"
// @Success     200 {object} recognizeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/recognize [POST]
func (h *handler) Recognize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecognizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newRecognizeResp(h.rc.Recognize(ctx, req.Utterance)))
}

// CacheStats godoc
// @Summary     Intent cache stats
// @Description Returns entry count, capacity, hits and misses of the intent cache.
// @Tags        Intents
// @Produce     json
// @Success     200 {object} cacheStatsResp
// @Router      /api/v1/intents/cache [GET]
func (h *handler) CacheStats(c *gin.Context) {
	response.OK(c, h.newCacheStatsResp(h.rc.CacheStats()))
}

// ClearCache godoc
// @Summary     Clear intent cache
// @Description Drops every cached recognition result.
// @Tags        Intents
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/intents/cache [DELETE]
func (h *handler) ClearCache(c *gin.Context) {
	h.rc.ClearCache()
	h.l.Infof(c.Request.Context(), "internal.intent.delivery.http.ClearCache: cache cleared")
	response.OK(c, nil)
}
