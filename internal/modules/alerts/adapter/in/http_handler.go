package in

import (
	"github.com/gin-gonic/gin"

	alertsin "missionctl/internal/modules/alerts/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase alertsin.Usecase
}

func NewHTTPHandler(usecase alertsin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/alerts", h.list)
}

func (h HTTPHandler) list(c *gin.Context) {
	httpx.OK(c, h.usecase.Alerts(c.Request.Context()))
}
