package in

import (
	"github.com/gin-gonic/gin"

	goalsin "missionctl/internal/modules/goals/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase goalsin.Usecase
}

func NewHTTPHandler(usecase goalsin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/goals", h.list)
}

func (h HTTPHandler) list(c *gin.Context) {
	httpx.OK(c, h.usecase.Goals(c.Request.Context()))
}
