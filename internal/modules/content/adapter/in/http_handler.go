package in

import (
	"github.com/gin-gonic/gin"

	contentin "missionctl/internal/modules/content/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase contentin.Usecase
}

func NewHTTPHandler(usecase contentin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/content", h.items)
	rg.GET("/content/stages", h.stages)
}

func (h HTTPHandler) items(c *gin.Context) {
	httpx.OK(c, h.usecase.Items(c.Request.Context()))
}

func (h HTTPHandler) stages(c *gin.Context) {
	httpx.OK(c, h.usecase.Stages(c.Request.Context()))
}
