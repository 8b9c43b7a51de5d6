package in

import (
	"github.com/gin-gonic/gin"

	overviewin "missionctl/internal/modules/overview/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase overviewin.Usecase
}

func NewHTTPHandler(usecase overviewin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/overview", h.overview)
}

func (h HTTPHandler) overview(c *gin.Context) {
	out, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, out)
}
