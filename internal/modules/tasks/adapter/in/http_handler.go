package in

import (
	"github.com/gin-gonic/gin"

	tasksin "missionctl/internal/modules/tasks/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase tasksin.Usecase
}

func NewHTTPHandler(usecase tasksin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/tasks", h.buckets)
}

func (h HTTPHandler) buckets(c *gin.Context) {
	httpx.OK(c, h.usecase.Buckets(c.Request.Context()))
}
