package in

import (
	"github.com/gin-gonic/gin"

	lessonsin "missionctl/internal/modules/lessons/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase lessonsin.Usecase
}

func NewHTTPHandler(usecase lessonsin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/lessons", h.entries)
	rg.GET("/lessons/summary", h.summary)
}

func (h HTTPHandler) entries(c *gin.Context) {
	httpx.OK(c, h.usecase.Entries(c.Request.Context()))
}

func (h HTTPHandler) summary(c *gin.Context) {
	httpx.OK(c, h.usecase.Summary(c.Request.Context()))
}
