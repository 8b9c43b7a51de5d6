package in

import (
	"github.com/gin-gonic/gin"

	jobsin "missionctl/internal/modules/jobs/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase jobsin.Usecase
}

func NewHTTPHandler(usecase jobsin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.board)
	rg.GET("/pipeline", h.board)
}

func (h HTTPHandler) board(c *gin.Context) {
	httpx.OK(c, h.usecase.Board(c.Request.Context()))
}
