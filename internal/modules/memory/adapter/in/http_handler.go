package in

import (
	"strings"

	"github.com/gin-gonic/gin"

	"missionctl/internal/modules/memory/dto"
	memoryin "missionctl/internal/modules/memory/port/in"
	"missionctl/internal/platform/httpx"
)

type HTTPHandler struct {
	usecase memoryin.Usecase
}

func NewHTTPHandler(usecase memoryin.Usecase) HTTPHandler {
	return HTTPHandler{usecase: usecase}
}

func (h HTTPHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/memory/priorities", h.priorities)
	rg.GET("/memory/notes", h.notes)
	rg.GET("/memory/ideas", h.ideas)
	rg.GET("/agents", h.agents)
	rg.GET("/search", h.search)
}

func (h HTTPHandler) priorities(c *gin.Context) {
	httpx.OK(c, h.usecase.Priorities(c.Request.Context()))
}

func (h HTTPHandler) notes(c *gin.Context) {
	limit, err := httpx.IntQuery(c, "limit", 0, 1, memoryin.MaxNoteLimit)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	out, err := h.usecase.Notes(c.Request.Context(), dto.NotesInput{Limit: limit})
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, out)
}

func (h HTTPHandler) ideas(c *gin.Context) {
	httpx.OK(c, h.usecase.Ideas(c.Request.Context()))
}

func (h HTTPHandler) agents(c *gin.Context) {
	httpx.OK(c, h.usecase.Agents(c.Request.Context()))
}

func (h HTTPHandler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		httpx.BadRequest(c, "query parameter q is required")
		return
	}
	out, err := h.usecase.Search(c.Request.Context(), dto.SearchInput{Query: q})
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	httpx.OK(c, out)
}
