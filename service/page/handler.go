package page

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cheng762/coin-search/service/search"
)

// Handler 把 Presenter 的 View 渲染成 HTML 和 JSON
type Handler struct {
	presenter *search.Presenter
	logger    *zap.Logger
}

func NewHandler(presenter *search.Presenter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{presenter: presenter, logger: logger}
}

// Register 注册模板和路由
func (h *Handler) Register(router *gin.Engine) {
	router.SetHTMLTemplate(Templates())

	router.GET("/", h.Index)
	router.GET("/results", h.Results)
	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	api.GET("/coins", h.Coins)
	api.POST("/coins/:id/select", h.Select)
}

// Index 整页渲染，q 为输入框里的搜索词
func (h *Handler) Index(c *gin.Context) {
	view := h.presenter.ViewFor(c.Query("q"))
	c.HTML(http.StatusOK, "index", gin.H{
		"View":        view,
		"Placeholder": search.Placeholder,
	})
}

// Results 只渲染结果区域
func (h *Handler) Results(c *gin.Context) {
	c.HTML(http.StatusOK, "results", h.presenter.ViewFor(c.Query("q")))
}

func (h *Handler) Coins(c *gin.Context) {
	c.JSON(http.StatusOK, h.presenter.ViewFor(c.Query("q")))
}

func (h *Handler) Select(c *gin.Context) {
	msg, err := h.presenter.Select(c.Param("id"))
	switch {
	case errors.Is(err, search.ErrNotLoaded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, search.ErrUnknownCoin):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.logger.Error("select failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.presenter.State().Kind().String()})
}
