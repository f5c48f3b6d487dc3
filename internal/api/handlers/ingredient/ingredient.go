package ingredient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fridge-catalog/internal/core/catalog"
	core "fridge-catalog/internal/core/ingredient"
	"fridge-catalog/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResolveRequest 食材解析請求，mentions 與 recipes 擇一
type ResolveRequest struct {
	Mentions []string      `json:"mentions,omitempty"`
	Recipes  []core.Recipe `json:"recipes,omitempty"`
}

var errEmptyRequest = errors.New("mentions or recipes required")

// validate 檢查 mentions 與 recipes 擇一
func (r *ResolveRequest) validate() error {
	switch {
	case len(r.Mentions) > 0 && len(r.Recipes) > 0:
		return common.NewValidationError("mentions and recipes are mutually exclusive")
	case len(r.Mentions) == 0 && len(r.Recipes) == 0:
		return errEmptyRequest
	}
	return nil
}

// CatalogResponse 目錄查詢響應
type CatalogResponse struct {
	Count   int          `json:"count"`
	Entries []core.Entry `json:"entries"`
}

// Handler 食材解析處理程序
type Handler struct {
	service *catalog.Service
	debug   bool
}

// NewHandler 創建新的食材解析處理程序
func NewHandler(service *catalog.Service, debug bool) *Handler {
	return &Handler{
		service: service,
		debug:   debug,
	}
}

// HandleResolve 解析食材名稱或整批食譜
func (h *Handler) HandleResolve(c *gin.Context) {
	requestID := requestIDFrom(c)

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		h.writeError(c, common.ErrInvalidRequest.Wrap(err))
		return
	}
	if err := req.validate(); err != nil {
		if common.IsValidationError(err) {
			h.writeError(c, common.ErrInvalidRequest.Wrap(err))
		} else {
			h.writeError(c, common.ErrEmptyPass)
		}
		return
	}

	start := time.Now()
	var (
		result   *catalog.PassResult
		err      error
		mentions int
	)
	if len(req.Recipes) > 0 {
		for _, r := range req.Recipes {
			mentions += len(r.MainIngredients) + len(r.SubIngredients)
		}
		result, err = h.service.ResolveRecipes(c.Request.Context(), req.Recipes)
	} else {
		mentions = len(req.Mentions)
		result, err = h.service.ResolveMentions(c.Request.Context(), req.Mentions)
	}

	if err != nil {
		common.LogPass(requestID, mentions, 0, time.Since(start), err)
		h.writeError(c, passError(err))
		return
	}

	common.LogPass(requestID, mentions, len(result.Fabricated), time.Since(start), nil)
	c.JSON(http.StatusOK, result)
}

// HandleCatalog 回傳目前完整目錄（含新增食材）
func (h *Handler) HandleCatalog(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !knownCategory(category) {
		h.writeError(c, common.ErrInvalidRequest.Wrap(common.NewValidationError("unknown category "+category)))
		return
	}

	entries, err := h.service.Entries(c.Request.Context())
	if err != nil {
		common.LogError("讀取目錄失敗",
			zap.Error(err),
			zap.String("request_id", requestIDFrom(c)),
		)
		h.writeError(c, passError(err))
		return
	}

	if category != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Category == category {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	c.JSON(http.StatusOK, CatalogResponse{
		Count:   len(entries),
		Entries: entries,
	})
}

// HandleNormalize 回傳名稱的清理結果與比對 token
func (h *Handler) HandleNormalize(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.writeError(c, common.ErrInvalidRequest.Wrap(common.NewValidationError("name is required")))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":     name,
		"cleaned":  core.CleanName(name),
		"token":    core.NormalizeToken(name),
		"category": core.GuessCategory(name),
	})
}

// passError 將解析錯誤轉為 API 錯誤
func passError(err error) *common.CustomError {
	switch {
	case errors.Is(err, catalog.ErrTooManyMentions):
		return common.ErrTooManyMentions.Wrap(err)
	case errors.Is(err, core.ErrIDSpaceExhausted):
		return common.ErrInternalError.Wrap(err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return common.ErrGatewayTimeout.Wrap(err)
	default:
		return common.ErrStoreUnavailable.Wrap(err)
	}
}

func knownCategory(category string) bool {
	for _, c := range core.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

func (h *Handler) writeError(c *gin.Context, e *common.CustomError) {
	c.AbortWithStatusJSON(e.Status, e.Response(h.debug))
}

// requestIDFrom 取得請求 ID，缺少時產生新的
func requestIDFrom(c *gin.Context) string {
	if id := requestid.Get(c); id != "" {
		return id
	}
	id := common.GenerateUUID()
	c.Header("X-Request-ID", id)
	return id
}
