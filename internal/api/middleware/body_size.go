package middleware

import (
	"fmt"
	"net/http"

	"fridge-catalog/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BodySizeLimit 限制請求體大小
//
// 已知 Content-Length 超過上限時直接拒絕，其餘由 MaxBytesReader 在讀取時截斷，
// 此時 JSON 綁定會失敗並回傳 INVALID_REQUEST。
func BodySizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			common.LogWarn("Request body too large",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("max_size", maxSize),
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			e := common.ErrRequestTooLarge.Wrap(fmt.Errorf("max_size=%d", maxSize))
			c.AbortWithStatusJSON(e.Status, e.Response(true))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
