package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// loginRequest 不做必填校验：字段为空也是一组错误的凭据，
// 应当走统一的 401 分支而不是 400
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理管理员登录请求，校验通过后返回不透明令牌
// 无论用户名还是密码出错，都返回同一条笼统的错误信息
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := a.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AuthRequired 是保护后台接口的认证中间件
// 从 Authorization 头提取 Bearer 令牌并做存在性校验，失败一律返回 401
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)
		if err := a.auth.Validate(token); err != nil {
			if errors.Is(err, service.ErrInvalidToken) {
				respondError(c, http.StatusUnauthorized, "Unauthorized")
			} else {
				respondError(c, http.StatusInternalServerError, err.Error())
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
