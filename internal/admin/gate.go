// Package admin 管理接口鉴权
package admin

import (
	"crypto/subtle"

	"github.com/savsgio/gotils/strconv"
)

// Header 管理员令牌请求头
const Header = "x-admin-token"

// Authorizer 判断凭据是否具有管理权限
type Authorizer interface {
	Authorize(credential string) bool
}

// SharedSecret 与共享密钥完全一致才放行，密钥为空时一律拒绝
type SharedSecret string

func (s SharedSecret) Authorize(credential string) bool {
	if s == "" || credential == "" {
		return false
	}
	return subtle.ConstantTimeCompare(strconv.S2B(string(s)), strconv.S2B(credential)) == 1
}

// AuthorizerFunc 函数适配为 Authorizer
type AuthorizerFunc func(credential string) bool

func (f AuthorizerFunc) Authorize(credential string) bool {
	return f(credential)
}
