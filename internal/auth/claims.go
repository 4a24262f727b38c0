package auth

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// AdminClaims are carried by tokens that may call the /admin routes
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *AdminClaims) IsAdmin() bool { return c != nil && c.Role == RoleAdmin }
