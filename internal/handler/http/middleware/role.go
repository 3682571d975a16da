package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/warelogix/warehouse-backend-go/internal/domain/auth"
	"github.com/warelogix/warehouse-backend-go/internal/domain/employee"
	"github.com/warelogix/warehouse-backend-go/internal/handler/http/response"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrManagerAccessRequired)
			return
		}

		if employee.Role(roleStr) != employee.RoleManager {
			response.HandleError(w, auth.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
