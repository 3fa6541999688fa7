package auth

import (
	"github.com/cmlabs-hris/hrms-core-go/internal/domain/user"
)

// Identity is the authenticated caller as carried by an access token.
type Identity struct {
	ID           string
	EmployeeCode string
	Email        string
	Username     string
	Role         user.Role
	ReportingTo  *string
	SessionID    string
}

// Claims returns the token claims for the identity.
func (i Identity) Claims() map[string]interface{} {
	claims := map[string]interface{}{
		"id":            i.ID,
		"employee_code": i.EmployeeCode,
		"email":         i.Email,
		"username":      i.Username,
		"role":          string(i.Role),
		"sid":           i.SessionID,
	}
	if i.ReportingTo != nil {
		claims["reporting_to"] = *i.ReportingTo
	}
	return claims
}

// IdentityFromClaims rebuilds an Identity from verified token claims.
func IdentityFromClaims(claims map[string]interface{}) (Identity, error) {
	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	if id == "" || !user.Role(role).IsValid() {
		return Identity{}, ErrInvalidToken
	}

	identity := Identity{ID: id, Role: user.Role(role)}
	identity.EmployeeCode, _ = claims["employee_code"].(string)
	identity.Email, _ = claims["email"].(string)
	identity.Username, _ = claims["username"].(string)
	identity.SessionID, _ = claims["sid"].(string)
	if reportingTo, ok := claims["reporting_to"].(string); ok && reportingTo != "" {
		identity.ReportingTo = &reportingTo
	}
	return identity, nil
}
