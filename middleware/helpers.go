package middleware

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v4"

	"github.com/kalimuthu765/sports-connect/models"
)

func GetAccountIDFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value(accountContextKey).(jwt.MapClaims)
	if !ok {
		return 0, errors.New("account claims not found in context or invalid type")
	}

	idClaim, ok := claims[jwtClaimAccountID]
	if !ok {
		return 0, fmt.Errorf("missing %q claim in token", jwtClaimAccountID)
	}

	// Numbers survive a JSON round trip as float64.
	idFloat, ok := idClaim.(float64)
	if !ok {
		if idStr, okStr := idClaim.(string); okStr {
			if id, err := strconv.Atoi(idStr); err == nil && id > 0 {
				return id, nil
			}
		}
		return 0, fmt.Errorf("invalid type for %q claim: %T", jwtClaimAccountID, idClaim)
	}
	if idFloat != float64(int(idFloat)) {
		return 0, fmt.Errorf("%q claim is not an integer: %f", jwtClaimAccountID, idFloat)
	}

	id := int(idFloat)
	if id <= 0 {
		return 0, fmt.Errorf("invalid account ID value in %q claim: %d", jwtClaimAccountID, id)
	}
	return id, nil
}

func GetAccountRoleFromContext(ctx context.Context) (models.AccountRole, error) {
	claims, ok := ctx.Value(accountContextKey).(jwt.MapClaims)
	if !ok {
		return "", errors.New("account claims not found in context or invalid type")
	}

	roleClaim, ok := claims[jwtClaimRole]
	if !ok {
		return "", fmt.Errorf("missing %q claim in token", jwtClaimRole)
	}
	roleStr, ok := roleClaim.(string)
	if !ok {
		return "", fmt.Errorf("invalid type for %q claim: expected string, got %T", jwtClaimRole, roleClaim)
	}

	role := models.AccountRole(roleStr)
	if !role.Valid() {
		return "", fmt.Errorf("invalid role value in claim: %q", roleStr)
	}
	return role, nil
}
