package auth

import (
	"github.com/BlueMoonStudio/BM-Backend/internal/utils"
)

// Verifier adapts the Codec to the middleware's TokenVerifier interface.
type Verifier struct {
	Codec *Codec
}

func (v Verifier) VerifyToken(token string) (utils.SessionClaims, error) {
	claims, err := v.Codec.Verify(token)
	if err != nil {
		return utils.SessionClaims{}, err
	}

	return utils.SessionClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}
