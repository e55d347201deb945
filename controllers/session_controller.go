package controllers

import (
	"cart-widget/middleware"
	"cart-widget/models"
	"cart-widget/services"
	"cart-widget/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionIssuer starts cart sessions and hands their tokens to the browser.
type SessionIssuer struct {
	Sessions     *services.SessionService
	Secret       string
	TTL          time.Duration
	SecureCookie bool
	Logger       *zap.Logger
}

func (i *SessionIssuer) Issue(c *gin.Context) (services.Session, string, error) {
	session := i.Sessions.Start()

	token, err := utils.GenerateSessionToken(i.Secret, session.ID, i.TTL)
	if err != nil {
		return services.Session{}, "", err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, int(i.TTL.Seconds()), "/", "", i.SecureCookie, true)

	i.Logger.Info("cart session started", zap.String("session_id", session.ID))
	return session, token, nil
}

// Claimed returns the session id from a validly signed token. The session
// may since have been replaced.
func (i *SessionIssuer) Claimed(c *gin.Context) (string, bool) {
	token := middleware.SessionToken(c)
	if token == "" {
		return "", false
	}
	claims, err := utils.ValidateSessionToken(i.Secret, token)
	if err != nil {
		return "", false
	}
	return claims.SessionID, true
}

// Resolve returns the active session id carried by the request, if any.
func (i *SessionIssuer) Resolve(c *gin.Context) (string, bool) {
	sessionID, ok := i.Claimed(c)
	if !ok || !i.Sessions.IsCurrent(sessionID) {
		return "", false
	}
	return sessionID, true
}

type SessionController struct {
	issuer    *SessionIssuer
	presenter CartPresenter
}

func NewSessionController(issuer *SessionIssuer, presenter CartPresenter) *SessionController {
	return &SessionController{issuer: issuer, presenter: presenter}
}

// @Summary Start a cart session
// @Description Discard the current cart and start a new, empty one
// @Tags Session
// @Produce json
// @Success 201 {object} models.Response{data=models.SessionResponse}
// @Failure 500 {object} models.ErrorResponse
// @Router /session [post]
func (ctrl *SessionController) StartSession(c *gin.Context) {
	session, token, err := ctrl.issuer.Issue(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Session started",
		Data: models.SessionResponse{
			SessionID: session.ID,
			Token:     token,
			Cart:      ctrl.presenter.View(models.CartSnapshot{Items: []models.LineItem{}}),
		},
	})
}
