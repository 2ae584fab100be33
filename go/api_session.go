package storefrontserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	sessionsports "github.com/Apurer/huerto-store/internal/domains/sessions/ports"
	apierrors "github.com/Apurer/huerto-store/internal/shared/errors"
)

// sessionContextKey holds the verified token on the gin context.
const sessionContextKey = "storefront.session"

// SessionAPI issues and revokes the back-office token.
//
// Issuing takes no credentials: any caller that reaches POST /api/session gets
// the back-office token. Deployments outside development must disable it with
// WithIssueDisabled and hand the token out of band.
type SessionAPI struct {
	sessions      sessionsports.Service
	issueDisabled bool
}

// SessionOption configures SessionAPI.
type SessionOption func(*SessionAPI)

// WithIssueDisabled makes POST /api/session answer 403.
func WithIssueDisabled() SessionOption {
	return func(api *SessionAPI) {
		api.issueDisabled = true
	}
}

func NewSessionAPI(sessions sessionsports.Service, opts ...SessionOption) SessionAPI {
	api := SessionAPI{sessions: sessions}
	for _, opt := range opts {
		opt(&api)
	}
	return api
}

// SessionToken is returned when a token is issued.
type SessionToken struct {
	Token string `json:"token"`
}

// Post /api/session
// Issues a new back-office token, replacing the previous one. Unauthenticated; development only.
func (api *SessionAPI) IssueSession(c *gin.Context) {
	if api.issueDisabled {
		responder.Respond(c, apierrors.ErrForbidden.WithDetail("session issuing is disabled"))
		return
	}
	token, err := api.sessions.Issue(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SessionToken{Token: token})
}

// Delete /api/session
// Revokes the back-office token
func (api *SessionAPI) RevokeSession(c *gin.Context) {
	if err := api.sessions.Revoke(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RequireSession rejects requests whose bearer token does not match the stored token.
func RequireSession(sessions sessionsports.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if err := sessions.Verify(c.Request.Context(), token); err != nil {
			respondServiceError(c, err)
			c.Abort()
			return
		}
		c.Set(sessionContextKey, token)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// sessionFrom returns the token verified by RequireSession. Editors are keyed by it.
func sessionFrom(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
