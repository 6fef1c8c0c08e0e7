package deps

import (
	"time"

	"github.com/MrSnakeDoc/folio/internal/content"
	"github.com/MrSnakeDoc/folio/internal/logger"
	"github.com/MrSnakeDoc/folio/internal/render"
	"github.com/MrSnakeDoc/folio/internal/session"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Content     *content.Store       // site document
	Persistence *content.Persistence // backend handle for readiness checks
	Renderer    *render.Renderer
	Sessions    *session.Registry
	Credentials session.Credentials // the one accepted admin pair

	SecureCookies    bool     // Secure flag on the session cookie
	LoginBurst       int      // admin write throttling burst (0 = off)
	LoginRefillPerMn int      // admin write throttling refill rate
	AllowedHosts     []string // Host headers allowed on admin routes
	AllowedCIDRS     []string // IPs allowed to access healthz/readyz endpoints
	TrustProxy       bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)
}
