package middleware

import (
	"net/http"
	"time"
	"yatube/internal/utils"

	"github.com/gin-gonic/gin"
)

// IndexCacheTTL is how long the rendered global feed stays valid.
// Writes do not invalidate it; readers may see a feed this stale.
const IndexCacheTTL = 20 * time.Second

type cachedResponse struct {
	ContentType string
	Body        []byte
}

// bodyCapture tees the response body while it is written out.
type bodyCapture struct {
	gin.ResponseWriter
	body []byte
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}

// CachePage serves the full rendered response from the cache, keyed by
// the request URI so every page number caches separately. Only 200
// responses are stored. Entries die by TTL or utils cache Purge, never
// by writes elsewhere.
func CachePage(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "page:" + c.Request.URL.RequestURI()

		if cached := utils.GetCache().Get(key); cached != nil {
			if resp, ok := cached.(cachedResponse); ok {
				c.Data(http.StatusOK, resp.ContentType, resp.Body)
				c.Abort()
				return
			}
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture
		c.Next()

		if capture.Status() == http.StatusOK {
			utils.GetCache().Set(key, cachedResponse{
				ContentType: capture.Header().Get("Content-Type"),
				Body:        capture.body,
			}, ttl)
		}
	}
}
