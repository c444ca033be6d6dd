package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexHTML = "Weather information<br/><br/>" +
	"Available routes:<br/>" +
	"/api/v1.0/precipitation : gives precipitation information<br/>" +
	"/api/v1.0/stations : lists available stations<br/>" +
	"/api/v1.0/tobs : lists temperature observations<br/>" +
	"/api/v1.0/&lt;start&gt; and /api/v1.0/&lt;start&gt;/&lt;end&gt; : temperature information between dates<br/>"

// getIndex handles GET /
func (s *HTTPServerAdapter) getIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
