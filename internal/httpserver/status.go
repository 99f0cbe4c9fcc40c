package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github-slack-bridge/pkg/response"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>GitHub Slack Bridge</title></head>
<body>
<h1>GitHub Slack Bridge</h1>
<p>Relays GitHub push, pull_request and workflow_run events to Slack.</p>
<p>Point a repository webhook at <code>POST /webhook/github/&lt;channel&gt;</code>.</p>
<p>Currently failing builds: <a href="/status">/status</a></p>
</body>
</html>
`

// indexPage serves a small landing page.
// @Summary Landing page
// @Description Static page describing the bridge
// @Tags System
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (srv *HTTPServer) indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// buildStatus reports the currently failing builds.
// @Summary Build status
// @Description Snapshot of failing builds within the retention window
// @Tags Status
// @Accept json
// @Produce json
// @Success 200 {object} tracker.Status "Failing builds"
// @Router /status [get]
func (srv *HTTPServer) buildStatus(c *gin.Context) {
	response.OK(c, srv.statusProvider.GetBuildStatus())
}
