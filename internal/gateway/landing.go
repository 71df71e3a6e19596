// ABOUTME: Landing page for GET /, service description rendered from markdown
// ABOUTME: Rendered once at startup with goldmark and served as static bytes

package gateway

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// landingMarkdown is the service front page source.
const landingMarkdown = `# 🌾 FarmSmart AgriTech API

AI-powered farming assistant for Pakistani agriculture. Queries are routed to
domain specialists: weather, market prices, pest diagnosis, soil, fertilizers,
yield, planning, and a master knowledge expert.

## Endpoints

- **POST /query** — main Q&A endpoint, auto-routes to the best specialist
- **GET /agents** — list all specialists and their expertise
- **GET /health** — system health and cache status
- **GET /session/{id}** — session history
- **DELETE /session/{id}** — clear a session
- **GET /sessions/active** — sessions active inside the idle window

## Coverage

Crops, soil, irrigation, fertilizers, pests and diseases, farm machinery,
government schemes, marketing, organic farming, climate-smart practices.

## Sessions

Follow-up questions inside 15 minutes stay with the same specialist, so
"aur lahore me?" after a price question is understood as a price question.
`

// pageShell wraps rendered markdown in a minimal styled HTML document.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>%s</title>
<style>
body { font-family: Arial, sans-serif; background: #f0f4f8; margin: 0 auto; max-width: 760px; padding: 24px; color: #2c3e50; }
h1 { color: #2c3e50; }
h2 { color: #34495e; margin-top: 30px; }
code { background: #e8eef4; padding: 2px 5px; border-radius: 4px; }
li { margin: 4px 0; }
</style>
</head>
<body>
%s
<small>Version %s</small>
</body>
</html>
`

// renderLanding converts the landing markdown into the final HTML page.
func renderLanding() ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(landingMarkdown), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return []byte(fmt.Sprintf(pageShell, ServiceName, body.String(), ServiceVersion)), nil
}
