package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// md renders FAQ answers, which may contain markdown.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

const pageTemplate = `<!DOCTYPE html>
<html lang="fa" dir="rtl">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Service}}</title>
<style>
body { font-family: Tahoma, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; background: #fafafa; color: #222; }
h1 { font-size: 1.4rem; }
.faq { background: #fff; border: 1px solid #ddd; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.faq h2 { font-size: 1.05rem; margin: 0 0 .5rem; }
.empty { color: #777; }
</style>
</head>
<body>
<h1>{{.Service}} — سوالات متداول</h1>
{{if not .Items}}<p class="empty">هنوز سوالی ثبت نشده است.</p>{{end}}
{{range .Items}}<div class="faq"><h2>{{.Question}}</h2><div>{{.Answer}}</div></div>
{{end}}
</body>
</html>
`

var pageTmpl = template.Must(template.New("faq").Parse(pageTemplate))

type pageItem struct {
	Question string
	Answer   template.HTML
}

// handleIndex renders the FAQ collection as an HTML page, converting each
// answer from markdown.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	entries := s.store.Snapshot()

	items := make([]pageItem, 0, len(entries))
	for _, entry := range entries {
		var buf bytes.Buffer
		if err := md.Convert([]byte(entry.Answer), &buf); err != nil {
			log.Printf("server: rendering answer: %v", err)
			buf.Reset()
			buf.WriteString(template.HTMLEscapeString(entry.Answer))
		}
		items = append(items, pageItem{
			Question: entry.Question,
			Answer:   template.HTML(buf.String()),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, map[string]any{
		"Service": s.cfg.ServiceName,
		"Items":   items,
	}); err != nil {
		log.Printf("server: rendering page: %v", err)
	}
}
