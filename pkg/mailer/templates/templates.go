package templates

import (
	"bytes"
	"embed"
	htmpl "html/template"
	texttpl "text/template"
)

//go:embed *.tmpl
var FS embed.FS

// DigestData feeds the score digest templates.
type DigestData struct {
	Name         string
	AppName      string
	Life         int
	Health       int
	Wealth       int
	Habit        int
	Goal         int
	Relationship int
}

var (
	digestHTML = htmpl.Must(htmpl.ParseFS(FS, "digest.html.tmpl"))
	digestText = texttpl.Must(texttpl.ParseFS(FS, "digest.txt.tmpl"))
)

// RenderDigest renders the text and HTML bodies of a score digest email.
func RenderDigest(data DigestData) (text string, html string, err error) {
	var tb, hb bytes.Buffer
	if err = digestText.Execute(&tb, data); err != nil {
		return "", "", err
	}
	if err = digestHTML.Execute(&hb, data); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}
