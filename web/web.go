// Package web holds the assets embedded into the contact service binary.
package web

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

// ContactFormView is the view name of the contact form page.
const ContactFormView = "templates/contact-form"

// Templates holds the embedded page templates.
//
//go:embed templates/*.html
var Templates embed.FS

// ContactFormPage is the data rendered into the contact form template.
type ContactFormPage struct {
	Title  string
	Action string
}

// Views returns a Fiber view engine over the embedded templates.
func Views() *html.Engine {
	return html.NewFileSystem(http.FS(Templates), ".html")
}
