package components

import (
	"embed"

	"github.com/a-h/templ"
)

//go:embed assets
var Assets embed.FS

const stylesheetPath = "assets/card.css"

// Stylesheet returns the embedded card stylesheet.
func Stylesheet() string {
	css, err := Assets.ReadFile(stylesheetPath)
	if err != nil {
		return ""
	}

	return string(css)
}

func inlineStylesheet() templ.Component {
	return templ.Raw("<style>" + Stylesheet() + "</style>")
}
