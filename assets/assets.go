// Package assets embeds the page template, stylesheet and script of the generated map.
package assets

import _ "embed"

var (
	//go:embed map.html.tpl
	MapTemplate string

	//go:embed style.css
	Style string

	//go:embed script.js
	Script string
)
