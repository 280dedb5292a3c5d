package ui

import (
	"github.com/gofiber/template/html/v2"
)

// NewEngine loads the HTML views under dir with the template helpers they use.
func NewEngine(dir string, debug bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Debug(debug)
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	return engine
}
