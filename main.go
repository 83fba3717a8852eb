package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/uilab/go-fast/framework/app"
	"github.com/uilab/go-fast/framework/container"
	"github.com/uilab/go-fast/framework/elements"
	gohttp "github.com/uilab/go-fast/framework/http"
	"github.com/uilab/go-fast/framework/routing"
	"github.com/uilab/go-fast/showcase"
)

func main() {
	application := app.New() // loads .env automatically
	application.Boot()

	// Register the showcase component kit with the root design system.
	ds := application.DesignSystem()
	ds.Register(showcase.Kit()...)

	platform := container.Resolve[*elements.Platform](application.Container, "platform")
	r := application.Router()

	// ── Catalog page ─────────────────────────────────────────────────────────

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		if gohttp.NewRequest(req).WantsJSON() {
			res.Success(platform.Names())
			return
		}
		var b strings.Builder
		b.WriteString("<h1>" + application.Config().App.Name + " component catalog</h1><ul>")
		for _, name := range platform.Names() {
			fmt.Fprintf(&b, `<li><a href="/api/v1/elements/%s">&lt;%s&gt;</a></li>`, name, name)
		}
		b.WriteString("</ul>")
		res.HTML(http.StatusOK, b.String())
	})

	// ── Catalog API ──────────────────────────────────────────────────────────

	r.Prefix("/api/v1", func(api *routing.Router) {

		// GET /api/v1/elements
		api.Get("/elements", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			prefix := gohttp.NewRequest(req).Query("prefix")
			out := make([]map[string]any, 0, platform.Count())
			for _, name := range platform.Names() {
				if prefix != "" && !strings.HasPrefix(name, prefix+"-") {
					continue
				}
				def, _ := platform.Get(name)
				out = append(out, map[string]any{
					"tag":        def.Name(),
					"type":       def.Type().Name(),
					"shadowRoot": def.ShadowRootMode(),
				})
			}
			res.Success(out)
		})

		// GET /api/v1/elements/{tag}
		api.Get("/elements/{tag}", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			tag := routing.Param(req, "tag")
			def, ok := platform.Get(tag)
			if !ok {
				res.NotFound(fmt.Sprintf("no element defined as <%s>", tag))
				return
			}
			res.Success(map[string]any{
				"tag":        def.Name(),
				"type":       def.Type().Name(),
				"shadowRoot": def.ShadowRootMode(),
				"attributes": def.Attributes(),
				"template":   def.Template(),
				"styles":     def.Styles(),
			})
		})
	})

	application.Run()
}
