package api

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
)

// RegisterDocsRoutes registers documentation routes on the given mux.
//
// GET /                  → Redirect to /docs
//
// GET /docs              → Swagger UI
//
// GET /docs/openapi      → OpenAPI document (JSON)
//
// GET /docs/openapi.yaml → OpenAPI document as embedded
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleRootRedirect)
	mux.HandleFunc("GET /docs", handleSwaggerUI)
	mux.HandleFunc("GET /docs/openapi", handleOpenAPISpec)
	mux.HandleFunc("GET /docs/openapi.yaml", handleOpenAPIYAML)
}

func handleRootRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusMovedPermanently)
}

func handleOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "Failed to load OpenAPI document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		http.Error(w, "Failed to encode OpenAPI document", http.StatusInternalServerError)
	}
}

func handleOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPISpec) //nolint:errcheck // Nothing useful to do if write fails
}

type swaggerPage struct {
	Title   string
	Version string
	SpecURL string
}

func handleSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "Failed to load OpenAPI document", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	page := swaggerPage{Title: doc.Info.Title, Version: doc.Info.Version, SpecURL: "/docs/openapi"}
	if err := swaggerUI.Execute(&buf, page); err != nil {
		http.Error(w, "Failed to render docs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w) //nolint:errcheck // Nothing useful to do if write fails
}

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.Title}} {{.Version}}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body style="margin:0">
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: {{.SpecURL}},
      dom_id: "#swagger-ui",
      deepLinking: true,
      displayRequestDuration: true,
      defaultModelRendering: "model"
    });
  </script>
</body>
</html>`))
