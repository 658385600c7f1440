package ide

import (
	"net/http"
	"strings"
	"text/template"
)

// DefaultTitle is used when no title is given
const DefaultTitle = "GraphiQL"

// PlaygroundParams configures the explorer page
type PlaygroundParams struct {
	// Endpoint is the url the explorer sends operations to
	Endpoint string
	Title    string
}

// the builtin js and html functions escape values for their embedding
// context so the endpoint cannot break out of the fetcher config
var playgroundTemplate = template.Must(template.New("playground").Parse(graphiqlExplorerTemplate))

// RenderPlaygroundPage renders the GraphiQL explorer page for the endpoint
func RenderPlaygroundPage(params PlaygroundParams) string {
	if params.Title == "" {
		params.Title = DefaultTitle
	}

	var b strings.Builder
	// the template only formats strings so executing it cannot fail
	_ = playgroundTemplate.ExecuteTemplate(&b, "index", params)
	return b.String()
}

// ServePlayground writes the explorer page
func ServePlayground(w http.ResponseWriter, params PlaygroundParams) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(RenderPlaygroundPage(params)))
}

const graphiqlExplorerTemplate = `
{{ define "index" -}}
<!DOCTYPE html>
<html lang="en">
  <head>
    <title>{{ html .Title }}</title>
    <style>
      body {
        height: 100%;
        margin: 0;
        width: 100%;
        overflow: hidden;
      }

      #graphiql {
        height: 100vh;
      }
    </style>

    <link rel="stylesheet" href="https://unpkg.com/graphiql/graphiql.min.css" />
    <link rel="stylesheet" href="https://unpkg.com/@graphiql/plugin-explorer/dist/style.css" />
    <link rel="shortcut icon" href="https://graphql.org/favicon.ico" />
  </head>

  <body>
    <div id="graphiql">Loading...</div>

    <script
      src="https://unpkg.com/react@17/umd/react.development.js"
      integrity="sha512-Vf2xGDzpqUOEIKO+X2rgTLWPY+65++WPwCHkX2nFMu9IcstumPsf/uKKRd5prX3wOu8Q0GBylRpsDB26R6ExOg=="
      crossorigin="anonymous"
    ></script>
    <script
      src="https://unpkg.com/react-dom@17/umd/react-dom.development.js"
      integrity="sha512-Wr9OKCTtq1anK0hq5bY3X/AvDI5EflDSAh0mE9gma+4hl+kXdTJPKZ3TwLMBcrgUeoY0s3dq9JjhCQc7vddtFg=="
      crossorigin="anonymous"
    ></script>
    <script
      src="https://unpkg.com/graphiql/graphiql.min.js"
      crossorigin="anonymous"
    ></script>
    <script
      src="https://unpkg.com/@graphiql/plugin-explorer@0.1.12/dist/graphiql-plugin-explorer.umd.js"
      integrity="sha512-Fjas/uSkzvsFjbv4jqU9nt4ulU7LDjiMAXW2YFTYD96NgKS1fhhAsGR4b2k2VaVLsE29aia3vyobAq9TNzusvA=="
      crossorigin="anonymous"
    ></script>

    <script>
      var fetcher = GraphiQL.createFetcher({
        url: '{{ js .Endpoint }}',
      });

      function GraphiQLWithExplorer() {
        var [query, setQuery] = React.useState('query MyQuery {\n  __typename\n}');
        var explorerPlugin = GraphiQLPluginExplorer.useExplorerPlugin({
          query: query,
          onEdit: setQuery,
        });
        return React.createElement(GraphiQL, {
          fetcher: fetcher,
          defaultEditorToolsVisibility: true,
          plugins: [explorerPlugin],
          query: query,
          onEditQuery: setQuery,
        });
      }

      ReactDOM.render(
        React.createElement(GraphiQLWithExplorer),
        document.getElementById('graphiql'),
      );
    </script>
  </body>
</html>
{{ end }}
`
