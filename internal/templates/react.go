package templates

import (
	"fmt"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func reactTree(project string) *domain.Node {
	indexHTML := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
  </body>
</html>
`, project)

	appJs := fmt.Sprintf(`function App() {
  return (
    <div className="App">
      <h1>%s</h1>
    </div>
  );
}

export default App;
`, project)

	indexJs := `import React from "react";
import ReactDOM from "react-dom/client";
import App from "./App";

const root = ReactDOM.createRoot(document.getElementById("root"));
root.render(
  <React.StrictMode>
    <App />
  </React.StrictMode>
);
`

	packageJSON := fmt.Sprintf(`{
  "name": "%s",
  "version": "0.1.0",
  "private": true,
  "dependencies": {
    "react": "^18.2.0",
    "react-dom": "^18.2.0",
    "react-scripts": "5.0.1"
  },
  "scripts": {
    "start": "react-scripts start",
    "build": "react-scripts build",
    "test": "react-scripts test"
  }
}
`, project)

	gitignore := `node_modules/
build/
.env.local
`

	public := domain.NewDirectory()
	public.Insert("index.html", domain.NewLiteralFile(indexHTML))

	src := domain.NewDirectory()
	src.Insert("App.js", domain.NewLiteralFile(appJs))
	src.Insert("index.js", domain.NewLiteralFile(indexJs))

	root := domain.NewDirectory()
	root.Insert("public", public)
	root.Insert("src", src)
	root.Insert("package.json", domain.NewLiteralFile(packageJSON))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A React project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
