package templates

import (
	"fmt"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func nodeTree(project string) *domain.Node {
	indexJs := `console.log("Hello, World!");
`

	packageJSON := fmt.Sprintf(`{
  "name": "%s",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "start": "node index.js"
  },
  "license": "MIT"
}
`, project)

	gitignore := `node_modules/
npm-debug.log
.env
`

	root := domain.NewDirectory()
	root.Insert("index.js", domain.NewLiteralFile(indexJs))
	root.Insert("package.json", domain.NewLiteralFile(packageJSON))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A Node.js project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
