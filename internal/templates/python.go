package templates

import "github.com/andbhavyaa/skeldir/internal/domain"

func pythonTree(project string) *domain.Node {
	mainPy := `def main():
    print("Hello, World!")


if __name__ == "__main__":
    main()
`

	gitignore := `__pycache__/
*.py[cod]
.venv/
dist/
*.egg-info/
`

	tests := domain.NewDirectory()
	tests.Insert("__init__.py", domain.NewLiteralFile(""))
	tests.Insert("test_main.py", domain.NewLiteralFile(`from main import main


def test_main():
    main()
`))

	root := domain.NewDirectory()
	root.Insert("main.py", domain.NewLiteralFile(mainPy))
	root.Insert("tests", tests)
	root.Insert("requirements.txt", domain.NewLiteralFile(""))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A Python project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
