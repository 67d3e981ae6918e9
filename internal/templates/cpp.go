package templates

import (
	"fmt"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func cppTree(project string) *domain.Node {
	mainCpp := `#include <iostream>

int main() {
    std::cout << "Hello, World!" << std::endl;
    return 0;
}
`

	makefile := fmt.Sprintf(`CXX = g++
CXXFLAGS = -Wall -Wextra -std=c++17 -Iinclude

%s: src/main.cpp
	$(CXX) $(CXXFLAGS) -o $@ $^

.PHONY: clean
clean:
	rm -f %s
`, project, project)

	gitignore := fmt.Sprintf(`%s
*.o
*.out
`, project)

	src := domain.NewDirectory()
	src.Insert("main.cpp", domain.NewLiteralFile(mainCpp))

	root := domain.NewDirectory()
	root.Insert("src", src)
	root.Insert("include", domain.NewDirectory())
	root.Insert("Makefile", domain.NewLiteralFile(makefile))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A C++ project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
