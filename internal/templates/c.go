package templates

import (
	"fmt"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func cTree(project string) *domain.Node {
	mainC := `#include <stdio.h>

int main(void) {
    printf("Hello, World!\n");
    return 0;
}
`

	makefile := fmt.Sprintf(`CC = gcc
CFLAGS = -Wall -Wextra -Iinclude

%s: src/main.c
	$(CC) $(CFLAGS) -o $@ $^

.PHONY: clean
clean:
	rm -f %s
`, project, project)

	gitignore := fmt.Sprintf(`%s
*.o
*.out
`, project)

	src := domain.NewDirectory()
	src.Insert("main.c", domain.NewLiteralFile(mainC))

	root := domain.NewDirectory()
	root.Insert("src", src)
	root.Insert("include", domain.NewDirectory())
	root.Insert("Makefile", domain.NewLiteralFile(makefile))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A C project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
