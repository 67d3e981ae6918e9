package templates

import (
	"fmt"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func javaTree(project string) *domain.Node {
	mainJava := `public class Main {
    public static void main(String[] args) {
        System.out.println("Hello, World!");
    }
}
`

	pom := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
         xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
    <modelVersion>4.0.0</modelVersion>
    <groupId>com.example</groupId>
    <artifactId>%s</artifactId>
    <version>1.0-SNAPSHOT</version>
    <properties>
        <maven.compiler.source>17</maven.compiler.source>
        <maven.compiler.target>17</maven.compiler.target>
    </properties>
</project>
`, project)

	gitignore := `target/
*.class
*.jar
`

	java := domain.NewDirectory()
	java.Insert("Main.java", domain.NewLiteralFile(mainJava))

	mainDir := domain.NewDirectory()
	mainDir.Insert("java", java)

	testDir := domain.NewDirectory()
	testDir.Insert("java", domain.NewDirectory())

	src := domain.NewDirectory()
	src.Insert("main", mainDir)
	src.Insert("test", testDir)

	root := domain.NewDirectory()
	root.Insert("src", src)
	root.Insert("pom.xml", domain.NewLiteralFile(pom))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A Java project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
