package templates

import (
	"fmt"

	"github.com/andbhavyaa/skeldir/internal/domain"
)

func flutterTree(project string) *domain.Node {
	mainDart := fmt.Sprintf(`import 'package:flutter/material.dart';

void main() {
  runApp(const MyApp());
}

class MyApp extends StatelessWidget {
  const MyApp({super.key});

  @override
  Widget build(BuildContext context) {
    return MaterialApp(
      title: '%s',
      home: Scaffold(
        appBar: AppBar(title: const Text('%s')),
        body: const Center(child: Text('Hello, World!')),
      ),
    );
  }
}
`, project, project)

	pubspec := fmt.Sprintf(`name: %s
description: A new Flutter project.
publish_to: "none"
version: 1.0.0+1

environment:
  sdk: ">=3.0.0 <4.0.0"

dependencies:
  flutter:
    sdk: flutter

dev_dependencies:
  flutter_test:
    sdk: flutter

flutter:
  uses-material-design: true
`, project)

	gitignore := `.dart_tool/
.packages
build/
.flutter-plugins
`

	lib := domain.NewDirectory()
	lib.Insert("main.dart", domain.NewLiteralFile(mainDart))

	root := domain.NewDirectory()
	root.Insert("lib", lib)
	root.Insert("test", domain.NewDirectory())
	root.Insert("pubspec.yaml", domain.NewLiteralFile(pubspec))
	root.Insert("README.md", domain.NewLiteralFile(readme(project, "A Flutter project.")))
	root.Insert(".gitignore", domain.NewLiteralFile(gitignore))
	return root
}
