// Package grammar maps file extensions to the tree-sitter language and
// capture query used to extract symbols from files written in that
// language.
package grammar

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	css "github.com/tree-sitter/tree-sitter-css/bindings/go"
	golang "github.com/tree-sitter/tree-sitter-go/bindings/go"
	html "github.com/tree-sitter/tree-sitter-html/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	jsonlang "github.com/tree-sitter/tree-sitter-json/bindings/go"
	markdown "github.com/tree-sitter-grammars/tree-sitter-markdown/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Info pairs a tree-sitter language with the capture query used to extract
// symbols and references from it.
type Info struct {
	Language *sitter.Language
	Query    string
}

var registry = map[string]Info{
	"rs":  {Language: sitter.NewLanguage(rust.Language()), Query: RustQuery},
	"py":  {Language: sitter.NewLanguage(python.Language()), Query: PythonQuery},
	"js":  {Language: sitter.NewLanguage(javascript.Language()), Query: JavaScriptQuery},
	"jsx": {Language: sitter.NewLanguage(javascript.Language()), Query: JavaScriptQuery},
	"ts":  {Language: sitter.NewLanguage(typescript.LanguageTypescript()), Query: TypeScriptQuery},
	"tsx": {Language: sitter.NewLanguage(typescript.LanguageTSX()), Query: TypeScriptQuery},
	"go":  {Language: sitter.NewLanguage(golang.Language()), Query: GoQuery},
	"c":   {Language: sitter.NewLanguage(c.Language()), Query: CQuery},
	"h":   {Language: sitter.NewLanguage(c.Language()), Query: CQuery},
	"cpp": {Language: sitter.NewLanguage(cpp.Language()), Query: CppQuery},
	"hpp": {Language: sitter.NewLanguage(cpp.Language()), Query: CppQuery},
	"cc":  {Language: sitter.NewLanguage(cpp.Language()), Query: CppQuery},
	"cxx": {Language: sitter.NewLanguage(cpp.Language()), Query: CppQuery},
	"java": {Language: sitter.NewLanguage(java.Language()), Query: JavaQuery},
	"rb":  {Language: sitter.NewLanguage(ruby.Language()), Query: RubyQuery},
	"cs":  {Language: sitter.NewLanguage(csharp.Language()), Query: CSharpQuery},
	"php": {Language: sitter.NewLanguage(php.LanguagePHP()), Query: PHPQuery},
	"json": {Language: sitter.NewLanguage(jsonlang.Language()), Query: JSONQuery},
	"html": {Language: sitter.NewLanguage(html.Language()), Query: HTMLQuery},
	"css": {Language: sitter.NewLanguage(css.Language()), Query: CSSQuery},
	"md":  {Language: sitter.NewLanguage(markdown.Language()), Query: MarkdownQuery},
}

// Lookup returns the language/query pair registered for extension, and
// false if the extension is not recognized. extension must not include the
// leading dot ("go", not ".go").
func Lookup(extension string) (Info, bool) {
	info, ok := registry[extension]
	return info, ok
}
