package token

// Keywords are tokenized but, except for "function", never lowered:
// control flow is out of scope for the generator.
var keywordList = []string{"function", "if", "else", "for", "while", "return"}

var keywords = func() map[string]struct{} {
	m := make(map[string]struct{}, len(keywordList))
	for _, kw := range keywordList {
		m[kw] = struct{}{}
	}
	return m
}()

// typePrefixes are the base type names that open a compact type string.
var typePrefixes = []string{"int", "signed", "unsigned"}

// IsKeyword возвращает true если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Keywords returns the fixed keyword set in lookup order.
func Keywords() []string {
	return keywordList
}

// TypePrefixes returns the base type names recognized by the lexer.
func TypePrefixes() []string {
	return typePrefixes
}
