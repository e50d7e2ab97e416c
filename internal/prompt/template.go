package prompt

import "fmt"

const template = `You are a helpful assistant trained to answer questions strictly from the
given document content. If the answer is not contained in the document,
respond exactly with "Information not found."

Document:
---------------------
%s
---------------------

Question: %s
Answer:`

// Renderer substitutes a question into the fixed prompt template around
// an immutable document. It is safe for concurrent use.
type Renderer struct {
	document string
}

func NewRenderer(document string) *Renderer {
	return &Renderer{document: document}
}

// Render returns the prompt for question. Any string is accepted, including "".
func (r *Renderer) Render(question string) string {
	return Render(r.document, question)
}

func (r *Renderer) Document() string {
	return r.document
}

// Render fills the template with document and question as-is.
func Render(document, question string) string {
	return fmt.Sprintf(template, document, question)
}
