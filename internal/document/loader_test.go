package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptySourceIsDefaultResume(t *testing.T) {
	txt, err := Load(context.Background(), "", "ignored")
	assert.NilError(t, err)
	assert.Equal(t, txt, DefaultResume)
	assert.Assert(t, strings.Contains(txt, "Gowtham R"))
}

func TestLoad_TextFileVerbatim(t *testing.T) {
	body := "Jane Doe\n\tSenior Go Engineer\n"
	path := writeTemp(t, "resume.txt", body)

	txt, err := Load(context.Background(), path, "")
	assert.NilError(t, err)
	assert.Equal(t, txt, body)
}

func TestLoad_MarkdownFile(t *testing.T) {
	body := "# Jane Doe\n\nSenior **Go** engineer\nbased in Berlin.\n\n## Skills\n\n- Go\n- Postgres\n"
	path := writeTemp(t, "resume.md", body)

	txt, err := Load(context.Background(), path, "")
	assert.NilError(t, err)
	assert.Equal(t, txt, "Jane Doe\nSenior Go engineer based in Berlin.\nSkills\n- Go\n- Postgres")
}

func TestLoad_EmptyFileRejected(t *testing.T) {
	path := writeTemp(t, "blank.txt", "  \n\t")

	_, err := Load(context.Background(), path, "")
	assert.Assert(t, errors.Is(err, ErrEmptyDocument))
}

func TestLoad_UnsupportedType(t *testing.T) {
	path := writeTemp(t, "resume.odt", "x")

	_, err := Load(context.Background(), path, "")
	assert.ErrorContains(t, err, `unsupported document type ".odt"`)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), "")
	assert.ErrorContains(t, err, "read document")
}

func TestSanitize(t *testing.T) {
	in := "Gowtham  R\r\n\tData   Analyst\r\r\n  \nSkills:\tSQL"
	assert.Equal(t, Sanitize(in), "Gowtham R\nData Analyst\nSkills: SQL")
}

func TestDocxXMLText(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Go</w:t><w:br/><w:t>SQL</w:t></w:r></w:p>
</w:body>
</w:document>`

	txt, err := docxXMLText(content)
	assert.NilError(t, err)
	assert.Equal(t, txt, "Jane Doe\nSkills: Go\nSQL")
}

func TestDescribeHidesDSN(t *testing.T) {
	assert.Equal(t, describe("postgres://user:secret@db/resumes"), "postgres document")
	assert.Equal(t, describe("./resume.txt"), "./resume.txt")
}
