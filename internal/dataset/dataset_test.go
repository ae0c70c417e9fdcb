package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcpv/episcreen/internal/screening"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// fullRecord renders a JSON object carrying every survey question,
// with the given question answered.
func fullRecord(answered map[string]string) string {
	record := "{"
	first := true
	for _, q := range screening.DefaultQuestionSet().AllQuestions() {
		if !first {
			record += ","
		}
		first = false
		record += fmt.Sprintf("%q:%q", q, answered[q])
	}
	return record + "}"
}

func TestLoadResponses_PreservesDocumentOrder(t *testing.T) {
	doc := fmt.Sprintf(`{"zeta":%s,"alpha":%s,"mid":%s}`,
		fullRecord(nil), fullRecord(nil), fullRecord(nil))
	path := writeFile(t, "responses.json", doc)

	roster, err := LoadResponses(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, roster.IDs())
	assert.Equal(t, 3, roster.Len())
}

func TestLoadResponses_RejectsNonStringAnswer(t *testing.T) {
	path := writeFile(t, "responses.json", `{"p1":{"q":42}}`)
	_, err := LoadResponses(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestLoadResponses_RejectsInvalidJSON(t *testing.T) {
	path := writeFile(t, "responses.json", `{"p1":`)
	_, err := LoadResponses(path)
	require.Error(t, err)
}

func TestLoadCodes(t *testing.T) {
	path := writeFile(t, "codes.json", `{"p1":["G40.0","R55"],"p2":[]}`)
	codes, err := LoadCodes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"G40.0", "R55"}, codes["p1"])
	assert.Empty(t, codes["p2"])
}

func TestLoadCodes_RejectsNonArray(t *testing.T) {
	path := writeFile(t, "codes.json", `{"p1":"G40.0"}`)
	_, err := LoadCodes(path)
	require.Error(t, err)
}

func TestCodeTable_OrderedFollowsRoster(t *testing.T) {
	table := CodeTable{"b": {"R55"}, "a": {"G40.0"}}
	ordered := table.Ordered([]string{"a", "b"})
	assert.Equal(t, [][]string{{"G40.0"}, {"R55"}}, ordered)
}

func TestCheck_PatientCountMismatch(t *testing.T) {
	path := writeFile(t, "responses.json", fmt.Sprintf(`{"p1":%s}`, fullRecord(nil)))
	roster, err := LoadResponses(path)
	require.NoError(t, err)

	err = Check(roster, CodeTable{"p1": {}, "p2": {}}, screening.DefaultQuestionSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patient count mismatch")
}

func TestCheck_MissingQuestion(t *testing.T) {
	path := writeFile(t, "responses.json", `{"p1":{"How long do your seizures last?":""}}`)
	roster, err := LoadResponses(path)
	require.NoError(t, err)

	err = Check(roster, CodeTable{"p1": {}}, screening.DefaultQuestionSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing question")
}

func TestCheck_UnknownExtraQuestion(t *testing.T) {
	answered := map[string]string{}
	record := fullRecord(answered)
	// Append a question outside the schema.
	record = record[:len(record)-1] + `,"Bogus question?":""}`
	path := writeFile(t, "responses.json", fmt.Sprintf(`{"p1":%s}`, record))
	roster, err := LoadResponses(path)
	require.NoError(t, err)

	err = Check(roster, CodeTable{"p1": {}}, screening.DefaultQuestionSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestCheck_Passes(t *testing.T) {
	doc := fmt.Sprintf(`{"p1":%s,"p2":%s}`,
		fullRecord(map[string]string{"How long do your seizures last?": "a few seconds"}),
		fullRecord(nil))
	path := writeFile(t, "responses.json", doc)
	roster, err := LoadResponses(path)
	require.NoError(t, err)

	err = Check(roster, CodeTable{"p1": {"G40.0"}, "p2": {}}, screening.DefaultQuestionSet())
	require.NoError(t, err)
}
