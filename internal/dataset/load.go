package dataset

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/mcpv/episcreen/internal/screening"
)

// LoadResponses reads and validates the patient-responses document.
// Patient order follows the JSON document, not Go map iteration, so
// matrix row order is reproducible across runs.
func LoadResponses(path string) (*Roster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	if err := validateDocument(responsesSchema, raw); err != nil {
		return nil, err
	}

	roster := &Roster{responses: make(map[string]screening.Responses)}
	gjson.ParseBytes(raw).ForEach(func(id, patient gjson.Result) bool {
		responses := make(screening.Responses)
		patient.ForEach(func(question, answer gjson.Result) bool {
			responses[question.String()] = answer.String()
			return true
		})
		roster.ids = append(roster.ids, id.String())
		roster.responses[id.String()] = responses
		return true
	})
	return roster, nil
}

// LoadCodes reads and validates the billing-codes document.
func LoadCodes(path string) (CodeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read billing codes: %w", err)
	}
	if err := validateDocument(codesSchema, raw); err != nil {
		return nil, err
	}

	table := make(CodeTable)
	gjson.ParseBytes(raw).ForEach(func(id, list gjson.Result) bool {
		codes := []string{}
		list.ForEach(func(_, code gjson.Result) bool {
			codes = append(codes, code.String())
			return true
		})
		table[id.String()] = codes
		return true
	})
	return table, nil
}
