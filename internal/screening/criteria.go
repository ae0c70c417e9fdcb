package screening

// CriteriaSpec maps a criteria category to the patterns that satisfy
// it. A flag matches when every answered category matches; categories
// the patient left blank are Undefined and non-blocking unless all of
// them are.
type CriteriaSpec map[Category][]Pattern

// Evaluator scores one criteria specification against one patient's
// answers. The normalizer and question schema are injected so the
// evaluator holds no ambient state.
type Evaluator struct {
	norm      *Normalizer
	questions QuestionSet
}

func NewEvaluator(norm *Normalizer, questions QuestionSet) *Evaluator {
	return &Evaluator{norm: norm, questions: questions}
}

// Evaluate returns Yes when every answered category matches its
// patterns, No when any answered category fails, and Undefined when
// no category has any answer to judge.
func (e *Evaluator) Evaluate(responses Responses, spec CriteriaSpec) Value {
	answered := false
	for cat, patterns := range spec {
		result := e.evaluateCategory(responses, cat, patterns)
		if result == Undefined {
			continue
		}
		if result == No {
			return No
		}
		answered = true
	}
	if !answered {
		return Undefined
	}
	return Yes
}

// evaluateCategory restricts the answers to the category's question
// list, joins and normalizes them, and searches the patterns.
func (e *Evaluator) evaluateCategory(responses Responses, cat Category, patterns []Pattern) Value {
	var answers []string
	for _, question := range e.questions[cat] {
		if answer := responses[question]; answer != "" {
			answers = append(answers, answer)
		}
	}
	if len(answers) == 0 {
		return Undefined
	}
	text := e.norm.JoinAnswers(answers)
	return boolValue(Search(text, patterns))
}
