package expr

import "github.com/nickyhof/PlutoQuery/query"

// Where filters s by program. bind builds the activation for each element.
// Evaluation errors end the query.
func Where[T any](s query.Seq[T], program *Program, bind func(T) map[string]any) query.Seq[T] {
	if bind == nil {
		return s.Filter(nil)
	}
	return s.Filter(func(item T) (bool, error) {
		return program.Eval(bind(item))
	})
}
