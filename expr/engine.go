package expr

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"
)

var (
	ErrCompile    = errors.New("expression does not compile")
	ErrNotBoolean = errors.New("expression must return boolean")
	ErrNoProgram  = errors.New("no program")
)

// Engine compiles CEL boolean expressions over map-shaped variables.
type Engine struct {
	env      *cel.Env
	prgCache sync.Map // map[string]*Program
}

// Program is a compiled expression, safe for concurrent evaluation.
type Program struct {
	expression string
	prg        cel.Program
}

// NewEngine declares each variable as map(string, dyn). The ext.Strings
// library is loaded, so expressions can use lowerAscii and friends.
func NewEngine(vars ...string) (*Engine, error) {
	opts := []cel.EnvOption{ext.Strings()}
	for _, name := range vars {
		opts = append(opts, cel.Variable(name, cel.MapType(cel.StringType, cel.DynType)))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		env: env,
	}, nil
}

// Compile returns the program for expression, compiling it on first use.
func (e *Engine) Compile(expression string) (*Program, error) {
	if val, ok := e.prgCache.Load(expression); ok {
		return val.(*Program), nil
	}

	if expression == "" {
		return nil, fmt.Errorf("empty expression: %w", ErrCompile)
	}

	ast, issues := e.env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %s", ErrCompile, issues.Err())
	}

	outputType := ast.OutputType()
	if !outputType.IsExactType(cel.BoolType) && !outputType.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("%q returns %s: %w", expression, outputType, ErrNotBoolean)
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program construction error: %w", err)
	}

	program := &Program{expression: expression, prg: prg}
	actual, _ := e.prgCache.LoadOrStore(expression, program)
	return actual.(*Program), nil
}

// Eval runs the program against the activation. Expressions typed dyn are
// checked here and fail with ErrNotBoolean if they produce anything else.
func (p *Program) Eval(activation map[string]any) (bool, error) {
	if p == nil {
		return false, ErrNoProgram
	}

	out, _, err := p.prg.Eval(activation)
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", p.expression, err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%q produced %v: %w", p.expression, out.Value(), ErrNotBoolean)
	}

	return result, nil
}

func (p *Program) String() string {
	return p.expression
}
