// Package builder implements C3: a pushdown automaton over the transition
// events C2 delivers, assembling the raw AST. It is modeled as an explicit
// struct carrying the spec.md §3 transient tuple (current node, pending or,
// char accumulator, repeat accumulator, scope stack) with one method per
// transition command — no closures over shared mutable state.
package builder

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/krombrey/regenum/internal/ast"
	"github.com/krombrey/regenum/internal/diag"
	"github.com/krombrey/regenum/internal/driver"
	"github.com/krombrey/regenum/internal/regerr"
	"github.com/krombrey/regenum/internal/table"
)

const (
	digitsClass = "0123456789"
	lowerClass  = "abcdefghijklmnopqrstuvwxyz"
	upperClass  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// namedClass expands \d, \l, \L to their character set; ok is false for any
// other escaped character.
func namedClass(c string) (expansion string, ok bool) {
	switch c {
	case "d":
		return digitsClass, true
	case "l":
		return lowerClass, true
	case "L":
		return upperClass, true
	default:
		return "", false
	}
}

// frame snapshots (current scope, pending or) across a '(' ... ')' pair.
type frame struct {
	children  []ast.Node
	pendingOr []ast.Node
}

var framePool = sync.Pool{
	New: func() any {
		s := make([]frame, 0, 8)
		return &s
	},
}

// Builder owns the transient state for a single Parse call. It is not
// reentrant and not reused across calls.
type Builder struct {
	log *diag.Logger

	started   bool
	current   []ast.Node
	pendingOr []ast.Node // nil means no pending `or` at this scope depth

	charAccum string

	repeatAccum []int // nil means "no {m,n} construct in progress" (a bare '?')

	scopeStack *[]frame

	root ast.Node
}

// Parse drives text through the default transition table and returns the
// raw (pre-compaction) AST.
func Parse(text string, log *diag.Logger) (ast.Node, error) {
	stackPtr := framePool.Get().(*[]frame)
	*stackPtr = (*stackPtr)[:0]
	defer framePool.Put(stackPtr)

	if log == nil {
		log = diag.NewLogger(false)
	}

	b := &Builder{log: log, scopeStack: stackPtr}
	if err := driver.Drive(text, table.Default, b.handle); err != nil {
		return nil, err
	}
	if b.root == nil {
		// Not reached after a successful drive: onEOF always sets root,
		// an empty pattern included (it yields an empty scope there).
		return ast.Scope{}, nil
	}
	return b.root, nil
}

func (b *Builder) handle(old, new, char string) error {
	b.log.Log("transition %s -(%q)-> %s", old, char, new)

	switch new {
	case table.EOF:
		return b.onEOF()
	case table.ERR:
		return fmt.Errorf("%w: at %q after state %q", regerr.ErrSyntaxError, char, old)
	case table.StateRegexStart:
		return b.onRegexStart()
	case table.StateRegexNextRegex:
		return b.onRegexNextRegex()
	case table.StateRegexNextOr:
		return b.onNextOr()
	case table.StateRepeatFromStart:
		return b.onRepeatFromStart()
	case table.StateRepeatToStart:
		return b.onRepeatToStart()
	case table.StateRegexNextRepeat:
		return b.onNextRepeat()
	case table.StateListStart:
		return b.onListStart()
	case table.StateListClose:
		return b.onListClose(old)
	case table.StateListEscape, table.StateRegexEscape, table.StateListRange:
		return nil // no-op; consumed on the following transition via old_state
	default:
		return b.onAccumulate(old, char)
	}
}

// flushLiteral is store_characters: append any buffered text as a literal
// child of the current scope.
func (b *Builder) flushLiteral() {
	if b.charAccum != "" {
		b.current = append(b.current, ast.Literal{Value: b.charAccum})
		b.charAccum = ""
	}
}

// storeLastCharacter splits the buffered text so only its final byte is
// eligible for an immediately following quantifier, per spec.md §4.3.
func (b *Builder) storeLastCharacter() {
	switch len(b.charAccum) {
	case 0:
		// Last child is already a node (a group or bracket expression);
		// nothing to split.
	case 1:
		b.current = append(b.current, ast.Literal{Value: b.charAccum})
		b.charAccum = ""
	default:
		prefix := b.charAccum[:len(b.charAccum)-1]
		last := b.charAccum[len(b.charAccum)-1:]
		b.current = append(b.current, ast.Literal{Value: prefix}, ast.Literal{Value: last})
		b.charAccum = ""
	}
}

// finalizeScope wraps the current scope's children, splicing in pendingOr
// as the alternation's final branch if one is open.
func (b *Builder) finalizeScope() ast.Node {
	if b.pendingOr != nil {
		alts := append(b.pendingOr, ast.Scope{Children: b.current})
		return ast.Or{Children: alts}
	}
	return ast.Scope{Children: b.current}
}

func (b *Builder) onRegexStart() error {
	if b.started {
		b.flushLiteral()
		*b.scopeStack = append(*b.scopeStack, frame{children: b.current, pendingOr: b.pendingOr})
	}
	b.started = true
	b.current = nil
	b.pendingOr = nil
	return nil
}

func (b *Builder) onRegexNextRegex() error {
	b.flushLiteral()
	stack := *b.scopeStack
	if len(stack) == 0 {
		return fmt.Errorf("%w: ')' with no matching '('", regerr.ErrScopeUnderflow)
	}
	finished := b.finalizeScope()
	parent := stack[len(stack)-1]
	*b.scopeStack = stack[:len(stack)-1]
	parent.children = append(parent.children, finished)
	b.current = parent.children
	b.pendingOr = parent.pendingOr
	return nil
}

func (b *Builder) onNextOr() error {
	b.flushLiteral()
	alt := ast.Scope{Children: append([]ast.Node(nil), b.current...)}
	b.pendingOr = append(b.pendingOr, alt)
	b.current = nil
	return nil
}

func (b *Builder) onListStart() error {
	b.flushLiteral()
	return nil
}

func (b *Builder) onListClose(old string) error {
	if old == table.StateListRange {
		// A '-' immediately followed by ']' is a literal trailing dash,
		// never a range operator.
		b.charAccum += "-"
	}
	b.current = append(b.current, ast.List{Chars: b.charAccum})
	b.charAccum = ""
	return nil
}

func (b *Builder) onRepeatFromStart() error {
	b.storeLastCharacter()
	b.repeatAccum = []int{}
	return nil
}

func (b *Builder) onRepeatToStart() error {
	n, err := strconv.Atoi(b.charAccum)
	if err != nil {
		return fmt.Errorf("%w: repeat bound %q", regerr.ErrSyntaxError, b.charAccum)
	}
	b.repeatAccum = append(b.repeatAccum, n)
	b.charAccum = ""
	return nil
}

func (b *Builder) onNextRepeat() error {
	var min, max int
	if b.repeatAccum == nil {
		b.storeLastCharacter()
		min, max = 0, 1
	} else {
		n, err := strconv.Atoi(b.charAccum)
		if err != nil {
			return fmt.Errorf("%w: repeat bound %q", regerr.ErrSyntaxError, b.charAccum)
		}
		b.charAccum = ""
		if len(b.repeatAccum) == 0 {
			min, max = n, n
		} else {
			min, max = b.repeatAccum[0], n
		}
		b.repeatAccum = nil
	}
	if len(b.current) == 0 {
		return fmt.Errorf("%w: quantifier with no preceding element", regerr.ErrSyntaxError)
	}
	last := len(b.current) - 1
	b.current[last] = ast.Repeat{Min: min, Max: max, Child: b.current[last]}
	return nil
}

func (b *Builder) onEOF() error {
	if len(*b.scopeStack) != 0 {
		return fmt.Errorf("%w: %d unclosed '(' at end of pattern", regerr.ErrUnclosedScope, len(*b.scopeStack))
	}
	b.flushLiteral()
	b.root = b.finalizeScope()
	return nil
}

// onAccumulate implements the catch-all branch of spec.md §4.3: behavior
// for an otherwise-unnamed new_state, keyed on the transition's old_state.
func (b *Builder) onAccumulate(old, char string) error {
	switch old {
	case table.StateListRange:
		if b.charAccum == "" {
			b.charAccum = "-" + char
			return nil
		}
		lo, hi := rune(b.charAccum[len(b.charAccum)-1]), rune(char[0])
		if lo > hi {
			lo, hi = hi, lo
		}
		var expanded []byte
		for c := lo; c <= hi; c++ {
			expanded = append(expanded, byte(c))
		}
		b.charAccum = b.charAccum[:len(b.charAccum)-1] + string(expanded)
	case table.StateListEscape:
		if expansion, ok := namedClass(char); ok {
			b.charAccum += expansion
		} else {
			b.charAccum += char
		}
	case table.StateRegexEscape:
		if expansion, ok := namedClass(char); ok {
			b.flushLiteral()
			b.current = append(b.current, ast.List{Chars: expansion})
		} else {
			b.charAccum += char
		}
	default:
		b.charAccum += char
	}
	return nil
}
