package patterns

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/patterns/internal/comment"
	"github.com/gnoswap-labs/patterns/syntax"
)

// Render returns the pattern text for p under s.
//
// Rendering is deterministic and keeps no state between calls. s must not be
// nil and must be valid; anything else is a programming error and panics.
func (p Pattern) Render(s *Settings) string {
	if s == nil {
		panic("patterns: Render called with nil settings")
	}
	if err := s.Validate(); err != nil {
		panic(err)
	}

	b := &builder{settings: s, format: s.Format, indent: s.indentSize()}
	b.schedule(seqTask(p, p.Len() > 1))
	b.run()
	return b.result()
}

type taskKind uint8

const (
	taskNode   taskKind = iota // render one node
	taskSeq                    // render the nodes of a pattern in order
	taskLine                   // emit a token on a line of its own
	taskAppend                 // append a token to the current line
	taskSuffix                 // append a quantifier to the current line
	taskIndent                 // change the nesting depth
	taskInline                 // enter or leave single-line output
)

// task is one unit of work on the render stack. Only the fields used by the
// kind are set.
type task struct {
	kind taskKind

	node       node
	quantified bool

	seq Pattern
	// wrapAlt is set when alternations in seq share their sequence, or the
	// branch of a conditional, and need a group of their own.
	wrapAlt bool

	line  syntax.Kind
	text  string
	q     Quantifier
	delta int
}

func nodeTask(n node, wrapAlt bool) task {
	return task{kind: taskNode, node: n, wrapAlt: wrapAlt}
}

func seqTask(p Pattern, wrapAlt bool) task {
	return task{kind: taskSeq, seq: p, wrapAlt: wrapAlt}
}

func lineTask(k syntax.Kind, text string) task {
	return task{kind: taskLine, line: k, text: text}
}

func appendTask(text string) task { return task{kind: taskAppend, text: text} }
func suffixTask(q Quantifier) task { return task{kind: taskSuffix, q: q} }
func indentTask(delta int) task    { return task{kind: taskIndent, delta: delta} }
func inlineTask(delta int) task    { return task{kind: taskInline, delta: delta} }

// builder walks a pattern with an explicit stack, so neither long chains nor
// deep nesting grow the Go call stack.
type builder struct {
	settings *Settings
	format   bool
	indent   int

	stack []task
	out   strings.Builder
	infos comment.Collection

	depth int
	// inline > 0 keeps everything on the current line, for conditional
	// tests in format mode.
	inline int
	// inClass switches literal escaping to the character class rules.
	inClass bool

	nodes    int
	maxDepth int
}

// schedule pushes tasks so that they run in the given order.
func (b *builder) schedule(tasks ...task) {
	for i := len(tasks) - 1; i >= 0; i-- {
		b.stack = append(b.stack, tasks[i])
	}
}

func (b *builder) run() {
	for len(b.stack) > 0 {
		t := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		switch t.kind {
		case taskNode:
			b.nodes++
			b.node(t)
		case taskSeq:
			items := t.seq.nodes.Items()
			for i := len(items) - 1; i >= 0; i-- {
				b.stack = append(b.stack, nodeTask(items[i], t.wrapAlt))
			}
		case taskLine:
			b.line(t.line, t.text)
		case taskAppend:
			b.out.WriteString(t.text)
		case taskSuffix:
			b.suffix(t.q)
		case taskIndent:
			b.depth += t.delta
			b.maxDepth = max(b.maxDepth, b.depth)
		case taskInline:
			b.inline += t.delta
		}
	}
}

func (b *builder) result() string {
	text := b.out.String()
	if b.settings.Comment && b.infos.Len() > 0 {
		text = comment.Build(strings.Split(text, "\n"), &b.infos, comment.Options{
			Colorize: b.settings.ColorComments,
		})
	}
	if l := b.settings.Logger; l != nil {
		l.Debug("pattern rendered",
			zap.Int("nodes", b.nodes),
			zap.Int("lines", b.infos.Len()),
			zap.Int("max_depth", b.maxDepth),
			zap.Int("length", len(text)))
	}
	return text
}

// line starts a new output line holding text. Outside format mode, or while
// inline, text is appended to the current output instead.
func (b *builder) line(k syntax.Kind, text string) {
	if !b.format || b.inline > 0 {
		b.out.WriteString(text)
		return
	}
	if b.infos.Len() > 0 {
		b.out.WriteByte('\n')
	}
	b.out.WriteString(strings.Repeat(" ", b.depth*b.indent))
	b.out.WriteString(text)
	b.infos.Add(comment.LineInfo{Kind: k})
}

func (b *builder) suffix(q Quantifier) {
	b.out.WriteString(q.String())
	if !b.format || b.inline > 0 || b.infos.Len() == 0 {
		return
	}
	li := b.infos.At(b.infos.Len() - 1)
	li.Quantifier = q.kind
	li.Min, li.Max = q.n, q.m
	li.Lazy = q.lazy
	b.infos.SetLast(li)
}

func (b *builder) node(t task) {
	switch n := t.node.(type) {
	case textNode:
		k := syntax.Text
		if utf8.RuneCountInString(n.text) == 1 {
			k = syntax.Char
		}
		b.line(k, syntax.Escape(n.text))

	case atomNode:
		var sb strings.Builder
		b.writeContributor(&sb, n.c)
		b.line(n.c.kind, sb.String())

	case tokenNode:
		b.line(n.kind, n.kind.Token())

	case classNode:
		b.line(n.expr.kind(), b.classText(n.expr))

	case groupNode:
		b.schedule(
			lineTask(n.kind, b.groupOpen(n)),
			indentTask(1),
			seqTask(n.content, n.content.Len() > 1),
			indentTask(-1),
			lineTask(syntax.GroupEnd, ")"),
		)

	case quantNode:
		if isAtomic(n.content) {
			b.schedule(
				task{kind: taskNode, node: n.content.nodes.At(0), quantified: true},
				suffixTask(n.q),
			)
			return
		}
		b.schedule(
			lineTask(syntax.NoncapturingGroup, syntax.NoncapturingGroup.Token()),
			indentTask(1),
			seqTask(n.content, n.content.Len() > 1),
			indentTask(-1),
			lineTask(syntax.GroupEnd, ")"),
			suffixTask(n.q),
		)

	case altNode:
		branches := n.branches.Items()
		tasks := make([]task, 0, 2*len(branches)+4)
		if t.wrapAlt {
			tasks = append(tasks, lineTask(syntax.NoncapturingGroup, syntax.NoncapturingGroup.Token()), indentTask(1))
		}
		for i, br := range branches {
			if i > 0 {
				tasks = append(tasks, lineTask(syntax.Alternation, "|"))
			}
			tasks = append(tasks, seqTask(br, br.Len() > 1))
		}
		if t.wrapAlt {
			tasks = append(tasks, indentTask(-1), lineTask(syntax.GroupEnd, ")"))
		}
		b.schedule(tasks...)

	case condNode:
		b.schedule(b.condTasks(n)...)

	case refNode:
		if n.number > 0 {
			text := `\` + strconv.Itoa(n.number)
			if b.settings.SeparateGroupNumberReference && !t.quantified {
				text += syntax.NoncapturingGroup.Token() + ")"
			}
			b.line(syntax.GroupReference, text)
			return
		}
		bd := b.settings.IdentifierBoundary
		b.line(syntax.NamedGroupReference, syntax.NamedGroupReference.Token()+bd.Open()+n.name+bd.Close())

	case commentNode:
		b.line(syntax.InlineComment, syntax.InlineComment.Token()+n.text+")")

	case optionsNode:
		b.line(syntax.InlineOptionsKind, "(?"+syntax.OptionsToken(n.on, n.off)+")")

	default:
		panic(fmt.Sprintf("patterns: unknown node %T", n))
	}
}

func (b *builder) groupOpen(n groupNode) string {
	bd := b.settings.IdentifierBoundary
	switch n.kind {
	case syntax.NamedGroup:
		return "(?" + bd.Open() + n.name + bd.Close()
	case syntax.BalancingGroup:
		return "(?" + bd.Open() + n.name + "-" + n.name2 + bd.Close()
	case syntax.GroupOptions:
		return "(?" + syntax.OptionsToken(n.on, n.off) + ":"
	default:
		return n.kind.Token()
	}
}

// condTasks lays out a conditional. The test stays on the opening line; both
// branches are indented like group content.
func (b *builder) condTasks(n condNode) []task {
	var tasks []task
	if n.test.IsEmpty() {
		tasks = append(tasks, lineTask(syntax.IfGroup, syntax.IfGroup.Token()+n.name+")"))
	} else {
		// (?(?=test) writes the lookahead that the bare form implies.
		head := syntax.IfAssertion.Token()
		if b.settings.ConditionAsAssertion {
			head += "?="
		}
		tasks = append(tasks,
			lineTask(syntax.IfAssertion, head),
			inlineTask(1),
			seqTask(n.test, n.test.Len() > 1),
			appendTask(")"),
			inlineTask(-1),
		)
	}

	tasks = append(tasks, indentTask(1), seqTask(n.yes, true), indentTask(-1))
	if n.hasNo {
		tasks = append(tasks,
			lineTask(syntax.Else, "|"),
			indentTask(1), seqTask(n.no, true), indentTask(-1))
	}
	return append(tasks, lineTask(syntax.GroupEnd, ")"))
}

// classText renders a character class. Subtractions nest to the right and
// are written iteratively: every level opens a bracket, and all of them are
// closed at the end.
func (b *builder) classText(e classExpr) string {
	b.inClass = true
	defer func() { b.inClass = false }()

	var sb strings.Builder
	if c, ok := e.shorthand(); ok {
		b.writeContributor(&sb, c)
		return sb.String()
	}

	open := 0
	for cur := &e; cur != nil; cur = cur.excluded {
		if open > 0 {
			sb.WriteRune(syntax.RangeSeparator)
		}
		sb.WriteString(syntax.CharGroup.Token())
		if cur.negative {
			sb.WriteByte('^')
		}
		for _, c := range cur.content.items.Items() {
			b.writeContributor(&sb, c)
		}
		open++
	}
	sb.WriteString(strings.Repeat(syntax.CharGroupEnd.Token(), open))
	return sb.String()
}

func (b *builder) writeContributor(sb *strings.Builder, c contributor) {
	switch c.kind {
	case syntax.Char:
		syntax.WriteRune(sb, c.r, b.inClass)
	case syntax.CharCode:
		sb.WriteString(syntax.CharCodeToken(uint16(c.r)))
	case syntax.Text:
		syntax.WriteText(sb, c.text, b.inClass)
	case syntax.CharRange:
		if c.code {
			sb.WriteString(syntax.CharCodeToken(uint16(c.first)))
			sb.WriteRune(syntax.RangeSeparator)
			sb.WriteString(syntax.CharCodeToken(uint16(c.last)))
			return
		}
		syntax.WriteRune(sb, c.first, b.inClass)
		sb.WriteRune(syntax.RangeSeparator)
		syntax.WriteRune(sb, c.last, b.inClass)
	case syntax.Category, syntax.NotCategory:
		sb.WriteString(c.kind.Token())
		sb.WriteString(c.category.Designation())
		sb.WriteByte('}')
	case syntax.Block, syntax.NotBlock:
		sb.WriteString(c.kind.Token())
		sb.WriteString(c.block.Designation())
		sb.WriteByte('}')
	default:
		sb.WriteString(c.kind.Token())
	}
}
