package item

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/ItemBuilder_Go/internal/color"
	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/logger"
	"github.com/osse101/ItemBuilder_Go/internal/metrics"
)

// Reporter receives host-side failures in strict mode. Those failures do not
// stop the chain.
type Reporter interface {
	Report(op string, err error)
}

// logReporter writes host-side failures to a structured logger
type logReporter struct {
	log *slog.Logger
}

// NewLogReporter returns a Reporter that logs at warn level
func NewLogReporter(log *slog.Logger) Reporter {
	return &logReporter{log: log}
}

func (r *logReporter) Report(op string, err error) {
	r.log.Warn(LogMsgOperationRejected, AttrKeyOperation, op, AttrKeyError, err)
}

// Option configures a Builder at construction
type Option func(*Builder)

// WithFailSilently turns every failure into a no-op
func WithFailSilently(silent bool) Option {
	return func(b *Builder) { b.failSilently = silent }
}

// WithTranslator sets the color translator used for names and colored lore
func WithTranslator(t color.Translator) Option {
	return func(b *Builder) { b.translator = t }
}

// WithReporter sets where strict-mode host failures go
func WithReporter(r Reporter) Option {
	return func(b *Builder) { b.reporter = r }
}

var (
	validate = validator.New()

	defaultTranslatorOnce sync.Once
	defaultTranslator     color.Translator
)

func sharedTranslator() color.Translator {
	defaultTranslatorOnce.Do(func() {
		t, err := color.NewTranslator(color.DefaultCacheSize)
		if err != nil {
			defaultTranslator = color.Passthrough{}
			return
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// Builder decorates one item through chained calls.
//
// In strict mode (the default) an invalid argument or a call that does not
// match the item's metadata variant is recorded as the builder's error: every
// later call is skipped and Build returns it. Failures raised by the item
// itself (an amount above the stack size, a page index out of range) are
// passed to the Reporter and the chain continues. In silent mode all of the
// above are no-ops.
//
// A Builder is meant for one goroutine.
type Builder struct {
	id           string
	stack        *domain.Stack
	failSilently bool
	translator   color.Translator
	reporter     Reporter
	err          error
}

// New starts a builder for a single item of the given kind
func New(kind domain.Kind, opts ...Option) *Builder {
	return From(domain.NewStack(kind, 1), opts...)
}

// From starts a builder from a copy of stack; stack itself is never modified.
// Metadata whose variant does not match the kind is rejected like any other
// wrong-kind call, and the builder starts from empty metadata instead.
func From(stack *domain.Stack, opts ...Option) *Builder {
	b := &Builder{id: uuid.NewString()}
	for _, opt := range opts {
		opt(b)
	}
	if b.translator == nil {
		b.translator = sharedTranslator()
	}
	if b.reporter == nil {
		b.reporter = NewLogReporter(logger.Component("item").With(AttrKeyBuilderID, b.id))
	}

	if stack == nil {
		b.stack = domain.NewStack("", 1)
		return b.fail(OpNew, metrics.ReasonInvalidArgument, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "stack"))
	}
	b.stack = &domain.Stack{Kind: stack.Kind, Amount: stack.Amount, Damage: stack.Damage}
	if err := b.stack.SetMeta(kindMeta(stack)); err != nil {
		b.stack.Meta = domain.NewMeta(domain.MetaKindFor(stack.Kind))
		return b.fail(OpNew, metrics.ReasonWrongMetaKind, err)
	}
	return b
}

// kindMeta returns the stack's metadata with a missing variant filled in
// from the kind
func kindMeta(stack *domain.Stack) *domain.Meta {
	if stack.Meta == nil || stack.Meta.Detail != nil {
		return stack.Meta
	}
	m := stack.Meta.Clone()
	m.Detail = domain.NewDetail(domain.MetaKindFor(stack.Kind))
	return m
}

// ID identifies the builder in logs
func (b *Builder) ID() string {
	return b.id
}

// FailSilently reports the builder's mode
func (b *Builder) FailSilently() bool {
	return b.failSilently
}

// Kind returns the kind of the item being built
func (b *Builder) Kind() domain.Kind {
	return b.stack.Kind
}

// Err returns the strict-mode failure that stopped the chain, if any
func (b *Builder) Err() error {
	return b.err
}

// Copy returns an independent builder with the same state and options
func (b *Builder) Copy() *Builder {
	return &Builder{
		id:           uuid.NewString(),
		stack:        b.stack.Clone(),
		failSilently: b.failSilently,
		translator:   b.translator,
		reporter:     b.reporter,
		err:          b.err,
	}
}

// Build returns a copy of the decorated item. The builder stays usable and
// later calls never affect a stack that was already returned.
func (b *Builder) Build() (*domain.Stack, error) {
	if b.err != nil {
		return nil, b.err
	}
	metrics.RecordBuilt(b.stack.Meta.Kind().String())
	return b.stack.Clone(), nil
}

// Snapshot returns a copy of the working item even when the chain failed
func (b *Builder) Snapshot() *domain.Stack {
	return b.stack.Clone()
}

// LoreLines returns a copy of the current lore lines
func (b *Builder) LoreLines() []string {
	if len(b.stack.Meta.Lore) == 0 {
		return nil
	}
	out := make([]string, len(b.stack.Meta.Lore))
	copy(out, b.stack.Meta.Lore)
	return out
}

// ==================== failure handling ====================

// OpError is the error recorded by a strict-mode builder
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "item " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func (b *Builder) active() bool {
	return b.err == nil
}

func (b *Builder) fail(op, reason string, err error) *Builder {
	if b.failSilently {
		return b
	}
	if b.err == nil {
		b.err = &OpError{Op: op, Err: err}
	}
	metrics.RecordFailure(op, reason)
	return b
}

func (b *Builder) invalid(op string, err error) *Builder {
	return b.fail(op, metrics.ReasonInvalidArgument, err)
}

func (b *Builder) wrongKind(op string, want ...domain.MetaKind) *Builder {
	names := make([]string, len(want))
	for i, k := range want {
		names[i] = k.String()
	}
	err := fmt.Errorf(ErrFmtWrongMetaKind, domain.ErrWrongMetaKind, op, strings.Join(names, " or "), b.stack.Meta.Kind())
	return b.fail(op, metrics.ReasonWrongMetaKind, err)
}

// host passes a failure raised by the item to the reporter
func (b *Builder) host(op string, err error) *Builder {
	if err == nil || b.failSilently {
		return b
	}
	metrics.RecordFailure(op, metrics.ReasonHostRejected)
	b.reporter.Report(op, err)
	return b
}

func (b *Builder) checkStruct(op string, v any) bool {
	if err := validate.Struct(v); err != nil {
		b.invalid(op, fmt.Errorf(ErrFmtInvalidValue, domain.ErrInvalidArgument, op, err))
		return false
	}
	return true
}

func checkEach[T any](b *Builder, op string, items []T) bool {
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			b.invalid(op, fmt.Errorf(ErrFmtInvalidElement, domain.ErrInvalidArgument, op, i, err))
			return false
		}
	}
	return true
}

// detailAs returns the active variant when it is a T. On mismatch the
// failure is recorded (strict) and ok is false.
func detailAs[T domain.Detail](b *Builder, op string) (T, bool) {
	d, ok := b.stack.Meta.Detail.(T)
	if !ok {
		var want T
		b.wrongKind(op, want.MetaKind())
	}
	return d, ok
}

func (b *Builder) meta() *domain.Meta {
	return b.stack.Meta
}
