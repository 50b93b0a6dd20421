package item

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/logger"
	"github.com/osse101/ItemBuilder_Go/internal/metrics"
	"github.com/osse101/ItemBuilder_Go/internal/naming"
	"github.com/osse101/ItemBuilder_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Sentinel errors for the template loader
var (
	ErrDuplicateName      = errors.New("duplicate item name")
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrUnsupportedFormat  = errors.New("unsupported template format")
	ErrUnsupportedVersion = errors.New("unsupported template version")
	ErrBuildFailed        = errors.New("item build failed")
)

var supportedVersionsRange = semver.MustParseRange(SupportedTemplateVersions)

// Built is one item produced from a template
type Built struct {
	Name  string        `json:"name"`
	Stack *domain.Stack `json:"stack"`
}

// Loader reads item templates and builds them
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	BuildAll(ctx context.Context, config *Config) ([]Built, error)
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	resolver        naming.Resolver
	opts            []Option
}

// NewLoader creates a Loader. Kinds in templates are resolved through
// resolver; opts are passed to every Builder it creates.
func NewLoader(resolver naming.Resolver, opts ...Option) Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
		resolver:        resolver,
		opts:            opts,
	}
}

// Load reads a .json or .hcl template file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config *Config
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case FormatJSON:
		config, err = l.parseJSON(data, path)
	case FormatHCL:
		config, err = parseHCL(data, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	metrics.RecordTemplateLoaded(format)
	return config, nil
}

func (l *itemLoader) parseJSON(data []byte, path string) (*Config, error) {
	// Validate against schema first
	if err := l.schemaValidator.ValidateBytes(data, TemplateSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrFmtSchemaValidation, path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

func parseHCL(data []byte, path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf(ErrFmtParseHCL, path, diags)
	}

	var config Config
	if diags := gohcl.DecodeBody(file.Body, templateEvalContext(), &config); diags.HasErrors() {
		return nil, fmt.Errorf(ErrFmtDecodeHCL, path, diags)
	}
	return &config, nil
}

// templateEvalContext exposes the dyes to HCL templates: color.<dye> is the
// dye's #RRGGBB value and dye.<dye> its name
func templateEvalContext() *hcl.EvalContext {
	dyes := domain.DyeColors()
	colors := make(map[string]cty.Value, len(dyes))
	names := make(map[string]cty.Value, len(dyes))
	for dye, c := range dyes {
		colors[string(dye)] = cty.StringVal(c.Hex())
		names[string(dye)] = cty.StringVal(string(dye))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			HCLVarColor: cty.ObjectVal(colors),
			HCLVarDye:   cty.ObjectVal(names),
		},
	}
}

// Validate checks the version and that every item has a unique name and a
// known kind. Item contents are checked by the builder.
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, ErrMsgConfigNil)
	}

	version, err := semver.ParseTolerant(config.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, config.Version, err)
	}
	if !supportedVersionsRange(version) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, version, SupportedTemplateVersions)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, ErrMsgNoItemsDefined)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]

		if def.Name == "" {
			return fmt.Errorf(ErrFmtItemAtIndexEmpty, ErrInvalidTemplate, i)
		}
		if names[def.Name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, def.Name)
		}
		names[def.Name] = true

		if _, ok := l.resolver.ResolveKind(def.Kind); !ok {
			return fmt.Errorf(ErrFmtItemUnknownKind, domain.ErrUnknownKind, def.Name, def.Kind)
		}
	}

	return nil
}

// BuildAll builds every item in order. The first item that fails stops the
// run; in silent mode only malformed colors or player ids can fail.
func (l *itemLoader) BuildAll(ctx context.Context, config *Config) ([]Built, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	start := time.Now()

	out := make([]Built, 0, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kind, _ := l.resolver.ResolveKind(def.Kind)
		b := New(kind, l.opts...)
		if err := def.apply(b); err != nil {
			return nil, err
		}

		stack, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildItem, ErrBuildFailed, def.Name, err)
		}

		log.Debug(LogMsgTemplateBuilt, AttrKeyItem, def.Name, AttrKeyKind, kind, AttrKeyBuilderID, b.ID())
		out = append(out, Built{Name: def.Name, Stack: stack})
	}

	metrics.TemplateBuildDuration.Observe(time.Since(start).Seconds())
	log.Info(LogMsgTemplatesLoaded, AttrKeyCount, len(out), AttrKeyDescription, config.Description)
	return out, nil
}
