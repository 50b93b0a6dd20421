package naming

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/utils"
)

// Resolver turns user-facing item names into kinds and back
type Resolver interface {
	// ResolveKind converts a kind name or alias to a registered kind
	ResolveKind(name string) (domain.Kind, bool)

	// DisplayName returns the default display name for a kind
	DisplayName(kind domain.Kind) string

	// RegisterAlias adds an alias at runtime
	RegisterAlias(alias string, kind domain.Kind) error

	// Reload re-reads the alias file
	Reload() error
}

// AliasFile is the on-disk alias configuration
type AliasFile struct {
	Version string                   `json:"version"`
	Schema  string                   `json:"schema"`
	Aliases map[domain.Kind][]string `json:"aliases"`
}

type resolver struct {
	mu sync.RWMutex

	// normalized alias -> kind
	aliases map[string]domain.Kind

	// runtime registrations survive Reload
	registered map[string]domain.Kind

	aliasesPath string
}

// NewResolver creates a resolver. An empty path or a missing file means no
// aliases; kind names always resolve.
func NewResolver(aliasesPath string) (Resolver, error) {
	r := &resolver{
		aliases:     make(map[string]domain.Kind),
		registered:  make(map[string]domain.Kind),
		aliasesPath: aliasesPath,
	}

	if err := r.Reload(); err != nil {
		return nil, err
	}

	return r, nil
}

// ResolveKind accepts registered kind names ("diamond_sword", "Diamond Sword",
// "minecraft:diamond_sword") and aliases, case-insensitively
func (r *resolver) ResolveKind(name string) (domain.Kind, bool) {
	key := normalize(name)
	if key == "" {
		return "", false
	}

	if _, ok := domain.LookupKind(domain.Kind(key)); ok {
		return domain.Kind(key), true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if kind, ok := r.registered[key]; ok {
		return kind, true
	}
	kind, ok := r.aliases[key]
	return kind, ok
}

// DisplayName title-cases the kind name: diamond_sword -> Diamond Sword
func (r *resolver) DisplayName(kind domain.Kind) string {
	words := strings.ReplaceAll(string(kind), KindWordSeparator, " ")
	return cases.Title(language.English).String(words)
}

// RegisterAlias maps alias to a registered kind
func (r *resolver) RegisterAlias(alias string, kind domain.Kind) error {
	key := normalize(alias)
	if key == "" {
		return ErrEmptyAlias
	}
	if _, ok := domain.LookupKind(kind); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered[key] = kind
	return nil
}

// Reload re-reads the alias file, replacing the aliases it defined
func (r *resolver) Reload() error {
	if r.aliasesPath == "" {
		return nil
	}

	aliases, err := loadAliases(r.aliasesPath)
	if err != nil {
		return fmt.Errorf(ErrContextFailedToLoadAliases, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases = aliases
	return nil
}

func loadAliases(path string) (map[string]domain.Kind, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]domain.Kind{}, nil
	}

	var file AliasFile
	if err := utils.LoadJSON(path, &file); err != nil {
		return nil, err
	}

	if file.Version == "" {
		return nil, fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if file.Schema != SchemaItemAliases {
		return nil, fmt.Errorf(ErrMsgInvalidSchema, path, SchemaItemAliases, file.Schema)
	}

	out := make(map[string]domain.Kind)
	for kind, names := range file.Aliases {
		if _, ok := domain.LookupKind(kind); !ok {
			return nil, fmt.Errorf("%w: %s in %s", ErrUnknownKind, kind, path)
		}
		for _, name := range names {
			key := normalize(name)
			if key == "" {
				continue
			}
			if prev, dup := out[key]; dup && prev != kind {
				return nil, fmt.Errorf(ErrMsgAliasConflict, name, prev, kind)
			}
			out[key] = kind
		}
	}
	return out, nil
}

// normalize lower-cases a name, drops a namespace prefix and joins words with underscores
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), KindWordSeparator)
}
