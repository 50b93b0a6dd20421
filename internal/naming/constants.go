package naming

import (
	"errors"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
)

// SchemaItemAliases is the schema identifier for item aliases configuration
const SchemaItemAliases = "item-aliases"

// KindWordSeparator joins words in a kind name
const KindWordSeparator = "_"

var (
	ErrEmptyAlias  = errors.New("alias cannot be empty")
	ErrUnknownKind = domain.ErrUnknownKind
)

const (
	ErrContextFailedToLoadAliases = "failed to load aliases: %w"
	ErrMsgMissingVersionField     = "%s missing version field"
	ErrMsgInvalidSchema           = "invalid schema in %s: expected '%s', got '%s'"
	ErrMsgAliasConflict           = "alias %q maps to both %s and %s"
)
