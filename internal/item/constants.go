package item

// ==================== Operation Names ====================

// Operation names reported in errors, logs and metrics
const (
	OpNew         = "new"
	OpAmount      = "amount"
	OpDamage      = "damage"
	OpAppendLore  = "append_lore"
	OpReplaceLore = "replace_lore"
	OpRemoveLore  = "remove_lore"
	OpEnchant     = "enchant"
	OpRepairCost  = "repair_cost"
	OpAddFlags    = "add_flags"

	OpBookTitle        = "book_title"
	OpBookAuthor       = "book_author"
	OpBookSetPage      = "book_set_page"
	OpBookReplacePages = "book_replace_pages"
	OpBookAppendPages  = "book_append_pages"

	OpFireworkAdd    = "firework_add"
	OpFireworkRemove = "firework_remove"
	OpFireworkClear  = "firework_clear"
	OpFireworkPower  = "firework_power"

	OpArmorColor = "armor_color"
	OpMapScaling = "map_scaling"

	OpPotionMain   = "potion_main"
	OpPotionAdd    = "potion_add"
	OpPotionRemove = "potion_remove"
	OpPotionClear  = "potion_clear"

	OpSkullOwner = "skull_owner"

	OpBannerSetPattern      = "banner_set_pattern"
	OpBannerReplacePatterns = "banner_replace_patterns"
	OpBannerAddPatterns     = "banner_add_patterns"
	OpBannerRemovePattern   = "banner_remove_pattern"

	OpTrim = "trim"
)

// ==================== Log Messages ====================

const (
	LogMsgOperationRejected = "Item builder operation rejected"
	LogMsgTemplateBuilt     = "Item template built"
	LogMsgTemplatesLoaded   = "Item templates loaded"
)

// ==================== Log Attribute Keys ====================

const (
	AttrKeyBuilderID   = "builder_id"
	AttrKeyKind        = "kind"
	AttrKeyOperation   = "operation"
	AttrKeyError       = "error"
	AttrKeyItem        = "item"
	AttrKeyCount       = "count"
	AttrKeyDescription = "description"
)

// ==================== Error Format Strings ====================

const (
	ErrFmtNilArgument     = "%w: %s cannot be nil"
	ErrFmtWrongMetaKind   = "%w: %s requires %s metadata, item has %s"
	ErrFmtDamageTooLarge  = "%w: damage cannot exceed %d, got %d"
	ErrFmtInvalidElement  = "%w: %s element %d: %v"
	ErrFmtInvalidValue    = "%w: %s: %v"
	ErrFmtEmptyIdentifier = "%w: %s requires a non-empty %s"
)

// Template loader errors
const (
	ErrMsgReadConfigFileFailed = "failed to read template file: %w"
	ErrMsgParseConfigFailed    = "failed to parse template JSON: %w"
	ErrMsgConfigNil            = "template is nil"
	ErrMsgNoItemsDefined       = "no items defined"

	ErrFmtSchemaValidation = "schema validation failed for %s: %w"
	ErrFmtParseHCL         = "failed to parse HCL file %s: %w"
	ErrFmtDecodeHCL        = "failed to decode HCL file %s: %w"
	ErrFmtItemAtIndexEmpty = "%w: item at index %d has an empty name"
	ErrFmtItemUnknownKind  = "%w: item '%s' has kind %q"
	ErrFmtBuildItem        = "%w: '%s': %w"
	ErrFmtTemplateField    = "%w: item '%s' %s: %w"
)

// ==================== Configuration File Names ====================

const (
	// TemplateSchemaPath is the embedded schema for JSON template files
	TemplateSchemaPath = "schemas/templates.schema.json"

	FormatJSON = "json"
	FormatHCL  = "hcl"

	// SupportedTemplateVersions is the semver range a template's version must satisfy
	SupportedTemplateVersions = ">=1.0.0 <2.0.0"
)

// Variables available to HCL templates
const (
	HCLVarColor = "color"
	HCLVarDye   = "dye"
)
