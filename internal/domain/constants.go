package domain

// Host limits enforced by the stack and meta mutators
const (
	// MaxDamageValue is the largest damage a stack can store (16-bit signed)
	MaxDamageValue = 32767

	// MaxEnchantLevel is the highest level an enchantment can carry
	MaxEnchantLevel = 255

	// MaxBookPages is the page limit of a written book
	MaxBookPages = 100

	// MaxPageLength is the character limit of one book page
	MaxPageLength = 1024

	// MaxTitleLength is the character limit of a book title
	MaxTitleLength = 32

	// MinFireworkPower and MaxFireworkPower bound the flight duration
	MinFireworkPower = 0
	MaxFireworkPower = 127

	// MaxOwnerNameLength is the longest player name a skull can reference
	MaxOwnerNameLength = 16

	// DefaultMaxStack is the stack size of most kinds
	DefaultMaxStack = 64
)
