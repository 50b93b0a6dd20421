package item

import (
	"fmt"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
)

// Amount sets the stack size
func (b *Builder) Amount(amount int) *Builder {
	if !b.active() {
		return b
	}
	return b.host(OpAmount, b.stack.SetAmount(amount))
}

// Damage sets how worn the item is. In strict mode a value above the 16-bit
// limit is rejected before the item is touched.
func (b *Builder) Damage(damage int) *Builder {
	if !b.active() {
		return b
	}
	if !b.failSilently && damage > domain.MaxDamageValue {
		return b.invalid(OpDamage, fmt.Errorf(ErrFmtDamageTooLarge, domain.ErrInvalidArgument, domain.MaxDamageValue, damage))
	}
	return b.host(OpDamage, b.stack.SetDamage(damage))
}

// DisplayName sets the translated display name; nil clears it
func (b *Builder) DisplayName(name *string) *Builder {
	if !b.active() {
		return b
	}
	if name == nil {
		b.meta().SetDisplayName(nil)
		return b
	}
	translated := b.translator.Translate(*name)
	b.meta().SetDisplayName(&translated)
	return b
}

// Name is DisplayName for a non-nil name
func (b *Builder) Name(name string) *Builder {
	return b.DisplayName(&name)
}

// AppendLore adds lines after the existing lore. A nil slice is an invalid
// argument; an empty one does nothing.
func (b *Builder) AppendLore(lines []string) *Builder {
	if !b.active() {
		return b
	}
	if lines == nil {
		return b.invalid(OpAppendLore, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "lore"))
	}
	if len(lines) == 0 {
		return b
	}
	lore := make([]string, 0, len(b.meta().Lore)+len(lines))
	lore = append(lore, b.meta().Lore...)
	lore = append(lore, lines...)
	b.meta().SetLore(lore)
	return b
}

// Lore appends the given lines as-is
func (b *Builder) Lore(lines ...string) *Builder {
	if lines == nil {
		lines = []string{}
	}
	return b.AppendLore(lines)
}

// ColorLore translates each line before appending it
func (b *Builder) ColorLore(lines ...string) *Builder {
	if !b.active() {
		return b
	}
	translated := make([]string, len(lines))
	for i, line := range lines {
		translated[i] = b.translator.Translate(line)
	}
	return b.AppendLore(translated)
}

// ReplaceLore clears the lore and sets it to lines
func (b *Builder) ReplaceLore(lines []string) *Builder {
	if !b.active() {
		return b
	}
	if lines == nil {
		return b.invalid(OpReplaceLore, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "lore"))
	}
	b.meta().SetLore(lines)
	return b
}

// RemoveLoreAt removes one lore line; nothing happens when there is no lore
func (b *Builder) RemoveLoreAt(index int) *Builder {
	if !b.active() || !b.meta().HasLore() {
		return b
	}
	return b.host(OpRemoveLore, b.meta().RemoveLore(index))
}

// ClearLore removes all lore
func (b *Builder) ClearLore() *Builder {
	if !b.active() {
		return b
	}
	b.meta().SetLore(nil)
	return b
}

// Enchant adds an enchantment, replacing one of the same type
func (b *Builder) Enchant(enchant domain.Enchantment, level int) *Builder {
	return b.AddEnchant(enchant, level, true)
}

// EnchantDefault adds an enchantment at level 1, replacing one of the same type
func (b *Builder) EnchantDefault(enchant domain.Enchantment) *Builder {
	return b.AddEnchant(enchant, 1, true)
}

// AddEnchant adds an enchantment. Without overwrite an enchantment that is
// already present makes the item reject the call.
func (b *Builder) AddEnchant(enchant domain.Enchantment, level int, overwrite bool) *Builder {
	if !b.active() {
		return b
	}
	if enchant == "" {
		return b.invalid(OpEnchant, fmt.Errorf(ErrFmtEmptyIdentifier, domain.ErrInvalidArgument, OpEnchant, "enchantment"))
	}
	return b.host(OpEnchant, b.meta().AddEnchant(enchant, level, overwrite))
}

// RemoveEnchant removes an enchantment if present
func (b *Builder) RemoveEnchant(enchant domain.Enchantment) *Builder {
	if !b.active() {
		return b
	}
	b.meta().RemoveEnchant(enchant)
	return b
}

// RepairCost sets the anvil repair cost; the kind must be repairable
func (b *Builder) RepairCost(cost int) *Builder {
	if !b.active() {
		return b
	}
	return b.host(OpRepairCost, b.stack.SetRepairCost(cost))
}

// AddFlags hides tooltip sections
func (b *Builder) AddFlags(flags ...domain.ItemFlag) *Builder {
	if !b.active() {
		return b
	}
	for i, f := range flags {
		if f == "" {
			return b.invalid(OpAddFlags, fmt.Errorf(ErrFmtInvalidElement, domain.ErrInvalidArgument, OpAddFlags, i, "empty flag"))
		}
	}
	b.meta().AddFlags(flags...)
	return b
}

// CustomModelData sets the model override value
func (b *Builder) CustomModelData(value int) *Builder {
	if !b.active() {
		return b
	}
	b.meta().SetCustomModelData(value)
	return b
}

// HideTooltip hides or shows the whole tooltip
func (b *Builder) HideTooltip(hide bool) *Builder {
	if !b.active() {
		return b
	}
	b.meta().SetHideTooltip(hide)
	return b
}
