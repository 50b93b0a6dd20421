package item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/ItemBuilder_Go/internal/domain"
)

// ==================== Book ====================

// BookTitle sets the book title; empty clears it
func (b *Builder) BookTitle(title string) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.BookDetail](b, OpBookTitle)
	if !ok {
		return b
	}
	return b.host(OpBookTitle, d.SetTitle(title))
}

// BookAuthor sets the book author; empty clears it
func (b *Builder) BookAuthor(author string) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.BookDetail](b, OpBookAuthor)
	if !ok {
		return b
	}
	d.SetAuthor(author)
	return b
}

// BookSetPage replaces an existing page. Pages are numbered from 1.
func (b *Builder) BookSetPage(page int, data string) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.BookDetail](b, OpBookSetPage)
	if !ok {
		return b
	}
	return b.host(OpBookSetPage, d.SetPage(page, data))
}

// BookReplacePages clears the book and writes pages
func (b *Builder) BookReplacePages(pages []string) *Builder {
	if !b.active() {
		return b
	}
	if pages == nil {
		return b.invalid(OpBookReplacePages, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "pages"))
	}
	d, ok := detailAs[*domain.BookDetail](b, OpBookReplacePages)
	if !ok {
		return b
	}
	return b.host(OpBookReplacePages, d.SetPages(pages))
}

// BookAppendPages adds pages after the last one
func (b *Builder) BookAppendPages(pages []string) *Builder {
	if !b.active() {
		return b
	}
	if pages == nil {
		return b.invalid(OpBookAppendPages, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "pages"))
	}
	d, ok := detailAs[*domain.BookDetail](b, OpBookAppendPages)
	if !ok {
		return b
	}
	return b.host(OpBookAppendPages, d.AddPages(pages...))
}

// ==================== Firework ====================

// FireworkAdd adds effects to a rocket. A firework star has a single slot:
// it takes the first effect and ignores the rest.
func (b *Builder) FireworkAdd(effects []domain.FireworkEffect) *Builder {
	if !b.active() {
		return b
	}
	if effects == nil {
		return b.invalid(OpFireworkAdd, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "effects"))
	}
	if !checkEach(b, OpFireworkAdd, effects) {
		return b
	}

	switch d := b.meta().Detail.(type) {
	case *domain.FireworkEffectDetail:
		if len(effects) > 0 {
			d.SetEffect(&effects[0])
		}
	case *domain.FireworkDetail:
		d.AddEffects(effects...)
	default:
		return b.wrongKind(OpFireworkAdd, domain.MetaFirework, domain.MetaFireworkEffect)
	}
	return b
}

// FireworkRemove removes the effect at index from a rocket. On a firework
// star the single effect is removed whatever the index.
func (b *Builder) FireworkRemove(index int) *Builder {
	if !b.active() {
		return b
	}
	switch d := b.meta().Detail.(type) {
	case *domain.FireworkEffectDetail:
		d.SetEffect(nil)
	case *domain.FireworkDetail:
		return b.host(OpFireworkRemove, d.RemoveEffect(index))
	default:
		return b.wrongKind(OpFireworkRemove, domain.MetaFirework, domain.MetaFireworkEffect)
	}
	return b
}

// FireworkRemoveFirst is FireworkRemove(0)
func (b *Builder) FireworkRemoveFirst() *Builder {
	return b.FireworkRemove(0)
}

// FireworkClear removes every effect
func (b *Builder) FireworkClear() *Builder {
	if !b.active() {
		return b
	}
	switch d := b.meta().Detail.(type) {
	case *domain.FireworkEffectDetail:
		d.SetEffect(nil)
	case *domain.FireworkDetail:
		d.ClearEffects()
	default:
		return b.wrongKind(OpFireworkClear, domain.MetaFirework, domain.MetaFireworkEffect)
	}
	return b
}

// FireworkPower sets the flight power of a rocket
func (b *Builder) FireworkPower(power int) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.FireworkDetail](b, OpFireworkPower)
	if !ok {
		return b
	}
	return b.host(OpFireworkPower, d.SetPower(power))
}

// ==================== Armor, map ====================

// ArmorColor dyes leather armor
func (b *Builder) ArmorColor(c domain.Color) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.LeatherArmorDetail](b, OpArmorColor)
	if !ok {
		return b
	}
	d.SetColor(c)
	return b
}

// Trim applies an armor trim to leather or regular armor
func (b *Builder) Trim(pattern domain.TrimPattern, material domain.TrimMaterial) *Builder {
	if !b.active() {
		return b
	}
	trim := domain.NewTrim(material, pattern)
	if !b.checkStruct(OpTrim, trim) {
		return b
	}
	d, ok := b.meta().Detail.(domain.TrimHolder)
	if !ok {
		return b.wrongKind(OpTrim, domain.MetaArmor, domain.MetaLeatherArmor)
	}
	d.SetTrim(&trim)
	return b
}

// MapScaling toggles map scaling
func (b *Builder) MapScaling(scaling bool) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.MapDetail](b, OpMapScaling)
	if !ok {
		return b
	}
	d.SetScaling(scaling)
	return b
}

// ==================== Potion ====================

// PotionMain moves an effect already on the potion to the front
func (b *Builder) PotionMain(effectType domain.PotionEffectType) *Builder {
	if !b.active() {
		return b
	}
	if effectType == "" {
		return b.invalid(OpPotionMain, fmt.Errorf(ErrFmtEmptyIdentifier, domain.ErrInvalidArgument, OpPotionMain, "effect type"))
	}
	d, ok := detailAs[*domain.PotionDetail](b, OpPotionMain)
	if !ok {
		return b
	}
	return b.host(OpPotionMain, d.SetMainEffect(effectType))
}

// PotionAdd adds a custom effect, replacing one of the same type
func (b *Builder) PotionAdd(effect domain.PotionEffect) *Builder {
	return b.PotionAddOverwrite(effect, true)
}

// PotionAddOverwrite adds a custom effect. Without overwrite an effect of the
// same type makes the potion reject the call.
func (b *Builder) PotionAddOverwrite(effect domain.PotionEffect, overwrite bool) *Builder {
	if !b.active() {
		return b
	}
	if !b.checkStruct(OpPotionAdd, effect) {
		return b
	}
	d, ok := detailAs[*domain.PotionDetail](b, OpPotionAdd)
	if !ok {
		return b
	}
	return b.host(OpPotionAdd, d.AddCustomEffect(effect, overwrite))
}

// PotionRemove removes the custom effect of the given type, if present
func (b *Builder) PotionRemove(effectType domain.PotionEffectType) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.PotionDetail](b, OpPotionRemove)
	if !ok {
		return b
	}
	d.RemoveCustomEffect(effectType)
	return b
}

// PotionClear removes every custom effect
func (b *Builder) PotionClear() *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.PotionDetail](b, OpPotionClear)
	if !ok {
		return b
	}
	d.ClearCustomEffects()
	return b
}

// ==================== Skull ====================

// SkullOwner sets the head's owner by player name; empty clears it
func (b *Builder) SkullOwner(name string) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.SkullDetail](b, OpSkullOwner)
	if !ok {
		return b
	}
	return b.host(OpSkullOwner, d.SetOwner(name))
}

// SkullProfile sets the head's owner by name and player id
func (b *Builder) SkullProfile(name string, id uuid.UUID) *Builder {
	if !b.active() {
		return b
	}
	if name == "" && id == uuid.Nil {
		return b.invalid(OpSkullOwner, fmt.Errorf(ErrFmtEmptyIdentifier, domain.ErrInvalidArgument, OpSkullOwner, "name or id"))
	}
	d, ok := detailAs[*domain.SkullDetail](b, OpSkullOwner)
	if !ok {
		return b
	}
	return b.host(OpSkullOwner, d.SetProfile(domain.SkullProfile{Name: name, ID: id}))
}

// ==================== Banner ====================

// BannerSetPattern replaces the layer at index
func (b *Builder) BannerSetPattern(index int, pattern domain.Pattern) *Builder {
	if !b.active() {
		return b
	}
	if !b.checkStruct(OpBannerSetPattern, pattern) {
		return b
	}
	d, ok := detailAs[*domain.BannerDetail](b, OpBannerSetPattern)
	if !ok {
		return b
	}
	return b.host(OpBannerSetPattern, d.SetPattern(index, pattern))
}

// BannerReplacePatterns replaces every layer; nil clears the banner
func (b *Builder) BannerReplacePatterns(patterns []domain.Pattern) *Builder {
	if !b.active() {
		return b
	}
	if !checkEach(b, OpBannerReplacePatterns, patterns) {
		return b
	}
	d, ok := detailAs[*domain.BannerDetail](b, OpBannerReplacePatterns)
	if !ok {
		return b
	}
	d.SetPatterns(patterns)
	return b
}

// BannerAddPatterns appends layers. Every pattern is validated before any is
// applied, so an invalid element leaves the banner untouched.
func (b *Builder) BannerAddPatterns(patterns []domain.Pattern) *Builder {
	if !b.active() {
		return b
	}
	if patterns == nil {
		return b.invalid(OpBannerAddPatterns, fmt.Errorf(ErrFmtNilArgument, domain.ErrInvalidArgument, "patterns"))
	}
	if !checkEach(b, OpBannerAddPatterns, patterns) {
		return b
	}
	d, ok := detailAs[*domain.BannerDetail](b, OpBannerAddPatterns)
	if !ok {
		return b
	}
	for _, p := range patterns {
		d.AddPattern(p)
	}
	return b
}

// BannerRemovePattern removes the layer at index
func (b *Builder) BannerRemovePattern(index int) *Builder {
	if !b.active() {
		return b
	}
	d, ok := detailAs[*domain.BannerDetail](b, OpBannerRemovePattern)
	if !ok {
		return b
	}
	return b.host(OpBannerRemovePattern, d.RemovePattern(index))
}
