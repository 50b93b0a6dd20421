package domain

import (
	"fmt"
	"sort"
)

// Kind identifies what an item is (e.g., "diamond_sword")
type Kind string

// MetaKind tags the active variant of a Meta's Detail
type MetaKind int

const (
	MetaPlain MetaKind = iota
	MetaBook
	MetaFirework
	MetaFireworkEffect
	MetaLeatherArmor
	MetaArmor
	MetaMap
	MetaPotion
	MetaSkull
	MetaBanner
)

var metaKindNames = [...]string{
	MetaPlain:          "plain",
	MetaBook:           "book",
	MetaFirework:       "firework",
	MetaFireworkEffect: "firework_effect",
	MetaLeatherArmor:   "leather_armor",
	MetaArmor:          "armor",
	MetaMap:            "map",
	MetaPotion:         "potion",
	MetaSkull:          "skull",
	MetaBanner:         "banner",
}

func (k MetaKind) String() string {
	if k < 0 || int(k) >= len(metaKindNames) {
		return fmt.Sprintf("MetaKind(%d)", int(k))
	}
	return metaKindNames[k]
}

// KindInfo holds the host properties of a kind
type KindInfo struct {
	Meta          MetaKind
	MaxStack      int
	MaxDurability int // 0 means not damageable
	Repairable    bool
}

// Item kinds known to the registry
const (
	KindStone          Kind = "stone"
	KindStick          Kind = "stick"
	KindDiamond        Kind = "diamond"
	KindDiamondSword   Kind = "diamond_sword"
	KindIronPickaxe    Kind = "iron_pickaxe"
	KindBow            Kind = "bow"
	KindShield         Kind = "shield"
	KindElytra         Kind = "elytra"
	KindWritableBook   Kind = "writable_book"
	KindWrittenBook    Kind = "written_book"
	KindEnchantedBook  Kind = "enchanted_book"
	KindFireworkRocket Kind = "firework_rocket"
	KindFireworkStar   Kind = "firework_star"
	KindLeatherHelmet  Kind = "leather_helmet"
	KindLeatherChest   Kind = "leather_chestplate"
	KindLeatherLegs    Kind = "leather_leggings"
	KindLeatherBoots   Kind = "leather_boots"
	KindIronHelmet     Kind = "iron_helmet"
	KindIronChestplate Kind = "iron_chestplate"
	KindDiamondHelmet  Kind = "diamond_helmet"
	KindNetheriteBoots Kind = "netherite_boots"
	KindFilledMap      Kind = "filled_map"
	KindPotion         Kind = "potion"
	KindSplashPotion   Kind = "splash_potion"
	KindLingeringPot   Kind = "lingering_potion"
	KindTippedArrow    Kind = "tipped_arrow"
	KindPlayerHead     Kind = "player_head"
	KindWhiteBanner    Kind = "white_banner"
	KindRedBanner      Kind = "red_banner"
	KindBlackBanner    Kind = "black_banner"
)

var kindRegistry = map[Kind]KindInfo{
	KindStone:          {Meta: MetaPlain, MaxStack: DefaultMaxStack},
	KindStick:          {Meta: MetaPlain, MaxStack: DefaultMaxStack},
	KindDiamond:        {Meta: MetaPlain, MaxStack: DefaultMaxStack},
	KindDiamondSword:   {Meta: MetaPlain, MaxStack: 1, MaxDurability: 1561, Repairable: true},
	KindIronPickaxe:    {Meta: MetaPlain, MaxStack: 1, MaxDurability: 250, Repairable: true},
	KindBow:            {Meta: MetaPlain, MaxStack: 1, MaxDurability: 384, Repairable: true},
	KindShield:         {Meta: MetaPlain, MaxStack: 1, MaxDurability: 336, Repairable: true},
	KindElytra:         {Meta: MetaPlain, MaxStack: 1, MaxDurability: 432, Repairable: true},
	KindWritableBook:   {Meta: MetaBook, MaxStack: 1},
	KindWrittenBook:    {Meta: MetaBook, MaxStack: 16},
	KindEnchantedBook:  {Meta: MetaPlain, MaxStack: 1, Repairable: true},
	KindFireworkRocket: {Meta: MetaFirework, MaxStack: DefaultMaxStack},
	KindFireworkStar:   {Meta: MetaFireworkEffect, MaxStack: DefaultMaxStack},
	KindLeatherHelmet:  {Meta: MetaLeatherArmor, MaxStack: 1, MaxDurability: 55, Repairable: true},
	KindLeatherChest:   {Meta: MetaLeatherArmor, MaxStack: 1, MaxDurability: 80, Repairable: true},
	KindLeatherLegs:    {Meta: MetaLeatherArmor, MaxStack: 1, MaxDurability: 75, Repairable: true},
	KindLeatherBoots:   {Meta: MetaLeatherArmor, MaxStack: 1, MaxDurability: 65, Repairable: true},
	KindIronHelmet:     {Meta: MetaArmor, MaxStack: 1, MaxDurability: 165, Repairable: true},
	KindIronChestplate: {Meta: MetaArmor, MaxStack: 1, MaxDurability: 240, Repairable: true},
	KindDiamondHelmet:  {Meta: MetaArmor, MaxStack: 1, MaxDurability: 363, Repairable: true},
	KindNetheriteBoots: {Meta: MetaArmor, MaxStack: 1, MaxDurability: 481, Repairable: true},
	KindFilledMap:      {Meta: MetaMap, MaxStack: DefaultMaxStack},
	KindPotion:         {Meta: MetaPotion, MaxStack: 1},
	KindSplashPotion:   {Meta: MetaPotion, MaxStack: 1},
	KindLingeringPot:   {Meta: MetaPotion, MaxStack: 1},
	KindTippedArrow:    {Meta: MetaPotion, MaxStack: DefaultMaxStack},
	KindPlayerHead:     {Meta: MetaSkull, MaxStack: DefaultMaxStack},
	KindWhiteBanner:    {Meta: MetaBanner, MaxStack: 16},
	KindRedBanner:      {Meta: MetaBanner, MaxStack: 16},
	KindBlackBanner:    {Meta: MetaBanner, MaxStack: 16},
}

// LookupKind returns the registry entry for a kind
func LookupKind(kind Kind) (KindInfo, bool) {
	info, ok := kindRegistry[kind]
	return info, ok
}

// MetaKindFor returns the variant a kind carries. Unknown kinds are plain.
func MetaKindFor(kind Kind) MetaKind {
	if info, ok := kindRegistry[kind]; ok {
		return info.Meta
	}
	return MetaPlain
}

// Kinds lists every registered kind in sorted order
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindRegistry))
	for k := range kindRegistry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func kindInfo(kind Kind) KindInfo {
	if info, ok := kindRegistry[kind]; ok {
		return info
	}
	return KindInfo{Meta: MetaPlain, MaxStack: DefaultMaxStack}
}
