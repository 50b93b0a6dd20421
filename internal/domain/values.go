package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Enchantment identifies an enchantment type (e.g., "sharpness")
type Enchantment string

const (
	EnchantProtection   Enchantment = "protection"
	EnchantUnbreaking   Enchantment = "unbreaking"
	EnchantMending      Enchantment = "mending"
	EnchantSharpness    Enchantment = "sharpness"
	EnchantFireAspect   Enchantment = "fire_aspect"
	EnchantLooting      Enchantment = "looting"
	EnchantEfficiency   Enchantment = "efficiency"
	EnchantFortune      Enchantment = "fortune"
	EnchantSilkTouch    Enchantment = "silk_touch"
	EnchantPower        Enchantment = "power"
	EnchantInfinity     Enchantment = "infinity"
	EnchantThorns       Enchantment = "thorns"
	EnchantFeatherFall  Enchantment = "feather_falling"
	EnchantBindingCurse Enchantment = "binding_curse"
)

// ItemFlag hides a section of the item tooltip
type ItemFlag string

const (
	FlagHideEnchants       ItemFlag = "HIDE_ENCHANTS"
	FlagHideAttributes     ItemFlag = "HIDE_ATTRIBUTES"
	FlagHideUnbreakable    ItemFlag = "HIDE_UNBREAKABLE"
	FlagHideDestroys       ItemFlag = "HIDE_DESTROYS"
	FlagHidePlacedOn       ItemFlag = "HIDE_PLACED_ON"
	FlagHideAdditional     ItemFlag = "HIDE_ADDITIONAL_TOOLTIP"
	FlagHideDye            ItemFlag = "HIDE_DYE"
	FlagHideArmorTrim      ItemFlag = "HIDE_ARMOR_TRIM"
	FlagHideStoredEnchants ItemFlag = "HIDE_STORED_ENCHANTS"
)

// Color is an RGB color used by leather armor and firework effects
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB builds a color from its components
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex renders the color as #RRGGBB
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses "#RRGGBB" or "RRGGBB"
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: color %q must have 6 hex digits", ErrInvalidArgument, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidArgument, s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FireworkType is the burst shape of a firework effect
type FireworkType string

const (
	FireworkBall      FireworkType = "BALL"
	FireworkBallLarge FireworkType = "BALL_LARGE"
	FireworkStar      FireworkType = "STAR"
	FireworkBurst     FireworkType = "BURST"
	FireworkCreeper   FireworkType = "CREEPER"
)

// FireworkEffect describes one firework explosion
type FireworkEffect struct {
	Type       FireworkType `json:"type" validate:"required,oneof=BALL BALL_LARGE STAR BURST CREEPER"`
	Colors     []Color      `json:"colors" validate:"min=1"`
	FadeColors []Color      `json:"fade_colors,omitempty"`
	Flicker    bool         `json:"flicker,omitempty"`
	Trail      bool         `json:"trail,omitempty"`
}

func (e FireworkEffect) clone() FireworkEffect {
	e.Colors = cloneSlice(e.Colors)
	e.FadeColors = cloneSlice(e.FadeColors)
	return e
}

// PotionEffectType identifies a potion effect
type PotionEffectType string

const (
	EffectSpeed          PotionEffectType = "speed"
	EffectSlowness       PotionEffectType = "slowness"
	EffectStrength       PotionEffectType = "strength"
	EffectInstantHealth  PotionEffectType = "instant_health"
	EffectJumpBoost      PotionEffectType = "jump_boost"
	EffectRegeneration   PotionEffectType = "regeneration"
	EffectFireResistance PotionEffectType = "fire_resistance"
	EffectNightVision    PotionEffectType = "night_vision"
	EffectInvisibility   PotionEffectType = "invisibility"
	EffectPoison         PotionEffectType = "poison"
)

// PotionEffect is a custom effect carried by a potion. Duration is in ticks,
// -1 means infinite.
type PotionEffect struct {
	Type      PotionEffectType `json:"type" validate:"required"`
	Duration  int              `json:"duration" validate:"min=-1"`
	Amplifier int              `json:"amplifier" validate:"min=0,max=255"`
	Ambient   bool             `json:"ambient,omitempty"`
	Particles bool             `json:"particles,omitempty"`
}

// DyeColor is one of the sixteen dye colors
type DyeColor string

const (
	DyeWhite     DyeColor = "white"
	DyeOrange    DyeColor = "orange"
	DyeMagenta   DyeColor = "magenta"
	DyeLightBlue DyeColor = "light_blue"
	DyeYellow    DyeColor = "yellow"
	DyeLime      DyeColor = "lime"
	DyePink      DyeColor = "pink"
	DyeGray      DyeColor = "gray"
	DyeLightGray DyeColor = "light_gray"
	DyeCyan      DyeColor = "cyan"
	DyePurple    DyeColor = "purple"
	DyeBlue      DyeColor = "blue"
	DyeBrown     DyeColor = "brown"
	DyeGreen     DyeColor = "green"
	DyeRed       DyeColor = "red"
	DyeBlack     DyeColor = "black"
)

// dyeRGB holds the firework/leather RGB value of each dye
var dyeRGB = map[DyeColor]Color{
	DyeWhite:     {0xF9, 0xFF, 0xFE},
	DyeOrange:    {0xF9, 0x80, 0x1D},
	DyeMagenta:   {0xC7, 0x4E, 0xBD},
	DyeLightBlue: {0x3A, 0xB3, 0xDA},
	DyeYellow:    {0xFE, 0xD8, 0x3D},
	DyeLime:      {0x80, 0xC7, 0x1F},
	DyePink:      {0xF3, 0x8B, 0xAA},
	DyeGray:      {0x47, 0x4F, 0x52},
	DyeLightGray: {0x9D, 0x9D, 0x97},
	DyeCyan:      {0x16, 0x9C, 0x9C},
	DyePurple:    {0x89, 0x32, 0xB8},
	DyeBlue:      {0x3C, 0x44, 0xAA},
	DyeBrown:     {0x83, 0x54, 0x32},
	DyeGreen:     {0x5E, 0x7C, 0x16},
	DyeRed:       {0xB0, 0x2E, 0x26},
	DyeBlack:     {0x1D, 0x1D, 0x21},
}

// Color returns the RGB value of the dye
func (d DyeColor) Color() (Color, bool) {
	c, ok := dyeRGB[d]
	return c, ok
}

// DyeColors returns every dye with its RGB value
func DyeColors() map[DyeColor]Color {
	out := make(map[DyeColor]Color, len(dyeRGB))
	for k, v := range dyeRGB {
		out[k] = v
	}
	return out
}

// PatternType is a banner pattern shape
type PatternType string

const (
	PatternBase           PatternType = "base"
	PatternStripeBottom   PatternType = "stripe_bottom"
	PatternStripeTop      PatternType = "stripe_top"
	PatternStripeCenter   PatternType = "stripe_center"
	PatternCross          PatternType = "cross"
	PatternBorder         PatternType = "border"
	PatternCreeper        PatternType = "creeper"
	PatternSkull          PatternType = "skull"
	PatternFlower         PatternType = "flower"
	PatternGradient       PatternType = "gradient"
	PatternHalfHorizontal PatternType = "half_horizontal"
)

// Pattern is one layer of a banner
type Pattern struct {
	Color DyeColor    `json:"color" validate:"required,oneof=white orange magenta light_blue yellow lime pink gray light_gray cyan purple blue brown green red black"`
	Type  PatternType `json:"type" validate:"required"`
}

// TrimPattern is an armor trim shape
type TrimPattern string

const (
	TrimSentry  TrimPattern = "sentry"
	TrimDune    TrimPattern = "dune"
	TrimCoast   TrimPattern = "coast"
	TrimWild    TrimPattern = "wild"
	TrimWard    TrimPattern = "ward"
	TrimEye     TrimPattern = "eye"
	TrimVex     TrimPattern = "vex"
	TrimTide    TrimPattern = "tide"
	TrimSnout   TrimPattern = "snout"
	TrimRib     TrimPattern = "rib"
	TrimSpire   TrimPattern = "spire"
	TrimSilence TrimPattern = "silence"
)

// TrimMaterial is the material an armor trim is made of
type TrimMaterial string

const (
	TrimIron      TrimMaterial = "iron"
	TrimCopper    TrimMaterial = "copper"
	TrimGold      TrimMaterial = "gold"
	TrimLapis     TrimMaterial = "lapis"
	TrimEmerald   TrimMaterial = "emerald"
	TrimDiamond   TrimMaterial = "diamond"
	TrimNetherite TrimMaterial = "netherite"
	TrimRedstone  TrimMaterial = "redstone"
	TrimAmethyst  TrimMaterial = "amethyst"
	TrimQuartz    TrimMaterial = "quartz"
)

// Trim is an armor trim (material + pattern)
type Trim struct {
	Material TrimMaterial `json:"material" validate:"required"`
	Pattern  TrimPattern  `json:"pattern" validate:"required"`
}

// NewTrim builds a trim descriptor
func NewTrim(material TrimMaterial, pattern TrimPattern) Trim {
	return Trim{Material: material, Pattern: pattern}
}

// SkullProfile identifies the owner of a player head. ID is uuid.Nil when
// only the name is known.
type SkullProfile struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
