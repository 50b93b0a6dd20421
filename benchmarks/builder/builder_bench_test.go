package builder_bench

import (
	"testing"

	"github.com/osse101/ItemBuilder_Go/internal/color"
	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/item"
)

// --- Stubs (zero-overhead collaborators for benchmarking) ---

// StubReporter implements item.Reporter
type StubReporter struct{}

func (StubReporter) Report(op string, err error) {}

func options(silent bool) []item.Option {
	return []item.Option{
		item.WithReporter(StubReporter{}),
		item.WithTranslator(color.Passthrough{}),
		item.WithFailSilently(silent),
	}
}

var patterns = []domain.Pattern{
	{Color: domain.DyeRed, Type: domain.PatternCross},
	{Color: domain.DyeBlue, Type: domain.PatternBorder},
	{Color: domain.DyeBlack, Type: domain.PatternGradient},
}

// --- Benchmark Functions ---

// BenchmarkBuilder_DecoratedSword covers the common ops on a plain item
func BenchmarkBuilder_DecoratedSword(b *testing.B) {
	opts := options(false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := item.New(domain.KindDiamondSword, opts...).
			Name("Excalibur").
			Lore("Line one", "Line two").
			Enchant(domain.EnchantSharpness, 5).
			Enchant(domain.EnchantUnbreaking, 3).
			AddFlags(domain.FlagHideEnchants).
			Damage(10).
			Build()
		if err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuilder_BannerAddPatterns measures validation of every element before applying
func BenchmarkBuilder_BannerAddPatterns(b *testing.B) {
	opts := options(false)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := item.New(domain.KindWhiteBanner, opts...).BannerAddPatterns(patterns).Build()
		if err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuilder_WrongKindSilent measures the no-op path of silent mode
func BenchmarkBuilder_WrongKindSilent(b *testing.B) {
	builder := item.New(domain.KindStone, options(true)...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder.BookTitle("nope").PotionClear().MapScaling(true)
	}
}

// BenchmarkBuilder_Copy measures deep copying a decorated builder
func BenchmarkBuilder_Copy(b *testing.B) {
	base := item.New(domain.KindWrittenBook, options(false)...).
		BookTitle("Manual").
		BookReplacePages([]string{"one", "two", "three"}).
		Lore("a", "b", "c")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.Copy()
	}
}

// BenchmarkTranslator_Cached measures repeated color translation of the same text
func BenchmarkTranslator_Cached(b *testing.B) {
	t, err := color.NewTranslator(color.DefaultCacheSize)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.Translate("&6Golden &#ff00aaText")
	}
}
