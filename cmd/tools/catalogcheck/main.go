package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Martynas09/shop-browser/internal/catalog"
	"github.com/Martynas09/shop-browser/internal/promo"
)

// catalogcheck loads the product feeds and reports how well their prices
// and promotional annotations parse. Run it after refreshing the feeds to
// catch format drift before the server does.
func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", os.Getenv("CATALOG_DIR"), "directory containing <shop>-products.json feeds")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *dir == "" {
		logger.Fatal().Msg("catalog directory is required (-dir or CATALOG_DIR)")
	}

	products, err := catalog.Load(*dir)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}

	type shopReport struct {
		total        int
		missingPrice int
		promoTexts   int
		byKind       map[promo.Kind]int
	}
	reports := map[catalog.Shop]*shopReport{}
	for _, shop := range catalog.Shops() {
		reports[shop] = &shopReport{byKind: map[promo.Kind]int{}}
	}

	for _, p := range products {
		report := reports[p.Shop]
		report.total++
		if p.Price == nil {
			report.missingPrice++
			logger.Warn().Str("id", p.ID).Str("title", p.Title).Msg("unparseable price")
		}
		text := p.PromoText()
		if text == "" {
			continue
		}
		report.promoTexts++
		rule := promo.Parse(text)
		report.byKind[rule.Kind]++
		if rule.Kind == promo.KindNone {
			logger.Debug().Str("id", p.ID).Str("text", text).Msg("unrecognised promotion text")
		}
	}

	for _, shop := range catalog.Shops() {
		report := reports[shop]
		logger.Info().
			Str("shop", string(shop)).
			Int("products", report.total).
			Int("missing_price", report.missingPrice).
			Int("promo_texts", report.promoTexts).
			Int("percent_off", report.byKind[promo.KindPercentOff]).
			Int("bundle_price", report.byKind[promo.KindBundlePrice]).
			Int("unrecognised", report.byKind[promo.KindNone]).
			Msg("feed report")
	}
}
