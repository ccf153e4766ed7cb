package config

type AnalyzerConfig struct {
	Workers        int
	SymbolSuffix   string
	DiscountPct    float64
	MaxTrailingPE  float64
	MaxPriceToBook float64
	CommonConfig
}

func NewAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Workers:        getEnvAsInt("ANALYZER_WORKERS", 4),
		SymbolSuffix:   getEnv("QUOTE_SYMBOL_SUFFIX", ".NS"),
		DiscountPct:    getEnvAsFloat("DISCOUNT_THRESHOLD_PCT", 20),
		MaxTrailingPE:  getEnvAsFloat("MAX_TRAILING_PE", 20),
		MaxPriceToBook: getEnvAsFloat("MAX_PRICE_TO_BOOK", 2),
		CommonConfig:   NewCommonConfig(),
	}
}
