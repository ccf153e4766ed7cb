package config

type ImporterConfig struct {
	CsvDir        string
	AllStocksFile string
	CommonConfig
}

func NewImporterConfig() ImporterConfig {
	return ImporterConfig{
		CsvDir:        getEnv("CSV_DIR", "csvs"),
		AllStocksFile: getEnv("ALL_STOCKS_CSV", "all_stocks_list.csv"),
		CommonConfig:  NewCommonConfig(),
	}
}
