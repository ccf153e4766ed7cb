package config

type ReaderConfig struct {
	DataStore     string
	AllStocksFile string
}

func NewReaderConfig() ReaderConfig {
	return ReaderConfig{
		DataStore:     getEnv("DATA_STORE", "sql"),
		AllStocksFile: getEnv("ALL_STOCKS_CSV", "all_stocks_list.csv"),
	}
}
