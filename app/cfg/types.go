package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	SourcesDir        string
	Port              string
	BaseUrl           string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Analysis configuration
	MaxSummarySentences int
	MaxKeywords         int
	TranslateEndpoint   string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
