package config

// SourceConfig represents a complete news source configuration
type SourceConfig struct {
	Source     SourceInfo     `yaml:"source"`
	Settings   SourceSettings `yaml:"settings"`
	Categories []Category     `yaml:"categories"`
}

// SourceInfo contains basic source information
type SourceInfo struct {
	ID      string `yaml:"id"`
	URL     string `yaml:"url"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

// SourceSettings contains source processing settings
type SourceSettings struct {
	Enabled        bool `yaml:"enabled"`
	MaxArticles    int  `yaml:"max_articles"`
	Timeout        int  `yaml:"timeout"` // seconds
	ExtractContent bool `yaml:"extract_content"`
}

// Category maps a category name to the keywords that select articles for it
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}
