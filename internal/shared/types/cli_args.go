package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	BillFile     string
	Extractor    string
	WebhookURL   string
	HomeZip      string
	WorkZip      string
	SortBy       string
	CurrentPrice float64
	Lines        int
	Details      bool
	ReportName   string
	ReportType   []string
	Dir          string
	ListenAddr   string
	Progress     bool
}
