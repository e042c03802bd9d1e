package cmd

type Config struct {
	HTTPPort                 string
	APIBaseURL               string
	APITimeoutSeconds        string
	TokenFile                string
	OrderRefreshSchedule     string
	NotificationPollSchedule string
}
