package entities

import "time"

const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

func ValidFrequency(frequency string) bool {
	return frequency == FrequencyDaily || frequency == FrequencyWeekly
}

// FrequencyPeriod returns the minimum interval between two digest sends
// for the given frequency.
func FrequencyPeriod(frequency string) time.Duration {
	if frequency == FrequencyDaily {
		return 24 * time.Hour
	}
	return 7 * 24 * time.Hour
}

// DigestPreference is a per-user opt-in. Absent rows read as the default
// {Enabled: false, Frequency: weekly}.
type DigestPreference struct {
	UserID     string
	Enabled    bool
	Frequency  string
	LastSentAt time.Time
}

func DefaultPreference(userID string) DigestPreference {
	return DigestPreference{UserID: userID, Frequency: FrequencyWeekly}
}

// MailSettings is the stored SMTP configuration singleton. Password never
// leaves the service on reads.
type MailSettings struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Encryption  string
	FromAddress string
	FromName    string
	Enabled     bool
}
