package httptransport

type DigestPreferenceDTO struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"`
}

type SetPreferenceRequest struct {
	Enabled   bool   `json:"enabled"`
	Frequency string `json:"frequency"`
}

type MailSettingsDTO struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Encryption  string `json:"encryption"`
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name"`
	Enabled     bool   `json:"enabled"`
}

type SetMailSettingsRequest struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Encryption  string `json:"encryption"`
	FromAddress string `json:"from_address"`
	FromName    string `json:"from_name"`
	Enabled     bool   `json:"enabled"`
}

type SendTestRequest struct {
	To string `json:"to"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
