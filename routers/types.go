package routers

type heartbeatRes struct {
	Status      string `json:"status"`
	DBStatus    string `json:"dbStatus"`
	Environment string `json:"environment"`
}

type healthRes struct {
	Status    string `json:"status"`
	DBStatus  string `json:"dbStatus"`
	Timestamp string `json:"timestamp"`
}

type apiNotFoundRes struct {
	Error          string `json:"error"`
	Path           string `json:"path"`
	AttemptedRoute string `json:"attemptedRoute"`
}
