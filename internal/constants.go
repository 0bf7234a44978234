package internal

const (
	COOKIE_ACCESS_TOKEN_NAME = "feedindia_access_token"
	COOKIE_REDIRECT_NAME     = "feedindia_redirect"
)
