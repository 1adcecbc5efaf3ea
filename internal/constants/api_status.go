package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)
