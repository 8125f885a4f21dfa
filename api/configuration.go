package api

import "time"

type Configuration struct {
	Env            string
	AppName        string
	ApiVersion     string
	Port           string
	AppUrl         string
	DefaultTimeout time.Duration
}
