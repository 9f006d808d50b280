package pachca

import (
	"time"

	. "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Config struct {
	BaseURL         string        `json:"base_url"`
	Token           string        `json:"token"`
	Timeout         time.Duration `json:"timeout"`
	RequestIDHeader string        `json:"request_id_header"`
}

func (c *Config) Validate() error {
	return ValidateStruct(c,
		Field(&c.BaseURL, Required, is.URL),
		Field(&c.Token, Required),
		Field(&c.Timeout, Min(time.Duration(0)), Max(10*time.Minute)),
	)
}
